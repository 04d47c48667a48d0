/*
 * @module service/vision/decode
 * @description 影像解码与规格化：解码重试、EXIF 方向回正、等比缩放到工作分辨率、去除透明通道
 * @architecture 视觉服务层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 字节缓冲 -> 解码(含一次重试) -> 方向回正 -> 等比缩放 -> RGB 工作影像
 * @rules 解码失败先做一次容错重试再放弃；透明像素一律合成到白底
 * @dependencies image, image/jpeg, image/png, golang.org/x/image/draw, golang.org/x/image/webp
 * @refs service/vision/palm.go, service/vision/tongue.go
 */

package vision

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"strings"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// maxImageBytes 影像字节数上限 8MiB
	maxImageBytes = 8 << 20
	// minResolution 影像最长边下限
	minResolution = 480
)

// supportedMimeTypes 受支持的声明类型；此外的声明只产生告警
var supportedMimeTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/webp",
	"application/octet-stream",
}

// checkDeclaredType 校验声明的 MIME 类型，不支持时仅告警
func checkDeclaredType(mimeType string) {
	if mimeType == "" {
		return
	}
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	for _, t := range supportedMimeTypes {
		if mt == t {
			return
		}
	}
	slog.Warn("声明的影像类型不受支持，继续尝试解码",
		"mime_type", mimeType,
		"error", ErrUnsupportedType.Error())
}

var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47}
)

// decodeImage 解码影像，失败时做一次容错重试：
// 跳过前导垃圾字节对齐到已知文件头后再解码一次
func decodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err == nil {
		return img, nil
	}

	for _, magic := range [][]byte{jpegMagic, pngMagic} {
		if idx := bytes.Index(data, magic); idx > 0 {
			if retried, _, retryErr := image.Decode(bytes.NewReader(data[idx:])); retryErr == nil {
				slog.Warn("影像解码重试成功", "skipped_bytes", idx)
				return retried, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
}

// prepareWorkingImage 解码并规格化到工作分辨率的 RGB 影像
// 返回规格化影像与原始尺寸
func prepareWorkingImage(data []byte, mimeType string, workingSize int) (*image.RGBA, int, int, error) {
	if len(data) == 0 {
		return nil, 0, 0, ErrInvalidImage
	}
	if len(data) > maxImageBytes {
		return nil, 0, 0, ErrFileTooLarge
	}
	checkDeclaredType(mimeType)

	img, err := decodeImage(data)
	if err != nil {
		return nil, 0, 0, err
	}

	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if max(srcW, srcH) < minResolution {
		return nil, srcW, srcH, ErrLowResolution
	}

	img = applyOrientation(img, readJPEGOrientation(data))

	return resizeToRGB(img, workingSize), srcW, srcH, nil
}

// resizeToRGB 等比缩放到最长边 workingSize，并把透明像素合成到白底
func resizeToRGB(img image.Image, workingSize int) *image.RGBA {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	dstW, dstH := workingSize, workingSize
	if srcW >= srcH {
		dstH = srcH * workingSize / srcW
	} else {
		dstW = srcW * workingSize / srcH
	}
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	scaled := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Src, nil)

	// 白底合成，去除透明通道
	out := image.NewRGBA(scaled.Bounds())
	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			c := scaled.RGBAAt(x, y)
			if c.A == 0xFF {
				out.SetRGBA(x, y, c)
				continue
			}
			// RGBA 为预乘存储，先还原直通道值再与白底合成
			nc := color.NRGBAModel.Convert(c).(color.NRGBA)
			a := uint32(nc.A)
			blend := func(v uint8) uint8 {
				return uint8((uint32(v)*a + 255*(255-a)) / 255)
			}
			out.SetRGBA(x, y, color.RGBA{R: blend(nc.R), G: blend(nc.G), B: blend(nc.B), A: 0xFF})
		}
	}
	return out
}

// applyOrientation 按 EXIF 方向值回正影像，只处理 3/6/8 三种旋转
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 3:
		return rotate180(img)
	case 6:
		return rotate90(img)
	case 8:
		return rotate270(img)
	default:
		return img
	}
}

func rotate90(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(b.Max.Y-1-y, x-b.Min.X, img.At(x, y))
		}
	}
	return out
}

func rotate180(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(b.Max.X-1-x, b.Max.Y-1-y, img.At(x, y))
		}
	}
	return out
}

func rotate270(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(y-b.Min.Y, b.Max.X-1-x, img.At(x, y))
		}
	}
	return out
}

// readJPEGOrientation 从 JPEG APP1 段读取 EXIF 方向值，读不到返回 1
func readJPEGOrientation(data []byte) int {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return 1
	}

	offset := 2
	for offset+4 <= len(data) {
		if data[offset] != 0xFF {
			return 1
		}
		marker := data[offset+1]
		if marker == 0xD8 || (marker >= 0xD0 && marker <= 0xD9) {
			offset += 2
			continue
		}
		segLen := int(binary.BigEndian.Uint16(data[offset+2 : offset+4]))
		if segLen < 2 || offset+2+segLen > len(data) {
			return 1
		}
		if marker == 0xE1 {
			return parseExifOrientation(data[offset+4 : offset+2+segLen])
		}
		if marker == 0xDA { // SOS 之后不再有 EXIF
			return 1
		}
		offset += 2 + segLen
	}
	return 1
}

// parseExifOrientation 在 APP1 段内解析 IFD0 的 0x0112 方向标签
func parseExifOrientation(seg []byte) int {
	if len(seg) < 14 || !bytes.HasPrefix(seg, []byte("Exif\x00\x00")) {
		return 1
	}
	tiff := seg[6:]

	var order binary.ByteOrder
	switch {
	case bytes.HasPrefix(tiff, []byte("II")):
		order = binary.LittleEndian
	case bytes.HasPrefix(tiff, []byte("MM")):
		order = binary.BigEndian
	default:
		return 1
	}

	if len(tiff) < 8 {
		return 1
	}
	ifdOffset := int(order.Uint32(tiff[4:8]))
	if ifdOffset+2 > len(tiff) {
		return 1
	}

	entryCount := int(order.Uint16(tiff[ifdOffset : ifdOffset+2]))
	for i := 0; i < entryCount; i++ {
		entry := ifdOffset + 2 + i*12
		if entry+12 > len(tiff) {
			return 1
		}
		tag := order.Uint16(tiff[entry : entry+2])
		if tag == 0x0112 {
			v := int(order.Uint16(tiff[entry+8 : entry+10]))
			if v >= 1 && v <= 8 {
				return v
			}
			return 1
		}
	}
	return 1
}
