/*
 * @module service/vision/decode_test
 * @description 影像规格化单元测试：透明像素白底合成
 */

package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solidNRGBA(width, height int, fill color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, fill)
		}
	}
	return img
}

func TestResizeToRGB_FullyTransparentBecomesWhite(t *testing.T) {
	img := solidNRGBA(64, 64, color.NRGBA{R: 10, G: 20, B: 30, A: 0})

	out := resizeToRGB(img, 64)

	c := out.RGBAAt(32, 32)
	assert.Equal(t, uint8(0xFF), c.R)
	assert.Equal(t, uint8(0xFF), c.G)
	assert.Equal(t, uint8(0xFF), c.B)
	assert.Equal(t, uint8(0xFF), c.A)
}

func TestResizeToRGB_SemiTransparentBlendsStraightAlpha(t *testing.T) {
	img := solidNRGBA(64, 64, color.NRGBA{R: 200, G: 140, B: 120, A: 128})

	out := resizeToRGB(img, 64)
	c := out.RGBAAt(32, 32)

	// 直通道合成：v*a/255 + 255*(255-a)/255；预乘值直接合成会再吃一次alpha
	assert.InDelta(t, 227, float64(c.R), 3)
	assert.InDelta(t, 197, float64(c.G), 3)
	assert.InDelta(t, 187, float64(c.B), 3)
	assert.Equal(t, uint8(0xFF), c.A)
}

func TestResizeToRGB_OpaquePixelsUnchanged(t *testing.T) {
	img := solidNRGBA(64, 64, color.NRGBA{R: 200, G: 140, B: 120, A: 255})

	out := resizeToRGB(img, 64)
	c := out.RGBAAt(32, 32)

	assert.Equal(t, uint8(200), c.R)
	assert.Equal(t, uint8(140), c.G)
	assert.Equal(t, uint8(120), c.B)
}
