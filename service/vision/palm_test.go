/*
 * @module service/vision/palm_test
 * @description 掌相特征提取单元测试：类型化错误、闸门行为与确定性
 */

package vision

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qirhythm-service/service/models"
	"qirhythm-service/testutil"
)

func TestExtractPalmFeatures_EmptyData(t *testing.T) {
	_, err := ExtractPalmFeatures(nil, "image/jpeg")
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = ExtractPalmFeatures([]byte{}, "image/jpeg")
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestExtractPalmFeatures_InvalidBytes(t *testing.T) {
	_, err := ExtractPalmFeatures([]byte("这不是一张图片"), "image/jpeg")
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestExtractPalmFeatures_FileTooLarge(t *testing.T) {
	oversized := make([]byte, (8<<20)+1)
	_, err := ExtractPalmFeatures(oversized, "image/jpeg")
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestExtractPalmFeatures_LowResolution(t *testing.T) {
	small := testutil.MakeJPEG(t, 200, 200, color.RGBA{R: 200, G: 140, B: 120, A: 255})
	_, err := ExtractPalmFeatures(small, "image/jpeg")
	assert.ErrorIs(t, err, ErrLowResolution)
}

func TestExtractPalmFeatures_NotPalm(t *testing.T) {
	// 纯蓝影像不具备手掌的暖色合理性
	blue := testutil.MakeJPEG(t, 640, 640, color.RGBA{R: 50, G: 50, B: 200, A: 255})
	_, err := ExtractPalmFeatures(blue, "image/jpeg")
	assert.ErrorIs(t, err, ErrNotPalm)
}

func TestExtractPalmFeatures_BlurrySolid(t *testing.T) {
	// 纯色肤色影像通过合理性闸门，但梯度与方差趋零，应判模糊
	solid := testutil.MakeJPEG(t, 640, 640, color.RGBA{R: 200, G: 140, B: 120, A: 255})
	_, err := ExtractPalmFeatures(solid, "image/jpeg")
	assert.ErrorIs(t, err, ErrBlurryPalm)
}

func TestExtractPalmFeatures_Success(t *testing.T) {
	data := palmPatternImage(t)

	summary, err := ExtractPalmFeatures(data, "image/jpeg")
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, models.PalmColorRed, summary.Color)
	assert.GreaterOrEqual(t, summary.QualityScore, palmQualityFloor)
	assert.NotEmpty(t, summary.Texture)
	assert.NotEmpty(t, summary.Lines.Life)
	assert.NotEmpty(t, summary.Lines.Heart)
	assert.NotEmpty(t, summary.Lines.Wisdom)
	assert.NotEmpty(t, summary.Lines.Fate)
	assert.NotEmpty(t, summary.Lines.Money)
}

func TestExtractPalmFeatures_Deterministic(t *testing.T) {
	data := palmPatternImage(t)

	first, err := ExtractPalmFeatures(data, "image/jpeg")
	require.NoError(t, err)
	second, err := ExtractPalmFeatures(data, "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtractPalmFeatures_UnsupportedTypeIsWarnOnly(t *testing.T) {
	// 声明类型不受支持但字节可解码时，提取照常进行
	data := palmPatternImage(t)

	summary, err := ExtractPalmFeatures(data, "image/gif")
	require.NoError(t, err)
	assert.NotNil(t, summary)
}

func TestExtractPalmFeatures_LeadingJunkRecovered(t *testing.T) {
	// 头部脏字节触发跳转魔数的单次重试
	data := append([]byte("JUNKJUNK"), palmPatternImage(t)...)

	summary, err := ExtractPalmFeatures(data, "image/jpeg")
	require.NoError(t, err)
	assert.NotNil(t, summary)
}

// palmPatternImage 暖色棋盘影像：通过合理性与质量闸门的标准夹具
func palmPatternImage(t *testing.T) []byte {
	return testutil.MakePatternJPEG(t, 640, 640, 8,
		color.RGBA{R: 210, G: 150, B: 130, A: 255},
		color.RGBA{R: 170, G: 110, B: 90, A: 255})
}
