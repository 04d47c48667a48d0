/*
 * @module service/vision/tongue_test
 * @description 舌相特征提取单元测试
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

func TestExtractTongueFeatures_NotTongue(t *testing.T) {
	blue := testutil.MakeJPEG(t, 640, 640, color.RGBA{R: 50, G: 50, B: 200, A: 255})
	_, err := ExtractTongueFeatures(blue, "image/jpeg")
	assert.ErrorIs(t, err, ErrNotTongue)
}

func TestExtractTongueFeatures_BlurrySolid(t *testing.T) {
	solid := testutil.MakeJPEG(t, 640, 640, color.RGBA{R: 200, G: 140, B: 120, A: 255})
	_, err := ExtractTongueFeatures(solid, "image/jpeg")
	assert.ErrorIs(t, err, ErrBlurryTongue)
}

func TestExtractTongueFeatures_SizeAndResolutionGates(t *testing.T) {
	oversized := make([]byte, (8<<20)+1)
	_, err := ExtractTongueFeatures(oversized, "image/jpeg")
	assert.ErrorIs(t, err, ErrFileTooLarge)

	small := testutil.MakeJPEG(t, 320, 320, color.RGBA{R: 200, G: 120, B: 110, A: 255})
	_, err = ExtractTongueFeatures(small, "image/jpeg")
	assert.ErrorIs(t, err, ErrLowResolution)
}

func TestExtractTongueFeatures_Success(t *testing.T) {
	data := tonguePatternImage(t)

	summary, err := ExtractTongueFeatures(data, "image/jpeg")
	require.NoError(t, err)
	require.NotNil(t, summary)

	// 红占比全图为 1，按序表首个命中为红
	assert.Equal(t, models.TongueColorRed, summary.Color)
	assert.GreaterOrEqual(t, summary.QualityScore, tongueQualityFloor)
	assert.NotEmpty(t, summary.Coating)
	assert.NotEmpty(t, summary.Texture)
}

func TestExtractTongueFeatures_Deterministic(t *testing.T) {
	data := tonguePatternImage(t)

	first, err := ExtractTongueFeatures(data, "image/jpeg")
	require.NoError(t, err)
	second, err := ExtractTongueFeatures(data, "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtractTongueFeatures_PNGInput(t *testing.T) {
	data := testutil.MakePNG(t, 640, 640, color.RGBA{R: 50, G: 50, B: 200, A: 255})
	_, err := ExtractTongueFeatures(data, "image/png")
	assert.ErrorIs(t, err, ErrNotTongue)
}

func tonguePatternImage(t *testing.T) []byte {
	return testutil.MakePatternJPEG(t, 640, 640, 8,
		color.RGBA{R: 210, G: 150, B: 130, A: 255},
		color.RGBA{R: 170, G: 110, B: 90, A: 255})
}
