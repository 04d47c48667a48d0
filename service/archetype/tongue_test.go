/*
 * @module service/archetype/tongue_test
 * @description 舌相原型引擎单元测试
 */

package archetype

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"qirhythm-service/service/models"
)

func TestInferTongueArchetype_QiStatusAxis(t *testing.T) {
	cases := []struct {
		color models.TongueColor
		want  models.QiStatus
	}{
		{models.TongueColorPink, models.QiStatusBalanced},
		{models.TongueColorRed, models.QiStatusHeat},
		{models.TongueColorPale, models.QiStatusDeficit},
		{models.TongueColorPurple, models.QiStatusStasis},
		{models.TongueColorDark, models.QiStatusColdDamp},
	}

	for _, tc := range cases {
		summary := models.DefaultTongueFeatureSummary()
		summary.Color = tc.color
		got := InferTongueArchetype(summary, "zh")
		assert.Equal(t, tc.want, got.QiStatus, "color=%s", tc.color)
		assert.NotEmpty(t, got.TrendHint)
	}
}

func TestInferTongueArchetype_SystemTagOrder(t *testing.T) {
	summary := models.DefaultTongueFeatureSummary()
	got := InferTongueArchetype(summary, "zh")

	assert.Equal(t, []string{
		"tongue_color_pink",
		"coating_thin_white",
		"tongue_normal",
	}, got.SystemTags)
}

func TestInferTongueArchetype_TrendHintReflectsCoating(t *testing.T) {
	base := models.DefaultTongueFeatureSummary()
	base.Color = models.TongueColorRed

	thin := base
	thin.Coating = models.TongueCoatingThinWhite
	yellow := base
	yellow.Coating = models.TongueCoatingYellow

	thinHint := InferTongueArchetype(thin, "zh").TrendHint
	yellowHint := InferTongueArchetype(yellow, "zh").TrendHint

	// 同色不同苔给出不同趋势提示；薄白苔保持基调不加修饰
	assert.NotEqual(t, thinHint, yellowHint)
	assert.True(t, strings.HasPrefix(yellowHint, thinHint))
	assert.Contains(t, yellowHint, "苔黄")
}

func TestInferTongueArchetype_ZeroValueSummary(t *testing.T) {
	got := InferTongueArchetype(models.TongueFeatureSummary{}, "zh")
	assert.Equal(t, models.QiStatusBalanced, got.QiStatus)
}
