/*
 * @module service/archetype/palm_test
 * @description 掌相原型引擎单元测试：逐轴全覆盖与复合规则
 */

package archetype

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qirhythm-service/service/models"
)

func TestInferPalmArchetype_VitalityAxis(t *testing.T) {
	cases := []struct {
		life models.LifeLineQuality
		want models.Vitality
	}{
		{models.LifeLineDeep, models.VitalityAbundant},
		{models.LifeLineShallow, models.VitalityMedium},
		{models.LifeLineBroken, models.VitalityAdjust},
	}

	for _, tc := range cases {
		summary := models.DefaultPalmFeatureSummary()
		summary.Lines.Life = tc.life
		got := InferPalmArchetype(summary, "zh")
		assert.Equal(t, tc.want, got.Vitality, "life=%s", tc.life)
	}
}

func TestInferPalmArchetype_CompoundEmotionRule(t *testing.T) {
	// 生命线断续 + 感情线弯曲 -> 波动起伏，覆盖单轴查表结论
	summary := models.DefaultPalmFeatureSummary()
	summary.Lines.Life = models.LifeLineBroken
	summary.Lines.Heart = models.HeartLineCurved

	got := InferPalmArchetype(summary, "zh")
	assert.Equal(t, models.EmotionFluctuated, got.Emotion)

	// 感情线弯曲但生命线完好时走普通查表
	summary.Lines.Life = models.LifeLineDeep
	got = InferPalmArchetype(summary, "zh")
	assert.Equal(t, models.EmotionSensitive, got.Emotion)
}

func TestInferPalmArchetype_WealthAxisTotality(t *testing.T) {
	fates := []models.FateLineQuality{models.FateLineDeep, models.FateLineShallow, models.FateLineAbsent}
	moneys := []models.MoneyLineQuality{models.MoneyLineClear, models.MoneyLineFaint, models.MoneyLineAbsent}

	for _, fate := range fates {
		for _, money := range moneys {
			summary := models.DefaultPalmFeatureSummary()
			summary.Lines.Fate = fate
			summary.Lines.Money = money
			got := InferPalmArchetype(summary, "zh")
			assert.NotEmpty(t, got.Wealth, "fate=%s money=%s", fate, money)
		}
	}
}

func TestInferPalmArchetype_ZeroValueSummaryStillTotal(t *testing.T) {
	// 零值摘要的每个轴都必须落到封闭枚举成员
	got := InferPalmArchetype(models.PalmFeatureSummary{}, "zh")

	assert.NotEmpty(t, got.Vitality)
	assert.NotEmpty(t, got.Emotion)
	assert.NotEmpty(t, got.Thinking)
	assert.NotEmpty(t, got.Wealth)
}

func TestInferPalmArchetype_SystemTagOrder(t *testing.T) {
	summary := models.DefaultPalmFeatureSummary()
	got := InferPalmArchetype(summary, "zh")

	assert.Equal(t, []string{
		"life_shallow",
		"heart_curved",
		"wisdom_wavy",
		"wealth_absent_absent",
		"palm_color_pink",
		"palm_texture_smooth",
	}, got.SystemTags)
}

func TestInferPalmArchetype_LocalePicksHintLanguage(t *testing.T) {
	summary := models.DefaultPalmFeatureSummary()

	zh := InferPalmArchetype(summary, "zh")
	en := InferPalmArchetype(summary, "en")

	assert.NotEqual(t, zh.ColorHint, en.ColorHint)
	// 系统标签与语言无关
	assert.Equal(t, zh.SystemTags, en.SystemTags)
}
