/*
 * @module service/vision/gate_test
 * @description 形态校验闸门单元测试：任何输入都必须产出可用摘要
 */

package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qirhythm-service/service/models"
)

func TestCheckPalmShape_FallbackForEveryErrorKind(t *testing.T) {
	cases := []struct {
		name       string
		extractErr error
		wantReason models.CheckReason
	}{
		{"影像无法解码", ErrInvalidImage, models.CheckReasonLowQuality},
		{"影像超限", ErrFileTooLarge, models.CheckReasonLowQuality},
		{"分辨率不足", ErrLowResolution, models.CheckReasonLowQuality},
		{"掌相模糊", ErrBlurryPalm, models.CheckReasonLowQuality},
		{"不是手掌", ErrNotPalm, models.CheckReasonNotPalm},
		{"无错误但无摘要", nil, models.CheckReasonPartial},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := CheckPalmShape(nil, tc.extractErr, "zh", "")

			assert.False(t, result.OK)
			assert.True(t, result.FallbackApplied)
			assert.Equal(t, tc.wantReason, result.Reason)
			assert.Equal(t, models.CheckLevelNone, result.Level)
			assert.Equal(t, models.DefaultPalmFeatureSummary(), result.Result)
			assert.Len(t, result.Warnings, 1)
			assert.NotEmpty(t, result.Warnings[0])
			assert.Zero(t, result.Confidence)
		})
	}
}

func TestCheckTongueShape_FallbackForEveryErrorKind(t *testing.T) {
	cases := []struct {
		name       string
		extractErr error
		wantReason models.CheckReason
	}{
		{"舌相模糊", ErrBlurryTongue, models.CheckReasonLowQuality},
		{"不是舌头", ErrNotTongue, models.CheckReasonNotTongue},
		{"无错误但无摘要", nil, models.CheckReasonPartial},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := CheckTongueShape(nil, tc.extractErr, "zh", "")

			assert.False(t, result.OK)
			assert.True(t, result.FallbackApplied)
			assert.Equal(t, tc.wantReason, result.Reason)
			assert.Equal(t, models.DefaultTongueFeatureSummary(), result.Result)
			assert.Len(t, result.Warnings, 1)
		})
	}
}

func TestCheckPalmShape_PassThrough(t *testing.T) {
	summary := models.DefaultPalmFeatureSummary()
	summary.QualityScore = 50

	result := CheckPalmShape(&summary, nil, "zh", "")

	assert.True(t, result.OK)
	assert.False(t, result.FallbackApplied)
	assert.Equal(t, models.CheckLevelGood, result.Level)
	assert.Equal(t, summary, result.Result)
	assert.InDelta(t, 0.5, result.Confidence, 1e-9)
	assert.Empty(t, result.Warnings)
}

func TestCheckPalmShape_WeakLevel(t *testing.T) {
	summary := models.DefaultPalmFeatureSummary()
	summary.QualityScore = 20

	result := CheckPalmShape(&summary, nil, "zh", "")

	assert.True(t, result.OK)
	assert.Equal(t, models.CheckLevelWeak, result.Level)
}

func TestCheckPalmShape_StructureRescuesLowQuality(t *testing.T) {
	// 质量分低于下限，但线条结构非默认，仍视为可用
	summary := models.DefaultPalmFeatureSummary()
	summary.QualityScore = 5
	summary.Lines.Life = models.LifeLineDeep

	result := CheckPalmShape(&summary, nil, "zh", "")

	assert.True(t, result.OK)
	assert.Equal(t, models.CheckLevelWeak, result.Level)
}

func TestCheckTongueShape_LocaleAndOverride(t *testing.T) {
	zh := CheckTongueShape(nil, ErrNotTongue, "zh", "")
	en := CheckTongueShape(nil, ErrNotTongue, "en", "")
	assert.NotEqual(t, zh.Warnings[0], en.Warnings[0])

	custom := CheckTongueShape(nil, ErrNotTongue, "zh", "自定义告警")
	assert.Equal(t, []string{"自定义告警"}, custom.Warnings)
}
