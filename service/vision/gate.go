/*
 * @module service/vision/gate
 * @description 形态校验/降级闸门：把任何提取失败转化为带标记的固定默认摘要，保证管线永不中断
 * @architecture 视觉服务层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 提取结果(或错误) -> 置信度判定 -> 通过/降级 -> 形态校验结果
 * @rules 本闸门永不返回错误；ok=false 必然伴随 fallback_applied=true 与非空告警
 * @dependencies qirhythm-service/service/models, qirhythm-service/service/meta
 * @refs service/report/report_service.go
 */

package vision

import (
	"errors"
	"log/slog"

	"qirhythm-service/service/meta"
	"qirhythm-service/service/models"
)

const (
	// gateQualityFloor 形态校验最低置信质量分
	gateQualityFloor = 15.0
	// gateGoodFloor 判定 good 等级的质量分下限
	gateGoodFloor = 40.0
)

// classifyReason 把提取错误映射为降级原因码
func classifyReason(extractErr error) models.CheckReason {
	switch {
	case extractErr == nil:
		return models.CheckReasonPartial
	case errors.Is(extractErr, ErrNotPalm):
		return models.CheckReasonNotPalm
	case errors.Is(extractErr, ErrNotTongue):
		return models.CheckReasonNotTongue
	default:
		// INVALID_IMAGE / FILE_TOO_LARGE / LOW_RESOLUTION / BLURRY_* 一律按质量不足降级
		return models.CheckReasonLowQuality
	}
}

// CheckPalmShape 掌相形态校验
// summary 为提取结果（提取失败时传 nil 与对应错误）；overrideWarning 非空时替换目录文案
func CheckPalmShape(summary *models.PalmFeatureSummary, extractErr error, locale, overrideWarning string) models.ShapeCheckResult[models.PalmFeatureSummary] {
	if summary != nil && (summary.QualityScore >= gateQualityFloor || summary.HasLineStructure()) {
		return models.ShapeCheckResult[models.PalmFeatureSummary]{
			Result:     *summary,
			OK:         true,
			Level:      palmLevel(summary),
			Confidence: summary.QualityScore / 100,
			Warnings:   []string{},
		}
	}

	reason := classifyReason(extractErr)
	warning := overrideWarning
	if warning == "" {
		warning = meta.FallbackWarning(meta.SubjectPalm, reason, locale)
	}

	slog.Info("掌相形态校验降级",
		"reason", reason,
		"extract_error", errString(extractErr))

	return models.ShapeCheckResult[models.PalmFeatureSummary]{
		Result:          models.DefaultPalmFeatureSummary(),
		OK:              false,
		Level:           models.CheckLevelNone,
		Reason:          reason,
		Confidence:      0,
		Warnings:        []string{warning},
		FallbackApplied: true,
	}
}

// CheckTongueShape 舌相形态校验
func CheckTongueShape(summary *models.TongueFeatureSummary, extractErr error, locale, overrideWarning string) models.ShapeCheckResult[models.TongueFeatureSummary] {
	if summary != nil && (summary.QualityScore >= gateQualityFloor || summary.HasStructure()) {
		return models.ShapeCheckResult[models.TongueFeatureSummary]{
			Result:     *summary,
			OK:         true,
			Level:      tongueLevel(summary),
			Confidence: summary.QualityScore / 100,
			Warnings:   []string{},
		}
	}

	reason := classifyReason(extractErr)
	warning := overrideWarning
	if warning == "" {
		warning = meta.FallbackWarning(meta.SubjectTongue, reason, locale)
	}

	slog.Info("舌相形态校验降级",
		"reason", reason,
		"extract_error", errString(extractErr))

	return models.ShapeCheckResult[models.TongueFeatureSummary]{
		Result:          models.DefaultTongueFeatureSummary(),
		OK:              false,
		Level:           models.CheckLevelNone,
		Reason:          reason,
		Confidence:      0,
		Warnings:        []string{warning},
		FallbackApplied: true,
	}
}

// palmLevel 两档质量分级：good >= 40，weak >= 15 或有线条结构
func palmLevel(summary *models.PalmFeatureSummary) models.CheckLevel {
	if summary.QualityScore >= gateGoodFloor {
		return models.CheckLevelGood
	}
	return models.CheckLevelWeak
}

func tongueLevel(summary *models.TongueFeatureSummary) models.CheckLevel {
	if summary.QualityScore >= gateGoodFloor {
		return models.CheckLevelGood
	}
	return models.CheckLevelWeak
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
