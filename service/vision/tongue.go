/*
 * @module service/vision/tongue
 * @description 舌相特征提取器：合理性闸门、质量闸门与按序阈值分类
 * @architecture 视觉服务层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 规格化影像 -> 单遍统计 -> 合理性闸门 -> 质量闸门 -> 按序阈值分类 -> 特征摘要
 * @rules 阈值为标定常量即规格本身；舌相质量下限 18 低于掌相的 20，刻意保留
 * @dependencies qirhythm-service/service/models
 * @refs service/archetype/tongue.go, service/vision/gate.go
 */

package vision

import (
	"log/slog"

	"qirhythm-service/service/models"
)

const (
	// tongueWorkingSize 舌相工作分辨率（最长边）
	tongueWorkingSize = 256
	// tongueQualityFloor 舌相质量评分下限，低于即判 BLURRY_TONGUE
	tongueQualityFloor = 18.0
	// 舌相合理性闸门下限
	tongueMinWarmYellowRatio = 0.20
	tongueMinPurpleRatio     = 0.08
)

// tongueColorRule 舌色按序判定规则
type tongueColorRule struct {
	Match func(s *pixelStats) bool
	Color models.TongueColor
}

// tongueColorRules 舌色判定表，首个命中即返回，末项为无条件兜底
var tongueColorRules = []tongueColorRule{
	{Match: func(s *pixelStats) bool { return s.purpleRatio() > 0.12 }, Color: models.TongueColorPurple},
	{Match: func(s *pixelStats) bool { return s.shadowRatio() > 0.30 }, Color: models.TongueColorDark},
	{Match: func(s *pixelStats) bool { return s.redRatio() > 0.45 }, Color: models.TongueColorRed},
	{Match: func(s *pixelStats) bool { return s.warmRatio() > 0.50 }, Color: models.TongueColorPink},
	{Match: func(s *pixelStats) bool { return true }, Color: models.TongueColorPale},
}

// tongueCoatingRule 舌苔按序判定规则
type tongueCoatingRule struct {
	Match   func(s *pixelStats) bool
	Coating models.TongueCoating
}

// tongueCoatingRules 舌苔判定表
var tongueCoatingRules = []tongueCoatingRule{
	{Match: func(s *pixelStats) bool { return s.yellowRatio() > 0.18 }, Coating: models.TongueCoatingYellow},
	{Match: func(s *pixelStats) bool { return s.paleRatio() > 0.35 }, Coating: models.TongueCoatingThickWhite},
	{Match: func(s *pixelStats) bool { return s.paleRatio() > 0.12 }, Coating: models.TongueCoatingThinWhite},
	{Match: func(s *pixelStats) bool { return true }, Coating: models.TongueCoatingNone},
}

// 舌质纹理：平均梯度区间
var tongueTextureRanges = []gradientRange{
	{Min: 30, Result: string(models.TongueTextureCracked)},
	{Min: 12, Result: string(models.TongueTextureNormal)},
	{Min: 0, Result: string(models.TongueTextureSmooth)},
}

// ExtractTongueFeatures 从原始字节提取舌相特征摘要
// 纯函数：同一字节输入产出完全一致的分类结果
func ExtractTongueFeatures(data []byte, mimeType string) (*models.TongueFeatureSummary, error) {
	img, srcW, srcH, err := prepareWorkingImage(data, mimeType, tongueWorkingSize)
	if err != nil {
		return nil, err
	}

	stats := accumulatePixelStats(img)

	// 合理性闸门：暖色+黄色带或紫色带必须达标
	if stats.warmRatio()+stats.yellowRatio() < tongueMinWarmYellowRatio &&
		stats.purpleRatio() < tongueMinPurpleRatio {
		return nil, ErrNotTongue
	}

	quality := stats.qualityScore()
	if quality < tongueQualityFloor {
		return nil, ErrBlurryTongue
	}

	summary := &models.TongueFeatureSummary{
		Color:        classifyTongueColor(stats),
		Coating:      classifyTongueCoating(stats),
		Texture:      models.TongueTexture(matchRange(tongueTextureRanges, stats.meanGradient())),
		QualityScore: quality,
	}

	slog.Debug("舌相特征提取完成",
		"source_width", srcW,
		"source_height", srcH,
		"color", summary.Color,
		"coating", summary.Coating,
		"quality_score", summary.QualityScore)

	return summary, nil
}

func classifyTongueColor(stats *pixelStats) models.TongueColor {
	for _, rule := range tongueColorRules {
		if rule.Match(stats) {
			return rule.Color
		}
	}
	return models.TongueColorPink
}

func classifyTongueCoating(stats *pixelStats) models.TongueCoating {
	for _, rule := range tongueCoatingRules {
		if rule.Match(stats) {
			return rule.Coating
		}
	}
	return models.TongueCoatingThinWhite
}
