/*
 * @module service/vision/palm
 * @description 掌相特征提取器：合理性闸门、质量闸门与按序阈值分类
 * @architecture 视觉服务层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 规格化影像 -> 单遍统计 -> 合理性闸门 -> 质量闸门 -> 按序阈值分类 -> 特征摘要
 * @rules 阈值为标定常量即规格本身；分类表按序首个命中即返回，兜底为中性成员
 * @dependencies qirhythm-service/service/models
 * @refs service/archetype/palm.go, service/vision/gate.go
 */

package vision

import (
	"log/slog"

	"qirhythm-service/service/models"
)

const (
	// palmWorkingSize 掌相工作分辨率（最长边）
	palmWorkingSize = 320
	// palmQualityFloor 掌相质量评分下限，低于即判 BLURRY_PALM
	palmQualityFloor = 20.0
	// 掌相合理性闸门下限
	palmMinRedRatio   = 0.05
	palmMinSaturation = 0.08
)

// palmColorRule 掌色按序判定规则
type palmColorRule struct {
	Match func(s *pixelStats) bool
	Color models.PalmColor
}

// palmColorRules 掌色判定表，首个命中即返回，末项为无条件兜底
var palmColorRules = []palmColorRule{
	{Match: func(s *pixelStats) bool { return s.shadowRatio() > 0.25 }, Color: models.PalmColorDark},
	{Match: func(s *pixelStats) bool { return s.redRatio() > 0.38 }, Color: models.PalmColorRed},
	{Match: func(s *pixelStats) bool { return s.warmRatio() > 0.50 }, Color: models.PalmColorPink},
	{Match: func(s *pixelStats) bool { return true }, Color: models.PalmColorPale},
}

// gradientRange 按序梯度区间规则：首个满足 Min 下限的命中
type gradientRange struct {
	Min    float64
	Result string
}

var (
	// 掌面纹理：平均梯度越高纹理越粗
	palmTextureRanges = []gradientRange{
		{Min: 32, Result: string(models.PalmTextureRough)},
		{Min: 18, Result: string(models.PalmTextureNormal)},
		{Min: 0, Result: string(models.PalmTextureSmooth)},
	}
	// 生命线：强边缘占比
	lifeLineRanges = []gradientRange{
		{Min: 0.16, Result: string(models.LifeLineDeep)},
		{Min: 0.07, Result: string(models.LifeLineShallow)},
		{Min: 0, Result: string(models.LifeLineBroken)},
	}
	// 感情线：上行带平均梯度
	heartLineRanges = []gradientRange{
		{Min: 30, Result: string(models.HeartLineLong)},
		{Min: 18, Result: string(models.HeartLineCurved)},
		{Min: 0, Result: string(models.HeartLineShort)},
	}
	// 智慧线：中行带平均梯度
	wisdomLineRanges = []gradientRange{
		{Min: 28, Result: string(models.WisdomLineStraight)},
		{Min: 15, Result: string(models.WisdomLineWavy)},
		{Min: 0, Result: string(models.WisdomLineBroken)},
	}
	// 事业线：中列带平均梯度
	fateLineRanges = []gradientRange{
		{Min: 25, Result: string(models.FateLineDeep)},
		{Min: 12, Result: string(models.FateLineShallow)},
		{Min: 0, Result: string(models.FateLineAbsent)},
	}
	// 财帛线：右列带平均梯度
	moneyLineRanges = []gradientRange{
		{Min: 22, Result: string(models.MoneyLineClear)},
		{Min: 10, Result: string(models.MoneyLineFaint)},
		{Min: 0, Result: string(models.MoneyLineAbsent)},
	}
)

// matchRange 在按序区间表中返回首个命中的结果
func matchRange(ranges []gradientRange, value float64) string {
	for _, r := range ranges {
		if value >= r.Min {
			return r.Result
		}
	}
	return ranges[len(ranges)-1].Result
}

// ExtractPalmFeatures 从原始字节提取掌相特征摘要
// 纯函数：同一字节输入产出完全一致的分类结果
func ExtractPalmFeatures(data []byte, mimeType string) (*models.PalmFeatureSummary, error) {
	img, srcW, srcH, err := prepareWorkingImage(data, mimeType, palmWorkingSize)
	if err != nil {
		return nil, err
	}

	stats := accumulatePixelStats(img)

	// 合理性闸门：硬失败，与软质量闸门相互独立
	if stats.redRatio() < palmMinRedRatio || stats.meanSaturation() < palmMinSaturation {
		return nil, ErrNotPalm
	}

	quality := stats.qualityScore()
	if quality < palmQualityFloor {
		return nil, ErrBlurryPalm
	}

	summary := &models.PalmFeatureSummary{
		Color:   classifyPalmColor(stats),
		Texture: models.PalmTexture(matchRange(palmTextureRanges, stats.meanGradient())),
		Lines: models.PalmLines{
			Life:   models.LifeLineQuality(matchRange(lifeLineRanges, stats.strongEdgeRatio())),
			Heart:  models.HeartLineQuality(matchRange(heartLineRanges, stats.rowBandMeanGradient(0))),
			Wisdom: models.WisdomLineQuality(matchRange(wisdomLineRanges, stats.rowBandMeanGradient(1))),
			Fate:   models.FateLineQuality(matchRange(fateLineRanges, stats.colBandMeanGradient(1))),
			Money:  models.MoneyLineQuality(matchRange(moneyLineRanges, stats.colBandMeanGradient(2))),
		},
		QualityScore: quality,
	}

	slog.Debug("掌相特征提取完成",
		"source_width", srcW,
		"source_height", srcH,
		"color", summary.Color,
		"quality_score", summary.QualityScore)

	return summary, nil
}

// classifyPalmColor 按序阈值表判定掌色
func classifyPalmColor(stats *pixelStats) models.PalmColor {
	for _, rule := range palmColorRules {
		if rule.Match(stats) {
			return rule.Color
		}
	}
	return models.PalmColorPink
}
