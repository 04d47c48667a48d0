/*
 * @module service/qi/subscores
 * @description 四路子分值计算：掌相/舌相/梦境/黄历各自独立，向 50 回拉并钳制到安全区间
 * @architecture 评分引擎层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 特征/原型 -> 基准 50 -> 规则修正 -> 区间钳制 -> 子分值
 * @rules 每个子分值函数对缺失输入必须有中性输出，禁止抛错
 * @dependencies qirhythm-service/service/models, qirhythm-service/service/meta
 * @refs service/qi/qi_engine.go
 */

package qi

import (
	"qirhythm-service/service/archetype"
	"qirhythm-service/service/meta"
	"qirhythm-service/service/models"
)

const neutralScore = 50.0

// clampBand 把分值钳制到区间内
func clampBand(v float64, band meta.ClampBand) float64 {
	if v < band.Min {
		return band.Min
	}
	if v > band.Max {
		return band.Max
	}
	return v
}

// PalmSubScore 掌相子分值：长期基线，钳制 [45,60]
func PalmSubScore(summary models.PalmFeatureSummary) float64 {
	score := neutralScore
	adj := meta.PalmScoreAdjusts

	switch summary.Lines.Life {
	case models.LifeLineDeep:
		score += adj.LifeDeep
	case models.LifeLineBroken:
		score += adj.LifeBroken
	}
	if summary.Lines.Heart == models.HeartLineLong {
		score += adj.HeartLong
	}
	switch summary.Color {
	case models.PalmColorRed:
		score += adj.ColorRed
	case models.PalmColorDark:
		score += adj.ColorDark
	case models.PalmColorPale:
		score += adj.ColorPale
	}
	if summary.Texture == models.PalmTextureRough {
		score += adj.TextureRough
	}

	return clampBand(score, meta.PalmScoreBand)
}

// TongueSubScore 舌相子分值：短期信号，钳制 [10,90]
// 质量过低时分值向 50 回拉一半，弱证据不外推
func TongueSubScore(summary models.TongueFeatureSummary) float64 {
	score := neutralScore
	adj := meta.TongueScoreAdjusts

	switch summary.Color {
	case models.TongueColorRed:
		score += adj.ColorRed
	case models.TongueColorPale:
		score += adj.ColorPale
	case models.TongueColorPurple:
		score += adj.ColorPurple
	case models.TongueColorDark:
		score += adj.ColorDark
	}
	switch summary.Coating {
	case models.TongueCoatingYellow:
		score += adj.CoatingYellow
	case models.TongueCoatingNone:
		score += adj.CoatingNone
	case models.TongueCoatingThickWhite:
		score += adj.CoatingThickWhite
	}
	if summary.Texture == models.TongueTextureCracked {
		score += adj.TextureCracked
	}

	if summary.QualityScore < adj.LowQualityFloor {
		score = neutralScore + (score-neutralScore)/2
	}

	return clampBand(score, meta.TongueScoreBand)
}

// DreamSubScore 梦境子分值：短期信号，钳制 [10,90]
func DreamSubScore(dream models.DreamArchetype, hint archetype.EmotionHintKind) float64 {
	score := neutralScore
	if delta, ok := meta.DreamScoreDeltas[dream.DreamType]; ok {
		score += delta
	}

	switch hint {
	case archetype.EmotionHintCalm, archetype.EmotionHintExcited:
		score += meta.EmotionHintPositiveDelta
	case archetype.EmotionHintAnxious:
		score += meta.EmotionHintNegativeDelta
	}

	return clampBand(score, meta.DreamScoreBand)
}

// AlmanacSubScore 黄历子分值：钳制 [30,70]；零值输入返回中性 50
func AlmanacSubScore(info models.AlmanacInfo) float64 {
	score := neutralScore
	score += float64(len(info.Favorable)) * meta.AlmanacFavorableDelta
	score -= float64(len(info.Unfavorable)) * meta.AlmanacUnfavorableDelta
	if info.SolarTerm != "" {
		score += meta.AlmanacSolarTermBonus
	}
	return clampBand(score, meta.AlmanacScoreBand)
}

// ConstitutionDelta 体质微调：由掌相/舌相原型的强弱一致性派生，钳制 [-5,+5]
func ConstitutionDelta(palm models.PalmArchetype, tongue models.TongueArchetype) float64 {
	delta := 0.0

	switch palm.Vitality {
	case models.VitalityAbundant:
		delta += 3
	case models.VitalityAdjust:
		delta -= 3
	}

	switch tongue.QiStatus {
	case models.QiStatusBalanced:
		delta += 1
	case models.QiStatusDeficit, models.QiStatusStasis:
		delta -= 2
	}

	return clampBand(delta, meta.ConstitutionBand)
}
