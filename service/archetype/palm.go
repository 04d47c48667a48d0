/*
 * @module service/archetype/palm
 * @description 掌相原型引擎：各定性轴由特征子集独立推断后拼装
 * @architecture 规则引擎层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 特征摘要 -> 逐轴独立查表 -> 提示文案 -> 系统标签拼接 -> 掌相原型
 * @rules 任何轴不得读取其他轴的结论；系统标签按 生命线/感情线/智慧线/财运/掌色/纹理 顺序拼接
 * @dependencies qirhythm-service/service/models, qirhythm-service/service/meta
 * @refs service/qi/subscores.go
 */

package archetype

import (
	"fmt"

	"qirhythm-service/service/meta"
	"qirhythm-service/service/models"
)

// InferPalmArchetype 由掌相特征摘要推断掌相原型
// 纯函数，结果各轴必为封闭枚举成员
func InferPalmArchetype(summary models.PalmFeatureSummary, locale string) models.PalmArchetype {
	tags := make([]string, 0, 8)

	vitality := inferVitality(summary.Lines.Life)
	tags = append(tags, fmt.Sprintf("life_%s", summary.Lines.Life))

	emotion := inferEmotion(summary.Lines.Life, summary.Lines.Heart)
	tags = append(tags, fmt.Sprintf("heart_%s", summary.Lines.Heart))

	thinking := inferThinking(summary.Lines.Wisdom)
	tags = append(tags, fmt.Sprintf("wisdom_%s", summary.Lines.Wisdom))

	wealth := inferWealth(summary.Lines.Fate, summary.Lines.Money)
	tags = append(tags, fmt.Sprintf("wealth_%s_%s", summary.Lines.Fate, summary.Lines.Money))

	colorEntry := meta.PalmColorHints[summary.Color]
	tags = append(tags, colorEntry.Tag)

	textureEntry := meta.PalmTextureHints[summary.Texture]
	tags = append(tags, textureEntry.Tag)

	return models.PalmArchetype{
		Vitality:    vitality,
		Emotion:     emotion,
		Thinking:    thinking,
		Wealth:      wealth,
		ColorHint:   colorEntry.Hint.Pick(locale),
		TextureHint: textureEntry.Hint.Pick(locale),
		SystemTags:  tags,
	}
}

// inferVitality 生机轴：仅依赖生命线
func inferVitality(life models.LifeLineQuality) models.Vitality {
	if v, ok := meta.VitalityByLifeLine[life]; ok {
		return v
	}
	return models.VitalityMedium
}

// inferEmotion 情感轴：依赖感情线，含一条复合规则
// 生命线断续且感情线弯曲 -> 波动起伏
func inferEmotion(life models.LifeLineQuality, heart models.HeartLineQuality) models.EmotionPattern {
	if life == models.LifeLineBroken && heart == models.HeartLineCurved {
		return models.EmotionFluctuated
	}
	if v, ok := meta.EmotionByHeartLine[heart]; ok {
		return v
	}
	return models.EmotionSensitive
}

// inferThinking 思维轴：仅依赖智慧线
func inferThinking(wisdom models.WisdomLineQuality) models.ThinkingPattern {
	if v, ok := meta.ThinkingByWisdomLine[wisdom]; ok {
		return v
	}
	return models.ThinkingDivergent
}

// inferWealth 财运轴：事业线与财帛线的笛卡尔积查表
func inferWealth(fate models.FateLineQuality, money models.MoneyLineQuality) models.WealthTrend {
	if v, ok := meta.WealthByLines[meta.WealthKey{Fate: fate, Money: money}]; ok {
		return v
	}
	return models.WealthPlain
}
