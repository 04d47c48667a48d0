/*
 * @module service/meta/archetype_meta
 * @description 原型推断元数据：掌相/舌相各轴的判定映射表、提示文案与系统标签
 * @architecture 元数据层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 静态元数据定义
 * @rules 各轴映射表覆盖全部枚举成员，保证推断结果永不缺轴
 * @dependencies qirhythm-service/service/models
 * @refs service/archetype/palm.go, service/archetype/tongue.go
 */

package meta

import "qirhythm-service/service/models"

// VitalityByLifeLine 生机轴：由生命线形态独立判定
var VitalityByLifeLine = map[models.LifeLineQuality]models.Vitality{
	models.LifeLineDeep:    models.VitalityAbundant,
	models.LifeLineShallow: models.VitalityMedium,
	models.LifeLineBroken:  models.VitalityAdjust,
}

// EmotionByHeartLine 情感轴：由感情线形态独立判定
// 复合规则（生命线断续且感情线弯曲 -> 波动起伏）由引擎在查表后套用
var EmotionByHeartLine = map[models.HeartLineQuality]models.EmotionPattern{
	models.HeartLineLong:   models.EmotionDirect,
	models.HeartLineShort:  models.EmotionReserved,
	models.HeartLineCurved: models.EmotionSensitive,
}

// ThinkingByWisdomLine 思维轴：由智慧线形态独立判定
var ThinkingByWisdomLine = map[models.WisdomLineQuality]models.ThinkingPattern{
	models.WisdomLineStraight: models.ThinkingFocused,
	models.WisdomLineWavy:     models.ThinkingDivergent,
	models.WisdomLineBroken:   models.ThinkingFlexible,
}

// WealthKey 财运轴查表键：事业线 × 财帛线 笛卡尔积
type WealthKey struct {
	Fate  models.FateLineQuality
	Money models.MoneyLineQuality
}

// WealthByLines 财运轴映射表，覆盖全部 3x3 组合
var WealthByLines = map[WealthKey]models.WealthTrend{
	{models.FateLineDeep, models.MoneyLineClear}:     models.WealthSteady,
	{models.FateLineDeep, models.MoneyLineFaint}:     models.WealthLater,
	{models.FateLineDeep, models.MoneyLineAbsent}:    models.WealthLater,
	{models.FateLineShallow, models.MoneyLineClear}:  models.WealthOpportunity,
	{models.FateLineShallow, models.MoneyLineFaint}:  models.WealthPlain,
	{models.FateLineShallow, models.MoneyLineAbsent}: models.WealthPlain,
	{models.FateLineAbsent, models.MoneyLineClear}:   models.WealthOpportunity,
	{models.FateLineAbsent, models.MoneyLineFaint}:   models.WealthPlain,
	{models.FateLineAbsent, models.MoneyLineAbsent}:  models.WealthPlain,
}

// PalmColorHintEntry 掌色提示文案与标签
type PalmColorHintEntry struct {
	Hint LocalizedText
	Tag  string
}

// PalmColorHints 掌色信号文案表，附加于各线条轴之外
var PalmColorHints = map[models.PalmColor]PalmColorHintEntry{
	models.PalmColorPink: {
		Hint: LocalizedText{Zh: "掌色红润，气血循环顺畅", En: "A rosy palm tone suggests smooth circulation"},
		Tag:  "palm_color_pink",
	},
	models.PalmColorRed: {
		Hint: LocalizedText{Zh: "掌色偏红，近期状态偏亢，注意节奏", En: "A reddish palm hints at an overdriven stretch; pace yourself"},
		Tag:  "palm_color_red",
	},
	models.PalmColorPale: {
		Hint: LocalizedText{Zh: "掌色偏白，能量储备略低，宜温补休整", En: "A pale palm points to lower reserves; rest and replenish"},
		Tag:  "palm_color_pale",
	},
	models.PalmColorDark: {
		Hint: LocalizedText{Zh: "掌色偏暗，循环偏滞，多活动舒展", En: "A darker palm suggests sluggish flow; move and stretch more"},
		Tag:  "palm_color_dark",
	},
}

// PalmTextureHints 掌面纹理提示文案表
var PalmTextureHints = map[models.PalmTexture]PalmColorHintEntry{
	models.PalmTextureSmooth: {
		Hint: LocalizedText{Zh: "掌面细腻，状态调和", En: "A fine palm surface reads as balanced"},
		Tag:  "palm_texture_smooth",
	},
	models.PalmTextureNormal: {
		Hint: LocalizedText{Zh: "掌面纹理正常", En: "Palm texture is ordinary"},
		Tag:  "palm_texture_normal",
	},
	models.PalmTextureRough: {
		Hint: LocalizedText{Zh: "掌面偏粗糙，近期消耗偏大", En: "A rough palm surface hints at recent wear"},
		Tag:  "palm_texture_rough",
	},
}

// QiStatusByTongueColor 气血轴：由舌色独立判定
var QiStatusByTongueColor = map[models.TongueColor]models.QiStatus{
	models.TongueColorPink:   models.QiStatusBalanced,
	models.TongueColorRed:    models.QiStatusHeat,
	models.TongueColorPale:   models.QiStatusDeficit,
	models.TongueColorPurple: models.QiStatusStasis,
	models.TongueColorDark:   models.QiStatusColdDamp,
}

// TongueCoatingHintEntry 舌苔提示文案与标签
type TongueCoatingHintEntry struct {
	Hint LocalizedText
	Tag  string
}

// TongueCoatingHints 舌苔提示文案表
var TongueCoatingHints = map[models.TongueCoating]TongueCoatingHintEntry{
	models.TongueCoatingThinWhite: {
		Hint: LocalizedText{Zh: "薄白苔，属平和之象", En: "A thin white coating is a balanced sign"},
		Tag:  "coating_thin_white",
	},
	models.TongueCoatingThickWhite: {
		Hint: LocalizedText{Zh: "苔偏厚，脾胃运化偏缓，饮食宜清淡", En: "A thick coating suggests slower digestion; eat light"},
		Tag:  "coating_thick_white",
	},
	models.TongueCoatingYellow: {
		Hint: LocalizedText{Zh: "苔色偏黄，内有郁热，少辛辣油腻", En: "A yellow coating points to inner heat; cut spicy and greasy food"},
		Tag:  "coating_yellow",
	},
	models.TongueCoatingNone: {
		Hint: LocalizedText{Zh: "少苔，阴液偏亏，注意补水与睡眠", En: "Scant coating hints at fluid deficit; hydrate and sleep"},
		Tag:  "coating_none",
	},
}

// TongueTextureHints 舌质提示文案表
var TongueTextureHints = map[models.TongueTexture]TongueCoatingHintEntry{
	models.TongueTextureSmooth: {
		Hint: LocalizedText{Zh: "舌面光润", En: "The tongue body looks moist and even"},
		Tag:  "tongue_smooth",
	},
	models.TongueTextureNormal: {
		Hint: LocalizedText{Zh: "舌质正常", En: "Tongue texture is ordinary"},
		Tag:  "tongue_normal",
	},
	models.TongueTextureCracked: {
		Hint: LocalizedText{Zh: "舌面有裂纹，津液不足，宜滋养", En: "Cracks on the tongue suggest dryness; nourish fluids"},
		Tag:  "tongue_cracked",
	},
}

// TongueTrendBase 舌相趋势基调：按气血状态（即舌色轴）给出短期走向
var TongueTrendBase = map[models.QiStatus]LocalizedText{
	models.QiStatusBalanced: {Zh: "短期气机平顺", En: "Short-term qi runs even"},
	models.QiStatusHeat:     {Zh: "短期偏亢，宜降火缓行", En: "Running hot short-term; cool down and slow up"},
	models.QiStatusDeficit:  {Zh: "短期偏虚，宜养不宜耗", En: "Running low short-term; restore, don't spend"},
	models.QiStatusStasis:   {Zh: "短期气机郁滞，宜活动疏通", En: "Flow is congested; movement will loosen it"},
	models.QiStatusColdDamp: {Zh: "短期寒湿偏重，宜温运少寒凉", En: "Cold-damp leans heavy; keep warm, avoid cold food"},
}

// TongueTrendCoatingMods 舌苔对趋势提示的修饰，薄白苔为平和之象不加修饰
var TongueTrendCoatingMods = map[models.TongueCoating]LocalizedText{
	models.TongueCoatingThickWhite: {Zh: "；苔厚提示运化偏缓，恢复会慢一拍", En: "; the thick coating says recovery runs a beat slow"},
	models.TongueCoatingYellow:     {Zh: "；苔黄提示郁热未清，波动或偏急", En: "; the yellow coating says lingering heat may sharpen swings"},
	models.TongueCoatingNone:       {Zh: "；少苔提示津液偏亏，后劲不足", En: "; scant coating says fluid reserves trail behind"},
}
