/*
 * @module service/meta/qi_meta
 * @description 气律聚合元数据：固定权重、子分值钳制区间、标签阈值表与趋势映射表
 * @architecture 元数据层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 静态元数据定义
 * @rules 阈值与权重为标定常量，表驱动查找，首个命中即返回，禁止重新推导
 * @dependencies qirhythm-service/service/models
 * @refs service/qi/qi_engine.go
 */

package meta

import "qirhythm-service/service/models"

// QiWeights 四路子分值固定权重，直接加权求和，不做归一化
var QiWeights = struct {
	Palm    float64
	Tongue  float64
	Dream   float64
	Almanac float64
}{
	Palm:    0.10,
	Tongue:  0.25,
	Dream:   0.40,
	Almanac: 0.20,
}

// ClampBand 子分值安全钳制区间
type ClampBand struct {
	Min float64
	Max float64
}

var (
	// PalmScoreBand 掌相子分值区间：长期基线，刻意低振幅
	PalmScoreBand = ClampBand{Min: 45, Max: 60}
	// TongueScoreBand 舌相子分值区间：短期信号，高振幅
	TongueScoreBand = ClampBand{Min: 10, Max: 90}
	// DreamScoreBand 梦境子分值区间：短期信号，高振幅
	DreamScoreBand = ClampBand{Min: 10, Max: 90}
	// AlmanacScoreBand 黄历子分值区间
	AlmanacScoreBand = ClampBand{Min: 30, Max: 70}
	// ConstitutionBand 体质微调区间
	ConstitutionBand = ClampBand{Min: -5, Max: 5}
)

// QiTagEntry 气律标签阈值表项
type QiTagEntry struct {
	MinIndex int           // 含下界
	Tag      models.QiTag
	Name     string
}

// QiTagTable 气律标签阈值表，按 MinIndex 降序排列，首个命中即返回
// 区间划分：[75,100] 升、[55,75) 稳、[36,55) 中、[0,36) 低
var QiTagTable = []QiTagEntry{
	{MinIndex: 75, Tag: models.QiTagRising, Name: "上升期"},
	{MinIndex: 55, Tag: models.QiTagSteady, Name: "平稳期"},
	{MinIndex: 36, Tag: models.QiTagNeutral, Name: "调整期"},
	{MinIndex: 0, Tag: models.QiTagLow, Name: "低谷期"},
}

// QiTrendTable 标签到趋势的一对一映射表
var QiTrendTable = map[models.QiTag]models.QiTrend{
	models.QiTagRising:  models.QiTrendUp,
	models.QiTagSteady:  models.QiTrendFlat,
	models.QiTagNeutral: models.QiTrendFlat,
	models.QiTagLow:     models.QiTrendDown,
}

// 子分值判定中点：叙事模板按子分值高于/低于中点选句
var (
	PalmScoreMidpoint    = 52.5
	TongueScoreMidpoint  = 50.0
	DreamScoreMidpoint   = 50.0
	AlmanacScoreMidpoint = 50.0
)

// PalmScoreAdjusts 掌相子分值修正表（基准 50）
var PalmScoreAdjusts = struct {
	LifeDeep, LifeBroken           float64
	HeartLong                      float64
	ColorRed, ColorDark, ColorPale float64
	TextureRough                   float64
}{
	LifeDeep:     6,
	LifeBroken:   -5,
	HeartLong:    3,
	ColorRed:     2,
	ColorDark:    -4,
	ColorPale:    -2,
	TextureRough: -2,
}

// TongueScoreAdjusts 舌相子分值修正表（基准 50）
var TongueScoreAdjusts = struct {
	ColorRed, ColorPale, ColorPurple, ColorDark   float64
	CoatingYellow, CoatingNone, CoatingThickWhite float64
	TextureCracked                                float64
	LowQualityFloor                               float64 // 质量低于该值时子分值向 50 回拉一半
}{
	ColorRed:          8,
	ColorPale:         -10,
	ColorPurple:       -12,
	ColorDark:         -8,
	CoatingYellow:     -8,
	CoatingNone:       -12,
	CoatingThickWhite: -6,
	TextureCracked:    -8,
	LowQualityFloor:   30,
}

// DreamScoreDeltas 梦境类型子分值增量表（基准 50）
var DreamScoreDeltas = map[models.DreamType]float64{
	models.DreamTypeFly:   18,
	models.DreamTypeWater: 8,
	models.DreamTypeHouse: 6,
	models.DreamTypeExam:  4,
	models.DreamTypeDeath: 2,
	models.DreamTypeOther: 0,
	models.DreamTypeNaked: -6,
	models.DreamTypeTeeth: -8,
	models.DreamTypeChase: -10,
	models.DreamTypeLost:  -10,
	models.DreamTypeFall:  -12,
}

// 情绪提示对梦境子分值的修正
const (
	EmotionHintPositiveDelta = 5
	EmotionHintNegativeDelta = -5
)

// 黄历子分值参数：基准 50，宜/忌每项 ±2，有节气 +3
const (
	AlmanacFavorableDelta   = 2
	AlmanacUnfavorableDelta = 2
	AlmanacSolarTermBonus   = 3
)
