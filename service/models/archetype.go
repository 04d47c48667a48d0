/*
 * @module service/models/archetype
 * @description 原型模型，定义掌相/舌相/梦境三类定性原型记录
 * @architecture 数据模型层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 特征摘要 -> 规则推断 -> 原型记录 -> 子分值计算
 * @rules 原型各轴字段必须取封闭枚举成员，system_tags 仅追加、仅供埋点分析
 * @dependencies 无
 * @refs service/archetype/, service/qi/
 */

package models

// Vitality 生机轴（掌相）
type Vitality string

const (
	VitalityAbundant Vitality = "充沛"
	VitalityMedium   Vitality = "中等"
	VitalityWeak     Vitality = "偏弱"
	VitalityAdjust   Vitality = "阶段调整"
)

// EmotionPattern 情感模式轴（掌相）
type EmotionPattern string

const (
	EmotionSensitive  EmotionPattern = "细腻敏感"
	EmotionDirect     EmotionPattern = "直接外放"
	EmotionReserved   EmotionPattern = "温和内敛"
	EmotionFluctuated EmotionPattern = "波动起伏"
)

// ThinkingPattern 思维模式轴（掌相）
type ThinkingPattern string

const (
	ThinkingFocused   ThinkingPattern = "专注理性"
	ThinkingDivergent ThinkingPattern = "跳跃发散"
	ThinkingFlexible  ThinkingPattern = "灵活多变"
)

// WealthTrend 财运走向轴（掌相）
type WealthTrend string

const (
	WealthSteady      WealthTrend = "稳步积累"
	WealthLater       WealthTrend = "先蓄后发"
	WealthOpportunity WealthTrend = "机会型起伏"
	WealthPlain       WealthTrend = "平稳过渡"
)

// PalmArchetype 掌相原型
// 各轴由特征摘要的不相交子集独立推断，互不读取对方结论
type PalmArchetype struct {
	Vitality    Vitality        `json:"vitality"`
	Emotion     EmotionPattern  `json:"emotion"`
	Thinking    ThinkingPattern `json:"thinking"`
	Wealth      WealthTrend     `json:"wealth"`
	ColorHint   string          `json:"color_hint"`
	TextureHint string          `json:"texture_hint"`
	SystemTags  []string        `json:"system_tags"`
}

// QiStatus 气血状态轴（舌相）
type QiStatus string

const (
	QiStatusBalanced QiStatus = "气血平和"
	QiStatusHeat     QiStatus = "内热偏盛"
	QiStatusDeficit  QiStatus = "气血偏虚"
	QiStatusStasis   QiStatus = "气滞血瘀"
	QiStatusColdDamp QiStatus = "寒湿偏重"
)

// TongueArchetype 舌相原型
type TongueArchetype struct {
	QiStatus    QiStatus `json:"qi_status"`
	CoatingHint string   `json:"coating_hint"`
	BodyHint    string   `json:"body_hint"`
	TrendHint   string   `json:"trend_hint"`
	SystemTags  []string `json:"system_tags"`
}

// DreamType 梦境类型（封闭集合）
type DreamType string

const (
	DreamTypeChase DreamType = "chase"
	DreamTypeFall  DreamType = "fall"
	DreamTypeExam  DreamType = "exam"
	DreamTypeTeeth DreamType = "teeth"
	DreamTypeFly   DreamType = "fly"
	DreamTypeNaked DreamType = "naked"
	DreamTypeDeath DreamType = "death"
	DreamTypeLost  DreamType = "lost"
	DreamTypeWater DreamType = "water"
	DreamTypeHouse DreamType = "house"
	DreamTypeOther DreamType = "other"
)

// MoodPattern 情绪模式轴（梦境）
type MoodPattern string

const (
	MoodCalm     MoodPattern = "平稳"
	MoodPressure MoodPattern = "压力积聚"
	MoodRelease  MoodPattern = "释放疏解"
	MoodAnxious  MoodPattern = "焦虑不安"
	MoodUplift   MoodPattern = "振奋上扬"
)

// DreamArchetype 梦境原型
type DreamArchetype struct {
	DreamType   DreamType   `json:"dream_type"`
	Meaning     string      `json:"meaning"`
	Mood        MoodPattern `json:"mood"`
	TrendHint   string      `json:"trend_hint"`
	Suggestions []string    `json:"suggestions"`
	SystemTags  []string    `json:"system_tags"`
}
