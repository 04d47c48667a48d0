/*
 * @module service/models/shape_check
 * @description 形态校验结果模型，承载"永不失败"的降级封装
 * @architecture 数据模型层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 特征提取 -> 形态校验 -> 降级封装 -> 原型推断
 * @rules ok=false 时必须 fallback_applied=true 且 result 为固定默认摘要
 * @dependencies 无
 * @refs service/vision/gate.go
 */

package models

// CheckLevel 影像可用度等级
type CheckLevel string

const (
	CheckLevelNone CheckLevel = "none" // 不可用，已兜底
	CheckLevelWeak CheckLevel = "weak" // 勉强可用
	CheckLevelGood CheckLevel = "good" // 质量良好
)

// CheckReason 校验失败/降级原因码
type CheckReason string

const (
	CheckReasonNone       CheckReason = ""            // 正常通过
	CheckReasonNotPalm    CheckReason = "NOT_PALM"    // 不是手掌照片
	CheckReasonNotTongue  CheckReason = "NOT_TONGUE"  // 不是舌头照片
	CheckReasonLowQuality CheckReason = "LOW_QUALITY" // 影像质量不足
	CheckReasonPartial    CheckReason = "PARTIAL"     // 特征不完整
)

// ShapeCheckResult 形态校验结果
// 管线下游永远持有一个可用的特征摘要：要么是真实摘要，
// 要么是带明确降级标记的固定默认摘要
type ShapeCheckResult[T any] struct {
	Result          T           `json:"result"`
	OK              bool        `json:"ok"`
	Level           CheckLevel  `json:"level"`
	Reason          CheckReason `json:"reason,omitempty"`
	Confidence      float64     `json:"confidence"` // 0-1
	Warnings        []string    `json:"warnings"`
	FallbackApplied bool        `json:"fallback_applied"`
}
