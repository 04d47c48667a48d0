/*
 * @module service/models/report
 * @description 气律报告持久化模型与请求/响应结构
 * @architecture 数据模型层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 请求解析 -> 管线分析 -> 报告落库 -> 查询返回
 * @rules 报告一经生成不可变，Payload 以 JSONB 存储完整嵌套结果
 * @dependencies gorm.io/gorm, github.com/google/uuid
 * @refs service/report/, api/controllers/report_controller.go
 */

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImageUpload 上传影像载体
type ImageUpload struct {
	Data     []byte `json:"-"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

// AnalyzeRequest 气律分析请求
type AnalyzeRequest struct {
	PalmImage   *ImageUpload `json:"palm_image,omitempty"`
	TongueImage *ImageUpload `json:"tongue_image,omitempty"`
	DreamText   string       `json:"dream_text,omitempty"`
	EmotionHint string       `json:"emotion_hint,omitempty"`
	Locale      string       `json:"locale"` // zh|en
	Date        time.Time    `json:"date"`
}

// AnalyzeResponse 气律分析响应
// 所有字段均为可序列化的原始/枚举字符串结构
type AnalyzeResponse struct {
	ReportID   string                                 `json:"report_id"`
	Qi         QiRhythmResult                         `json:"qi"`
	Palm       PalmArchetype                          `json:"palm"`
	Tongue     TongueArchetype                        `json:"tongue"`
	Dream      DreamArchetype                         `json:"dream"`
	Almanac    AlmanacInfo                            `json:"almanac"`
	PalmGate   ShapeCheckResult[PalmFeatureSummary]   `json:"palm_gate"`
	TongueGate ShapeCheckResult[TongueFeatureSummary] `json:"tongue_gate"`
}

// QiReport 气律报告持久化模型
type QiReport struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	Locale    string    `gorm:"type:varchar(8);not null" json:"locale"`
	Index     int       `gorm:"not null" json:"index"`
	Tag       string    `gorm:"type:varchar(8);not null;index" json:"tag"`
	Trend     string    `gorm:"type:varchar(8);not null" json:"trend"`
	Payload   JSONB     `gorm:"type:jsonb" json:"payload"` // 完整 AnalyzeResponse
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (QiReport) TableName() string {
	return "qi_reports"
}

// BeforeCreate 创建前钩子
func (r *QiReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
