/*
 * @module service/analytics/kafka_emitter
 * @description 埋点事件发射器：把报告系统标签异步写入Kafka，供离线分析消费
 * @architecture 适配器模式 - 封装Kafka生产者
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 报告生成 -> 事件组装 -> 异步写入 -> 失败仅记日志
 * @rules 埋点为尽力而为：写入失败不得影响报告返回；未配置broker时发射器为空操作
 * @dependencies github.com/segmentio/kafka-go, encoding/json
 * @refs service/report/report_service.go
 */

package analytics

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

const defaultTopic = "qi-report-events"

// ReportEvent 报告埋点事件
type ReportEvent struct {
	ReportID   string    `json:"report_id"`
	Index      int       `json:"index"`
	Tag        string    `json:"tag"`
	SystemTags []string  `json:"system_tags"`
	Timestamp  time.Time `json:"timestamp"`
}

// Emitter 埋点事件发射器
type Emitter struct {
	writer *kafka.Writer
}

// NewEmitter 从环境变量 KAFKA_BROKERS 创建发射器
// 未配置时返回空操作发射器
func NewEmitter() *Emitter {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return &Emitter{}
	}

	topic := os.Getenv("KAFKA_REPORT_TOPIC")
	if topic == "" {
		topic = defaultTopic
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(brokers, ",")...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		Async:        true,
		BatchTimeout: 100 * time.Millisecond,
	}
	slog.Info("Kafka埋点发射器已启用", "brokers", brokers, "topic", topic)

	return &Emitter{writer: writer}
}

// Emit 异步发送报告事件，失败只记录日志
func (e *Emitter) Emit(ctx context.Context, event ReportEvent) {
	if e.writer == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		slog.Warn("埋点事件序列化失败", "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ReportID),
		Value: payload,
	}
	if err := e.writer.WriteMessages(ctx, msg); err != nil {
		slog.Warn("埋点事件写入失败", "error", err)
	}
}

// Close 关闭底层生产者
func (e *Emitter) Close() error {
	if e.writer == nil {
		return nil
	}
	return e.writer.Close()
}
