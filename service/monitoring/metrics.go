/*
 * @module service/monitoring/metrics
 * @description 气律管线Prometheus指标：报告计数、提取失败、降级次数、分析耗时
 * @architecture 可观测层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 管线各阶段打点 -> /metrics 暴露
 * @rules 指标打点不得影响业务流程，标签基数保持有界（枚举值）
 * @dependencies github.com/prometheus/client_golang/prometheus
 * @refs main.go, service/report/report_service.go
 */

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReportsTotal 生成的气律报告计数，按标签分桶
	ReportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qi_reports_total",
		Help: "生成的气律报告总数",
	}, []string{"tag"})

	// ExtractionFailures 影像特征提取失败计数
	ExtractionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qi_extraction_failures_total",
		Help: "影像特征提取失败总数",
	}, []string{"subject", "reason"})

	// FallbacksTotal 形态校验降级计数
	FallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qi_fallbacks_total",
		Help: "形态校验降级总数",
	}, []string{"subject"})

	// NarrativeFallbacks 叙事服务落回模板计数
	NarrativeFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qi_narrative_fallback_total",
		Help: "外部叙事服务失败后落回模板叙事的总数",
	})

	// AnalyzeDuration 单次气律分析耗时
	AnalyzeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "qi_analyze_duration_seconds",
		Help:    "单次气律分析耗时（秒）",
		Buckets: prometheus.DefBuckets,
	})
)
