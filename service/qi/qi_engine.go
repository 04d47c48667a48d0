/*
 * @module service/qi/qi_engine
 * @description 气律聚合引擎：固定权重汇总四路子分值，查表解析标签与趋势，组装叙事
 * @architecture 评分引擎层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 子分值 -> 加权求和 -> 体质微调 -> 指数钳制 -> 标签/趋势查表 -> 叙事组装
 * @rules 引擎无状态、每请求一次调用；任何一步不得把错误抛出引擎边界
 * @dependencies qirhythm-service/service/models, qirhythm-service/service/meta
 * @refs service/report/report_service.go
 */

package qi

import (
	"context"
	"log/slog"
	"math"

	"qirhythm-service/service/archetype"
	"qirhythm-service/service/meta"
	"qirhythm-service/service/models"
	"qirhythm-service/service/monitoring"
)

// AggregateInput 聚合引擎输入
type AggregateInput struct {
	Palm        models.PalmFeatureSummary
	Tongue      models.TongueFeatureSummary
	PalmArch    models.PalmArchetype
	TongueArch  models.TongueArchetype
	Dream       models.DreamArchetype
	EmotionHint archetype.EmotionHintKind
	Almanac     models.AlmanacInfo
	Locale      string
}

// Engine 气律聚合引擎
// narrative 为可选外部叙事服务；composer 为必备的确定性模板兜底
type Engine struct {
	narrative NarrativeService
	composer  *TemplateComposer
}

// NewEngine 创建聚合引擎，narrative 可为 nil（直接走模板兜底）
func NewEngine(narrative NarrativeService) *Engine {
	return &Engine{
		narrative: narrative,
		composer:  NewTemplateComposer(),
	}
}

// Aggregate 执行一次完整聚合，永不返回错误
func (e *Engine) Aggregate(ctx context.Context, input AggregateInput) models.QiRhythmResult {
	components := models.QiComponentsBreakdown{
		Palm:    PalmSubScore(input.Palm),
		Tongue:  TongueSubScore(input.Tongue),
		Dream:   DreamSubScore(input.Dream, input.EmotionHint),
		Almanac: AlmanacSubScore(input.Almanac),
	}
	components.Constitution = ConstitutionDelta(input.PalmArch, input.TongueArch)

	index := ResolveIndex(components)
	tag := ResolveTag(index)
	trend := ResolveTrend(tag)

	narrative := e.resolveNarrative(ctx, input, components, index, tag)

	return models.QiRhythmResult{
		Index:      index,
		Tag:        tag,
		Trend:      trend,
		Summary:    narrative.Summary,
		TrendText:  meta.TrendTexts[tag].Pick(input.Locale),
		Advice:     narrative.Advice,
		Components: components,
	}
}

// ResolveIndex 固定权重加权求和，加体质微调后取整并钳制 [0,100]
func ResolveIndex(c models.QiComponentsBreakdown) int {
	w := meta.QiWeights
	sum := w.Palm*c.Palm + w.Tongue*c.Tongue + w.Dream*c.Dream + w.Almanac*c.Almanac + c.Constitution
	index := int(math.Round(sum))
	if index < 0 {
		return 0
	}
	if index > 100 {
		return 100
	}
	return index
}

// ResolveTag 标签阈值表查找，表按下限降序，首个命中即返回
func ResolveTag(index int) models.QiTag {
	for _, entry := range meta.QiTagTable {
		if index >= entry.MinIndex {
			return entry.Tag
		}
	}
	return models.QiTagNeutral
}

// ResolveTrend 标签到趋势的一对一映射
func ResolveTrend(tag models.QiTag) models.QiTrend {
	if trend, ok := meta.QiTrendTable[tag]; ok {
		return trend
	}
	return models.QiTrendFlat
}

// resolveNarrative 优先委托外部叙事服务，失败或响应不合规时落回模板组装
func (e *Engine) resolveNarrative(ctx context.Context, input AggregateInput, components models.QiComponentsBreakdown, index int, tag models.QiTag) *NarrativeResult {
	req := NarrativeRequest{
		Index:       index,
		Tag:         tag,
		Locale:      input.Locale,
		Components:  components,
		DreamHint:   input.Dream.TrendHint,
		TongueHint:  input.TongueArch.TrendHint,
		Favorable:   input.Almanac.Favorable,
		Unfavorable: input.Almanac.Unfavorable,
		SolarTerm:   input.Almanac.SolarTerm,
	}

	if e.narrative != nil {
		result, err := e.narrative.Interpret(ctx, req)
		if err == nil && validNarrative(result) {
			return result
		}
		if err != nil {
			slog.Warn("外部叙事服务不可用，回落模板叙事", "error", err)
		} else {
			slog.Warn("外部叙事服务响应不合规，回落模板叙事")
		}
		monitoring.NarrativeFallbacks.Inc()
	}

	return e.composer.Compose(req)
}

// validNarrative 外部响应形状校验：摘要非空、建议列表存在（可为空）且趋势取值合法
func validNarrative(result *NarrativeResult) bool {
	if result == nil || result.Summary == "" || result.Advice == nil {
		return false
	}
	switch result.Trend {
	case models.QiTrendUp, models.QiTrendFlat, models.QiTrendDown:
		return true
	default:
		return false
	}
}
