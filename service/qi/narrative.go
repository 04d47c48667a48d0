/*
 * @module service/qi/narrative
 * @description 叙事服务抽象与确定性模板组装器：外部增强可选，模板兜底必备
 * @architecture 评分引擎层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 叙事请求 -> 按标签取句库 -> 按子分值高低位选句 -> 拼接摘要/宜忌提示
 * @rules 模板组装只依赖标签与子分值高低位，同一输入产出同一叙事
 * @dependencies qirhythm-service/service/models, qirhythm-service/service/meta
 * @refs service/qi/qi_engine.go, service/qi/llm_client.go
 */

package qi

import (
	"context"
	"fmt"
	"strings"

	"qirhythm-service/service/meta"
	"qirhythm-service/service/models"
)

// NarrativeRequest 叙事请求：聚合结果的叙事素材
type NarrativeRequest struct {
	Index       int                          `json:"index"`
	Tag         models.QiTag                 `json:"tag"`
	Locale      string                       `json:"locale"`
	Components  models.QiComponentsBreakdown `json:"components"`
	DreamHint   string                       `json:"dream_hint"`
	TongueHint  string                       `json:"tongue_hint"`
	Favorable   []string                     `json:"favorable"`
	Unfavorable []string                     `json:"unfavorable"`
	SolarTerm   string                       `json:"solar_term"`
}

// NarrativeResult 叙事结果
type NarrativeResult struct {
	Summary string         `json:"summary"`
	Trend   models.QiTrend `json:"trend"`
	Advice  []string       `json:"advice"`
}

// NarrativeService 叙事服务能力抽象
// 外部实现视为不可信：调用方必须校验响应形状后再使用
type NarrativeService interface {
	Interpret(ctx context.Context, req NarrativeRequest) (*NarrativeResult, error)
}

// TemplateComposer 确定性模板组装器，NarrativeService 的兜底实现
type TemplateComposer struct{}

// NewTemplateComposer 创建模板组装器
func NewTemplateComposer() *TemplateComposer {
	return &TemplateComposer{}
}

// Interpret 实现 NarrativeService，永不返回错误
func (c *TemplateComposer) Interpret(_ context.Context, req NarrativeRequest) (*NarrativeResult, error) {
	return c.Compose(req), nil
}

// Compose 按固定句库组装叙事：
// 黄历氛围句 + 掌相动能句 + 舌相气机句 + 梦境意象句 + 总体气律句 + 宜忌提示
func (c *TemplateComposer) Compose(req NarrativeRequest) *NarrativeResult {
	bank, ok := meta.NarrativeBanks[req.Tag]
	if !ok {
		bank = meta.NarrativeBanks[models.QiTagNeutral]
	}

	locale := req.Locale
	parts := []string{
		pickSentence(bank.Almanac, req.Components.Almanac, meta.AlmanacScoreMidpoint, locale),
		pickSentence(bank.Palm, req.Components.Palm, meta.PalmScoreMidpoint, locale),
		pickSentence(bank.Tongue, req.Components.Tongue, meta.TongueScoreMidpoint, locale),
		pickSentence(bank.Dream, req.Components.Dream, meta.DreamScoreMidpoint, locale),
		bank.Overall.Pick(locale),
	}
	if hint := composeAlmanacHint(req, locale); hint != "" {
		parts = append(parts, hint)
	}

	advice := make([]string, 0, 3)
	for _, a := range meta.AdviceBanks[req.Tag] {
		advice = append(advice, a.Pick(locale))
	}

	return &NarrativeResult{
		Summary: strings.Join(parts, ""),
		Trend:   ResolveTrend(req.Tag),
		Advice:  advice,
	}
}

// pickSentence 子分值高于中点取 High 句，否则取 Low 句
func pickSentence(bank meta.SentenceBank, score, midpoint float64, locale string) string {
	if score > midpoint {
		return bank.High.Pick(locale)
	}
	return bank.Low.Pick(locale)
}

// composeAlmanacHint 宜忌提示句，宜忌均空时省略
func composeAlmanacHint(req NarrativeRequest, locale string) string {
	if len(req.Favorable) == 0 && len(req.Unfavorable) == 0 {
		return ""
	}

	sep := "、"
	none := "无"
	if locale == "en" {
		sep = ", "
		none = "none"
	}
	fav := none
	if len(req.Favorable) > 0 {
		fav = strings.Join(req.Favorable, sep)
	}
	unfav := none
	if len(req.Unfavorable) > 0 {
		unfav = strings.Join(req.Unfavorable, sep)
	}

	tpl := meta.AlmanacHintTemplates
	if req.SolarTerm != "" {
		return fmt.Sprintf(tpl.WithTerm.Pick(locale), req.SolarTerm, fav, unfav)
	}
	return fmt.Sprintf(tpl.Plain.Pick(locale), fav, unfav)
}
