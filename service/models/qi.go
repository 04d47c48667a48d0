/*
 * @module service/models/qi
 * @description 气律结果模型，定义加权分量、气律指数与标签/趋势
 * @architecture 数据模型层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 四路子分值 -> 加权汇总 -> 指数钳制 -> 标签/趋势解析
 * @rules tag 与 trend 仅由 index 查表决定，不受叙事内容影响
 * @dependencies 无
 * @refs service/qi/
 */

package models

// QiTag 气律标签
type QiTag string

const (
	QiTagRising  QiTag = "升"
	QiTagSteady  QiTag = "稳"
	QiTagNeutral QiTag = "中"
	QiTagLow     QiTag = "低"
)

// QiTrend 气律趋势方向
type QiTrend string

const (
	QiTrendUp   QiTrend = "up"
	QiTrendFlat QiTrend = "flat"
	QiTrendDown QiTrend = "down"
)

// QiComponentsBreakdown 气律分量明细
// 四路子分值在加权前各自钳制在安全区间内，
// constitution 为 [-5,+5] 的体质微调
type QiComponentsBreakdown struct {
	Palm         float64 `json:"palm"`    // [45,60]
	Tongue       float64 `json:"tongue"`  // [10,90]
	Dream        float64 `json:"dream"`   // [10,90]
	Almanac      float64 `json:"almanac"` // [30,70]
	Constitution float64 `json:"constitution"`
}

// QiRhythmResult 气律结果
// 每次请求新建一份，核心层不关心持久化
type QiRhythmResult struct {
	Index      int                   `json:"index"` // [0,100]
	Tag        QiTag                 `json:"tag"`
	Trend      QiTrend               `json:"trend"`
	Summary    string                `json:"summary"`
	TrendText  string                `json:"trend_text"`
	Advice     []string              `json:"advice"`
	Components QiComponentsBreakdown `json:"components"`
}

// AlmanacInfo 黄历上下文
// 零值表示查询缺失：无节气、宜忌为空，下游按中性处理
type AlmanacInfo struct {
	SolarTerm   string   `json:"solar_term,omitempty"`
	Favorable   []string `json:"favorable"`
	Unfavorable []string `json:"unfavorable"`
}
