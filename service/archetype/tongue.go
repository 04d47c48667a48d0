/*
 * @module service/archetype/tongue
 * @description 舌相原型引擎：气血状态、舌苔/舌质提示与短期趋势提示
 * @architecture 规则引擎层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 特征摘要 -> 气血轴查表 -> 舌苔/舌质提示 -> 系统标签拼接 -> 舌相原型
 * @rules 各轴独立推断；系统标签按 舌色/舌苔/舌质 顺序拼接
 * @dependencies qirhythm-service/service/models, qirhythm-service/service/meta
 * @refs service/qi/subscores.go
 */

package archetype

import (
	"fmt"

	"qirhythm-service/service/meta"
	"qirhythm-service/service/models"
)

// InferTongueArchetype 由舌相特征摘要推断舌相原型
func InferTongueArchetype(summary models.TongueFeatureSummary, locale string) models.TongueArchetype {
	tags := make([]string, 0, 4)

	qiStatus := inferQiStatus(summary.Color)
	tags = append(tags, fmt.Sprintf("tongue_color_%s", summary.Color))

	coatingEntry := meta.TongueCoatingHints[summary.Coating]
	tags = append(tags, coatingEntry.Tag)

	textureEntry := meta.TongueTextureHints[summary.Texture]
	tags = append(tags, textureEntry.Tag)

	return models.TongueArchetype{
		QiStatus:    qiStatus,
		CoatingHint: coatingEntry.Hint.Pick(locale),
		BodyHint:    textureEntry.Hint.Pick(locale),
		TrendHint:   inferTrendHint(qiStatus, summary.Coating, locale),
		SystemTags:  tags,
	}
}

// inferTrendHint 趋势提示：舌色定基调，舌苔加修饰
func inferTrendHint(qiStatus models.QiStatus, coating models.TongueCoating, locale string) string {
	hint := meta.TongueTrendBase[qiStatus].Pick(locale)
	if mod, ok := meta.TongueTrendCoatingMods[coating]; ok {
		hint += mod.Pick(locale)
	}
	return hint
}

// inferQiStatus 气血轴：仅依赖舌色
func inferQiStatus(color models.TongueColor) models.QiStatus {
	if v, ok := meta.QiStatusByTongueColor[color]; ok {
		return v
	}
	return models.QiStatusBalanced
}
