/*
 * @module service/qi/qi_engine_test
 * @description 聚合引擎单元测试：权重守恒、标签边界与叙事兜底
 */

package qi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qirhythm-service/service/models"
)

func TestResolveIndex_WeightConservation(t *testing.T) {
	// 0.10*60 + 0.25*80 + 0.40*90 + 0.20*70 + 5 = 81
	components := models.QiComponentsBreakdown{
		Palm:         60,
		Tongue:       80,
		Dream:        90,
		Almanac:      70,
		Constitution: 5,
	}
	assert.Equal(t, 81, ResolveIndex(components))

	// 全中性：0.95*50 = 47.5 -> 48，权重不做归一化
	neutral := models.QiComponentsBreakdown{Palm: 50, Tongue: 50, Dream: 50, Almanac: 50}
	assert.Equal(t, 48, ResolveIndex(neutral))
}

func TestResolveIndex_Clamp(t *testing.T) {
	assert.Equal(t, 0, ResolveIndex(models.QiComponentsBreakdown{Constitution: -5}))

	high := models.QiComponentsBreakdown{Palm: 100, Tongue: 100, Dream: 100, Almanac: 100, Constitution: 100}
	assert.Equal(t, 100, ResolveIndex(high))
}

func TestResolveTag_Boundaries(t *testing.T) {
	cases := []struct {
		index int
		want  models.QiTag
	}{
		{100, models.QiTagRising},
		{75, models.QiTagRising},
		{74, models.QiTagSteady},
		{55, models.QiTagSteady},
		{54, models.QiTagNeutral},
		{36, models.QiTagNeutral},
		{35, models.QiTagLow},
		{0, models.QiTagLow},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ResolveTag(tc.index), "index=%d", tc.index)
	}
}

func TestResolveTrend(t *testing.T) {
	assert.Equal(t, models.QiTrendUp, ResolveTrend(models.QiTagRising))
	assert.Equal(t, models.QiTrendFlat, ResolveTrend(models.QiTagSteady))
	assert.Equal(t, models.QiTrendFlat, ResolveTrend(models.QiTagNeutral))
	assert.Equal(t, models.QiTrendDown, ResolveTrend(models.QiTagLow))

	// 未知标签兜底持平
	assert.Equal(t, models.QiTrendFlat, ResolveTrend(models.QiTag("unknown")))
}

func TestAggregate_ZeroInputStillComplete(t *testing.T) {
	engine := NewEngine(nil)

	result := engine.Aggregate(context.Background(), AggregateInput{Locale: "zh"})

	assert.Equal(t, 48, result.Index)
	assert.Equal(t, models.QiTagNeutral, result.Tag)
	assert.Equal(t, models.QiTrendFlat, result.Trend)
	assert.NotEmpty(t, result.Summary)
	assert.NotEmpty(t, result.TrendText)
	assert.NotEmpty(t, result.Advice)
	assert.Equal(t, 50.0, result.Components.Palm)
	assert.Equal(t, 50.0, result.Components.Tongue)
	assert.Equal(t, 50.0, result.Components.Dream)
	assert.Equal(t, 50.0, result.Components.Almanac)
}

func TestAggregate_NarrativeServiceUsed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/interpret", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"summary": "外部叙事摘要",
			"trend":   "flat",
			"advice":  []string{"外部建议"},
		})
	}))
	defer server.Close()

	engine := NewEngine(NewHTTPNarrativeClientWithURL(server.URL))
	result := engine.Aggregate(context.Background(), AggregateInput{Locale: "zh"})

	assert.Equal(t, "外部叙事摘要", result.Summary)
	assert.Equal(t, []string{"外部建议"}, result.Advice)
}

func TestAggregate_NarrativeFallbackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	engine := NewEngine(NewHTTPNarrativeClientWithURL(server.URL))
	result := engine.Aggregate(context.Background(), AggregateInput{Locale: "zh"})

	// 外部失败后落回模板叙事，结果仍完整
	assert.NotEmpty(t, result.Summary)
	assert.NotEmpty(t, result.Advice)
}

func TestAggregate_NarrativeFallbackOnMalformedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 摘要为空、趋势非法，形状校验不通过
		json.NewEncoder(w).Encode(map[string]interface{}{
			"summary": "",
			"trend":   "sideways",
		})
	}))
	defer server.Close()

	engine := NewEngine(NewHTTPNarrativeClientWithURL(server.URL))
	result := engine.Aggregate(context.Background(), AggregateInput{Locale: "zh"})

	assert.NotEmpty(t, result.Summary)
}

func TestAggregate_NarrativeFallbackOnMissingAdvice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 建议列表缺失（null），形状校验不通过
		json.NewEncoder(w).Encode(map[string]interface{}{
			"summary": "外部叙事摘要",
			"trend":   "flat",
		})
	}))
	defer server.Close()

	engine := NewEngine(NewHTTPNarrativeClientWithURL(server.URL))
	result := engine.Aggregate(context.Background(), AggregateInput{Locale: "zh"})

	// 回落模板叙事，建议列表永不为 null
	assert.NotEqual(t, "外部叙事摘要", result.Summary)
	assert.NotEmpty(t, result.Advice)
}

func TestTemplateComposer_LocaleAndTagCoverage(t *testing.T) {
	composer := NewTemplateComposer()

	for _, tag := range []models.QiTag{models.QiTagRising, models.QiTagSteady, models.QiTagNeutral, models.QiTagLow} {
		for _, locale := range []string{"zh", "en"} {
			result := composer.Compose(NarrativeRequest{
				Index:  50,
				Tag:    tag,
				Locale: locale,
				Components: models.QiComponentsBreakdown{
					Palm: 50, Tongue: 50, Dream: 50, Almanac: 50,
				},
			})
			require.NotNil(t, result)
			assert.NotEmpty(t, result.Summary, "tag=%s locale=%s", tag, locale)
			assert.NotEmpty(t, result.Advice, "tag=%s locale=%s", tag, locale)
			assert.Equal(t, ResolveTrend(tag), result.Trend)
		}
	}
}
