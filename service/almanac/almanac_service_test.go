/*
 * @module service/almanac/almanac_service_test
 * @description 黄历查询链单元测试：静态推算确定性与各级降级
 */

package almanac

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticAlmanac_Deterministic(t *testing.T) {
	date := time.Date(2026, 5, 20, 0, 0, 0, 0, time.Local)

	first := StaticAlmanac(date)
	second := StaticAlmanac(date)
	assert.Equal(t, first, second)

	assert.Len(t, first.Favorable, 2)
	assert.Len(t, first.Unfavorable, 2)
}

func TestStaticAlmanac_SolarTermTolerance(t *testing.T) {
	// 立春近似日期 2月4日，容差前后各一天
	for day := 3; day <= 5; day++ {
		info := StaticAlmanac(time.Date(2026, 2, day, 0, 0, 0, 0, time.Local))
		assert.Equal(t, "立春", info.SolarTerm, "day=%d", day)
	}

	// 远离任何节气的日期无节气
	off := StaticAlmanac(time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local))
	assert.Empty(t, off.SolarTerm)
}

func TestLookup_StaticFallbackWithoutRedisAndSource(t *testing.T) {
	service := NewServiceWith(nil, "")
	date := time.Date(2026, 8, 8, 0, 0, 0, 0, time.Local)

	info := service.Lookup(context.Background(), date)

	assert.Equal(t, StaticAlmanac(date), info)
	assert.NotNil(t, info.Favorable)
	assert.NotNil(t, info.Unfavorable)
	// 8月8日为立秋近似日期
	assert.Equal(t, "立秋", info.SolarTerm)
}

func TestLookup_RemoteSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/almanac", r.URL.Path)
		require.Equal(t, "2026-08-29", r.URL.Query().Get("date"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"solar_term":  "处暑",
			"favorable":   []string{"会友"},
			"unfavorable": []string{"远行"},
		})
	}))
	defer server.Close()

	service := NewServiceWith(nil, server.URL)
	info := service.Lookup(context.Background(), time.Date(2026, 8, 29, 0, 0, 0, 0, time.Local))

	assert.Equal(t, "处暑", info.SolarTerm)
	assert.Equal(t, []string{"会友"}, info.Favorable)
	assert.Equal(t, []string{"远行"}, info.Unfavorable)
}

func TestLookup_RemoteFailureFallsBackToStatic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	service := NewServiceWith(nil, server.URL)
	date := time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)

	info := service.Lookup(context.Background(), date)
	assert.Equal(t, StaticAlmanac(date), info)
}
