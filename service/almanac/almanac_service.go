/*
 * @module service/almanac/almanac_service
 * @description 黄历查询服务：Redis缓存 -> HTTP数据源 -> 静态节气兜底的三级查询链，永不报错
 * @architecture 外部数据适配层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 日期 -> 缓存命中/HTTP查询/静态推算 -> 黄历上下文
 * @rules 查询链任何一级失败都静默降级到下一级；最终兜底为零值上下文
 * @dependencies github.com/go-redis/redis/v8, net/http
 * @refs service/report/report_service.go, service/almanac/prefetch.go
 */

package almanac

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-redis/redis/v8"

	"qirhythm-service/service/models"
)

const (
	cacheKeyPrefix = "almanac:"
	cacheTTL       = 24 * time.Hour
	lookupTimeout  = 3 * time.Second
)

// getEnvWithDefault 获取环境变量，如果不存在则返回默认值
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Service 黄历查询服务
type Service struct {
	rdb        *redis.Client
	sourceURL  string
	httpClient *http.Client
}

// NewService 创建黄历服务
// Redis 连接失败时退化为无缓存直查；ALMANAC_SOURCE_URL 未配置时跳过HTTP数据源
func NewService() *Service {
	s := &Service{
		sourceURL: os.Getenv("ALMANAC_SOURCE_URL"),
		httpClient: &http.Client{
			Timeout: lookupTimeout,
		},
	}

	host := getEnvWithDefault("REDIS_HOST", "localhost")
	port := getEnvWithDefault("REDIS_PORT", "6379")
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		Password:     os.Getenv("REDIS_PASSWORD"),
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis不可用，黄历查询退化为直查", "error", err)
	} else {
		s.rdb = rdb
	}

	return s
}

// NewServiceWith 注入依赖创建黄历服务（用于测试）
func NewServiceWith(rdb *redis.Client, sourceURL string) *Service {
	return &Service{
		rdb:       rdb,
		sourceURL: sourceURL,
		httpClient: &http.Client{
			Timeout: lookupTimeout,
		},
	}
}

// Lookup 查询指定日期的黄历上下文，永不返回错误
// 查询链：缓存 -> HTTP数据源 -> 静态推算
func (s *Service) Lookup(ctx context.Context, date time.Time) models.AlmanacInfo {
	key := cacheKeyPrefix + date.Format("2006-01-02")

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var info models.AlmanacInfo
			if jsonErr := json.Unmarshal([]byte(cached), &info); jsonErr == nil {
				return normalize(info)
			}
		} else if err != redis.Nil {
			slog.Warn("黄历缓存读取失败", "error", err)
		}
	}

	info, ok := s.fetchRemote(ctx, date)
	if !ok {
		info = StaticAlmanac(date)
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(info); err == nil {
			if err := s.rdb.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
				slog.Warn("黄历缓存写入失败", "error", err)
			}
		}
	}

	return normalize(info)
}

// remoteResponse HTTP数据源响应载体
type remoteResponse struct {
	SolarTerm   string   `json:"solar_term"`
	Favorable   []string `json:"favorable"`
	Unfavorable []string `json:"unfavorable"`
}

// fetchRemote 从HTTP数据源查询，任何失败返回 ok=false
func (s *Service) fetchRemote(ctx context.Context, date time.Time) (models.AlmanacInfo, bool) {
	if s.sourceURL == "" {
		return models.AlmanacInfo{}, false
	}

	url := fmt.Sprintf("%s/almanac?date=%s", s.sourceURL, date.Format("2006-01-02"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.AlmanacInfo{}, false
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		slog.Warn("黄历数据源请求失败", "error", err)
		return models.AlmanacInfo{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.AlmanacInfo{}, false
	}

	var payload remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		slog.Warn("黄历数据源响应解析失败", "error", err)
		return models.AlmanacInfo{}, false
	}

	return models.AlmanacInfo{
		SolarTerm:   payload.SolarTerm,
		Favorable:   payload.Favorable,
		Unfavorable: payload.Unfavorable,
	}, true
}

// normalize 保证宜忌列表非 nil，便于下游与序列化
func normalize(info models.AlmanacInfo) models.AlmanacInfo {
	if info.Favorable == nil {
		info.Favorable = []string{}
	}
	if info.Unfavorable == nil {
		info.Unfavorable = []string{}
	}
	return info
}
