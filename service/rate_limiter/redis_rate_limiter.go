/*
 * @module service/rate_limiter/redis_rate_limiter
 * @description 基于Redis的分析接口限流：按客户端IP做固定窗口计数
 * @architecture 工具层 - 提供分布式限流能力
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 请求到达 -> Redis原子计数 -> 判断是否超限
 * @rules 使用Redis INCR和EXPIRE实现窗口限流；Redis不可用时放行请求
 * @dependencies github.com/go-redis/redis/v8
 * @refs api/controllers/report_controller.go
 */

package rate_limiter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cast"
)

// RateLimitResult 限流检查结果
type RateLimitResult struct {
	Allowed   bool  `json:"allowed"`   // 是否允许请求
	Limit     int   `json:"limit"`     // 窗口内限制数量
	Remaining int   `json:"remaining"` // 剩余数量
	ResetAt   int64 `json:"reset_at"`  // 窗口重置时间（Unix时间戳）
}

// RedisRateLimiter Redis限流器
type RedisRateLimiter struct {
	client      *redis.Client
	maxRequests int
	window      int // 秒
}

// getEnvWithDefault 获取环境变量，如果不存在则返回默认值
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// NewRedisRateLimiter 创建Redis限流器
// 默认每IP每60秒20次分析请求，可由环境变量覆盖
func NewRedisRateLimiter() (*RedisRateLimiter, error) {
	host := getEnvWithDefault("REDIS_HOST", "localhost")
	port := getEnvWithDefault("REDIS_PORT", "6379")

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           cast.ToInt(os.Getenv("REDIS_DB")),
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis连接失败: %w", err)
	}

	maxRequests := cast.ToInt(getEnvWithDefault("ANALYZE_RATE_LIMIT", "20"))
	window := cast.ToInt(getEnvWithDefault("ANALYZE_RATE_WINDOW", "60"))

	slog.Info("分析接口限流器初始化成功",
		"max_requests", maxRequests,
		"window_seconds", window)

	return &RedisRateLimiter{
		client:      client,
		maxRequests: maxRequests,
		window:      window,
	}, nil
}

// rateLimitScript 原子计数Lua脚本：INCR后按需设置过期
var rateLimitScript = redis.NewScript(`
	local key = KEYS[1]
	local max_requests = tonumber(ARGV[1])
	local window = tonumber(ARGV[2])

	local current = redis.call('GET', key)
	if current == false then
		current = 0
	else
		current = tonumber(current)
	end

	if current >= max_requests then
		local ttl = redis.call('TTL', key)
		if ttl == -1 then
			ttl = window
		end
		return {0, current, ttl}
	end

	local new_count = redis.call('INCR', key)
	if new_count == 1 then
		redis.call('EXPIRE', key, window)
	end

	local ttl = redis.call('TTL', key)
	if ttl == -1 then
		ttl = window
	end
	return {1, new_count, ttl}
`)

// Check 检查指定客户端是否超限
func (r *RedisRateLimiter) Check(ctx context.Context, clientIP string) (*RateLimitResult, error) {
	key := fmt.Sprintf("rate_limit:analyze:%s", clientIP)

	result, err := rateLimitScript.Run(ctx, r.client, []string{key}, r.maxRequests, r.window).Result()
	if err != nil {
		return nil, fmt.Errorf("限流检查失败: %w", err)
	}

	values := result.([]interface{})
	allowed := values[0].(int64) == 1
	current := int(values[1].(int64))
	ttl := int(values[2].(int64))

	remaining := r.maxRequests - current
	if remaining < 0 {
		remaining = 0
	}

	return &RateLimitResult{
		Allowed:   allowed,
		Limit:     r.maxRequests,
		Remaining: remaining,
		ResetAt:   time.Now().Add(time.Duration(ttl) * time.Second).Unix(),
	}, nil
}
