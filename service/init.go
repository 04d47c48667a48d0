/*
 * @module service/init
 * @description 服务初始化模块，负责数据库连接、迁移与各业务服务的组装
 * @architecture 分层架构 - 服务层
 * @stateFlow 应用启动时执行初始化流程
 * @rules 数据库、Redis、Kafka均为可选依赖：连接失败时降级运行，分析管线本身不依赖任何外部服务
 * @dependencies gorm.io/gorm, gorm.io/driver/postgres
 * @refs api/routes.go
 */

package service

import (
	"fmt"
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"qirhythm-service/service/almanac"
	"qirhythm-service/service/analytics"
	"qirhythm-service/service/models"
	"qirhythm-service/service/qi"
	"qirhythm-service/service/rate_limiter"
	"qirhythm-service/service/report"
)

var (
	DB                   *gorm.DB
	GlobalAlmanacService *almanac.Service
	GlobalQiEngine       *qi.Engine
	GlobalReportService  *report.Service
	GlobalEmitter        *analytics.Emitter
	GlobalRateLimiter    *rate_limiter.RedisRateLimiter
	GlobalPrefetcher     *almanac.Prefetcher
)

func init() {
	initDatabase()
	runMigrations()
	initServices()
}

// initDatabase 初始化数据库连接
// 连接失败时降级为内存模式：报告不落库，历史查询返回空
func initDatabase() {
	var dsn string

	// 优先使用DATABASE_URL环境变量
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		dsn = databaseURL
	} else {
		host := getEnvWithDefault("DB_HOST", "localhost")
		port := getEnvWithDefault("DB_PORT", "5432")
		user := getEnvWithDefault("DB_USER", "postgres")
		password := getEnvWithDefault("DB_PASSWORD", "postgres")
		dbname := getEnvWithDefault("DB_NAME", "postgres")
		sslmode := getEnvWithDefault("DB_SSLMODE", "disable")
		schema := getEnvWithDefault("DB_SCHEMA", "public")

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s TimeZone=Asia/Shanghai",
			host, port, user, password, dbname, sslmode, schema)
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Warn("数据库连接失败，报告持久化已停用", "error", err)
		DB = nil
		return
	}

	slog.Info("数据库连接成功")
}

// getEnvWithDefault 获取环境变量，如果不存在则返回默认值
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// runMigrations 运行数据库迁移
func runMigrations() {
	if DB == nil {
		return
	}

	if err := DB.AutoMigrate(&models.QiReport{}); err != nil {
		slog.Warn("数据库迁移失败，报告持久化已停用", "error", err)
		DB = nil
		return
	}
	slog.Info("数据库表结构迁移完成")
}

// initServices 初始化服务
func initServices() {
	GlobalAlmanacService = almanac.NewService()
	GlobalEmitter = analytics.NewEmitter()

	// 外部叙事服务可选：未配置时引擎直接走模板兜底
	var narrative qi.NarrativeService
	if client := qi.NewHTTPNarrativeClient(); client != nil {
		narrative = client
	}
	GlobalQiEngine = qi.NewEngine(narrative)

	GlobalReportService = report.NewService(DB, GlobalAlmanacService, GlobalQiEngine, GlobalEmitter)

	var err error
	GlobalRateLimiter, err = rate_limiter.NewRedisRateLimiter()
	if err != nil {
		slog.Warn("限流器初始化失败，分析接口不限流", "error", err)
		GlobalRateLimiter = nil
	}

	GlobalPrefetcher = almanac.NewPrefetcher(GlobalAlmanacService)
	if err := GlobalPrefetcher.Start(); err != nil {
		slog.Warn("黄历预取调度启动失败", "error", err)
	}

	slog.Info("服务初始化完成")
}
