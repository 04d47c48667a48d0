/*
 * @module service/almanac/prefetch
 * @description 黄历预取调度：每日零点后预热当天与次日的黄历缓存
 * @architecture 外部数据适配层 - 定时任务
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow cron触发 -> 查询链执行 -> 缓存写入
 * @rules 预取失败只记录日志，不影响在线查询链
 * @dependencies github.com/robfig/cron/v3
 * @refs service/almanac/almanac_service.go
 */

package almanac

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Prefetcher 黄历预取调度器
type Prefetcher struct {
	service *Service
	cron    *cron.Cron
}

// NewPrefetcher 创建预取调度器
func NewPrefetcher(service *Service) *Prefetcher {
	return &Prefetcher{
		service: service,
		cron:    cron.New(cron.WithSeconds()),
	}
}

// Start 启动调度：每日 00:10:00 预热当天与次日
func (p *Prefetcher) Start() error {
	_, err := p.cron.AddFunc("0 10 0 * * *", p.prefetch)
	if err != nil {
		return err
	}
	p.cron.Start()
	slog.Info("黄历预取调度已启动")
	return nil
}

// Stop 停止调度
func (p *Prefetcher) Stop() {
	if p.cron != nil {
		p.cron.Stop()
	}
}

// prefetch 预热当天与次日缓存
func (p *Prefetcher) prefetch() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	for _, date := range []time.Time{now, now.AddDate(0, 0, 1)} {
		info := p.service.Lookup(ctx, date)
		slog.Info("黄历预取完成",
			"date", date.Format("2006-01-02"),
			"solar_term", info.SolarTerm)
	}
}
