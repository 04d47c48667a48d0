/*
 * @module service/report/report_service
 * @description 气律报告服务：并发执行四路信号处理，聚合成完整报告并落库、打点、发埋点
 * @architecture 业务服务层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 请求 -> 并发提取/归类/查询 -> 形态校验 -> 原型推断 -> 聚合 -> 落库/埋点 -> 响应
 * @rules 零可用信号的请求也必须产出完整自洽的结果；落库与埋点为尽力而为
 * @dependencies gorm.io/gorm, sync
 * @refs api/controllers/report_controller.go
 */

package report

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"qirhythm-service/service/analytics"
	"qirhythm-service/service/archetype"
	"qirhythm-service/service/models"
	"qirhythm-service/service/monitoring"
	"qirhythm-service/service/qi"
	"qirhythm-service/service/vision"
)

// AlmanacLookup 黄历查询能力抽象
type AlmanacLookup interface {
	Lookup(ctx context.Context, date time.Time) models.AlmanacInfo
}

// Service 气律报告服务
type Service struct {
	db      *gorm.DB
	almanac AlmanacLookup
	engine  *qi.Engine
	emitter *analytics.Emitter
}

// NewService 创建报告服务
// db 与 emitter 可为 nil：落库与埋点按尽力而为处理
func NewService(db *gorm.DB, almanacSvc AlmanacLookup, engine *qi.Engine, emitter *analytics.Emitter) *Service {
	return &Service{
		db:      db,
		almanac: almanacSvc,
		engine:  engine,
		emitter: emitter,
	}
}

// Analyze 执行一次完整的气律分析
// 四路信号无数据依赖，并发执行后在聚合点汇合
func (s *Service) Analyze(ctx context.Context, req models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	start := time.Now()

	locale := req.Locale
	if locale != "en" {
		locale = "zh"
	}
	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	var (
		wg sync.WaitGroup

		palmSummary   *models.PalmFeatureSummary
		palmErr       error
		tongueSummary *models.TongueFeatureSummary
		tongueErr     error
		dreamArch     models.DreamArchetype
		almanacInfo   models.AlmanacInfo
	)

	if req.PalmImage != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			palmSummary, palmErr = vision.ExtractPalmFeatures(req.PalmImage.Data, req.PalmImage.MimeType)
			if palmErr != nil {
				monitoring.ExtractionFailures.WithLabelValues("palm", failureCode(palmErr)).Inc()
			}
		}()
	}

	if req.TongueImage != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tongueSummary, tongueErr = vision.ExtractTongueFeatures(req.TongueImage.Data, req.TongueImage.MimeType)
			if tongueErr != nil {
				monitoring.ExtractionFailures.WithLabelValues("tongue", failureCode(tongueErr)).Inc()
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		dreamArch = archetype.InferDreamArchetype(req.DreamText, req.EmotionHint, locale)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		almanacInfo = s.almanac.Lookup(ctx, date)
	}()

	wg.Wait()

	// 形态校验：任何提取失败在此转为带标记的默认摘要
	palmGate := vision.CheckPalmShape(palmSummary, palmErr, locale, "")
	tongueGate := vision.CheckTongueShape(tongueSummary, tongueErr, locale, "")
	if palmGate.FallbackApplied {
		monitoring.FallbacksTotal.WithLabelValues("palm").Inc()
	}
	if tongueGate.FallbackApplied {
		monitoring.FallbacksTotal.WithLabelValues("tongue").Inc()
	}

	palmArch := archetype.InferPalmArchetype(palmGate.Result, locale)
	tongueArch := archetype.InferTongueArchetype(tongueGate.Result, locale)

	qiResult := s.engine.Aggregate(ctx, qi.AggregateInput{
		Palm:        palmGate.Result,
		Tongue:      tongueGate.Result,
		PalmArch:    palmArch,
		TongueArch:  tongueArch,
		Dream:       dreamArch,
		EmotionHint: archetype.ClassifyEmotionHint(req.EmotionHint),
		Almanac:     almanacInfo,
		Locale:      locale,
	})

	response := &models.AnalyzeResponse{
		Qi:         qiResult,
		Palm:       palmArch,
		Tongue:     tongueArch,
		Dream:      dreamArch,
		Almanac:    almanacInfo,
		PalmGate:   palmGate,
		TongueGate: tongueGate,
	}

	response.ReportID = s.persist(date, locale, response)
	s.emit(ctx, response, palmArch, tongueArch, dreamArch)

	monitoring.ReportsTotal.WithLabelValues(string(qiResult.Tag)).Inc()
	monitoring.AnalyzeDuration.Observe(time.Since(start).Seconds())

	return response, nil
}

// persist 报告落库，失败仅记录日志并返回空ID
func (s *Service) persist(date time.Time, locale string, response *models.AnalyzeResponse) string {
	if s.db == nil {
		return ""
	}

	payload, err := toJSONB(response)
	if err != nil {
		slog.Warn("报告序列化失败，跳过落库", "error", err)
		return ""
	}

	record := &models.QiReport{
		Date:    date,
		Locale:  locale,
		Index:   response.Qi.Index,
		Tag:     string(response.Qi.Tag),
		Trend:   string(response.Qi.Trend),
		Payload: payload,
	}
	if err := s.db.Create(record).Error; err != nil {
		slog.Warn("报告落库失败", "error", err)
		return ""
	}
	return record.ID
}

// emit 发送埋点事件，系统标签按 掌相/舌相/梦境 顺序拼接
func (s *Service) emit(ctx context.Context, response *models.AnalyzeResponse, palm models.PalmArchetype, tongue models.TongueArchetype, dream models.DreamArchetype) {
	if s.emitter == nil {
		return
	}

	tags := make([]string, 0, len(palm.SystemTags)+len(tongue.SystemTags)+len(dream.SystemTags))
	tags = append(tags, palm.SystemTags...)
	tags = append(tags, tongue.SystemTags...)
	tags = append(tags, dream.SystemTags...)

	s.emitter.Emit(ctx, analytics.ReportEvent{
		ReportID:   response.ReportID,
		Index:      response.Qi.Index,
		Tag:        string(response.Qi.Tag),
		SystemTags: tags,
		Timestamp:  time.Now(),
	})
}

// GetReport 按ID查询历史报告
func (s *Service) GetReport(id string) (*models.QiReport, error) {
	if s.db == nil {
		return nil, gorm.ErrRecordNotFound
	}
	var record models.QiReport
	if err := s.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListReports 分页查询历史报告
func (s *Service) ListReports(page, size int) ([]models.QiReport, int64, error) {
	if s.db == nil {
		return []models.QiReport{}, 0, nil
	}
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}

	var total int64
	if err := s.db.Model(&models.QiReport{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.QiReport
	err := s.db.Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&records).Error
	return records, total, err
}

// failureCode 取错误消息冒号前的错误码，作为有界指标标签
func failureCode(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ":"); idx > 0 {
		return msg[:idx]
	}
	return "UNKNOWN"
}

// toJSONB 把响应转成JSONB映射
func toJSONB(v interface{}) (models.JSONB, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out models.JSONB
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
