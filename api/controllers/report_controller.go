/*
 * @module api/controllers/report_controller
 * @description 气律报告控制器：接收multipart分析请求，查询历史报告
 * @architecture MVC架构 - 控制器层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 请求解析 -> 限流检查 -> 语言协商 -> 报告服务 -> 统一响应
 * @rules 缺失的影像/文本信号不构成错误；分析接口按客户端IP限流
 * @dependencies github.com/go-chi/render, golang.org/x/text/language
 * @refs service/report/report_service.go
 */

package controllers

import (
	"errors"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/spf13/cast"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"qirhythm-service/service"
	"qirhythm-service/service/models"
)

// 请求体上限：两张影像各8MiB加文本字段的余量
const maxAnalyzeBodyBytes = 20 << 20

// 影像字段读取上限，超出部分由特征提取层按超限拒绝
const maxImagePartBytes = (8 << 20) + 1

// 梦境描述字符数上限，超出部分静默截断
const maxDreamTextRunes = 500

// ReportController 气律报告控制器
type ReportController struct{}

// NewReportController 创建报告控制器实例
func NewReportController() *ReportController {
	return &ReportController{}
}

// localeMatcher 支持的响应语言，首项为兜底
var localeMatcher = language.NewMatcher([]language.Tag{
	language.Chinese,
	language.English,
})

// Analyze 提交一次气律分析
// @Summary 气律分析
// @Description 上传掌相/舌相影像与梦境描述，生成当日气律报告；所有信号均为可选
// @Tags 气律
// @Accept multipart/form-data
// @Produce json
// @Param palm_image formData file false "掌相影像（jpeg/png/webp，≤8MiB）"
// @Param tongue_image formData file false "舌相影像（jpeg/png/webp，≤8MiB）"
// @Param dream_text formData string false "梦境描述"
// @Param emotion_hint formData string false "情绪提示词"
// @Param locale formData string false "响应语言 zh|en"
// @Param date formData string false "报告日期 2006-01-02，默认当天"
// @Success 200 {object} APIResponse{data=models.AnalyzeResponse}
// @Failure 400 {object} APIResponse
// @Failure 429 {object} APIResponse
// @Router /qi/analyze [post]
func (c *ReportController) Analyze(w http.ResponseWriter, r *http.Request) {
	if limiter := service.GlobalRateLimiter; limiter != nil {
		result, err := limiter.Check(r.Context(), clientIP(r))
		if err == nil && !result.Allowed {
			render.Status(r, http.StatusTooManyRequests)
			render.JSON(w, r, TooManyRequestsResponse("分析请求过于频繁，请稍后再试"))
			return
		}
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAnalyzeBodyBytes)
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, BadRequestResponse("解析multipart请求失败", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	req := models.AnalyzeRequest{
		DreamText:   truncateRunes(r.FormValue("dream_text"), maxDreamTextRunes),
		EmotionHint: r.FormValue("emotion_hint"),
		Locale:      negotiateLocale(r),
	}

	if dateStr := r.FormValue("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, BadRequestResponse("日期格式不合法，应为 2006-01-02", err))
			return
		}
		req.Date = date
	}

	palmUpload, err := readImagePart(r, "palm_image")
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, BadRequestResponse("读取掌相影像失败", err))
		return
	}
	req.PalmImage = palmUpload

	tongueUpload, err := readImagePart(r, "tongue_image")
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, BadRequestResponse("读取舌相影像失败", err))
		return
	}
	req.TongueImage = tongueUpload

	response, err := service.GlobalReportService.Analyze(r.Context(), req)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, InternalErrorResponse("气律分析失败", err))
		return
	}

	render.JSON(w, r, SuccessResponse("气律分析成功", response))
}

// GetReport 查询历史报告
// @Summary 查询单个气律报告
// @Description 按报告ID查询历史报告
// @Tags 气律
// @Produce json
// @Param id path string true "报告ID"
// @Success 200 {object} APIResponse{data=models.QiReport}
// @Failure 404 {object} APIResponse
// @Router /qi/reports/{id} [get]
func (c *ReportController) GetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := service.GlobalReportService.GetReport(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, NotFoundResponse("报告不存在"))
			return
		}
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, InternalErrorResponse("查询报告失败", err))
		return
	}

	render.JSON(w, r, SuccessResponse("查询成功", record))
}

// ListReports 分页查询历史报告
// @Summary 分页查询气律报告
// @Description 按创建时间倒序分页查询历史报告
// @Tags 气律
// @Produce json
// @Param page query int false "页码，默认1"
// @Param size query int false "每页数量，默认10，最大100"
// @Success 200 {object} PaginatedResponse{data=[]models.QiReport}
// @Router /qi/reports [get]
func (c *ReportController) ListReports(w http.ResponseWriter, r *http.Request) {
	page := cast.ToInt(r.URL.Query().Get("page"))
	size := cast.ToInt(r.URL.Query().Get("size"))
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}

	records, total, err := service.GlobalReportService.ListReports(page, size)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, InternalErrorResponse("查询报告列表失败", err))
		return
	}

	render.JSON(w, r, SuccessPaginatedResponse("查询成功", records, total, page, size))
}

// readImagePart 读取可选的影像表单字段，字段缺失时返回 nil
func readImagePart(r *http.Request, field string) (*models.ImageUpload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImagePartBytes))
	if err != nil {
		return nil, err
	}

	return &models.ImageUpload{
		Data:     data,
		MimeType: partMimeType(header),
		Size:     int64(len(data)),
	}, nil
}

// partMimeType 取表单声明的Content-Type，去掉参数部分
func partMimeType(header *multipart.FileHeader) string {
	contentType := header.Header.Get("Content-Type")
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.TrimSpace(contentType)
}

// truncateRunes 按字符数截断，避免切断多字节字符
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// negotiateLocale 解析响应语言：显式locale字段优先，其次Accept-Language协商，默认zh
func negotiateLocale(r *http.Request) string {
	switch r.FormValue("locale") {
	case "zh":
		return "zh"
	case "en":
		return "en"
	}

	accepted, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(accepted) == 0 {
		return "zh"
	}
	_, idx, _ := localeMatcher.Match(accepted...)
	if idx == 1 {
		return "en"
	}
	return "zh"
}

// clientIP 解析客户端IP，优先反向代理头
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
