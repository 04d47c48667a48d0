/*
 * @module testutil/test_helper
 * @description 测试工具和辅助函数
 * @architecture 测试基础设施 - 提供测试通用工具和数据工厂
 * @stateFlow 测试环境初始化 -> 测试数据创建 -> 测试执行 -> 清理资源
 * @rules 提供可重用的测试工具，确保测试环境的一致性
 * @dependencies gorm, sqlite, testify, image
 * @refs service/models
 */

package testutil

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"qirhythm-service/service/models"
)

// TestDB 测试数据库配置
type TestDB struct {
	DB *gorm.DB
}

// NewTestDB 创建测试数据库
func NewTestDB() *TestDB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to connect test database: %v", err))
	}

	// 自动迁移所有模型
	err = db.AutoMigrate(
		&models.QiReport{},
	)
	if err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}

	return &TestDB{DB: db}
}

// CleanDB 清理数据库
func (tdb *TestDB) CleanDB() {
	tables := []string{
		"qi_reports",
	}

	for _, table := range tables {
		tdb.DB.Exec(fmt.Sprintf("DELETE FROM %s", table))
	}
}

// Close 关闭数据库连接
func (tdb *TestDB) Close() {
	if db, err := tdb.DB.DB(); err == nil {
		db.Close()
	}
}

// TestDataFactory 测试数据工厂
type TestDataFactory struct {
	DB *gorm.DB
}

// NewTestDataFactory 创建测试数据工厂
func NewTestDataFactory(db *gorm.DB) *TestDataFactory {
	return &TestDataFactory{DB: db}
}

// QiReportOption 报告选项函数类型
type QiReportOption func(*models.QiReport)

// CreateQiReport 创建测试气律报告
func (f *TestDataFactory) CreateQiReport(opts ...QiReportOption) *models.QiReport {
	report := &models.QiReport{
		ID:     generateID("qr"),
		Date:   time.Now().Truncate(24 * time.Hour),
		Locale: "zh",
		Index:  60,
		Tag:    "稳",
		Trend:  "flat",
		Payload: models.JSONB{
			"report_id": "test",
		},
		CreatedAt: time.Now(),
	}

	// 应用选项
	for _, opt := range opts {
		opt(report)
	}

	err := f.DB.Create(report).Error
	if err != nil {
		panic(fmt.Sprintf("failed to create test qi report: %v", err))
	}

	return report
}

// 辅助函数
func generateID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixNano(), generateSuffix())
}

func generateSuffix() string {
	return fmt.Sprintf("%d", time.Now().UnixNano()%100000)
}

// MakeJPEG 生成指定尺寸的纯色JPEG测试影像
func MakeJPEG(t *testing.T, width, height int, fill color.Color) []byte {
	t.Helper()
	var buf bytes.Buffer
	err := jpeg.Encode(&buf, makeSolidImage(width, height, fill), &jpeg.Options{Quality: 90})
	require.NoError(t, err)
	return buf.Bytes()
}

// MakePNG 生成指定尺寸的纯色PNG测试影像
func MakePNG(t *testing.T, width, height int, fill color.Color) []byte {
	t.Helper()
	var buf bytes.Buffer
	err := png.Encode(&buf, makeSolidImage(width, height, fill))
	require.NoError(t, err)
	return buf.Bytes()
}

// MakePatternJPEG 生成带棋盘纹理的JPEG测试影像，供纹理/质量路径使用
func MakePatternJPEG(t *testing.T, width, height, cell int, a, b color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/cell)+(y/cell))%2 == 0 {
				img.Set(x, y, a)
			} else {
				img.Set(x, y, b)
			}
		}
	}
	var buf bytes.Buffer
	err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	require.NoError(t, err)
	return buf.Bytes()
}

func makeSolidImage(width, height int, fill color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, fill)
		}
	}
	return img
}

// MultipartField 表单普通字段
type MultipartField struct {
	Name  string
	Value string
}

// MultipartFile 表单文件字段
type MultipartFile struct {
	Name        string
	Filename    string
	ContentType string
	Data        []byte
}

// HTTPTestHelper HTTP测试辅助工具
type HTTPTestHelper struct{}

// NewHTTPTestHelper 创建HTTP测试辅助工具
func NewHTTPTestHelper() *HTTPTestHelper {
	return &HTTPTestHelper{}
}

// CreateMultipartRequest 创建multipart表单请求
func (h *HTTPTestHelper) CreateMultipartRequest(t *testing.T, url string, fields []MultipartField, files []MultipartFile) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for _, field := range fields {
		require.NoError(t, writer.WriteField(field.Name, field.Value))
	}

	for _, file := range files {
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{
			fmt.Sprintf(`form-data; name="%s"; filename="%s"`, file.Name, file.Filename),
		}
		header["Content-Type"] = []string{file.ContentType}
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(file.Data))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, url, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// AssertAPISuccess 断言统一响应为成功
func (h *HTTPTestHelper) AssertAPISuccess(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":0`)
}
