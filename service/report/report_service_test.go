/*
 * @module service/report/report_service_test
 * @description 报告服务单元测试：零信号完整性、落库与历史查询
 */

package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"qirhythm-service/service/models"
	"qirhythm-service/service/qi"
	"qirhythm-service/testutil"
)

// stubAlmanac 固定返回零值黄历上下文
type stubAlmanac struct{}

func (stubAlmanac) Lookup(ctx context.Context, date time.Time) models.AlmanacInfo {
	return models.AlmanacInfo{}
}

func newTestService(t *testing.T) (*Service, *testutil.TestDB) {
	t.Helper()
	testDB := testutil.NewTestDB()
	service := NewService(testDB.DB, stubAlmanac{}, qi.NewEngine(nil), nil)
	return service, testDB
}

func TestAnalyze_ZeroSignalStillComplete(t *testing.T) {
	service, testDB := newTestService(t)
	defer testDB.Close()

	response, err := service.Analyze(context.Background(), models.AnalyzeRequest{Locale: "zh"})
	require.NoError(t, err)
	require.NotNil(t, response)

	// 两路影像都缺失：闸门降级且原因为部分缺失
	assert.True(t, response.PalmGate.FallbackApplied)
	assert.Equal(t, models.CheckReasonPartial, response.PalmGate.Reason)
	assert.Len(t, response.PalmGate.Warnings, 1)
	assert.True(t, response.TongueGate.FallbackApplied)
	assert.Equal(t, models.CheckReasonPartial, response.TongueGate.Reason)
	assert.Len(t, response.TongueGate.Warnings, 1)

	// 全中性信号落在中段
	assert.Equal(t, models.QiTagNeutral, response.Qi.Tag)
	assert.Equal(t, models.QiTrendFlat, response.Qi.Trend)
	assert.GreaterOrEqual(t, response.Qi.Index, 45)
	assert.LessOrEqual(t, response.Qi.Index, 55)
	assert.NotEmpty(t, response.Qi.Summary)
	assert.NotEmpty(t, response.Qi.Advice)
	assert.Equal(t, models.DreamTypeOther, response.Dream.DreamType)

	// 报告已落库
	assert.NotEmpty(t, response.ReportID)
	var count int64
	require.NoError(t, testDB.DB.Model(&models.QiReport{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAnalyze_DreamOnlyRequest(t *testing.T) {
	service, testDB := newTestService(t)
	defer testDB.Close()

	response, err := service.Analyze(context.Background(), models.AnalyzeRequest{
		DreamText:   "昨晚梦到被追",
		EmotionHint: "很焦虑",
		Locale:      "zh",
	})
	require.NoError(t, err)

	assert.Equal(t, models.DreamTypeChase, response.Dream.DreamType)
	assert.Equal(t, models.MoodAnxious, response.Dream.Mood)
	assert.True(t, response.PalmGate.FallbackApplied)
	assert.NotEmpty(t, response.Qi.Summary)
}

func TestAnalyze_LocaleNormalization(t *testing.T) {
	service, testDB := newTestService(t)
	defer testDB.Close()

	response, err := service.Analyze(context.Background(), models.AnalyzeRequest{Locale: "fr"})
	require.NoError(t, err)

	// 非法locale归一到中文
	record, err := service.GetReport(response.ReportID)
	require.NoError(t, err)
	assert.Equal(t, "zh", record.Locale)
}

func TestAnalyze_NilDatabaseDegrades(t *testing.T) {
	service := NewService(nil, stubAlmanac{}, qi.NewEngine(nil), nil)

	response, err := service.Analyze(context.Background(), models.AnalyzeRequest{Locale: "zh"})
	require.NoError(t, err)

	// 落库不可用时报告ID为空，结果仍完整
	assert.Empty(t, response.ReportID)
	assert.NotEmpty(t, response.Qi.Summary)
}

func TestGetReport_RoundTrip(t *testing.T) {
	service, testDB := newTestService(t)
	defer testDB.Close()

	response, err := service.Analyze(context.Background(), models.AnalyzeRequest{Locale: "zh"})
	require.NoError(t, err)
	require.NotEmpty(t, response.ReportID)

	record, err := service.GetReport(response.ReportID)
	require.NoError(t, err)
	assert.Equal(t, response.Qi.Index, record.Index)
	assert.Equal(t, string(response.Qi.Tag), record.Tag)
	assert.NotEmpty(t, record.Payload)

	_, err = service.GetReport("no-such-id")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestListReports_Pagination(t *testing.T) {
	service, testDB := newTestService(t)
	defer testDB.Close()

	for i := 0; i < 3; i++ {
		_, err := service.Analyze(context.Background(), models.AnalyzeRequest{Locale: "zh"})
		require.NoError(t, err)
	}

	records, total, err := service.ListReports(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, records, 2)

	rest, total, err := service.ListReports(2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, rest, 1)
}

func TestFailureCode(t *testing.T) {
	assert.Equal(t, "INVALID_IMAGE", failureCode(errors.New("INVALID_IMAGE: 图像无法解码")))
	assert.Equal(t, "UNKNOWN", failureCode(errors.New("没有错误码前缀")))
}
