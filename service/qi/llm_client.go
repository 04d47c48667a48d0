/*
 * @module service/qi/llm_client
 * @description 外部叙事服务HTTP客户端：超时受限、响应形状校验、不做重试
 * @architecture 评分引擎层 - 外部服务适配
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 叙事请求 -> HTTP POST -> 形状校验 -> 叙事结果/错误
 * @rules 客户端视外部服务为不可靠依赖：单次调用、固定超时，任何失败交由引擎落回模板
 * @dependencies net/http, encoding/json
 * @refs service/qi/qi_engine.go
 */

package qi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"qirhythm-service/service/models"
)

const narrativeTimeout = 5 * time.Second

// HTTPNarrativeClient 外部叙事服务客户端
type HTTPNarrativeClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPNarrativeClient 从环境变量 NARRATIVE_SERVICE_URL 创建客户端
// 未配置时返回 nil，引擎将直接使用模板叙事
func NewHTTPNarrativeClient() *HTTPNarrativeClient {
	baseURL := os.Getenv("NARRATIVE_SERVICE_URL")
	if baseURL == "" {
		return nil
	}
	return &HTTPNarrativeClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: narrativeTimeout,
		},
	}
}

// NewHTTPNarrativeClientWithURL 指定地址创建客户端（用于测试）
func NewHTTPNarrativeClientWithURL(baseURL string) *HTTPNarrativeClient {
	return &HTTPNarrativeClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: narrativeTimeout,
		},
	}
}

// narrativeResponse 外部服务响应载体
type narrativeResponse struct {
	Summary string   `json:"summary"`
	Trend   string   `json:"trend"`
	Advice  []string `json:"advice"`
}

// Interpret 调用外部叙事服务，单次调用不重试
func (c *HTTPNarrativeClient) Interpret(ctx context.Context, req NarrativeRequest) (*NarrativeResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("序列化叙事请求失败: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/interpret", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("创建HTTP请求失败: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("叙事服务请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("叙事服务返回异常状态: %d", resp.StatusCode)
	}

	var payload narrativeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("解析叙事响应失败: %w", err)
	}

	result := &NarrativeResult{
		Summary: payload.Summary,
		Trend:   models.QiTrend(payload.Trend),
		Advice:  payload.Advice,
	}
	if !validNarrative(result) {
		return nil, errors.New("叙事响应形状不合规")
	}
	return result, nil
}
