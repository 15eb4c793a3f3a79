/*
此文件实现基于Cohere Embed API的向量化服务。
通过OpenAI风格的HTTP调用完成批量嵌入，支持文档/查询两种输入类型。
*/

package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"resume-analyzer-go/internal/config"

	"github.com/cloudwego/eino/components/embedding"
)

// CohereEmbedder 实现 IntentEmbedder 接口
type CohereEmbedder struct {
	apiKey     string
	model      string
	dimensions int
	httpClient *http.Client
	baseURL    string
}

// NewCohereEmbedder 创建新的Cohere Embedder
func NewCohereEmbedder(apiKey string, embeddingCfg config.CohereConfig) (*CohereEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API密钥不能为空")
	}

	model := embeddingCfg.Model
	if model == "" {
		model = "embed-english-v3.0" // Fallback default
	}
	dimensions := embeddingCfg.Dimensions
	if dimensions == 0 {
		dimensions = 1024 // Fallback default
	}
	baseURL := embeddingCfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.cohere.ai/v1/embed" // Fallback default
	}
	timeout := time.Duration(embeddingCfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	embedder := &CohereEmbedder{
		apiKey:     apiKey,
		model:      model,
		dimensions: dimensions,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}

	return embedder, nil
}

// GetDimensions 返回嵌入器配置的维度
func (c *CohereEmbedder) GetDimensions() int {
	return c.dimensions
}

// Model 返回嵌入器使用的模型名称
func (c *CohereEmbedder) Model() string {
	return c.model
}

// cohereEmbedRequest Cohere Embed请求结构
type cohereEmbedRequest struct {
	Texts     []string `json:"texts"`
	Model     string   `json:"model"`
	InputType string   `json:"input_type"`
	Truncate  string   `json:"truncate,omitempty"` // e.g., "END"
}

// cohereEmbedResponse Cohere Embed响应结构
type cohereEmbedResponse struct {
	ID         string      `json:"id"`
	Embeddings [][]float64 `json:"embeddings"`
	Texts      []string    `json:"texts"`
	Meta       *cohereMeta `json:"meta,omitempty"`
	// API错误时返回message字段（HTTP状态非200）
	Message string `json:"message,omitempty"`
}

// cohereMeta part of the response
type cohereMeta struct {
	BilledUnits struct {
		InputTokens int `json:"input_tokens"`
	} `json:"billed_units"`
}

// inputTypeFor 将嵌入意图映射为Cohere的input_type参数
func inputTypeFor(intent EmbedIntent) string {
	if intent == IntentQuery {
		return "search_query"
	}
	return "search_document"
}

// EmbedStrings 将文本转换为向量, 实现 cloudwego/eino embedding.Embedder 接口。
// 未指定意图时按文档侧处理。
func (c *CohereEmbedder) EmbedStrings(ctx context.Context, texts []string, opts ...embedding.Option) ([][]float64, error) {
	options := &embedding.Options{}
	embedding.GetCommonOptions(options, opts...)

	effectiveModel := c.model
	if options.Model != nil && *options.Model != "" {
		effectiveModel = *options.Model
	}

	return c.embed(ctx, texts, effectiveModel, IntentDocument)
}

// EmbedStringsWithIntent 按指定意图将一批文本转换为向量
func (c *CohereEmbedder) EmbedStringsWithIntent(ctx context.Context, texts []string, intent EmbedIntent) ([][]float64, error) {
	return c.embed(ctx, texts, c.model, intent)
}

func (c *CohereEmbedder) embed(ctx context.Context, texts []string, model string, intent EmbedIntent) ([][]float64, error) {
	if len(texts) == 0 {
		return [][]float64{}, nil
	}

	reqBody := cohereEmbedRequest{
		Texts:     texts,
		Model:     model,
		InputType: inputTypeFor(intent),
		Truncate:  "END",
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("序列化请求失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("创建HTTP请求失败: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: 发送HTTP请求失败: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: 读取响应体失败: %v", ErrProviderUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiError cohereEmbedResponse
		if json.Unmarshal(body, &apiError) == nil && apiError.Message != "" {
			return nil, fmt.Errorf("%w: API调用失败, 状态码: %d, 错误: %s", ErrProviderUnavailable, resp.StatusCode, apiError.Message)
		}
		return nil, fmt.Errorf("%w: API调用失败, 状态码: %d, 响应: %s", ErrProviderUnavailable, resp.StatusCode, string(body))
	}

	var embeddingResp cohereEmbedResponse
	if err := json.Unmarshal(body, &embeddingResp); err != nil {
		return nil, fmt.Errorf("解析响应JSON失败: %w, 响应体: %s", err, string(body))
	}

	if len(embeddingResp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("嵌入向量数量(%d)与文本数量(%d)不匹配", len(embeddingResp.Embeddings), len(texts))
	}

	return embeddingResp.Embeddings, nil
}
