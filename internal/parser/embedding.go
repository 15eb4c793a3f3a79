/*
此文件定义了文本向量化的接口与嵌入意图类型。
匹配流水线的各个环节（技能匹配、职责匹配、摘要对比）都通过这里的接口获取向量，
便于在真实服务、缓存装饰器和测试mock之间自由替换。
*/

package parser

import (
	"context"
	"errors"

	"github.com/cloudwego/eino/components/embedding"
)

// EmbedIntent 表示一次嵌入请求的用途。
// 提供方（如Cohere）会根据用途对文本做不对称编码，
// 文档侧与查询侧使用不同的输入类型能显著提升检索质量。
type EmbedIntent string

const (
	// IntentDocument 文档侧嵌入，用于简历内容、技能清单等被检索的文本
	IntentDocument EmbedIntent = "document"
	// IntentQuery 查询侧嵌入，用于JD职责、JD摘要等发起检索的文本
	IntentQuery EmbedIntent = "query"
)

// ErrProviderUnavailable 表示嵌入服务不可用（未配置、网络失败或上游错误）。
// 上层匹配逻辑捕获该错误后会降级为"全部未匹配"而不是让整个分析失败。
var ErrProviderUnavailable = errors.New("嵌入服务不可用")

// IntentEmbedder 带意图的文本向量化接口。
// 它是 eino embedding.Embedder 的超集：EmbedStrings 默认按文档意图处理。
type IntentEmbedder interface {
	embedding.Embedder

	// EmbedStringsWithIntent 按指定意图将一批文本转换为向量。
	// 返回向量的顺序与输入文本一一对应。
	EmbedStringsWithIntent(ctx context.Context, texts []string, intent EmbedIntent) ([][]float64, error)
}
