package analyzer_test

import (
	"context"

	"resume-analyzer-go/internal/parser"

	"github.com/cloudwego/eino/components/embedding"
)

// stubEmbedder 确定性测试嵌入器: 按归一化文本返回预设向量。
// 未登记的文本返回全零向量（与任何向量的相似度为0）。
type stubEmbedder struct {
	vectors map[string][]float64
	err     error
	// 记录每次调用的意图，便于断言查询/文档方向
	intents []parser.EmbedIntent
	calls   int
}

func (s *stubEmbedder) EmbedStrings(ctx context.Context, texts []string, opts ...embedding.Option) ([][]float64, error) {
	return s.EmbedStringsWithIntent(ctx, texts, parser.IntentDocument)
}

func (s *stubEmbedder) EmbedStringsWithIntent(ctx context.Context, texts []string, intent parser.EmbedIntent) ([][]float64, error) {
	s.calls++
	s.intents = append(s.intents, intent)
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float64, len(texts))
	for i, text := range texts {
		if vec, ok := s.vectors[text]; ok {
			out[i] = vec
		} else {
			out[i] = make([]float64, 8)
		}
	}
	return out, nil
}
