/*
此文件实现带Redis缓存的嵌入装饰器。
相同文本在同一模型、同一意图下的向量是确定的，缓存命中可以省掉一次API调用。
缓存层任何故障都只降级为直接调用提供方，不影响分析结果。
*/

package parser

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"resume-analyzer-go/internal/constants"
	"resume-analyzer-go/internal/logger"
	"resume-analyzer-go/internal/storage"

	"github.com/cloudwego/eino/components/embedding"
)

// VectorCache 向量缓存接口，由 storage.Redis 实现
type VectorCache interface {
	GetVector(ctx context.Context, cacheKey string) ([]float64, string, error)
	SetVector(ctx context.Context, cacheKey string, vector []float64, modelVersion string) error
}

// CachedEmbedder 在底层嵌入器外包一层向量缓存
type CachedEmbedder struct {
	inner IntentEmbedder
	cache VectorCache
	model string
}

// NewCachedEmbedder 创建带缓存的嵌入器。
// model 用于缓存key和模型版本校验，应与底层嵌入器配置一致。
func NewCachedEmbedder(inner IntentEmbedder, cache VectorCache, model string) (*CachedEmbedder, error) {
	if inner == nil {
		return nil, fmt.Errorf("底层嵌入器不能为空")
	}
	if cache == nil {
		return nil, fmt.Errorf("向量缓存不能为空")
	}
	return &CachedEmbedder{
		inner: inner,
		cache: cache,
		model: model,
	}, nil
}

// cacheKey 生成缓存key: 前缀 + sha256(model|intent|text)
func (c *CachedEmbedder) cacheKey(text string, intent EmbedIntent) string {
	sum := sha256.Sum256([]byte(c.model + "|" + string(intent) + "|" + text))
	return constants.EmbeddingCachePrefix + hex.EncodeToString(sum[:])
}

// EmbedStrings 实现 embedding.Embedder 接口，按文档意图处理
func (c *CachedEmbedder) EmbedStrings(ctx context.Context, texts []string, opts ...embedding.Option) ([][]float64, error) {
	return c.EmbedStringsWithIntent(ctx, texts, IntentDocument)
}

// EmbedStringsWithIntent 先查缓存, 只把未命中的文本发给底层嵌入器
func (c *CachedEmbedder) EmbedStringsWithIntent(ctx context.Context, texts []string, intent EmbedIntent) ([][]float64, error) {
	if len(texts) == 0 {
		return [][]float64{}, nil
	}

	results := make([][]float64, len(texts))
	var missTexts []string
	var missIndexes []int

	for i, text := range texts {
		key := c.cacheKey(text, intent)
		vector, modelVersion, err := c.cache.GetVector(ctx, key)
		if err == nil && modelVersion == c.model {
			results[i] = vector
			continue
		}
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			// 缓存读失败不致命，记录后走API
			logger.Debug().Err(err).Str("intent", string(intent)).Msg("读取向量缓存失败, 回退到嵌入API")
		}
		missTexts = append(missTexts, text)
		missIndexes = append(missIndexes, i)
	}

	if len(missTexts) == 0 {
		return results, nil
	}

	vectors, err := c.inner.EmbedStringsWithIntent(ctx, missTexts, intent)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(missTexts) {
		return nil, fmt.Errorf("嵌入向量数量(%d)与文本数量(%d)不匹配", len(vectors), len(missTexts))
	}

	for j, idx := range missIndexes {
		results[idx] = vectors[j]
		key := c.cacheKey(missTexts[j], intent)
		if err := c.cache.SetVector(ctx, key, vectors[j], c.model); err != nil {
			// 缓存写失败同样不致命
			logger.Debug().Err(err).Msg("写入向量缓存失败")
		}
	}

	return results, nil
}
