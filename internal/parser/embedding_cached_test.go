package parser_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"resume-analyzer-go/internal/parser"
	"resume-analyzer-go/internal/storage"

	"github.com/cloudwego/eino/components/embedding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVectorCache 内存版VectorCache, 可注入读故障
type fakeVectorCache struct {
	vectors  map[string][]float64
	versions map[string]string
	getErr   error
	setCalls []string
}

func newFakeVectorCache() *fakeVectorCache {
	return &fakeVectorCache{
		vectors:  map[string][]float64{},
		versions: map[string]string{},
	}
}

func (f *fakeVectorCache) GetVector(ctx context.Context, cacheKey string) ([]float64, string, error) {
	if f.getErr != nil {
		return nil, "", f.getErr
	}
	vec, ok := f.vectors[cacheKey]
	if !ok {
		return nil, "", storage.ErrNotFound
	}
	return vec, f.versions[cacheKey], nil
}

func (f *fakeVectorCache) SetVector(ctx context.Context, cacheKey string, vector []float64, modelVersion string) error {
	f.vectors[cacheKey] = vector
	f.versions[cacheKey] = modelVersion
	f.setCalls = append(f.setCalls, cacheKey)
	return nil
}

// countingEmbedder 记录调用次数的底层嵌入器
type countingEmbedder struct {
	calls     int
	lastTexts []string
	err       error
}

func (c *countingEmbedder) EmbedStrings(ctx context.Context, texts []string, opts ...embedding.Option) ([][]float64, error) {
	return c.EmbedStringsWithIntent(ctx, texts, parser.IntentDocument)
}

func (c *countingEmbedder) EmbedStringsWithIntent(ctx context.Context, texts []string, intent parser.EmbedIntent) ([][]float64, error) {
	c.calls++
	c.lastTexts = texts
	if c.err != nil {
		return nil, c.err
	}
	out := make([][]float64, len(texts))
	for i := range texts {
		out[i] = []float64{float64(len(texts[i])), 1}
	}
	return out, nil
}

// TestCachedEmbedder_MissThenHit 首次未命中走API并写回, 二次全命中不再调用底层
func TestCachedEmbedder_MissThenHit(t *testing.T) {
	inner := &countingEmbedder{}
	cache := newFakeVectorCache()
	cached, err := parser.NewCachedEmbedder(inner, cache, "embed-english-v3.0")
	require.NoError(t, err)

	ctx := context.Background()
	texts := []string{"python", "aws"}

	first, err := cached.EmbedStringsWithIntent(ctx, texts, parser.IntentDocument)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, 1, inner.calls)
	require.Len(t, cache.setCalls, 2, "未命中的向量应写回缓存")
	for _, key := range cache.setCalls {
		assert.True(t, strings.HasPrefix(key, "embed_vec:"), "缓存key应带统一前缀, got %s", key)
	}

	second, err := cached.EmbedStringsWithIntent(ctx, texts, parser.IntentDocument)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls, "全命中时不应再调用底层嵌入器")
}

// TestCachedEmbedder_IntentSeparation 不同意图的向量不共用缓存条目
func TestCachedEmbedder_IntentSeparation(t *testing.T) {
	inner := &countingEmbedder{}
	cache := newFakeVectorCache()
	cached, err := parser.NewCachedEmbedder(inner, cache, "m1")
	require.NoError(t, err)

	ctx := context.Background()
	_, err = cached.EmbedStringsWithIntent(ctx, []string{"text"}, parser.IntentDocument)
	require.NoError(t, err)
	_, err = cached.EmbedStringsWithIntent(ctx, []string{"text"}, parser.IntentQuery)
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls, "文档/查询意图应各自未命中一次")
	assert.Len(t, cache.setCalls, 2)
}

// TestCachedEmbedder_ModelVersionMismatch 模型版本不一致的缓存条目视为未命中
func TestCachedEmbedder_ModelVersionMismatch(t *testing.T) {
	inner := &countingEmbedder{}
	cache := newFakeVectorCache()
	cached, err := parser.NewCachedEmbedder(inner, cache, "model-v2")
	require.NoError(t, err)

	ctx := context.Background()
	// 先用旧模型写入一条
	stale, err := parser.NewCachedEmbedder(&countingEmbedder{}, cache, "model-v1")
	require.NoError(t, err)
	_, err = stale.EmbedStringsWithIntent(ctx, []string{"text"}, parser.IntentDocument)
	require.NoError(t, err)

	_, err = cached.EmbedStringsWithIntent(ctx, []string{"text"}, parser.IntentDocument)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls, "不同模型版本的key不同, 必须回源")
}

// TestCachedEmbedder_CacheReadFailure 缓存读故障降级为直连API
func TestCachedEmbedder_CacheReadFailure(t *testing.T) {
	inner := &countingEmbedder{}
	cache := newFakeVectorCache()
	cache.getErr = fmt.Errorf("redis: connection pool timeout")
	cached, err := parser.NewCachedEmbedder(inner, cache, "m1")
	require.NoError(t, err)

	embeddings, err := cached.EmbedStringsWithIntent(context.Background(), []string{"a", "b"}, parser.IntentDocument)
	require.NoError(t, err, "缓存故障不应影响嵌入结果")
	require.Len(t, embeddings, 2)
	assert.Equal(t, 1, inner.calls)
}

// TestCachedEmbedder_PartialHit 部分命中时只把未命中文本发给底层
func TestCachedEmbedder_PartialHit(t *testing.T) {
	inner := &countingEmbedder{}
	cache := newFakeVectorCache()
	cached, err := parser.NewCachedEmbedder(inner, cache, "m1")
	require.NoError(t, err)

	ctx := context.Background()
	_, err = cached.EmbedStringsWithIntent(ctx, []string{"python"}, parser.IntentDocument)
	require.NoError(t, err)

	embeddings, err := cached.EmbedStringsWithIntent(ctx, []string{"python", "kafka"}, parser.IntentDocument)
	require.NoError(t, err)
	require.Len(t, embeddings, 2)
	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, []string{"kafka"}, inner.lastTexts, "已命中的文本不应重复嵌入")
}

// TestCachedEmbedder_InnerError 底层嵌入器报错时原样向上传递
func TestCachedEmbedder_InnerError(t *testing.T) {
	inner := &countingEmbedder{err: fmt.Errorf("upstream down")}
	cached, err := parser.NewCachedEmbedder(inner, newFakeVectorCache(), "m1")
	require.NoError(t, err)

	_, err = cached.EmbedStringsWithIntent(context.Background(), []string{"text"}, parser.IntentDocument)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream down")
}

// TestNewCachedEmbedder_Validation 依赖缺失时拒绝构建
func TestNewCachedEmbedder_Validation(t *testing.T) {
	_, err := parser.NewCachedEmbedder(nil, newFakeVectorCache(), "m1")
	assert.Error(t, err)

	_, err = parser.NewCachedEmbedder(&countingEmbedder{}, nil, "m1")
	assert.Error(t, err)
}

// TestCachedEmbedder_EmptyInput 空输入直接返回空切片
func TestCachedEmbedder_EmptyInput(t *testing.T) {
	inner := &countingEmbedder{}
	cached, err := parser.NewCachedEmbedder(inner, newFakeVectorCache(), "m1")
	require.NoError(t, err)

	embeddings, err := cached.EmbedStringsWithIntent(context.Background(), nil, parser.IntentDocument)
	require.NoError(t, err)
	require.NotNil(t, embeddings)
	assert.Empty(t, embeddings)
	assert.Zero(t, inner.calls)
}
