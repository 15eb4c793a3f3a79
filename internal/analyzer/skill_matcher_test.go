package analyzer_test

import (
	"context"
	"fmt"
	"testing"

	"resume-analyzer-go/internal/analyzer"
	"resume-analyzer-go/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatchSkills_Basic 测试典型的部分覆盖场景
func TestMatchSkills_Basic(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float64{
		"python":     {1, 0, 0},
		"aws":        {0, 1, 0},
		"kubernetes": {0, 0, 1},
	}}

	result := analyzer.MatchSkills(context.Background(), embedder,
		[]string{"Python", "AWS"},
		[]string{"Python", "AWS", "Kubernetes"},
		constants.SkillSimilarityThreshold)

	require.NotNil(t, result)
	assert.Equal(t, []string{"AWS", "Python"}, result.Found)
	assert.Equal(t, []string{"Kubernetes"}, result.Missing)
	assert.InDelta(t, 66.7, result.MatchPercentage, 0.01)

	detail, ok := result.MatchDetails["Python"]
	require.True(t, ok, "匹配明细应以JD原文为key")
	assert.Equal(t, "python", detail.BestMatch)
	assert.InDelta(t, 1.0, detail.Score, 1e-4)

	assert.Contains(t, result.UserJustification, "Covers 2/3 required skills.")
	assert.Contains(t, result.UserJustification, "Potential gaps in skills like: Kubernetes.")
	assert.Contains(t, result.InternalJustification, "Threshold=0.75")
}

// TestMatchSkills_EmptyJD JD无必备技能时视为全部覆盖
func TestMatchSkills_EmptyJD(t *testing.T) {
	embedder := &stubEmbedder{}
	result := analyzer.MatchSkills(context.Background(), embedder, []string{"Go"}, nil, 0.75)

	assert.Equal(t, 100.0, result.MatchPercentage)
	assert.Empty(t, result.Missing)
	assert.Contains(t, result.UserJustification, "No required skills listed")
	assert.Zero(t, embedder.calls, "无JD技能时不应调用嵌入服务")
}

// TestMatchSkills_EmptyResume 简历无技能时全部JD技能都缺失
func TestMatchSkills_EmptyResume(t *testing.T) {
	embedder := &stubEmbedder{}
	for _, threshold := range []float64{0.1, 0.5, 0.75, 0.99} {
		result := analyzer.MatchSkills(context.Background(), embedder,
			nil, []string{"Go", "go", "Rust"}, threshold)

		assert.Equal(t, 0.0, result.MatchPercentage, "threshold=%g", threshold)
		assert.Empty(t, result.Found)
		// 缺失列表等于去重归一化后的JD技能
		assert.Equal(t, []string{"Go", "Rust"}, result.Missing, "threshold=%g", threshold)
	}
	assert.Zero(t, embedder.calls)
}

// TestMatchSkills_EmbedderError 嵌入故障时降级为全部缺失, 不向上抛错
func TestMatchSkills_EmbedderError(t *testing.T) {
	embedder := &stubEmbedder{err: fmt.Errorf("connection refused")}
	result := analyzer.MatchSkills(context.Background(), embedder,
		[]string{"Python"}, []string{"Python", "AWS"}, 0.75)

	require.NotNil(t, result)
	assert.Equal(t, 0.0, result.MatchPercentage)
	assert.Equal(t, []string{"AWS", "Python"}, result.Missing)
	assert.Equal(t, "An internal error prevented skill comparison.", result.UserJustification)
	assert.Contains(t, result.InternalJustification, "Embedding/Similarity Error")
}

// TestMatchSkills_DedupAndCase 大小写重复的技能只计一次
func TestMatchSkills_DedupAndCase(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float64{
		"python": {1, 0},
	}}
	result := analyzer.MatchSkills(context.Background(), embedder,
		[]string{"PYTHON", "python"}, []string{"Python", "python!"}, 0.75)

	assert.Equal(t, 100.0, result.MatchPercentage)
	assert.Equal(t, []string{"Python"}, result.Found, "JD中的重复技能应去重且映射回首个原文")
	assert.Equal(t, 1, embedder.calls, "两侧技能应合并为一次批量嵌入")
}
