package analyzer_test

import (
	"testing"

	"resume-analyzer-go/internal/analyzer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalize_Basic 测试归一化的基本规则
func TestNormalize_Basic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"小写转换", "Python 3", "python 3"},
		{"去标点", "C++, Java & Go!", "c java go"},
		{"保留连字符和斜杠", "CI/CD pipelines - self-hosted", "ci/cd pipelines - self-hosted"},
		{"折叠空白", "  machine \t learning \n ops  ", "machine learning ops"},
		{"空字符串", "", ""},
		{"纯标点", "!!! ???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, analyzer.Normalize(tt.input))
		})
	}
}

// TestNormalize_Idempotent 归一化应是幂等的
func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Python 3", "  Weird   SPACING!! ", "ci/cd", "数据分析, NLP"}
	for _, input := range inputs {
		once := analyzer.Normalize(input)
		assert.Equal(t, once, analyzer.Normalize(once), "Normalize应满足幂等性, input=%q", input)
	}
}

// TestNormalize_CaseInsensitiveEquality 大小写与标点差异不应影响归一化结果
func TestNormalize_CaseInsensitiveEquality(t *testing.T) {
	assert.Equal(t, analyzer.Normalize("Python 3"), analyzer.Normalize("python 3"))
	assert.Equal(t, analyzer.Normalize("Node.js"), analyzer.Normalize("nodejs"))
}

// TestNormalizeUnique 测试批量归一化去重与原文映射
func TestNormalizeUnique(t *testing.T) {
	unique, originalMap := analyzer.NormalizeUnique([]string{"Python 3", "python 3", "AWS", "  ", "!!!"})

	require.Equal(t, []string{"aws", "python 3"}, unique, "结果应排序且去重, 空白项被丢弃")
	// 映射应保留首次出现的原文
	assert.Equal(t, "Python 3", originalMap["python 3"])
	assert.Equal(t, "AWS", originalMap["aws"])
}

// TestNormalizeUnique_Empty 空输入返回空结果
func TestNormalizeUnique_Empty(t *testing.T) {
	unique, originalMap := analyzer.NormalizeUnique(nil)
	assert.Empty(t, unique)
	assert.Empty(t, originalMap)
}
