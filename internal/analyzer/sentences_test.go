package analyzer_test

import (
	"testing"

	"resume-analyzer-go/internal/analyzer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitSentences 测试句子切分的标点与缩写保护规则
func TestSplitSentences(t *testing.T) {
	text := "Worked at Acme Inc. since 2020. Improved latency by 3.5 percent! Was it effective? Yes."
	sentences := analyzer.SplitSentences(text)

	require.Len(t, sentences, 4)
	assert.Equal(t, "Worked at Acme Inc. since 2020.", sentences[0], "缩写后的句点不应切分")
	assert.Equal(t, "Improved latency by 3.5 percent!", sentences[1], "小数点不应切分")
	assert.Equal(t, "Was it effective?", sentences[2])
	assert.Equal(t, "Yes.", sentences[3])
}

// TestSplitSentences_Newlines 换行也是句子边界
func TestSplitSentences_Newlines(t *testing.T) {
	sentences := analyzer.SplitSentences("Led platform team\nShipped the v2 release")
	require.Len(t, sentences, 2)
	assert.Equal(t, "Led platform team", sentences[0])
}

// TestSplitSentences_Empty 空文本与纯空白不产生句子
func TestSplitSentences_Empty(t *testing.T) {
	assert.Empty(t, analyzer.SplitSentences(""))
	assert.Empty(t, analyzer.SplitSentences("   \n  \n"))
}

// TestIsPassiveSentence 测试被动语态识别
func TestIsPassiveSentence(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		passive  bool
	}{
		{"be+分词+by施事者", "The system was designed by the team.", true},
		{"紧邻be+分词", "Reports were generated weekly.", true},
		{"be+副词+分词", "The product was successfully launched.", true},
		{"不规则分词", "The decision was made early.", true},
		{"主动语态", "Led a team of five engineers.", false},
		{"be+形容词修饰名词", "He was a dedicated engineer.", false},
		{"无be动词", "Developed microservices in Go.", false},
		{"空句", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.passive, analyzer.IsPassiveSentence(tt.sentence))
		})
	}
}
