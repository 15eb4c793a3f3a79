package analyzer_test

import (
	"testing"

	"resume-analyzer-go/internal/analyzer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCosineSimilarityMatrix_Dimensions 矩阵维度应为 len(a) x len(b)
func TestCosineSimilarityMatrix_Dimensions(t *testing.T) {
	a := [][]float64{{1, 0}, {0, 1}, {1, 1}}
	b := [][]float64{{1, 0}, {0, 1}}

	matrix := analyzer.CosineSimilarityMatrix(a, b)
	require.Len(t, matrix, 3)
	for _, row := range matrix {
		assert.Len(t, row, 2)
	}
}

// TestCosineSimilarityMatrix_Values 验证典型相似度取值
func TestCosineSimilarityMatrix_Values(t *testing.T) {
	a := [][]float64{{1, 0}}
	b := [][]float64{
		{1, 0},  // 同向
		{0, 1},  // 正交
		{5, 0},  // 同向非单位
		{-1, 0}, // 反向, 裁剪到0
		{3, 4},  // cos = 0.6
	}

	matrix := analyzer.CosineSimilarityMatrix(a, b)
	require.Len(t, matrix, 1)
	assert.InDelta(t, 1.0, matrix[0][0], 1e-9)
	assert.InDelta(t, 0.0, matrix[0][1], 1e-9)
	assert.InDelta(t, 1.0, matrix[0][2], 1e-9, "非单位向量也应先归一化")
	assert.Equal(t, 0.0, matrix[0][3], "负相似度应裁剪为0")
	assert.InDelta(t, 0.6, matrix[0][4], 1e-9)
}

// TestCosineSimilarityMatrix_Range 任意输入下所有元素都应在[0,1]内
func TestCosineSimilarityMatrix_Range(t *testing.T) {
	a := [][]float64{
		{-3, 7, 0.001, -250},
		{0, 0, 0, 0}, // 零向量
		{1e9, -1e9, 1e-9, 42},
	}
	b := [][]float64{
		{-1, -1, -1, -1},
		{1000, 0.5, -2, 8},
		{0, 0, 0, 0},
	}

	matrix := analyzer.CosineSimilarityMatrix(a, b)
	for i, row := range matrix {
		for j, v := range row {
			assert.GreaterOrEqual(t, v, 0.0, "matrix[%d][%d]越下界", i, j)
			assert.LessOrEqual(t, v, 1.0, "matrix[%d][%d]越上界", i, j)
		}
	}
	// 零向量行与任何向量的相似度都是0
	for j := range b {
		assert.Equal(t, 0.0, matrix[1][j])
	}
}

// TestCosineSimilarityMatrix_EmptyInput 空输入返回空矩阵而不是panic
func TestCosineSimilarityMatrix_EmptyInput(t *testing.T) {
	matrix := analyzer.CosineSimilarityMatrix(nil, [][]float64{{1, 0}})
	assert.Empty(t, matrix)

	matrix = analyzer.CosineSimilarityMatrix([][]float64{{1, 0}, {0, 1}}, nil)
	require.Len(t, matrix, 2)
	assert.Nil(t, matrix[0], "b为空时各行不应被填充")
}
