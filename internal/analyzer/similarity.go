/*
此文件实现批量余弦相似度计算。
先对两组向量做行归一化（零向量映射为零，避免除零），再做点积，
最后把每个元素裁剪到[0,1]，防止浮点误差产生1.0000001这类越界值。
*/

package analyzer

import "math"

// CosineSimilarityMatrix 计算两组向量间的余弦相似度矩阵。
// 返回 len(a) x len(b) 的矩阵，所有元素在[0,1]内。
// 任一输入为空时返回对应维度为零的空矩阵，调用方索引前必须检查维度。
func CosineSimilarityMatrix(a, b [][]float64) [][]float64 {
	matrix := make([][]float64, len(a))
	if len(a) == 0 || len(b) == 0 {
		return matrix
	}

	normalizedA := normalizeRows(a)
	normalizedB := normalizeRows(b)

	for i, rowA := range normalizedA {
		matrix[i] = make([]float64, len(normalizedB))
		for j, rowB := range normalizedB {
			matrix[i][j] = clip01(dot(rowA, rowB))
		}
	}
	return matrix
}

// normalizeRows 对每一行做L2归一化，零向量行保持全零
func normalizeRows(vectors [][]float64) [][]float64 {
	normalized := make([][]float64, len(vectors))
	for i, vec := range vectors {
		norm := 0.0
		for _, v := range vec {
			norm += v * v
		}
		norm = math.Sqrt(norm)

		row := make([]float64, len(vec))
		if norm > 0 {
			for j, v := range vec {
				row[j] = v / norm
			}
		}
		normalized[i] = row
	}
	return normalized
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// maxInRow 返回一行中的最大值和其索引，空行返回(0, -1)。
// 并列时取最小索引。
func maxInRow(row []float64) (float64, int) {
	if len(row) == 0 {
		return 0.0, -1
	}
	best := row[0]
	bestIdx := 0
	for i := 1; i < len(row); i++ {
		if row[i] > best {
			best = row[i]
			bestIdx = i
		}
	}
	return best, bestIdx
}

// round4 四舍五入到4位小数，用于匹配分数展示
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// round2 四舍五入到2位小数
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 四舍五入到1位小数
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
