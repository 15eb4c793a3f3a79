/*
此文件实现JD必备技能与简历技能的语义匹配。
两侧技能统一按文档意图嵌入（技能名匹配更接近文档间亲和度查找，而非非对称检索），
一次批量调用完成全部嵌入，按阈值判定每个JD技能是否被简历覆盖。
嵌入服务故障时降级为"全部缺失"并附内部错误说明，绝不向上抛出。
*/

package analyzer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"resume-analyzer-go/internal/parser"
	"resume-analyzer-go/internal/types"
)

// skillAssessmentLevels 技能匹配率到定性评价的映射，按阈值降序
var skillAssessmentLevels = []assessmentLevel{
	{85.0, "Excellent alignment."},
	{65.0, "Good alignment."},
	{40.0, "Moderate alignment."},
	{0.0, "Low alignment."},
}

type assessmentLevel struct {
	threshold  float64
	assessment string
}

// qualitativeAssessment 按降序阈值表选取定性评价
func qualitativeAssessment(scorePercent float64, levels []assessmentLevel) string {
	for _, level := range levels {
		if scorePercent >= level.threshold {
			return level.assessment
		}
	}
	return levels[len(levels)-1].assessment
}

// MatchSkills 将简历技能与JD必备技能做语义匹配。
// threshold 为判定匹配的最低相似度（通常0.75）。
func MatchSkills(ctx context.Context, embedder parser.IntentEmbedder, resumeSkills, jdSkills []string, threshold float64) *types.SkillMatchResult {
	result := &types.SkillMatchResult{
		Found:        []string{},
		Missing:      []string{},
		MatchDetails: map[string]types.MatchDetail{},
	}
	var internalNotes []string

	if len(jdSkills) == 0 {
		result.MatchPercentage = 100.0
		result.UserJustification = "No required skills listed in the job description to compare against."
		result.InternalJustification = "No JD skills."
		return result
	}
	if len(resumeSkills) == 0 {
		uniqueJD, jdMap := NormalizeUnique(jdSkills)
		result.Missing = mapBack(uniqueJD, jdMap)
		result.UserJustification = fmt.Sprintf("No relevant skills identified in the resume to match the %d required job skills.", len(result.Missing))
		result.InternalJustification = "No resume skills."
		return result
	}

	uniqueResume, _ := NormalizeUnique(resumeSkills)
	uniqueJD, jdMap := NormalizeUnique(jdSkills)
	totalJDUnique := len(uniqueJD)
	internalNotes = append(internalNotes, fmt.Sprintf(
		"Compared %d unique JD skills vs %d resume skills. Threshold=%g.", totalJDUnique, len(uniqueResume), threshold))

	if totalJDUnique == 0 || len(uniqueResume) == 0 {
		result.Missing = mapBack(uniqueJD, jdMap)
		result.UserJustification = "Could not perform skill comparison due to lack of valid skills in JD or resume after processing."
		internalNotes = append(internalNotes, "One list empty post-processing.")
		result.InternalJustification = strings.Join(internalNotes, " ")
		return result
	}

	// 两侧合并为一个批次，减少API往返
	allSkills := append(append([]string{}, uniqueResume...), uniqueJD...)
	embeddings, err := embedder.EmbedStringsWithIntent(ctx, allSkills, parser.IntentDocument)
	if err != nil || len(embeddings) != len(allSkills) {
		if err == nil {
			err = fmt.Errorf("嵌入向量数量不匹配")
		}
		internalNotes = append(internalNotes, fmt.Sprintf("Embedding/Similarity Error: %v.", err))
		result.Missing = mapBack(uniqueJD, jdMap)
		result.UserJustification = "An internal error prevented skill comparison."
		result.InternalJustification = strings.Join(internalNotes, " ")
		return result
	}

	resumeEmbeddings := embeddings[:len(uniqueResume)]
	jdEmbeddings := embeddings[len(uniqueResume):]
	matrix := CosineSimilarityMatrix(jdEmbeddings, resumeEmbeddings)

	var foundPP, missingPP []string
	for i, jdSkill := range uniqueJD {
		bestScore, bestIdx := maxInRow(matrix[i])
		if bestScore >= threshold && bestIdx >= 0 {
			foundPP = append(foundPP, jdSkill)
			result.MatchDetails[displayName(jdSkill, jdMap)] = types.MatchDetail{
				BestMatch: uniqueResume[bestIdx],
				Score:     round4(bestScore),
			}
		} else {
			missingPP = append(missingPP, jdSkill)
		}
	}

	result.Found = mapBack(foundPP, jdMap)
	result.Missing = mapBack(missingPP, jdMap)
	foundCount := len(result.Found)
	result.MatchPercentage = round1(float64(foundCount) / float64(totalJDUnique) * 100)
	internalNotes = append(internalNotes, fmt.Sprintf("Match Percentage: %g%%.", result.MatchPercentage))
	result.InternalJustification = strings.Join(internalNotes, " ")

	// 用户侧说明: 定性评价 + 覆盖计数 + 最多2个缺口示例
	userParts := []string{fmt.Sprintf("Skill Check: %s", qualitativeAssessment(result.MatchPercentage, skillAssessmentLevels))}
	if foundCount > 0 {
		userParts = append(userParts, fmt.Sprintf("Covers %d/%d required skills.", foundCount, totalJDUnique))
	}
	if len(result.Missing) > 0 {
		examples := result.Missing
		suffix := "."
		if len(examples) > 2 {
			examples = examples[:2]
			suffix = "..."
		}
		userParts = append(userParts, fmt.Sprintf("Potential gaps in skills like: %s%s", strings.Join(examples, ", "), suffix))
	}
	result.UserJustification = strings.Join(userParts, " ")

	return result
}

// displayName 归一化形式映射回首次出现的原文，找不到时原样返回
func displayName(normalized string, originalMap map[string]string) string {
	if original, ok := originalMap[normalized]; ok {
		return original
	}
	return normalized
}

// mapBack 把归一化列表映射回原文并排序
func mapBack(normalized []string, originalMap map[string]string) []string {
	out := make([]string, 0, len(normalized))
	for _, n := range normalized {
		out = append(out, displayName(n, originalMap))
	}
	sort.Strings(out)
	return out
}
