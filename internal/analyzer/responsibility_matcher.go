/*
此文件实现JD职责与简历职责的定向语义匹配。
与技能匹配不同: JD职责按查询意图嵌入、简历职责按文档意图嵌入（JD短语检索简历内容），
并引入 0.7×threshold 的次级阈值形成"可能匹配"层——职责措辞比技能名变化大得多，
接近阈值的相似度仍然说明有相关经验，计分时按0.5权重计入。
*/

package analyzer

import (
	"context"
	"fmt"
	"strings"

	"resume-analyzer-go/internal/constants"
	"resume-analyzer-go/internal/parser"
	"resume-analyzer-go/internal/types"
)

// respAssessmentLevels 职责覆盖率到定性评价的映射
var respAssessmentLevels = []assessmentLevel{
	{65.0, "Suggests good coverage of related duties."},
	{40.0, "Suggests moderate coverage with some gaps."},
	{20.0, "Suggests partial coverage of duties."},
	{0.0, "Suggests limited connection to listed duties."},
}

// MatchResponsibilities 比较简历职责与JD职责。
// threshold 为完全匹配阈值（通常0.50），部分匹配阈值为其70%。
func MatchResponsibilities(ctx context.Context, embedder parser.IntentEmbedder, resumeResps, jdResps []string, threshold float64) *types.ResponsibilityMatchResult {
	result := &types.ResponsibilityMatchResult{
		Matched:         []string{},
		PossiblyMatched: []string{},
		Missing:         []string{},
		MatchDetails:    map[string]types.MatchDetail{},
	}
	var internalNotes []string
	partialThreshold := threshold * constants.PartialMatchFactor

	if len(jdResps) == 0 {
		result.UserJustification = "No key responsibilities listed in the job description."
		result.InternalJustification = "No JD responsibilities."
		return result
	}

	uniqueJD, jdMap := NormalizeUnique(jdResps)
	uniqueResume, resumeMap := NormalizeUnique(resumeResps)
	totalJDUnique := len(uniqueJD)
	internalNotes = append(internalNotes, fmt.Sprintf(
		"Compared %d JD resp (query) vs %d resume resp (doc). Threshold=%g (Partial=%.2f).",
		totalJDUnique, len(uniqueResume), threshold, partialThreshold))

	if totalJDUnique == 0 || len(uniqueResume) == 0 {
		result.Missing = mapBack(uniqueJD, jdMap)
		result.UserJustification = "Could not compare responsibilities due to lack of valid entries in JD or resume after processing."
		internalNotes = append(internalNotes, "One list empty post-processing.")
		result.InternalJustification = strings.Join(internalNotes, " ")
		if len(uniqueResume) > 0 {
			result.MatchPercentage = 100.0
		}
		return result
	}

	// JD作为查询、简历作为文档，两次定向嵌入
	jdEmbeddings, err := embedder.EmbedStringsWithIntent(ctx, uniqueJD, parser.IntentQuery)
	if err == nil && len(jdEmbeddings) != totalJDUnique {
		err = fmt.Errorf("JD嵌入数量不匹配")
	}
	var resumeEmbeddings [][]float64
	if err == nil {
		resumeEmbeddings, err = embedder.EmbedStringsWithIntent(ctx, uniqueResume, parser.IntentDocument)
		if err == nil && len(resumeEmbeddings) != len(uniqueResume) {
			err = fmt.Errorf("简历嵌入数量不匹配")
		}
	}
	if err != nil {
		internalNotes = append(internalNotes, fmt.Sprintf("Embedding/Similarity Error: %v.", err))
		result.Missing = mapBack(uniqueJD, jdMap)
		result.UserJustification = "An internal error prevented responsibility comparison."
		result.InternalJustification = strings.Join(internalNotes, " ")
		return result
	}

	matrix := CosineSimilarityMatrix(jdEmbeddings, resumeEmbeddings)

	var matchedPP, possiblePP, missingPP []string
	for i, jdResp := range uniqueJD {
		bestScore, bestIdx := maxInRow(matrix[i])
		switch {
		case bestScore >= threshold && bestIdx >= 0:
			matchedPP = append(matchedPP, jdResp)
		case bestScore >= partialThreshold && bestIdx >= 0:
			possiblePP = append(possiblePP, jdResp)
		default:
			missingPP = append(missingPP, jdResp)
			continue
		}
		result.MatchDetails[displayName(jdResp, jdMap)] = types.MatchDetail{
			BestMatch: displayName(uniqueResume[bestIdx], resumeMap),
			Score:     round4(bestScore),
		}
	}

	// 部分匹配按半个计入覆盖率
	effectiveCount := float64(len(matchedPP)) + 0.5*float64(len(possiblePP))
	result.MatchPercentage = round1(effectiveCount / float64(totalJDUnique) * 100)
	internalNotes = append(internalNotes, fmt.Sprintf(
		"Match Percentage: %g%% (Full: %d, Partial: %d).", result.MatchPercentage, len(matchedPP), len(possiblePP)))

	result.Matched = mapBack(matchedPP, jdMap)
	result.PossiblyMatched = mapBack(possiblePP, jdMap)
	result.Missing = mapBack(missingPP, jdMap)
	result.InternalJustification = strings.Join(internalNotes, " ")

	// 用户侧说明
	userParts := []string{"Duty Alignment Check:"}
	if len(matchedPP) > 0 || len(possiblePP) > 0 {
		userParts = append(userParts, fmt.Sprintf(
			"Resume shows experience related to %d/%d listed duties, with potential partial matches on %d more.",
			len(matchedPP), totalJDUnique, len(possiblePP)))
		var examples []string
		if len(result.Matched) > 0 {
			examples = append(examples, fmt.Sprintf("clear matches like '%s'", truncateExample(result.Matched[0], 50)))
		}
		if len(result.PossiblyMatched) > 0 {
			examples = append(examples, fmt.Sprintf("possible matches like '%s'", truncateExample(result.PossiblyMatched[0], 50)))
		}
		if len(examples) > 0 {
			userParts = append(userParts, fmt.Sprintf("Examples include %s.", strings.Join(examples, ", ")))
		}
	} else {
		userParts = append(userParts, fmt.Sprintf(
			"Limited direct connection found between specific resume examples and the %d general duties listed.", totalJDUnique))
	}
	userParts = append(userParts, qualitativeAssessment(result.MatchPercentage, respAssessmentLevels))
	userParts = append(userParts, "Partial matches receive half credit in scoring.")
	result.UserJustification = strings.Join(userParts, " ")

	return result
}

// truncateExample 截断示例文本，超长时加省略号
func truncateExample(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "..."
}
