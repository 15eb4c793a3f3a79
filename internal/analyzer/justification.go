/*
此文件实现写作质量报告的动态说明文本生成。
按章节键排序逐段输出，每段带类别、分数和最多一个来自明细的具体示例，
最后根据总分给出收尾建议。全程确定性，相同输入产出相同文本。
*/

package analyzer

import (
	"fmt"
	"strings"

	"resume-analyzer-go/internal/types"
)

// generateJustification 生成多段式说明文本
func (a *QualityAnalyzer) generateJustification(overallScore int, sections map[string]types.CategoryResult) string {
	lines := []string{fmt.Sprintf("Overall Score: %d/100.", overallScore)}

	var scoreLevel string
	switch {
	case overallScore >= 90:
		scoreLevel = "Excellent"
	case overallScore >= 80:
		scoreLevel = "Strong"
	case overallScore >= 65:
		scoreLevel = "Fair"
	case overallScore >= 50:
		scoreLevel = "Needs Significant Revision"
	default:
		scoreLevel = "Requires Major Overhaul"
	}
	lines = append(lines, fmt.Sprintf("Assessment: %s. This reflects the analysis across key resume components:", scoreLevel))
	lines = append(lines, "\n--- Detailed Analysis ---")

	for _, key := range sortedSectionKeys(sections) {
		if _, weighted := sectionWeights[key]; !weighted {
			continue
		}
		lines = append(lines, sectionFeedback(key, sections[key]))
	}

	lines = append(lines, "\n--- Overall Recommendation ---")
	switch {
	case overallScore >= 80:
		lines = append(lines, "Focus on minor refinements suggested.")
	case overallScore >= 60:
		lines = append(lines, "Prioritize addressing sections categorized as 'Low' or 'Very Low'.")
	default:
		lines = append(lines, "A comprehensive revision focusing on 'Very Low' and 'Low' rated sections is necessary.")
	}

	return strings.Join(lines, "\n")
}

// sectionFeedback 为单个章节生成反馈段落
func sectionFeedback(key string, result types.CategoryResult) string {
	var feedback []string
	name := titleCaseAll([]string{key})[0]
	feedback = append(feedback, fmt.Sprintf("\n* %s (Category: %s, Score: %d/100):", name, result.Category, result.Score))

	switch result.Category {
	case types.CategoryVeryHigh:
		feedback = append(feedback, "  - Outcome: Exceptionally strong performance.")
	case types.CategoryHigh:
		feedback = append(feedback, "  - Outcome: Strong performance, meets high standards.")
	case types.CategoryMedium:
		feedback = append(feedback, "  - Outcome: Adequate, meets baseline expectations but could be improved.")
	case types.CategoryLow:
		feedback = append(feedback, "  - Outcome: Below expectations; improvement recommended.")
	case types.CategoryVeryLow:
		feedback = append(feedback, "  - Outcome: Significantly below expectations; requires major attention.")
	}

	if detail := sectionDetailLine(key, result); detail != "" {
		feedback = append(feedback, detail)
	}

	return strings.Join(feedback, "\n")
}

// sectionDetailLine 从章节明细中挑选最有代表性的一个示例
func sectionDetailLine(key string, result types.CategoryResult) string {
	details := result.Details

	switch key {
	case "active_voice":
		if example, ok := firstStringOf(details, "passive_sentence_examples"); ok {
			return fmt.Sprintf("  - Detail: Passive voice used, e.g., \"%s\"", example)
		}
	case "action_verbs":
		if order, ok := details["weak_verb_order"].([]string); ok && len(order) > 0 {
			if examples, ok := details["weak_verb_examples"].(map[string]string); ok {
				verb := order[0]
				return fmt.Sprintf("  - Detail: Weak verbs noted, e.g., '%s' in \"%s\"", verb, examples[verb])
			}
		}
		if example, ok := firstStringOf(details, "missing_verb_bullet_examples"); ok {
			return fmt.Sprintf("  - Detail: Bullets lacking action verbs, e.g., \"%s\"", example)
		}
	case "quantifiable":
		if example, ok := firstStringOf(details, "non_quantified_impact_examples"); ok {
			return fmt.Sprintf("  - Detail: Impact statements lack metrics, e.g., \"%s\"", example)
		}
	case "skills_format":
		if example, ok := firstStringOf(details, "verbose_skill_examples"); ok {
			return fmt.Sprintf("  - Detail: Overly verbose skill entries found, e.g., '%s'", example)
		}
	case "sentence_structure":
		if example, ok := firstStringOf(details, "long_sentence_examples"); ok {
			return fmt.Sprintf("  - Detail: Overly long sentences found, e.g., %s", example)
		}
		if example, ok := firstStringOf(details, "short_sentence_examples"); ok {
			return fmt.Sprintf("  - Detail: Very short/choppy sentences found, e.g., %s", example)
		}
	case "bullet_points":
		if example, ok := firstStringOf(details, "long_bullet_examples"); ok {
			return fmt.Sprintf("  - Detail: Overly long bullet points found, e.g., %s", example)
		}
		if example, ok := firstStringOf(details, "short_bullet_examples"); ok {
			return fmt.Sprintf("  - Detail: Very brief bullet points found, e.g., %s", example)
		}
	case "completeness":
		if missing, ok := details["missing_essential_sections"].([]string); ok && len(missing) > 0 {
			return fmt.Sprintf("  - Detail: CRITICAL - Missing essential sections: %s.", strings.Join(titleCaseAll(missing), ", "))
		}
	}

	if issue, ok := details["issue"].(string); ok &&
		(result.Category == types.CategoryLow || result.Category == types.CategoryVeryLow) {
		return fmt.Sprintf("  - Issue: %s", issue)
	}
	return ""
}

// firstStringOf 取明细中某个字符串切片字段的第一个元素
func firstStringOf(details map[string]any, key string) (string, bool) {
	if list, ok := details[key].([]string); ok && len(list) > 0 {
		return list[0], true
	}
	return "", false
}
