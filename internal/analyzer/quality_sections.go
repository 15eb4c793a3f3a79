/*
此文件实现写作质量分析的九个独立子分析。
每个子分析返回 (类别, 发现明细, 建议, error)，类别边界都是固定阈值；
错误由编排器统一降级为Medium，这里只负责算法本身。
*/

package analyzer

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"resume-analyzer-go/internal/types"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// categoryFromScore 把0-1的连续分数映射为五级类别
func categoryFromScore(score float64) types.Category {
	score100 := score * 100
	switch {
	case score100 >= 95:
		return types.CategoryVeryHigh
	case score100 >= 80:
		return types.CategoryHigh
	case score100 >= 55:
		return types.CategoryMedium
	case score100 >= 30:
		return types.CategoryLow
	default:
		return types.CategoryVeryLow
	}
}

// exampleOf 截断示例文本到80字符，超长加省略号
func exampleOf(text string) string {
	if len(text) > 80 {
		return text[:80] + "..."
	}
	return text
}

// analyzeLength 统计全部要点的总词数，惩罚过少和过剩的篇幅。
// 理想区间200-280词，高于350词按冗长降级。
func (a *QualityAnalyzer) analyzeLength(allBullets []string) (types.Category, map[string]any, []string, error) {
	totalWords := 0
	for _, bullet := range allBullets {
		if strings.TrimSpace(bullet) != "" {
			totalWords += wordCount(bullet)
		}
	}

	details := map[string]any{"total_bullet_meaningful_word_count": totalWords}
	var recs []string
	var category types.Category

	switch {
	case totalWords < 75:
		category = types.CategoryVeryLow
		recs = append(recs, "Bullet points critically lack detail. Significantly expand on actions, context, tools used, and quantifiable outcomes. Aim for 325-475 total meaningful words across all bullets.")
		details["issue"] = "Insufficient bullet point detail"
	case totalWords < 120:
		category = types.CategoryLow
		recs = append(recs, "Bullet points are sparse. Elaborate further on your contributions, methods, and results. Quantify achievements wherever possible (aim for 325-475 total words).")
	case totalWords < 200:
		category = types.CategoryMedium
		recs = append(recs, "Bullet points show some substance but can be more impactful. Focus on using stronger action verbs and adding specific, quantified results (aim for 325-475 total words).")
	case totalWords <= 280:
		category = types.CategoryVeryHigh
	case totalWords <= 320:
		category = types.CategoryHigh
		recs = append(recs, "Your bullet points are detailed. Ensure they remain concise and focused; check if any descriptions can be tightened without losing impact.")
	case totalWords <= 350:
		category = types.CategoryMedium
		recs = append(recs, "Bullet points seem quite verbose. Review carefully to remove redundant phrases or less critical information. Focus on conciseness for better readability.")
		details["issue"] = "Potentially verbose bullets"
	default:
		category = types.CategoryLow
		recs = append(recs, "Bullet points are excessively wordy, potentially hiding key achievements. Drastically shorten descriptions, focusing only on the most critical actions and quantifiable results.")
		details["issue"] = "Excessive bullet point verbosity"
	}

	return category, details, recs, nil
}

// analyzeActionVerbs 检查每个要点的首词是否为收录的动作动词，
// 综合平均动词力度、缺动词比例和动词多样性打分。
func (a *QualityAnalyzer) analyzeActionVerbs(allBullets []string) (types.Category, map[string]any, []string, error) {
	var verbScores []float64
	weakVerbExamples := map[string]string{}
	var weakVerbOrder []string
	var missingVerbExamples []string
	missingCount := 0
	var firstVerbs []string

	for _, bullet := range allBullets {
		clean := strings.TrimSpace(bullet)
		if clean == "" {
			continue
		}
		example := exampleOf(clean)
		words := strings.Fields(strings.ToLower(clean))
		if len(words) == 0 {
			continue
		}
		firstWord := strings.TrimFunc(words[0], func(r rune) bool {
			return !('a' <= r && r <= 'z')
		})

		if score, ok := a.lexicon.VerbScore(firstWord); ok {
			verbScores = append(verbScores, score)
			firstVerbs = append(firstVerbs, firstWord)
			if score < 0.5 {
				if _, seen := weakVerbExamples[firstWord]; !seen {
					weakVerbExamples[firstWord] = example
					weakVerbOrder = append(weakVerbOrder, firstWord)
				}
			}
		} else {
			missingCount++
			if len(missingVerbExamples) < 3 {
				missingVerbExamples = append(missingVerbExamples, example)
			}
		}
	}

	numBullets := len(allBullets)
	missingRatio := 0.0
	if numBullets > 0 {
		missingRatio = float64(missingCount) / float64(numBullets)
	}
	avgStrength := 0.0
	for _, s := range verbScores {
		avgStrength += s
	}
	if len(verbScores) > 0 {
		avgStrength /= float64(len(verbScores))
	}
	uniqueVerbs := map[string]struct{}{}
	for _, v := range firstVerbs {
		uniqueVerbs[v] = struct{}{}
	}
	diversityRatio := 0.0
	if len(firstVerbs) > 0 {
		diversityRatio = float64(len(uniqueVerbs)) / float64(len(firstVerbs))
	}

	details := map[string]any{
		"bullet_count":                 numBullets,
		"missing_verb_ratio":           round2(missingRatio),
		"avg_verb_strength_score":      round2(avgStrength),
		"diversity_ratio":              round2(diversityRatio),
		"weak_verb_examples":           weakVerbExamples,
		"missing_verb_bullet_examples": missingVerbExamples,
		"weak_verb_order":              weakVerbOrder,
	}
	var recs []string

	score := avgStrength
	if missingRatio > 0.5 {
		score -= 0.5
	} else if missingRatio > 0.2 {
		score -= 0.25
	}
	if len(firstVerbs) > 5 && diversityRatio < 0.5 {
		score -= 0.15
	}
	category := categoryFromScore(clip01(score))

	if avgStrength < 0.5 && len(weakVerbOrder) > 0 {
		verb := weakVerbOrder[0]
		recs = append(recs, fmt.Sprintf("Weak verbs identified (e.g., '%s' in \"%s\"). Replace with stronger alternatives.", verb, weakVerbExamples[verb]))
	}
	if len(missingVerbExamples) > 0 && missingRatio > 0.15 {
		recs = append(recs, fmt.Sprintf("Some bullets don't start with action verbs (e.g., \"%s\"). Ensure all start with a verb.", missingVerbExamples[0]))
	}

	if len(verbScores) == 0 && missingRatio == 1.0 {
		category = types.CategoryVeryLow
		recs = []string{"No bullet points appear to start with recognized action verbs."}
		details["issue"] = "No action verbs identified at start of bullets."
	}

	return category, details, recs, nil
}

// analyzeBulletPoints 检查要点结构: 每段经历的要点数、要点长度分布、动词开头比例
func (a *QualityAnalyzer) analyzeBulletPoints(allBullets []string, workExperience []types.WorkExperience) (types.Category, map[string]any, []string, error) {
	if len(workExperience) == 0 || len(allBullets) == 0 {
		return types.CategoryLow, map[string]any{"issue": "Missing work experience or bullets"},
			[]string{"Work experience section missing or lacks bullet points."}, nil
	}

	jobsWithZeroBullets := 0
	totalBulletSlots := 0
	for _, exp := range workExperience {
		count := len(exp.Responsibilities)
		totalBulletSlots += count
		if count == 0 {
			jobsWithZeroBullets++
		}
	}
	avgBulletsPerJob := float64(totalBulletSlots) / float64(len(workExperience))

	var longExamples, shortExamples []string
	totalLength := 0
	verbStartCount := 0
	for _, bullet := range allBullets {
		if bullet == "" {
			continue
		}
		length := wordCount(bullet)
		totalLength += length
		if length > 30 && len(longExamples) < 2 {
			longExamples = append(longExamples, fmt.Sprintf("\"%s...\" (%d words)", truncateExample(bullet, 80), length))
		}
		if length < 8 && len(shortExamples) < 2 {
			shortExamples = append(shortExamples, fmt.Sprintf("\"%s\" (%d words)", bullet, length))
		}
		words := strings.Fields(strings.ToLower(strings.TrimSpace(bullet)))
		if len(words) > 0 {
			if _, ok := a.lexicon.VerbScore(words[0]); ok {
				verbStartCount++
			}
		}
	}
	avgBulletLength := float64(totalLength) / float64(len(allBullets))
	verbStartRatio := float64(verbStartCount) / float64(len(allBullets))

	details := map[string]any{
		"total_bullets":                 len(allBullets),
		"total_jobs_analyzed":           len(workExperience),
		"jobs_with_zero_bullets":        jobsWithZeroBullets,
		"avg_bullets_per_job":           round1(avgBulletsPerJob),
		"avg_bullet_word_length":        round1(avgBulletLength),
		"percent_bullets_starting_verb": int(math.Round(verbStartRatio * 100)),
		"long_bullet_examples":          longExamples,
		"short_bullet_examples":         shortExamples,
	}

	// 四个0-1分量取平均
	var components []float64
	if jobsWithZeroBullets > 0 {
		components = append(components, 0.5)
	} else {
		components = append(components, 1.0)
	}
	if avgBulletsPerJob < 2 {
		components = append(components, 0.45)
	} else {
		components = append(components, 1.0)
	}
	if avgBulletLength < 8 || avgBulletLength > 30 {
		components = append(components, 0.6)
	} else {
		components = append(components, 1.0)
	}
	components = append(components, verbStartRatio)

	sum := 0.0
	for _, c := range components {
		sum += c
	}
	category := categoryFromScore(sum / float64(len(components)))

	return category, details, nil, nil
}

var (
	// 数字/百分比/货币金额
	numberPattern = regexp.MustCompile(`\b\d[\d,.]*%?\b|\$\s?\d[\d,.]*([kKmMbB])?\b`)
)

// 量化相关的影响力动词词干
var impactIndicators = []string{
	"increase", "decrease", "reduce", "improve", "generate", "save", "exceed", "grow",
	"optimize", "achieve", "deliver", "complete", "launch", "drive",
}

// analyzeQuantifiable 检查要点是否包含数字化的成果描述
func (a *QualityAnalyzer) analyzeQuantifiable(allBullets []string) (types.Category, map[string]any, []string, error) {
	if len(allBullets) == 0 {
		return types.CategoryLow, map[string]any{"issue": "Missing bullet points"},
			[]string{"Work experience section lacks bullets to quantify."}, nil
	}

	var quantifiedExamples, nonQuantifiedImpactExamples []string
	quantifiableCount := 0
	nonQuantifiedImpactCount := 0

	for _, bullet := range allBullets {
		clean := strings.TrimSpace(bullet)
		if clean == "" {
			continue
		}
		example := exampleOf(clean)
		lower := strings.ToLower(clean)
		hasNumber := numberPattern.MatchString(clean)
		hasImpact := false
		for _, indicator := range impactIndicators {
			if strings.Contains(lower, indicator) {
				hasImpact = true
				break
			}
		}

		if hasNumber {
			quantifiableCount++
			if len(quantifiedExamples) < 2 {
				quantifiedExamples = append(quantifiedExamples, example)
			}
		} else if hasImpact {
			nonQuantifiedImpactCount++
			if len(nonQuantifiedImpactExamples) < 2 {
				nonQuantifiedImpactExamples = append(nonQuantifiedImpactExamples, example)
			}
		}
	}

	quantRatio := float64(quantifiableCount) / float64(len(allBullets))
	category := categoryFromScore(clip01(quantRatio * 2.5))

	details := map[string]any{
		"total_bullets":                         len(allBullets),
		"quantified_bullet_count":               quantifiableCount,
		"quantified_ratio":                      round2(quantRatio),
		"impact_keywords_without_metrics_count": nonQuantifiedImpactCount,
		"quantified_bullet_examples":            quantifiedExamples,
		"non_quantified_impact_examples":        nonQuantifiedImpactExamples,
	}

	// 比例兜底覆盖
	if quantRatio == 0 {
		category = types.CategoryVeryLow
	}
	if quantRatio >= 0.3 && quantRatio < 0.4 && category == types.CategoryMedium {
		category = types.CategoryHigh
	}
	if quantRatio >= 0.4 {
		category = types.CategoryVeryHigh
	}

	return category, details, nil, nil
}

// analyzeSentenceStructure 分析要点内句子的长度分布
func (a *QualityAnalyzer) analyzeSentenceStructure(allBullets []string) (types.Category, map[string]any, []string, error) {
	if len(allBullets) == 0 {
		return types.CategoryLow, map[string]any{"issue": "No bullet points found"},
			[]string{"No bullet points to analyze for sentence structure."}, nil
	}

	var sentences []string
	for _, bullet := range allBullets {
		if strings.TrimSpace(bullet) != "" {
			sentences = append(sentences, SplitSentences(bullet)...)
		}
	}
	if len(sentences) == 0 {
		return types.CategoryLow, map[string]any{"issue": "No complete sentences found in bullet points"},
			[]string{"Review bullet points to ensure they form complete sentences where appropriate."}, nil
	}

	var longExamples, shortExamples []string
	var lengths []int
	total := 0
	for _, sentence := range sentences {
		length := wordCount(sentence)
		lengths = append(lengths, length)
		total += length
		example := exampleOf(sentence)
		if length > 30 && len(longExamples) < 2 {
			longExamples = append(longExamples, fmt.Sprintf("\"%s\" (%d words)", example, length))
		}
		if length < 5 && len(shortExamples) < 2 {
			shortExamples = append(shortExamples, fmt.Sprintf("\"%s\" (%d words)", example, length))
		}
	}

	avgLen := float64(total) / float64(len(lengths))
	variance := 0.0
	longCount, shortCount := 0, 0
	for _, length := range lengths {
		diff := float64(length) - avgLen
		variance += diff * diff
		if length > 30 {
			longCount++
		}
		if length < 5 {
			shortCount++
		}
	}
	stdDev := math.Sqrt(variance / float64(len(lengths)))

	details := map[string]any{
		"sentence_count":            len(sentences),
		"avg_sentence_length_words": round1(avgLen),
		"std_dev_sentence_length":   round1(stdDev),
		"long_sentence_count":       longCount,
		"short_sentence_count":      shortCount,
		"long_sentence_examples":    longExamples,
		"short_sentence_examples":   shortExamples,
	}
	var recs []string

	score := 1.0
	longRatio := float64(longCount) / float64(len(sentences))
	shortRatio := float64(shortCount) / float64(len(sentences))

	if longRatio > 0.2 || avgLen > 20 {
		score -= 0.3
		recs = append(recs, "Consider breaking down long bullet points into shorter, more digestible sentences.")
		if len(longExamples) > 0 {
			recs = append(recs, fmt.Sprintf("Examples of long sentences: %s", strings.Join(longExamples, ", ")))
		}
	}
	if shortRatio > 0.5 && avgLen < 10 {
		score -= 0.3
		recs = append(recs, "Ensure bullet points are sufficiently detailed. Some appear to be very short and might lack impact.")
		if len(shortExamples) > 0 {
			recs = append(recs, fmt.Sprintf("Examples of short sentences: %s", strings.Join(shortExamples, ", ")))
		}
	}
	if stdDev < 3 && avgLen > 8 && avgLen < 18 {
		// 健康长度区间内的低方差是好信号
		score += 0.1
		recs = append(recs, "Sentence length variation is good. Maintain a mix of sentence lengths for readability.")
	} else if stdDev > 7 {
		recs = append(recs, "Consider varying sentence lengths more to improve rhythm and engagement.")
	}

	return categoryFromScore(clip01(score)), details, recs, nil
}

// analyzePassiveVoice 统计被动句比例
func (a *QualityAnalyzer) analyzePassiveVoice(sentences []string) (types.Category, map[string]any, []string, error) {
	if len(sentences) == 0 {
		return types.CategoryVeryHigh, map[string]any{"issue": "No sentences found"}, nil, nil
	}

	var passiveExamples []string
	passiveCount := 0
	for _, sentence := range sentences {
		clean := strings.TrimSpace(sentence)
		if clean == "" {
			continue
		}
		if IsPassiveSentence(clean) {
			passiveCount++
			if len(passiveExamples) < 2 {
				passiveExamples = append(passiveExamples, exampleOf(clean))
			}
		}
	}

	passiveRatio := float64(passiveCount) / float64(len(sentences))
	details := map[string]any{
		"sentence_count":            len(sentences),
		"passive_sentence_count":    passiveCount,
		"passive_ratio":             round2(passiveRatio),
		"passive_sentence_examples": passiveExamples,
	}

	var category types.Category
	switch {
	case passiveRatio == 0:
		category = types.CategoryVeryHigh
	case passiveRatio <= 0.05:
		category = types.CategoryHigh
	case passiveRatio <= 0.15:
		category = types.CategoryMedium
	case passiveRatio <= 0.30:
		category = types.CategoryLow
	default:
		category = types.CategoryVeryLow
	}

	var recs []string
	if (category == types.CategoryLow || category == types.CategoryVeryLow) && len(passiveExamples) > 0 {
		recs = append(recs, fmt.Sprintf("High use of passive voice (%.0f%%). Rewrite passive sentences (e.g., \"%s\") into active voice.", passiveRatio*100, passiveExamples[0]))
	} else if category == types.CategoryMedium {
		recs = append(recs, fmt.Sprintf("Some passive voice (%.0f%%) detected. Review to ensure active voice is used.", passiveRatio*100))
	}

	return category, details, recs, nil
}

// analyzeCompleteness 检查必备章节与推荐章节的完整性。
// 缺任何必备章节直接判Very Low。
func (a *QualityAnalyzer) analyzeCompleteness(resume *types.ResumeData) (types.Category, map[string]any, []string, error) {
	present := map[string]bool{
		"personal_info":   len(resume.PersonalInfo) > 0,
		"education":       len(resume.Education) > 0,
		"work_experience": len(resume.WorkExperience) > 0,
		"keywords":        len(resume.Keywords) > 0,
		"summary":         strings.TrimSpace(resume.Summary) != "",
		"projects":        len(resume.Projects) > 0,
		"certifications":  len(resume.Certifications) > 0,
	}

	essential := []string{"education", "keywords", "personal_info", "work_experience"}
	recommended := []string{"certifications", "projects", "summary"}

	var presentSections, missingEssential, missingRecommended []string
	for section, ok := range present {
		if ok {
			presentSections = append(presentSections, section)
		}
	}
	sort.Strings(presentSections)
	for _, section := range essential {
		if !present[section] {
			missingEssential = append(missingEssential, section)
		}
	}
	presentRecommendedCount := 0
	for _, section := range recommended {
		if present[section] {
			presentRecommendedCount++
		} else {
			missingRecommended = append(missingRecommended, section)
		}
	}

	details := map[string]any{
		"present_sections":             presentSections,
		"missing_essential_sections":   missingEssential,
		"missing_recommended_sections": missingRecommended,
		"present_recommended_count":    presentRecommendedCount,
	}
	var recs []string
	var category types.Category

	if len(missingEssential) > 0 {
		category = types.CategoryVeryLow
		recs = append(recs, fmt.Sprintf("CRITICAL: Missing essential sections: %s. These must be included.", strings.Join(titleCaseAll(missingEssential), ", ")))
	} else if presentRecommendedCount == 0 {
		category = types.CategoryMedium
		recs = append(recs, "Consider adding optional sections like Summary, Projects, or Certifications.")
	} else {
		category = types.CategoryVeryHigh
	}

	return category, details, recs, nil
}

// analyzeSkillsFormat 检查技能列表的规模与简洁度
func (a *QualityAnalyzer) analyzeSkillsFormat(skills []string) (types.Category, map[string]any, []string, error) {
	if len(skills) == 0 {
		return types.CategoryLow, map[string]any{"issue": "Skills section missing or invalid"},
			[]string{"Skills section missing or empty."}, nil
	}

	var verboseExamples []string
	categorizedHeuristically := false
	for _, skill := range skills {
		if wordCount(skill) > 5 && len(verboseExamples) < 3 {
			verboseExamples = append(verboseExamples, skill)
		}
		if strings.Contains(skill, ":") {
			categorizedHeuristically = true
		}
	}
	verboseCount := 0
	for _, skill := range skills {
		if wordCount(skill) > 5 {
			verboseCount++
		}
	}

	details := map[string]any{
		"skill_count":                       len(skills),
		"verbose_skill_examples":            verboseExamples,
		"detected_categorization_heuristic": categorizedHeuristically,
	}
	var recs []string

	score := 0.9
	if len(skills) < 5 {
		score = 0.4
	}
	if float64(verboseCount)/float64(len(skills)) > 0.2 {
		score -= 0.4
		if score < 0.2 {
			score = 0.2
		}
	}
	if categorizedHeuristically && len(skills) > 10 {
		score += 0.1
		if score > 1.0 {
			score = 1.0
		}
	}
	category := categoryFromScore(score)
	if score >= 0.95 {
		category = types.CategoryVeryHigh
	}

	if len(verboseExamples) > 0 {
		recs = append(recs, fmt.Sprintf("Found %d verbose skills entries. Keep skills concise (1-3 words). Example: '%s'", len(verboseExamples), verboseExamples[0]))
	}

	return category, details, recs, nil
}

// analyzeIndustryFit 把简历技能与目标行业词表做模糊+子串匹配。
// 比例决定基础类别，绝对命中数可以向上强制提升——大技能表场景下比例会低估覆盖度。
func (a *QualityAnalyzer) analyzeIndustryFit(resumeText string, skills []string, industry string) (types.Category, map[string]any, []string, error) {
	targetIndustry := strings.ToLower(strings.TrimSpace(industry))
	if targetIndustry == "" {
		targetIndustry = "default"
	}

	industryKeywords := a.lexicon.SkillsForIndustry(targetIndustry)
	if targetIndustry == "default" || industryKeywords == nil {
		return types.CategoryNotAssessed,
			map[string]any{"issue": "No specific or valid industry provided for analysis."},
			[]string{"Industry fit not assessed: Target industry missing or invalid."}, nil
	}
	if len(industryKeywords) == 0 {
		return types.CategoryNotAssessed,
			map[string]any{"issue": fmt.Sprintf("No keywords defined for industry '%s'.", targetIndustry)},
			[]string{fmt.Sprintf("Industry fit not assessed: No keywords defined for '%s'.", targetIndustry)}, nil
	}

	keywordList := make([]string, 0, len(industryKeywords))
	for kw := range industryKeywords {
		keywordList = append(keywordList, kw)
	}
	sort.Strings(keywordList)

	matchedKeywords := map[string]struct{}{}
	keywordsInSkills := map[string]struct{}{}

	// 第一遍: 显式技能列表对行业词表做模糊匹配
	for _, skill := range skills {
		skillLower := strings.ToLower(skill)
		match, err := fuzzy.ExtractOne(skillLower, keywordList)
		if err != nil || match == nil {
			continue
		}
		if match.Score >= a.fuzzyMatchCutoff {
			matchedKeywords[match.Match] = struct{}{}
			keywordsInSkills[match.Match] = struct{}{}
		}
	}

	// 第二遍: 剩余词表对全文做子串匹配
	resumeLower := strings.ToLower(resumeText)
	for _, kw := range keywordList {
		if _, done := matchedKeywords[kw]; done {
			continue
		}
		if strings.Contains(resumeLower, kw) {
			matchedKeywords[kw] = struct{}{}
		}
	}

	absoluteMatches := len(matchedKeywords)
	matchRatio := float64(absoluteMatches) / float64(len(industryKeywords))

	category := types.CategoryVeryLow
	switch {
	case matchRatio >= 0.60:
		category = types.CategoryVeryHigh
	case matchRatio >= 0.40:
		category = types.CategoryHigh
	case matchRatio >= 0.20:
		category = types.CategoryMedium
	case matchRatio >= 0.05:
		category = types.CategoryLow
	}

	details := map[string]any{}

	// 绝对命中数强制提升
	switch {
	case absoluteMatches >= a.absoluteMatchVeryHigh:
		category = types.CategoryVeryHigh
		details["boost_reason"] = fmt.Sprintf("Boosted to Very High based on absolute match count (%d)", absoluteMatches)
	case absoluteMatches >= a.absoluteMatchHigh &&
		(category == types.CategoryMedium || category == types.CategoryLow || category == types.CategoryVeryLow):
		category = types.CategoryHigh
		details["boost_reason"] = fmt.Sprintf("Boosted to High based on absolute match count (%d)", absoluteMatches)
	case absoluteMatches >= a.absoluteMatchMedium &&
		(category == types.CategoryLow || category == types.CategoryVeryLow):
		category = types.CategoryMedium
		details["boost_reason"] = fmt.Sprintf("Boosted to Medium based on absolute match count (%d)", absoluteMatches)
	}

	foundInSkills := make([]string, 0, len(keywordsInSkills))
	for kw := range keywordsInSkills {
		foundInSkills = append(foundInSkills, kw)
	}
	sort.Strings(foundInSkills)

	details["target_industry"] = targetIndustry
	details["total_industry_keywords"] = len(industryKeywords)
	details["matched_keyword_count"] = absoluteMatches
	details["match_ratio"] = round2(matchRatio)
	details["keywords_found_in_skills"] = foundInSkills

	var recs []string
	switch category {
	case types.CategoryLow, types.CategoryVeryLow:
		recs = append(recs, fmt.Sprintf("Consider enhancing your profile with more keywords relevant to the '%s' industry to improve fit.", targetIndustry))
	case types.CategoryMedium:
		recs = append(recs, fmt.Sprintf("You have a moderate keyword match for the '%s' industry. Adding more specific keywords could strengthen your profile.", targetIndustry))
	}

	return category, details, recs, nil
}

var (
	phonePattern = regexp.MustCompile(`(?i)^[\d\s\-\+\(\)ext.]+$`)
)

// checkContactInfo 联系方式完整性检查，只产出建议不计分
func (a *QualityAnalyzer) checkContactInfo(personalInfo map[string]string) []string {
	if len(personalInfo) == 0 {
		return []string{"Missing personal information section with contact details."}
	}

	present := map[string]bool{}
	for key, value := range personalInfo {
		if strings.TrimSpace(value) != "" {
			present[key] = true
		}
	}

	var recs []string
	var missingRequired []string
	for _, field := range []string{"email", "name", "phone"} {
		if !present[field] {
			missingRequired = append(missingRequired, field)
		}
	}
	if len(missingRequired) > 0 {
		recs = append(recs, fmt.Sprintf("CRITICAL: Missing essential contact info: %s. Add these immediately.", strings.Join(missingRequired, ", ")))
	}

	if email := personalInfo["email"]; email != "" {
		at := strings.LastIndex(email, "@")
		if at < 0 || !strings.Contains(email[at+1:], ".") {
			recs = append(recs, "Warning: Email address format seems invalid. Please double-check.")
		}
	}
	if phone := personalInfo["phone"]; phone != "" && !phonePattern.MatchString(phone) {
		recs = append(recs, "Warning: Phone number format seems potentially unusual. Please verify.")
	}

	if !present["linkedin"] && !present["linkedin_url"] {
		recs = append(recs, "Consider adding your LinkedIn profile URL.")
	}
	if !present["location"] {
		recs = append(recs, "Consider adding your general location (e.g., 'City, State').")
	}
	if !present["portfolio"] && !present["website"] && !present["github"] && !present["personal_website"] {
		recs = append(recs, "Consider adding a link to your Portfolio/GitHub/Personal Website if applicable.")
	}

	return recs
}

// titleCaseAll 把snake_case字段名转成标题形式, 如 work_experience -> Work Experience
func titleCaseAll(fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		words := strings.Split(field, "_")
		for i, word := range words {
			if word != "" {
				words[i] = strings.ToUpper(word[:1]) + word[1:]
			}
		}
		out = append(out, strings.Join(words, " "))
	}
	return out
}
