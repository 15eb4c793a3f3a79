/*
此文件实现写作质量分析的编排器。
九个子分析独立执行，任何一个panic或报错都只把该项降级为Medium并附错误明细，
绝不中断其余分析。总分为各项类别分数按固定权重归一化后的加权和。
*/

package analyzer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"resume-analyzer-go/internal/constants"
	"resume-analyzer-go/internal/logger"
	"resume-analyzer-go/internal/types"
)

// scoreCategories 类别到数值分数的固定映射
var scoreCategories = map[types.Category]int{
	types.CategoryVeryLow:  20,
	types.CategoryLow:      45,
	types.CategoryMedium:   70,
	types.CategoryHigh:     85,
	types.CategoryVeryHigh: 100,
	// 未评估和错误哨兵按中性处理
	types.CategoryNotAssessed: 70,
	types.CategoryError:       70,
}

// sectionWeights 各子分析的权重。
// grammar_spelling 在权重表中保留位置但没有对应子分析，
// 计算总分时只在九个活跃项上归一化。
var sectionWeights = map[string]float64{
	"length":             0.05,
	"action_verbs":       0.15,
	"bullet_points":      0.10,
	"quantifiable":       0.15,
	"sentence_structure": 0.05,
	"active_voice":       0.10,
	"completeness":       0.10,
	"skills_format":      0.05,
	"industry_fit":       0.15,
	"grammar_spelling":   0.10, // reserved, no sub-analysis
}

// QualityAnalyzer 简历写作质量分析器
type QualityAnalyzer struct {
	lexicon *Lexicon

	fuzzyMatchCutoff      int
	absoluteMatchVeryHigh int
	absoluteMatchHigh     int
	absoluteMatchMedium   int
}

// NewQualityAnalyzer 创建写作质量分析器。lexicon 不能为 nil。
func NewQualityAnalyzer(lexicon *Lexicon) (*QualityAnalyzer, error) {
	if lexicon == nil {
		return nil, fmt.Errorf("词表不能为空")
	}
	return &QualityAnalyzer{
		lexicon:               lexicon,
		fuzzyMatchCutoff:      constants.FuzzyMatchCutoff,
		absoluteMatchVeryHigh: constants.AbsoluteMatchVeryHigh,
		absoluteMatchHigh:     constants.AbsoluteMatchHigh,
		absoluteMatchMedium:   constants.AbsoluteMatchMedium,
	}, nil
}

// sectionTask 一个子分析任务: 键 + 执行函数
type sectionTask struct {
	key string
	run func() (types.Category, map[string]any, []string, error)
}

// Analyze 运行全部子分析并汇总为写作质量报告
func (a *QualityAnalyzer) Analyze(resumeText string, resume *types.ResumeData, industry string) *types.WritingQualityReport {
	report := &types.WritingQualityReport{
		AllRecommendations: []string{},
		SectionResults:     map[string]types.CategoryResult{},
	}

	if strings.TrimSpace(resumeText) == "" || resume == nil {
		report.AllRecommendations = append(report.AllRecommendations, "Invalid input: Resume text or structured data is missing/empty.")
		report.Justification = "Invalid input provided."
		return report
	}

	sentences := SplitSentences(resumeText)
	allBullets := collectBullets(resume)

	tasks := []sectionTask{
		{"length", func() (types.Category, map[string]any, []string, error) {
			return a.analyzeLength(allBullets)
		}},
		{"action_verbs", func() (types.Category, map[string]any, []string, error) {
			return a.analyzeActionVerbs(allBullets)
		}},
		{"bullet_points", func() (types.Category, map[string]any, []string, error) {
			return a.analyzeBulletPoints(allBullets, resume.WorkExperience)
		}},
		{"quantifiable", func() (types.Category, map[string]any, []string, error) {
			return a.analyzeQuantifiable(allBullets)
		}},
		{"sentence_structure", func() (types.Category, map[string]any, []string, error) {
			return a.analyzeSentenceStructure(allBullets)
		}},
		{"active_voice", func() (types.Category, map[string]any, []string, error) {
			return a.analyzePassiveVoice(sentences)
		}},
		{"completeness", func() (types.Category, map[string]any, []string, error) {
			return a.analyzeCompleteness(resume)
		}},
		{"skills_format", func() (types.Category, map[string]any, []string, error) {
			return a.analyzeSkillsFormat(resume.Keywords)
		}},
		{"industry_fit", func() (types.Category, map[string]any, []string, error) {
			return a.analyzeIndustryFit(resumeText, resume.Keywords, industry)
		}},
	}

	for _, task := range tasks {
		result := a.runTask(task)
		report.SectionResults[task.key] = result
		report.AllRecommendations = append(report.AllRecommendations, result.Recommendations...)
	}

	// 联系方式检查只产出建议不参与计分
	report.AllRecommendations = append(report.AllRecommendations, a.checkContactInfo(resume.PersonalInfo)...)

	report.OverallScore = a.overallScore(report.SectionResults)
	report.Justification = a.generateJustification(report.OverallScore, report.SectionResults)

	return report
}

// runTask 执行单个子分析，panic和error都降级为Medium
func (a *QualityAnalyzer) runTask(task sectionTask) (result types.CategoryResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Str("section", task.key).Interface("panic", r).Msg("写作质量子分析panic")
			result = neutralResult(task.key, fmt.Errorf("panic: %v", r))
		}
	}()

	category, details, recs, err := task.run()
	if err != nil {
		logger.Error().Err(err).Str("section", task.key).Msg("写作质量子分析失败")
		return neutralResult(task.key, err)
	}
	if details == nil {
		details = map[string]any{}
	}
	score, ok := scoreCategories[category]
	if !ok {
		score = scoreCategories[types.CategoryMedium]
	}
	return types.CategoryResult{
		Category:        category,
		Score:           score,
		Details:         details,
		Recommendations: recs,
	}
}

// neutralResult 子分析失败时的中性降级结果
func neutralResult(key string, err error) types.CategoryResult {
	return types.CategoryResult{
		Category: types.CategoryMedium,
		Score:    scoreCategories[types.CategoryMedium],
		Details:  map[string]any{"error": err.Error()},
		Recommendations: []string{
			fmt.Sprintf("Could not complete '%s' analysis due to an error.", key),
		},
	}
}

// overallScore 按活跃项权重归一化后计算加权总分，结果钳制到[0,100]
func (a *QualityAnalyzer) overallScore(sections map[string]types.CategoryResult) int {
	activeWeight := 0.0
	for key, weight := range sectionWeights {
		if _, ok := sections[key]; ok {
			activeWeight += weight
		}
	}
	if activeWeight <= 0 {
		return 0
	}

	weighted := 0.0
	for key, weight := range sectionWeights {
		if result, ok := sections[key]; ok {
			weighted += float64(result.Score) * (weight / activeWeight)
		}
	}

	score := int(math.Round(weighted))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// collectBullets 收集工作经历与项目中的全部要点
func collectBullets(resume *types.ResumeData) []string {
	var bullets []string
	for _, exp := range resume.WorkExperience {
		for _, resp := range exp.Responsibilities {
			if strings.TrimSpace(resp) != "" {
				bullets = append(bullets, resp)
			}
		}
	}
	for _, project := range resume.Projects {
		for _, desc := range project.Description {
			if strings.TrimSpace(desc) != "" {
				bullets = append(bullets, desc)
			}
		}
	}
	return bullets
}

// sortedSectionKeys 返回排序后的章节键，保证说明文本确定性
func sortedSectionKeys(sections map[string]types.CategoryResult) []string {
	keys := make([]string, 0, len(sections))
	for key := range sections {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
