/*
此文件实现ATS综合评分器: 技能匹配(50%) + 摘要语义对比(50%)为基础分，
职责对齐作为与基础分成正比的加分项（基础分越高加分越多，上限由0.25因子约束），
最终分裁剪到[0,100]，达到70分为通过。
任何环节的嵌入故障都降级为0分段落加说明文字，绝不让请求失败。
*/

package analyzer

import (
	"context"
	"fmt"
	"strings"

	"resume-analyzer-go/internal/constants"
	"resume-analyzer-go/internal/parser"
	"resume-analyzer-go/internal/tracing"
	"resume-analyzer-go/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var scorerTracer = otel.Tracer("resume-analyzer-go/analyzer/ats")

// overallAssessmentLevels 总分到定性评价的映射
var overallAssessmentLevels = []assessmentLevel{
	{85.0, "Very Strong Match."},
	{constants.PassThreshold, fmt.Sprintf("Good Match (meets threshold of %g%%).", constants.PassThreshold)},
	{50.0, "Partial Match (below threshold)."},
	{0.0, "Low Match (below threshold)."},
}

// 技术岗位的职位名称提示词
var technicalTitleIndicators = []string{
	"engineer", "developer", "programmer", "scientist", "technical", "analyst", "architect",
	"data", "software", "ml", "ai", "backend", "frontend",
}

// ATSScorer 计算简历与JD的匹配度
type ATSScorer struct {
	embedder parser.IntentEmbedder
	lexicon  *Lexicon

	skillThreshold float64
	respThreshold  float64
}

// ATSScorerOption 评分器配置选项
type ATSScorerOption func(*ATSScorer)

// WithSkillThreshold 覆盖技能匹配阈值
func WithSkillThreshold(threshold float64) ATSScorerOption {
	return func(s *ATSScorer) {
		s.skillThreshold = threshold
	}
}

// WithResponsibilityThreshold 覆盖职责匹配阈值
func WithResponsibilityThreshold(threshold float64) ATSScorerOption {
	return func(s *ATSScorer) {
		s.respThreshold = threshold
	}
}

// NewATSScorer 创建ATS评分器。embedder 为 nil 时 Score 返回初始化失败的降级报告。
func NewATSScorer(embedder parser.IntentEmbedder, lexicon *Lexicon, options ...ATSScorerOption) *ATSScorer {
	scorer := &ATSScorer{
		embedder:       embedder,
		lexicon:        lexicon,
		skillThreshold: constants.SkillSimilarityThreshold,
		respThreshold:  constants.ResponsibilitySimilarityThreshold,
	}
	for _, opt := range options {
		opt(scorer)
	}
	return scorer
}

// Score 计算完整的ATS匹配报告
func (s *ATSScorer) Score(ctx context.Context, resume *types.ResumeData, jd *types.JobDescriptionData) *types.AtsReport {
	ctx, span := scorerTracer.Start(ctx, "ATSScorer.Score")
	defer span.End()

	report := newEmptyReport(jd, resume)

	if s.embedder == nil {
		err := fmt.Errorf("嵌入服务未初始化")
		tracing.RecordError(span, err, tracing.ErrorTypeEmbedding)
		report.Error = fmt.Sprintf("Initialization failed: %v", err)
		report.UserJustification["overall"] = "Analysis failed due to setup error."
		report.InternalJustification["overall"] = fmt.Sprintf("Init Error: %v", err)
		return report
	}

	// 1. 技能对比
	skillResult := MatchSkills(ctx, s.embedder, resume.Keywords, jd.RequiredSkills, s.skillThreshold)
	report.RequiredSkillsFound = skillResult.Found
	report.RequiredSkillsMissing = skillResult.Missing
	report.RequiredSkillsFoundCount = len(skillResult.Found)
	report.SkillMatchDetails = skillResult.MatchDetails
	uniqueJDSkills, _ := NormalizeUnique(jd.RequiredSkills)
	report.TotalRequiredSkillsInJD = len(uniqueJDSkills)
	if report.TotalRequiredSkillsInJD > 0 {
		report.RequiredSkillMatchPercentage = round2(float64(len(skillResult.Found)) / float64(report.TotalRequiredSkillsInJD) * 100)
	} else {
		report.RequiredSkillMatchPercentage = 100.0
	}
	report.SectionScores["skills"] = report.RequiredSkillMatchPercentage
	report.InternalJustification["skills"] = skillResult.InternalJustification
	report.UserJustification["skills"] = skillResult.UserJustification

	// 2. 摘要对比（工作经历/项目的高层相关性）
	summaryScore := s.compareSummaries(ctx, resume.Summary, jd.Summary, report)
	report.SectionScores["work_experience_projects"] = summaryScore

	// 3. 职责对比（只作为加分项）
	respResult := MatchResponsibilities(ctx, s.embedder, resume.KeyResponsibilities, jd.KeyResponsibilities, s.respThreshold)
	report.KeyRespComparison = *respResult
	report.InternalJustification["responsibilities"] = respResult.InternalJustification
	report.UserJustification["responsibilities"] = respResult.UserJustification

	// 4. 基础分 + 职责加分
	var internalOverall []string
	internalOverall = append(internalOverall, fmt.Sprintf(
		"Base weights: Skills=%.2f, Summary=%.2f.", constants.SkillsWeight, constants.SummaryWeight))

	baseScore := report.SectionScores["skills"]*constants.SkillsWeight + summaryScore*constants.SummaryWeight
	respPercentage := 0.0
	if len(jd.KeyResponsibilities) > 0 {
		respPercentage = respResult.MatchPercentage
	}
	bonus := (baseScore / 100.0) * constants.ResponsibilityBonusFactor * (respPercentage / 100.0)
	bonusPercent := round2(bonus * 100)
	internalOverall = append(internalOverall, fmt.Sprintf(
		"Base: %.2f. Bonus: +%.2f (Factor:%g, Resp%%:%.1f).",
		baseScore, bonusPercent, constants.ResponsibilityBonusFactor, respPercentage))

	finalScore := baseScore + bonusPercent
	if finalScore < 0 {
		finalScore = 0
	}
	if finalScore > 100 {
		finalScore = 100
	}
	report.SimilarityScore = round2(finalScore)
	report.Pass = report.SimilarityScore >= constants.PassThreshold
	internalOverall = append(internalOverall, fmt.Sprintf(
		"Final: %.2f. Pass: %t (Thresh:%g).", report.SimilarityScore, report.Pass, constants.PassThreshold))
	report.InternalJustification["overall"] = strings.Join(internalOverall, " ")

	// 技术岗位判定
	report.Notes = fmt.Sprintf("Tech job profile: %t.", s.isTechnicalJob(jd, uniqueJDSkills))

	// 5. 面向用户的总评
	overallAssessment := qualitativeAssessment(report.SimilarityScore, overallAssessmentLevels)
	userOverall := []string{
		fmt.Sprintf("Overall Assessment: %s", overallAssessment),
		"Key factors influencing the score:",
		fmt.Sprintf("- Skills: %s", report.UserJustification["skills"]),
		fmt.Sprintf("- Summary Relevance: %s", report.UserJustification["work_experience_projects"]),
		fmt.Sprintf("- Duty Alignment: %s", report.UserJustification["responsibilities"]),
	}
	if report.Pass {
		userOverall = append(userOverall, "Recommendation: Profile shows strong potential based on key areas. Recommended for review.")
	} else {
		userOverall = append(userOverall, "Recommendation: Profile may have gaps in key areas relative to requirements. Review details or consider other candidates.")
	}
	report.UserJustification["overall"] = strings.Join(userOverall, " ")

	span.SetAttributes(
		attribute.Float64("ats.similarity_score", report.SimilarityScore),
		attribute.Bool("ats.pass", report.Pass),
		attribute.Int("ats.skills_found", report.RequiredSkillsFoundCount),
	)

	return report
}

// compareSummaries 对比简历摘要与JD摘要，返回0-100的相似度分数
func (s *ATSScorer) compareSummaries(ctx context.Context, resumeSummary, jdSummary string, report *types.AtsReport) float64 {
	internalParts := []string{"Summary vs Summary comparison."}

	ppJD := Normalize(jdSummary)
	ppResume := Normalize(resumeSummary)

	if ppJD == "" || ppResume == "" {
		internalParts = append(internalParts, "Empty summary found.")
		report.InternalJustification["work_experience_projects"] = strings.Join(internalParts, " ")
		report.UserJustification["work_experience_projects"] = "Resume or Job summary missing, high-level alignment not assessed."
		return 0.0
	}

	// JD摘要是检索方、简历摘要是被检索方
	jdEmb, err := s.embedder.EmbedStringsWithIntent(ctx, []string{ppJD}, parser.IntentQuery)
	var resumeEmb [][]float64
	if err == nil {
		resumeEmb, err = s.embedder.EmbedStringsWithIntent(ctx, []string{ppResume}, parser.IntentDocument)
	}
	if err != nil || len(jdEmb) == 0 || len(resumeEmb) == 0 {
		if err == nil {
			err = fmt.Errorf("摘要嵌入为空")
		}
		internalParts = append(internalParts, fmt.Sprintf("Error: %v.", err))
		report.InternalJustification["work_experience_projects"] = strings.Join(internalParts, " ")
		report.UserJustification["work_experience_projects"] = "Could not assess summary alignment due to an error."
		return 0.0
	}

	matrix := CosineSimilarityMatrix(jdEmb, resumeEmb)
	similarity := 0.0
	if len(matrix) > 0 && len(matrix[0]) > 0 {
		similarity = matrix[0][0]
	}
	report.SummaryComparisonScore = round4(similarity)
	score100 := round2(similarity * 100)
	internalParts = append(internalParts, fmt.Sprintf("Raw similarity: %.3f.", report.SummaryComparisonScore))
	report.InternalJustification["work_experience_projects"] = strings.Join(internalParts, " ")

	summaryLevels := []assessmentLevel{
		{80.0, "Strong alignment suggests good high-level relevance."},
		{60.0, "Good alignment suggests reasonable high-level relevance."},
		{40.0, "Moderate alignment suggests some potential relevance."},
		{0.0, "Low alignment suggests potential divergence in focus."},
	}
	report.UserJustification["work_experience_projects"] = fmt.Sprintf(
		"Summary Check: %s", qualitativeAssessment(score100, summaryLevels))

	return score100
}

// isTechnicalJob 根据JD技能是否命中技术关键词种子或职位名称提示词判定技术岗
func (s *ATSScorer) isTechnicalJob(jd *types.JobDescriptionData, uniqueJDSkills []string) bool {
	if s.lexicon != nil {
		for _, skill := range uniqueJDSkills {
			if s.lexicon.IsTechnicalKeyword(skill) {
				return true
			}
		}
	}
	titleLower := strings.ToLower(jd.JobTitle)
	for _, indicator := range technicalTitleIndicators {
		if strings.Contains(titleLower, indicator) {
			return true
		}
	}
	return false
}

// newEmptyReport 构建结构完整的空报告，所有集合字段非nil
func newEmptyReport(jd *types.JobDescriptionData, resume *types.ResumeData) *types.AtsReport {
	return &types.AtsReport{
		RequiredSkillsFound:   []string{},
		RequiredSkillsMissing: []string{},
		SkillMatchDetails:     map[string]types.MatchDetail{},
		KeyRespComparison: types.ResponsibilityMatchResult{
			Matched:         []string{},
			PossiblyMatched: []string{},
			Missing:         []string{},
			MatchDetails:    map[string]types.MatchDetail{},
		},
		SectionScores: map[string]float64{
			"skills":                   0.0,
			"work_experience_projects": 0.0,
		},
		InternalJustification: map[string]string{
			"skills": "-", "responsibilities": "-", "work_experience_projects": "-", "overall": "",
		},
		UserJustification: map[string]string{
			"skills": "-", "responsibilities": "-", "work_experience_projects": "-", "overall": "",
		},
		JobDescriptionRequiredSkills:      jd.RequiredSkills,
		JobDescriptionKeyResponsibilities: jd.KeyResponsibilities,
		JobDescriptionSummary:             jd.Summary,
		ResumeSummary:                     resume.Summary,
	}
}
