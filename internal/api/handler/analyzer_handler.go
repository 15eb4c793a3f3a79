package handler

import (
	"context"
	"fmt"
	"math"

	"resume-analyzer-go/internal/analyzer"
	"resume-analyzer-go/internal/constants"
	"resume-analyzer-go/internal/logger"
	"resume-analyzer-go/internal/tracing"
	"resume-analyzer-go/internal/types"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var handlerTracer = otel.Tracer("resume-analyzer-go/api/handler")

// AnalyzerHandler 分析请求处理器，协调写作质量分析与ATS评分
type AnalyzerHandler struct {
	scorer  *analyzer.ATSScorer
	quality *analyzer.QualityAnalyzer
}

// NewAnalyzerHandler 创建分析处理器
func NewAnalyzerHandler(scorer *analyzer.ATSScorer, quality *analyzer.QualityAnalyzer) *AnalyzerHandler {
	return &AnalyzerHandler{
		scorer:  scorer,
		quality: quality,
	}
}

// AnalyzeRequest 分析请求体
type AnalyzeRequest struct {
	ResumeID       string                    `json:"resume_id"`
	ResumeText     string                    `json:"resume_text"`
	Resume         *types.ResumeData         `json:"resume"`
	JobDescription *types.JobDescriptionData `json:"job_description"`
}

// Validate 校验请求体必填字段
func (r *AnalyzeRequest) Validate() error {
	if r.Resume == nil {
		return fmt.Errorf("缺少简历结构化数据")
	}
	if r.JobDescription == nil {
		return fmt.Errorf("缺少岗位描述数据")
	}
	if r.ResumeText == "" {
		return fmt.Errorf("缺少简历原文")
	}
	return nil
}

// HandleAnalyze 执行完整分析: 写作质量 + ATS匹配, 再按固定权重合成总分。
// 子分析的降级在各自组件内完成，这里只要输入合法就总能返回结构完整的报告。
func (h *AnalyzerHandler) HandleAnalyze(ctx context.Context, req *AnalyzeRequest) (*types.AnalysisReport, error) {
	ctx, span := handlerTracer.Start(ctx, "AnalyzerHandler.HandleAnalyze")
	defer span.End()

	if err := req.Validate(); err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeValidation)
		return nil, err
	}

	normalizeInput(req.Resume, req.JobDescription)

	analysisID := uuid.New().String()
	span.SetAttributes(
		attribute.String("analysis.id", analysisID),
		attribute.String("resume.content", tracing.SafeResumeContent(req.ResumeText)),
	)

	industry := req.JobDescription.Industry
	if industry == "" {
		industry = "tech"
	}

	qualityReport := h.quality.Analyze(req.ResumeText, req.Resume, industry)
	atsReport := h.scorer.Score(ctx, req.Resume, req.JobDescription)

	overall := atsReport.SimilarityScore*constants.ATSScoreBlendWeight +
		float64(qualityReport.OverallScore)*constants.QualityScoreBlendWeight
	overall = round2(overall)
	if overall > 100 {
		overall = 100
	}

	logger.Info().
		Str("analysis_id", analysisID).
		Str("resume_id", req.ResumeID).
		Float64("overall_score", overall).
		Float64("ats_score", atsReport.SimilarityScore).
		Int("quality_score", qualityReport.OverallScore).
		Bool("ats_pass", atsReport.Pass).
		Msg("简历分析完成")

	return &types.AnalysisReport{
		AnalysisID:      analysisID,
		ResumeID:        req.ResumeID,
		OverallScore:    overall,
		TechnicalScore:  atsReport,
		GrammarAnalysis: qualityReport,
	}, nil
}

// normalizeInput 把nil集合字段统一为空集合，下游不再做nil检查
func normalizeInput(resume *types.ResumeData, jd *types.JobDescriptionData) {
	if resume.Keywords == nil {
		resume.Keywords = []string{}
	}
	if resume.KeyResponsibilities == nil {
		resume.KeyResponsibilities = []string{}
	}
	if resume.Certifications == nil {
		resume.Certifications = []string{}
	}
	for i := range resume.WorkExperience {
		if resume.WorkExperience[i].Responsibilities == nil {
			resume.WorkExperience[i].Responsibilities = []string{}
		}
	}
	for i := range resume.Projects {
		if resume.Projects[i].Description == nil {
			resume.Projects[i].Description = []string{}
		}
	}
	if jd.RequiredSkills == nil {
		jd.RequiredSkills = []string{}
	}
	if jd.KeyResponsibilities == nil {
		jd.KeyResponsibilities = []string{}
	}
	if jd.OtherQualifications == nil {
		jd.OtherQualifications = []string{}
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
