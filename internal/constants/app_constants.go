package constants

import "time"

const (
	// SkillSimilarityThreshold 技能匹配的余弦相似度阈值
	SkillSimilarityThreshold = 0.75
	// ResponsibilitySimilarityThreshold 职责匹配的余弦相似度阈值（职责表述差异大，阈值取更低）
	ResponsibilitySimilarityThreshold = 0.50
	// PartialMatchFactor 部分匹配阈值系数：partial threshold = threshold * 0.7
	PartialMatchFactor = 0.7
	// PartialMatchCredit 部分匹配计入匹配率的权重
	PartialMatchCredit = 0.5

	// PassThreshold ATS得分通过线
	PassThreshold = 70.0
	// ResponsibilityBonusFactor 职责对齐加分系数（加分上限）
	ResponsibilityBonusFactor = 0.25
	// SkillsWeight ATS基础分中技能分权重
	SkillsWeight = 0.50
	// SummaryWeight ATS基础分中摘要分权重
	SummaryWeight = 0.50

	// FuzzyMatchCutoff 行业关键词模糊匹配的最低分数（0-100）
	FuzzyMatchCutoff = 85
	// AbsoluteMatchVeryHigh 行业关键词绝对命中数：强制Very High
	AbsoluteMatchVeryHigh = 40
	// AbsoluteMatchHigh 行业关键词绝对命中数：至少High
	AbsoluteMatchHigh = 30
	// AbsoluteMatchMedium 行业关键词绝对命中数：至少Medium
	AbsoluteMatchMedium = 15

	// ATSScoreBlendWeight 最终合成报告中ATS分数的权重
	ATSScoreBlendWeight = 0.55
	// QualityScoreBlendWeight 最终合成报告中写作质量分数的权重
	QualityScoreBlendWeight = 0.45

	// Storage-related constants
	EmbeddingCachePrefix   = "embed_vec:" // Redis key prefix for cached embedding vectors
	EmbeddingCacheDuration = 24 * time.Hour
)
