package types

// Education 教育经历条目
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Date        string `json:"date"`
}

// WorkExperience 工作经历条目
type WorkExperience struct {
	JobTitle         string   `json:"job_title"`
	Company          string   `json:"company"`
	Dates            string   `json:"dates"`
	Responsibilities []string `json:"responsibilities"`
}

// Project 项目经历条目
type Project struct {
	Name        string   `json:"name"`
	Description []string `json:"description"`
}

// ResumeData 表示上游抽取服务产出的结构化简历数据
type ResumeData struct {
	PersonalInfo        map[string]string `json:"personal_info"`
	Education           []Education       `json:"education"`
	WorkExperience      []WorkExperience  `json:"work_experience"`
	Projects            []Project         `json:"projects"`
	Certifications      []string          `json:"certifications"`
	Keywords            []string          `json:"keywords"`
	Summary             string            `json:"summary"`
	KeyResponsibilities []string          `json:"key_responsibilities"`
}

// JobDescriptionData 表示上游抽取服务产出的结构化岗位描述数据
type JobDescriptionData struct {
	JobTitle                string   `json:"job_title"`
	CompanyName             string   `json:"company_name"`
	Location                string   `json:"location"`
	RequiredSkills          []string `json:"required_skills"`
	RequiredExperienceYears string   `json:"required_experience_years"`
	KeyResponsibilities     []string `json:"key_responsibilities"`
	OtherQualifications     []string `json:"other_qualifications"`
	Industry                string   `json:"industry"`
	Summary                 string   `json:"summary"`
}

// Category 写作质量分析的五级评价（另有Not Assessed/Error哨兵值）
type Category string

const (
	CategoryVeryLow     Category = "Very Low"
	CategoryLow         Category = "Low"
	CategoryMedium      Category = "Medium"
	CategoryHigh        Category = "High"
	CategoryVeryHigh    Category = "Very High"
	CategoryNotAssessed Category = "Not Assessed"
	CategoryError       Category = "Error"
)

// CategoryResult 单项写作质量分析的结果
type CategoryResult struct {
	Category Category `json:"category"`
	// Score 由固定的类别→分数表映射得到（20/45/70/85/100）
	Score           int            `json:"score"`
	Details         map[string]any `json:"details"`
	Recommendations []string       `json:"recommendations,omitempty"`
}

// MatchDetail 单个JD条目的最佳匹配信息
type MatchDetail struct {
	BestMatch string  `json:"best_match"`
	Score     float64 `json:"score"`
}

// SkillMatchResult 技能匹配结果
type SkillMatchResult struct {
	Found           []string               `json:"found"`
	Missing         []string               `json:"missing"`
	MatchDetails    map[string]MatchDetail `json:"match_details"`
	MatchPercentage float64                `json:"match_percentage"`
	// InternalJustification 面向诊断的说明（含原始数字与阈值）
	InternalJustification string `json:"internal_justification"`
	// UserJustification 面向用户的定性说明
	UserJustification string `json:"user_justification"`
}

// ResponsibilityMatchResult 职责匹配结果，比技能匹配多一个部分匹配层
type ResponsibilityMatchResult struct {
	Matched               []string               `json:"matched_responsibilities"`
	PossiblyMatched       []string               `json:"possibly_matched_responsibilities"`
	Missing               []string               `json:"missing_responsibilities"`
	MatchDetails          map[string]MatchDetail `json:"match_details"`
	MatchPercentage       float64                `json:"match_percentage"`
	InternalJustification string                 `json:"internal_justification"`
	UserJustification     string                 `json:"user_justification"`
}

// AtsReport ATS匹配评分报告
type AtsReport struct {
	SimilarityScore float64 `json:"similarity_score"`
	Pass            bool    `json:"pass"`

	RequiredSkillsFound          []string               `json:"required_skills_found"`
	RequiredSkillsMissing        []string               `json:"required_skills_missing"`
	RequiredSkillsFoundCount     int                    `json:"required_skills_found_count"`
	TotalRequiredSkillsInJD      int                    `json:"total_required_skills_in_jd"`
	RequiredSkillMatchPercentage float64                `json:"required_skill_match_percentage"`
	SkillMatchDetails            map[string]MatchDetail `json:"skill_match_details"`

	KeyRespComparison ResponsibilityMatchResult `json:"key_responsibilities_comparison"`

	SummaryComparisonScore float64            `json:"summary_comparison_score"`
	SectionScores          map[string]float64 `json:"section_scores"`

	// InternalJustification / UserJustification 按章节平行的两套说明文本：
	// 前者面向诊断（含原始数字与阈值），后者面向用户
	InternalJustification map[string]string `json:"internal_justification"`
	UserJustification     map[string]string `json:"user_justification"`

	Notes string `json:"notes,omitempty"`
	Error string `json:"error,omitempty"`

	// 回显的JD输入，便于调用方核对
	JobDescriptionRequiredSkills      []string `json:"job_description_required_skills"`
	JobDescriptionKeyResponsibilities []string `json:"job_description_key_responsibilities"`
	JobDescriptionSummary             string   `json:"job_description_summary"`
	ResumeSummary                     string   `json:"resume_summary"`
}

// WritingQualityReport 写作质量分析报告
type WritingQualityReport struct {
	OverallScore       int                       `json:"overall_score"`
	AllRecommendations []string                  `json:"all_recommendations"`
	SectionResults     map[string]CategoryResult `json:"section_results"`
	Justification      string                    `json:"justification"`
}

// AnalysisReport 分析接口返回的合成报告
type AnalysisReport struct {
	AnalysisID string `json:"analysis_id"`
	ResumeID   string `json:"resume_id,omitempty"`
	// OverallScore = 0.55*ATS + 0.45*写作质量，四舍五入两位小数并封顶100
	OverallScore    float64               `json:"overall_score"`
	TechnicalScore  *AtsReport            `json:"technical_score"`
	GrammarAnalysis *WritingQualityReport `json:"grammar_analysis"`
}
