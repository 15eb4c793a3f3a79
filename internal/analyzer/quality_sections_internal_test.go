package analyzer

import (
	"fmt"
	"strings"
	"testing"

	"resume-analyzer-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInternalAnalyzer(t *testing.T) *QualityAnalyzer {
	t.Helper()
	lexicon, err := NewLexicon("", "", "")
	require.NoError(t, err)
	qa, err := NewQualityAnalyzer(lexicon)
	require.NoError(t, err)
	return qa
}

// bulletsWithWords 生成总词数恰好为n的要点列表
func bulletsWithWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}
	return []string{strings.Join(words, " ")}
}

// TestAnalyzeLength_Buckets 验证篇幅分档边界
func TestAnalyzeLength_Buckets(t *testing.T) {
	qa := newInternalAnalyzer(t)
	tests := []struct {
		words    int
		category types.Category
	}{
		{50, types.CategoryVeryLow},
		{100, types.CategoryLow},
		{150, types.CategoryMedium},
		{250, types.CategoryVeryHigh},
		{300, types.CategoryHigh},
		{340, types.CategoryMedium},
		{360, types.CategoryLow},
	}

	for _, tt := range tests {
		category, details, _, err := qa.analyzeLength(bulletsWithWords(tt.words))
		require.NoError(t, err)
		assert.Equal(t, tt.category, category, "words=%d", tt.words)
		assert.Equal(t, tt.words, details["total_bullet_meaningful_word_count"])
	}

	// 过长时应标记冗长问题
	_, details, recs, err := qa.analyzeLength(bulletsWithWords(400))
	require.NoError(t, err)
	assert.Equal(t, "Excessive bullet point verbosity", details["issue"])
	require.NotEmpty(t, recs)
}

// TestAnalyzeActionVerbs 动词力度与缺动词惩罚
func TestAnalyzeActionVerbs(t *testing.T) {
	qa := newInternalAnalyzer(t)

	// 全部以高力度动词开头
	category, _, _, err := qa.analyzeActionVerbs([]string{
		"Led the platform team.",
		"Built the deployment pipeline.",
		"Delivered three major releases.",
	})
	require.NoError(t, err)
	assert.Equal(t, types.CategoryHigh, category)

	// 没有任何要点以动词开头
	category, details, recs, err := qa.analyzeActionVerbs([]string{
		"Responsibilities included various tasks.",
		"Duties involved documentation.",
	})
	require.NoError(t, err)
	assert.Equal(t, types.CategoryVeryLow, category)
	assert.Equal(t, "No action verbs identified at start of bullets.", details["issue"])
	require.Len(t, recs, 1)

	// 弱动词应被点名
	category, details, _, err = qa.analyzeActionVerbs([]string{
		"Helped with various things.",
		"Assisted in the office.",
	})
	require.NoError(t, err)
	assert.Equal(t, types.CategoryLow, category)
	order, ok := details["weak_verb_order"].([]string)
	require.True(t, ok)
	assert.Equal(t, []string{"helped", "assisted"}, order, "弱动词应按出现顺序记录")
}

// TestAnalyzeQuantifiable 量化成果比例分档
func TestAnalyzeQuantifiable(t *testing.T) {
	qa := newInternalAnalyzer(t)

	// 一半要点带数字: ratio 0.5 >= 0.4 → Very High
	category, _, _, err := qa.analyzeQuantifiable([]string{
		"Cut latency by 40%.",
		"Saved $30k per quarter.",
		"Maintained internal tooling.",
		"Wrote onboarding documents.",
	})
	require.NoError(t, err)
	assert.Equal(t, types.CategoryVeryHigh, category)

	// 完全没有数字 → Very Low, 且影响力动词缺指标被单独统计
	category, details, _, err := qa.analyzeQuantifiable([]string{
		"Improved the build system.",
		"Maintained servers.",
	})
	require.NoError(t, err)
	assert.Equal(t, types.CategoryVeryLow, category)
	assert.Equal(t, 1, details["impact_keywords_without_metrics_count"])
}

// TestAnalyzeCompleteness 必备章节缺失直接判Very Low
func TestAnalyzeCompleteness(t *testing.T) {
	qa := newInternalAnalyzer(t)

	full := &types.ResumeData{
		PersonalInfo:   map[string]string{"name": "A"},
		Education:      []types.Education{{Degree: "B.S."}},
		WorkExperience: []types.WorkExperience{{JobTitle: "Engineer"}},
		Keywords:       []string{"Go"},
		Summary:        "Engineer.",
	}
	category, _, _, err := qa.analyzeCompleteness(full)
	require.NoError(t, err)
	assert.Equal(t, types.CategoryVeryHigh, category)

	noRecommended := &types.ResumeData{
		PersonalInfo:   map[string]string{"name": "A"},
		Education:      []types.Education{{Degree: "B.S."}},
		WorkExperience: []types.WorkExperience{{JobTitle: "Engineer"}},
		Keywords:       []string{"Go"},
	}
	category, _, recs, err := qa.analyzeCompleteness(noRecommended)
	require.NoError(t, err)
	assert.Equal(t, types.CategoryMedium, category)
	require.NotEmpty(t, recs)

	missingWork := &types.ResumeData{
		PersonalInfo: map[string]string{"name": "A"},
		Education:    []types.Education{{Degree: "B.S."}},
		Keywords:     []string{"Go"},
	}
	category, details, recs, err := qa.analyzeCompleteness(missingWork)
	require.NoError(t, err)
	assert.Equal(t, types.CategoryVeryLow, category)
	assert.Equal(t, []string{"work_experience"}, details["missing_essential_sections"])
	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "CRITICAL: Missing essential sections:")
}

// TestAnalyzeSkillsFormat 技能列表规模与简洁度
func TestAnalyzeSkillsFormat(t *testing.T) {
	qa := newInternalAnalyzer(t)

	category, _, _, err := qa.analyzeSkillsFormat([]string{"Go", "Python", "Kafka", "Redis", "AWS", "Docker"})
	require.NoError(t, err)
	assert.Equal(t, types.CategoryHigh, category)

	// 过少技能
	category, _, _, err = qa.analyzeSkillsFormat([]string{"Go", "Python"})
	require.NoError(t, err)
	assert.Equal(t, types.CategoryLow, category)

	// 空技能列表
	category, details, _, err := qa.analyzeSkillsFormat(nil)
	require.NoError(t, err)
	assert.Equal(t, types.CategoryLow, category)
	assert.Equal(t, "Skills section missing or invalid", details["issue"])

	// 超过两成的冗长条目要扣分
	verbose := []string{
		"Responsible for managing the entire cloud infrastructure stack",
		"Extensive experience with a wide variety of databases",
		"Go", "Python", "Kafka",
	}
	category, _, recs, err := qa.analyzeSkillsFormat(verbose)
	require.NoError(t, err)
	assert.Equal(t, types.CategoryLow, category)
	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "verbose skills entries")
}

// industryLexicon 构造带N个互不重叠关键词的行业词表
func industryLexicon(n int) *Lexicon {
	keywords := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		keywords[fmt.Sprintf("alpha%03d", i)] = struct{}{}
	}
	return &Lexicon{
		ActionVerbs:       defaultActionVerbs(),
		IndustrySkills:    map[string]map[string]struct{}{"tech": keywords},
		TechnicalKeywords: defaultTechnicalKeywords(),
	}
}

// industryText 生成包含前n个关键词的简历全文
func industryText(n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("alpha%03d", i)
	}
	return strings.Join(parts, " ")
}

// TestAnalyzeIndustryFit_AbsoluteBoosts 低比例但高绝对命中数时向上强制提升
func TestAnalyzeIndustryFit_AbsoluteBoosts(t *testing.T) {
	qa, err := NewQualityAnalyzer(industryLexicon(400))
	require.NoError(t, err)

	tests := []struct {
		matches  int
		category types.Category
	}{
		{3, types.CategoryVeryLow},   // ratio 0.0075, 无提升
		{15, types.CategoryMedium},   // >=15 提升到Medium
		{35, types.CategoryHigh},     // >=30 提升到High
		{41, types.CategoryVeryHigh}, // >=40 强制Very High
	}

	for _, tt := range tests {
		category, details, _, err := qa.analyzeIndustryFit(industryText(tt.matches), nil, "tech")
		require.NoError(t, err)
		assert.Equal(t, tt.category, category, "matches=%d", tt.matches)
		assert.Equal(t, tt.matches, details["matched_keyword_count"], "matches=%d", tt.matches)
		if tt.matches >= 15 {
			assert.Contains(t, details, "boost_reason", "matches=%d", tt.matches)
		}
	}
}

// TestAnalyzeIndustryFit_RatioTiers 比例本身的分档
func TestAnalyzeIndustryFit_RatioTiers(t *testing.T) {
	qa, err := NewQualityAnalyzer(industryLexicon(10))
	require.NoError(t, err)

	// 7/10 = 0.7 >= 0.6 → Very High
	category, _, _, err := qa.analyzeIndustryFit(industryText(7), nil, "tech")
	require.NoError(t, err)
	assert.Equal(t, types.CategoryVeryHigh, category)

	// 4/10 = 0.4 → High
	category, _, _, err = qa.analyzeIndustryFit(industryText(4), nil, "tech")
	require.NoError(t, err)
	assert.Equal(t, types.CategoryHigh, category)

	// 2/10 = 0.2 → Medium
	category, _, _, err = qa.analyzeIndustryFit(industryText(2), nil, "tech")
	require.NoError(t, err)
	assert.Equal(t, types.CategoryMedium, category)
}

// TestAnalyzeIndustryFit_NotAssessed 缺省或未知行业不参与评估
func TestAnalyzeIndustryFit_NotAssessed(t *testing.T) {
	qa := newInternalAnalyzer(t)

	category, _, _, err := qa.analyzeIndustryFit("some text", nil, "default")
	require.NoError(t, err)
	assert.Equal(t, types.CategoryNotAssessed, category)

	category, _, _, err = qa.analyzeIndustryFit("some text", nil, "no-such-industry")
	require.NoError(t, err)
	assert.Equal(t, types.CategoryNotAssessed, category)
}

// TestRunTask_PanicRecovery 子分析panic时降级为Medium而不中断整体分析
func TestRunTask_PanicRecovery(t *testing.T) {
	qa := newInternalAnalyzer(t)

	result := qa.runTask(sectionTask{
		key: "length",
		run: func() (types.Category, map[string]any, []string, error) {
			panic("boom")
		},
	})

	assert.Equal(t, types.CategoryMedium, result.Category)
	assert.Equal(t, 70, result.Score)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Could not complete 'length' analysis due to an error.", result.Recommendations[0])
	assert.Contains(t, result.Details["error"], "boom")
}

// TestRunTask_Error 子分析返回error时同样降级
func TestRunTask_Error(t *testing.T) {
	qa := newInternalAnalyzer(t)

	result := qa.runTask(sectionTask{
		key: "quantifiable",
		run: func() (types.Category, map[string]any, []string, error) {
			return "", nil, nil, fmt.Errorf("bad input")
		},
	})

	assert.Equal(t, types.CategoryMedium, result.Category)
	assert.Equal(t, "bad input", result.Details["error"])
}

// TestOverallScore_Renormalization 权重只在活跃章节上归一化
func TestOverallScore_Renormalization(t *testing.T) {
	qa := newInternalAnalyzer(t)

	allMedium := map[string]types.CategoryResult{}
	for key := range sectionWeights {
		if key == "grammar_spelling" {
			continue
		}
		allMedium[key] = types.CategoryResult{Category: types.CategoryMedium, Score: 70}
	}
	assert.Equal(t, 70, qa.overallScore(allMedium), "全Medium时归一化加权和应恰为70")

	// 只有部分章节时仍应落在[0,100]
	partial := map[string]types.CategoryResult{
		"length":       {Category: types.CategoryVeryHigh, Score: 100},
		"action_verbs": {Category: types.CategoryVeryLow, Score: 20},
	}
	score := qa.overallScore(partial)
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)

	assert.Equal(t, 0, qa.overallScore(map[string]types.CategoryResult{}))
}

// TestMaxInRow 最大值索引与并列处理
func TestMaxInRow(t *testing.T) {
	best, idx := maxInRow(nil)
	assert.Equal(t, 0.0, best)
	assert.Equal(t, -1, idx)

	best, idx = maxInRow([]float64{0.2, 0.9, 0.9, 0.1})
	assert.Equal(t, 0.9, best)
	assert.Equal(t, 1, idx, "并列时应取最小索引")
}

// TestCategoryFromScore 连续分数到类别的边界
func TestCategoryFromScore(t *testing.T) {
	assert.Equal(t, types.CategoryVeryHigh, categoryFromScore(0.95))
	assert.Equal(t, types.CategoryHigh, categoryFromScore(0.80))
	assert.Equal(t, types.CategoryMedium, categoryFromScore(0.55))
	assert.Equal(t, types.CategoryLow, categoryFromScore(0.30))
	assert.Equal(t, types.CategoryVeryLow, categoryFromScore(0.29))
}

// TestGenerateJustification 说明文本应稳定且覆盖计分章节
func TestGenerateJustification(t *testing.T) {
	qa := newInternalAnalyzer(t)
	sections := map[string]types.CategoryResult{
		"length": {Category: types.CategoryVeryHigh, Score: 100, Details: map[string]any{}},
		"active_voice": {Category: types.CategoryLow, Score: 45, Details: map[string]any{
			"passive_sentence_examples": []string{"The system was built by the team."},
		}},
	}

	first := qa.generateJustification(72, sections)
	second := qa.generateJustification(72, sections)
	assert.Equal(t, first, second)

	assert.Contains(t, first, "Overall Score: 72/100.")
	assert.Contains(t, first, "Assessment: Fair.")
	assert.Contains(t, first, "Active Voice")
	assert.Contains(t, first, "Passive voice used, e.g., \"The system was built by the team.\"")
	assert.Contains(t, first, "Prioritize addressing sections categorized as 'Low' or 'Very Low'.")
}
