/*
此文件管理分析器依赖的静态词表: 动词力度表、行业技能词表、技术关键词种子。
进程启动时加载一次，之后只读。支持用JSON文件覆盖内置默认词表。
*/

package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Lexicon 分析器的只读词表集合
type Lexicon struct {
	// 动词(小写) -> 力度分数(0-1)
	ActionVerbs map[string]float64
	// 行业标签(小写) -> 技能词集合(小写)
	IndustrySkills map[string]map[string]struct{}
	// 技术关键词种子(小写)，用于判定技术岗位
	TechnicalKeywords map[string]struct{}
}

// actionVerbsFile JSON覆盖文件的结构: 按力度层组织
type actionVerbsFile struct {
	HighImpact   map[string]float64 `json:"high_impact"`
	MediumImpact map[string]float64 `json:"medium_impact"`
	LowImpact    map[string]float64 `json:"low_impact"`
}

// NewLexicon 构建词表。各文件路径为空时使用内置默认词表。
func NewLexicon(actionVerbsPath, industrySkillsPath, technicalKeywordsPath string) (*Lexicon, error) {
	lex := &Lexicon{
		ActionVerbs:       defaultActionVerbs(),
		IndustrySkills:    defaultIndustrySkills(),
		TechnicalKeywords: defaultTechnicalKeywords(),
	}

	if actionVerbsPath != "" {
		var file actionVerbsFile
		if err := loadJSONFile(actionVerbsPath, &file); err != nil {
			return nil, fmt.Errorf("加载动词力度表失败: %w", err)
		}
		verbs := make(map[string]float64)
		for _, tier := range []map[string]float64{file.HighImpact, file.MediumImpact, file.LowImpact} {
			for verb, score := range tier {
				verbs[strings.ToLower(verb)] = score
			}
		}
		if len(verbs) > 0 {
			lex.ActionVerbs = verbs
		}
	}

	if industrySkillsPath != "" {
		var file map[string][]string
		if err := loadJSONFile(industrySkillsPath, &file); err != nil {
			return nil, fmt.Errorf("加载行业技能词表失败: %w", err)
		}
		if len(file) > 0 {
			lex.IndustrySkills = make(map[string]map[string]struct{}, len(file))
			for industry, skills := range file {
				lex.IndustrySkills[strings.ToLower(industry)] = toLowerSet(skills)
			}
		}
	}

	if technicalKeywordsPath != "" {
		var file []string
		if err := loadJSONFile(technicalKeywordsPath, &file); err != nil {
			return nil, fmt.Errorf("加载技术关键词失败: %w", err)
		}
		if len(file) > 0 {
			lex.TechnicalKeywords = toLowerSet(file)
		}
	}

	return lex, nil
}

// VerbScore 返回动词的力度分数, 未收录时第二个返回值为false
func (l *Lexicon) VerbScore(verb string) (float64, bool) {
	score, ok := l.ActionVerbs[strings.ToLower(verb)]
	return score, ok
}

// SkillsForIndustry 返回指定行业的技能词集合, 无此行业时返回nil
func (l *Lexicon) SkillsForIndustry(industry string) map[string]struct{} {
	return l.IndustrySkills[strings.ToLower(industry)]
}

// IsTechnicalKeyword 判断归一化后的技能是否属于技术关键词种子
func (l *Lexicon) IsTechnicalKeyword(skill string) bool {
	_, ok := l.TechnicalKeywords[strings.ToLower(skill)]
	return ok
}

func loadJSONFile(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

func toLowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}

// defaultActionVerbs 内置动词力度表，按高/中/低力度分层
func defaultActionVerbs() map[string]float64 {
	verbs := map[string]float64{}
	high := []string{
		"achieved", "accelerated", "architected", "automated", "boosted", "built", "delivered",
		"drove", "engineered", "established", "exceeded", "expanded", "generated", "grew",
		"implemented", "improved", "increased", "launched", "led", "optimized", "orchestrated",
		"pioneered", "reduced", "redesigned", "saved", "scaled", "spearheaded", "streamlined",
		"transformed", "won",
	}
	medium := []string{
		"analyzed", "collaborated", "configured", "coordinated", "created", "designed",
		"developed", "directed", "enhanced", "evaluated", "executed", "facilitated",
		"integrated", "maintained", "managed", "mentored", "migrated", "monitored",
		"organized", "planned", "presented", "produced", "refactored", "researched",
		"resolved", "reviewed", "supervised", "tested", "trained", "upgraded",
	}
	low := []string{
		"assisted", "attended", "handled", "helped", "involved", "participated",
		"responsible", "supported", "used", "utilized", "worked",
	}
	for _, v := range high {
		verbs[v] = 0.9
	}
	for _, v := range medium {
		verbs[v] = 0.65
	}
	for _, v := range low {
		verbs[v] = 0.3
	}
	return verbs
}

// defaultIndustrySkills 内置行业技能词表
func defaultIndustrySkills() map[string]map[string]struct{} {
	raw := map[string][]string{
		"tech": {
			"python", "java", "javascript", "typescript", "go", "c++", "c#", "rust", "sql", "nosql",
			"react", "angular", "vue", "django", "flask", "spring", "nodejs", "express",
			"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "kafka",
			"aws", "azure", "gcp", "kubernetes", "docker", "terraform", "linux", "bash",
			"git", "jenkins", "ci/cd", "devops", "agile", "scrum", "rest", "graphql", "api",
			"microservices", "testing", "debugging", "machine learning", "deep learning",
			"data analysis", "nlp", "tensorflow", "pytorch", "pandas", "numpy", "spark", "hadoop",
			"security", "scalability", "algorithms", "data structures", "system design",
		},
		"finance": {
			"financial analysis", "financial modeling", "accounting", "auditing", "budgeting",
			"forecasting", "valuation", "risk management", "compliance", "portfolio management",
			"excel", "bloomberg", "sql", "python", "derivatives", "equities", "fixed income",
			"gaap", "ifrs", "taxation", "treasury", "m&a", "due diligence", "banking", "fintech",
		},
		"healthcare": {
			"patient care", "clinical research", "medical records", "hipaa", "ehr", "emr",
			"nursing", "diagnosis", "treatment planning", "pharmacology", "medical coding",
			"icd-10", "healthcare administration", "telehealth", "public health", "epidemiology",
			"clinical trials", "regulatory compliance", "medical devices",
		},
		"marketing": {
			"seo", "sem", "content marketing", "social media", "google analytics", "branding",
			"campaign management", "email marketing", "copywriting", "market research",
			"crm", "hubspot", "salesforce", "a/b testing", "conversion optimization",
			"paid advertising", "public relations", "product marketing",
		},
	}
	skills := make(map[string]map[string]struct{}, len(raw))
	for industry, list := range raw {
		skills[industry] = toLowerSet(list)
	}
	return skills
}

// defaultTechnicalKeywords 内置技术关键词种子，用于技术岗判定
func defaultTechnicalKeywords() map[string]struct{} {
	return toLowerSet([]string{
		"python", "java", "javascript", "c++", "c#", "php", "ruby", "go", "swift", "kotlin",
		"typescript", "sql", "nosql", "scala", "perl", "r",
		"react", "angular", "vue", "django", "flask", "spring", "springboot", "nodejs",
		"express", "rubyonrails", "laravel", "jquery", "bootstrap",
		"mysql", "postgresql", "mongodb", "redis", "cassandra", "oracle", "sqlserver",
		"elasticsearch", "dynamodb",
		"aws", "azure", "gcp", "amazonwebservices", "googlecloudplatform", "microsoftazure",
		"heroku", "kubernetes", "docker", "terraform", "lambda", "ec2", "s3", "rds",
		"linux", "unix", "windows", "macos", "bash", "shell", "nginx", "apache",
		"pandas", "numpy", "scipy", "sklearn", "scikitlearn", "tensorflow", "pytorch", "keras",
		"machinelearning", "deeplearning", "dataanalysis", "nlp", "computervision", "statistics",
		"git", "svn", "jenkins", "cicd", "ci/cd", "devops", "agile", "scrum", "rest", "graphql",
		"api", "microservices", "oop", "testing", "debugging", "jira",
		"architecture", "scalability", "performance", "security", "algorithms", "datastructures",
		"ux", "ui", "android", "ios", "reactnative", "flutter", "sdk", "ide", "automation",
		"bigdata", "hadoop", "spark",
	})
}
