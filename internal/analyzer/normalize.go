/*
此文件实现比较前的文本归一化。
所有技能、职责、摘要在进入模糊匹配或向量匹配前都要先过这一步，
保证大小写和标点差异不影响匹配结果。
*/

package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

var (
	// 保留字母数字下划线、空白、连字符、斜杠，其余全部去掉
	nonWordPattern = regexp.MustCompile(`[^\w\s\-/]`)
	// 连续空白压成单个空格
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize 归一化文本: 小写、去标点、折叠空白、去首尾空格。
// 幂等: Normalize(Normalize(x)) == Normalize(x)。
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = nonWordPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// NormalizeUnique 归一化一批文本并去重排序。
// 返回: 排序后的唯一归一化列表, 以及归一化形式到首次出现的原始文本的映射。
func NormalizeUnique(items []string) ([]string, map[string]string) {
	originalMap := make(map[string]string, len(items))
	seen := make(map[string]struct{}, len(items))
	unique := make([]string, 0, len(items))

	for _, item := range items {
		normalized := Normalize(item)
		if normalized == "" {
			continue
		}
		// 首次出现的原文用于展示
		if _, ok := originalMap[normalized]; !ok {
			originalMap[normalized] = item
		}
		if _, ok := seen[normalized]; !ok {
			seen[normalized] = struct{}{}
			unique = append(unique, normalized)
		}
	}

	sort.Strings(unique)
	return unique, originalMap
}
