/*
此文件实现写作质量分析依赖的轻量句法工具: 句子切分和被动语态识别。
规则基于助动词be+过去分词结构，辅以不规则动词表和"by"施事者线索，
不追求语法学上的完备，只要能稳定区分明显的被动句即可。
*/

package analyzer

import (
	"strings"
	"unicode"
)

// 常见缩写，后面的句点不是句子边界
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {},
	"inc": {}, "ltd": {}, "co": {}, "corp": {}, "llc": {},
	"etc": {}, "vs": {}, "e.g": {}, "i.e": {}, "approx": {}, "est": {},
	"jan": {}, "feb": {}, "mar": {}, "apr": {}, "jun": {}, "jul": {},
	"aug": {}, "sep": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {},
}

// SplitSentences 按句末标点切分文本为句子，带缩写和小数保护。
// 空白句会被丢弃。
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	runes := []rune(text)

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)

		switch r {
		case '!', '?':
			flush()
		case '\n':
			flush()
		case '.':
			// 小数点: 两侧都是数字则不是边界
			if i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
				continue
			}
			// 句点前的词是缩写则不是边界
			if _, ok := abbreviations[lastWord(current.String())]; ok {
				continue
			}
			// 句点后紧跟小写字母视为句中缩写残留
			if i+2 < len(runes) && runes[i+1] == ' ' && unicode.IsLower(runes[i+2]) {
				continue
			}
			flush()
		}
	}
	flush()

	return sentences
}

// lastWord 返回文本最后一个词（去掉末尾句点），小写
func lastWord(text string) string {
	text = strings.TrimSuffix(strings.TrimSpace(text), ".")
	idx := strings.LastIndexFunc(text, unicode.IsSpace)
	return strings.ToLower(text[idx+1:])
}

// be动词的各种形态
var beAuxiliaries = map[string]struct{}{
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"am": {}, "get": {}, "got": {}, "gets": {},
}

// 不规则过去分词（不以-ed/-en结尾的常见形态）
var irregularParticiples = map[string]struct{}{
	"done": {}, "made": {}, "built": {}, "brought": {}, "bought": {}, "caught": {},
	"found": {}, "held": {}, "kept": {}, "led": {}, "left": {}, "lost": {}, "met": {},
	"paid": {}, "put": {}, "read": {}, "run": {}, "said": {}, "seen": {}, "sent": {},
	"set": {}, "shown": {}, "sold": {}, "spent": {}, "taught": {}, "told": {},
	"thought": {}, "understood": {}, "won": {}, "written": {}, "known": {}, "grown": {},
	"chosen": {}, "given": {}, "taken": {}, "driven": {},
}

// isPastParticiple 判断一个词是否可能是过去分词
func isPastParticiple(word string) bool {
	if _, ok := irregularParticiples[word]; ok {
		return true
	}
	if len(word) > 3 && (strings.HasSuffix(word, "ed") || strings.HasSuffix(word, "en")) {
		return true
	}
	return false
}

// IsPassiveSentence 检测句子是否为被动语态。
// 规则: be助动词后两个词内出现过去分词。分词后紧跟"by"施事者时直接判定。
func IsPassiveSentence(sentence string) bool {
	words := tokenizeWords(sentence)
	for i, word := range words {
		if _, isBe := beAuxiliaries[word]; !isBe {
			continue
		}
		// 检查助动词后最多两个词（允许副词插入, 如 "was successfully deployed"）
		limit := i + 3
		if limit > len(words) {
			limit = len(words)
		}
		for j := i + 1; j < limit; j++ {
			if !isPastParticiple(words[j]) {
				continue
			}
			// "by"施事者是强被动信号
			if j+1 < len(words) && words[j+1] == "by" {
				return true
			}
			// 紧邻的 be+分词 结构, 如 "was given"
			if j == i+1 {
				return true
			}
			// 隔一个副词的结构要求副词以-ly结尾，排除 "was a dedicated engineer"
			if strings.HasSuffix(words[j-1], "ly") {
				return true
			}
		}
	}
	return false
}

// tokenizeWords 把句子切成小写单词，去掉首尾标点
func tokenizeWords(sentence string) []string {
	fields := strings.Fields(strings.ToLower(sentence))
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		word := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word != "" {
			words = append(words, word)
		}
	}
	return words
}

// wordCount 统计文本按空白切分后的词数
func wordCount(text string) int {
	return len(strings.Fields(text))
}
