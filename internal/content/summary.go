package content

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const summaryFallbackLen = 200

// 以 . ! ? 結尾，後面接空白或字串結尾
var sentencePattern = regexp.MustCompile(`[^.!?]*[.!?]+(?:\s+|$)`)

// FirstSentences 回傳前 n 個句子；找不到句子時截斷為 200 字元並加上 "..."
func FirstSentences(text string, n int) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if n <= 0 {
		n = 3
	}

	matches := sentencePattern.FindAllString(text, n)
	if len(matches) > 0 {
		sentences := make([]string, 0, len(matches))
		for _, m := range matches {
			if m = strings.TrimSpace(m); m != "" {
				sentences = append(sentences, m)
			}
		}
		if len(sentences) > 0 {
			return strings.Join(sentences, " ")
		}
	}

	if utf8.RuneCountInString(text) > summaryFallbackLen {
		return strings.TrimSpace(string([]rune(text)[:summaryFallbackLen])) + "..."
	}
	return strings.TrimSpace(text)
}
