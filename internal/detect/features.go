package detect

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/credo-scan/credo/internal/model"
)

// punctRunPattern matches maximal runs of 2+ exclamation/question
// marks; a mixed run like "!?!" counts as one.
var punctRunPattern = regexp.MustCompile(`[!?]{2,}`)

// ExtractFeatures computes surface statistics on the original
// (non-normalized) text. Every divisor is floored at 1, so all ratios
// are finite for empty and degenerate input.
func ExtractFeatures(text string) model.TextFeatures {
	words := strings.Fields(text)
	wordCount := len(words)

	segments := strings.Split(text, ".")
	sentenceCount := 0
	questions := 0
	for _, seg := range segments {
		trimmed := strings.TrimSpace(seg)
		if trimmed == "" {
			continue
		}
		sentenceCount++
		if strings.HasSuffix(trimmed, "?") {
			questions++
		}
	}

	totalRunes := 0
	capsWords := 0
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		totalRunes += n
		if n > 2 && isShouting(w) {
			capsWords++
		}
	}

	return model.TextFeatures{
		WordCount:      wordCount,
		SentenceCount:  sentenceCount,
		AvgWordLength:  float64(totalRunes) / float64(maxInt(wordCount, 1)),
		CapsRatio:      float64(capsWords) / float64(maxInt(wordCount, 1)),
		ExcessivePunct: len(punctRunPattern.FindAllString(text, -1)),
		QuestionRatio:  float64(questions) / float64(maxInt(sentenceCount, 1)),
	}
}

// isShouting reports whether a token is fully uppercase: at least one
// uppercase letter and no lowercase letters. Tokens with no letters at
// all ("!!!", "123") are not shouting.
func isShouting(word string) bool {
	hasUpper := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
