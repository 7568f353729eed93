package detect

import (
	"regexp"
	"strings"
)

// urlPattern matches URL-ish tokens up to the next whitespace
var urlPattern = regexp.MustCompile(`http\S+|www\.\S+`)

// Normalize lowercases text and strips URL tokens. Matching happens on
// the normalized form; text statistics are computed on the original.
func Normalize(text string) string {
	text = strings.ToLower(text)
	return urlPattern.ReplaceAllString(text, "")
}
