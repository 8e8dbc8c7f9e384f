package posts

import (
	"math"
	"strings"
	"unicode"
)

// Derived field limits
const (
	ExcerptLength  = 160
	WordsPerMinute = 200
)

// Excerpt shortens plain text to at most limit runes, cutting on a word boundary
// and appending "…" when truncated.
func Excerpt(plain string, limit int) string {
	text := strings.Join(strings.Fields(plain), " ")
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	cut := runes[:limit-1]
	if idx := lastSpace(cut); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRightFunc(string(cut), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	}) + "…"
}

func lastSpace(rs []rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == ' ' {
			return i
		}
	}
	return -1
}

// ReadingTime estimates minutes to read plain text, at least 1
func ReadingTime(plain string) int {
	words := len(strings.Fields(plain))
	minutes := int(math.Ceil(float64(words) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}
