// Package strutil provides string helpers for slugs and file names.
package strutil

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSlugLength caps derived slugs
const MaxSlugLength = 120

// Slugify lower-cases s, strips accents and joins alphanumeric runs with "-".
// "Héllo, Wörld!" becomes "hello-world".
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(plain) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}

	slug := b.String()
	if len(slug) > MaxSlugLength {
		slug = strings.TrimRight(slug[:MaxSlugLength], "-")
	}
	return slug
}

// SanitizeFileName reduces name to its base, slugifies the stem and lower-cases
// the extension. fallbackExt (e.g. ".png") is used when name has no extension.
func SanitizeFileName(name, fallbackExt string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	ext := strings.ToLower(filepath.Ext(base))
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	if ext == "" || ext == "." {
		ext = strings.ToLower(fallbackExt)
	}

	stem = Slugify(stem)
	if stem == "" {
		stem = "file"
	}

	safeExt := Slugify(strings.TrimPrefix(ext, "."))
	if safeExt == "" {
		return stem
	}
	return stem + "." + strings.ReplaceAll(safeExt, "-", "")
}

// Truncate shortens s to at most n runes
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
