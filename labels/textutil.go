package labels

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// normalizeHeader reduces a free-form column header to a comparable key:
// NFKC fold, lowercase, and every non-alphanumeric rune stripped, so
// "Mailing_City ", "MAILING CITY" and "mailingcity" all compare equal.
func normalizeHeader(s string) string {
	s = norm.NFKC.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TitleCase lowercases the input, then uppercases the first rune of every
// word-character run (letters, digits, underscore). Interior casing is not
// preserved: "o'BRIEN" becomes "O'brien" lowered first, then "O'Brien".
// Idempotent, so already-formatted values pass through unchanged.
func TitleCase(s string) string {
	out := []rune(strings.ToLower(s))
	prevWord := false
	for i, r := range out {
		isWord := r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
		if isWord && !prevWord {
			out[i] = unicode.ToUpper(r)
		}
		prevWord = isWord
	}
	return string(out)
}

func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "\ufeff")
	return v
}
