package ident

import (
	"strings"
	"unicode"
)

// Normalize converts text into a slug.
// The normalization pipeline:
// 1. Case-fold to lower.
// 2. Collapse every run of non alphanumeric runes into a single hyphen.
// 3. Trim leading and trailing hyphens.
//
// Letters and digits outside ASCII count as alphanumeric. Uppercase letters
// without a lowercase form are separators. Empty or all-symbol input yields "".
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	pendingHyphen := false

	for _, r := range strings.ToLower(s) {
		if !isAlphanumeric(r) {
			pendingHyphen = b.Len() > 0

			continue
		}

		if pendingHyphen {
			b.WriteByte('-')

			pendingHyphen = false
		}

		b.WriteRune(r)
	}

	return b.String()
}

// Compact is Normalize with the hyphens removed.
func Compact(s string) string {
	return strings.ReplaceAll(Normalize(s), "-", "")
}

// IsSlug reports whether s is already in Normalize form.
func IsSlug(s string) bool {
	return Normalize(s) == s
}

// isAlphanumeric expects r already lowered.
func isAlphanumeric(r rune) bool {
	if unicode.IsUpper(r) {
		return false
	}

	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
