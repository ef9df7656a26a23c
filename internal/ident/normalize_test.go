package ident

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"Han Solo", "han-solo"},
		{"Bob", "bob"},
		{"ALICE", "alice"},
		{"Darth Vader (TIE Advanced)", "darth-vader-tie-advanced"},
		{"\"Howlrunner\"", "howlrunner"},
		{"Poe Dameron (HWK)", "poe-dameron-hwk"},

		// Separator runs collapse
		{"a  --  b", "a-b"},
		{"a_b", "a-b"},
		{"--edge--", "edge"},
		{"R2-D2", "r2-d2"},

		// Non-ASCII letters are alphanumeric
		{"Sabé", "sabé"},
		{"Ahsoka Tano", "ahsoka-tano"},

		// Edge cases
		{"", ""},
		{"!!!", ""},
		{"   ", ""},
		{"7", "7"},

		// Uppercase letters with no lowercase form separate
		{"ϒ", ""},
		{"ℂ", ""},
		{"Aℂb", "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeProperties(t *testing.T) {
	inputs := []string{
		"Han Solo", "  Leading and trailing  ", "Mixed_CASE-input!!", "İstanbul", "über--cool",
		"#1 Ace", "a-b-c", "---", "Wedge Antilles (T-65 X-wing)", "ǅemal", "日本 語",
		"ϒ", "ℂ", "Wing ℂ ϒ 2",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			once := Normalize(in)
			assert.Equal(t, once, Normalize(once), "normalize must be idempotent")
			assert.True(t, IsSlug(once))

			assert.False(t, strings.HasPrefix(once, "-"))
			assert.False(t, strings.HasSuffix(once, "-"))
			assert.NotContains(t, once, "--")

			for _, r := range once {
				if r == '-' {
					continue
				}

				assert.True(t, unicode.IsLetter(r) || unicode.IsDigit(r), "unexpected rune %q in %q", r, once)
				assert.False(t, unicode.IsUpper(r), "uppercase rune %q in %q", r, once)
			}
		})
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Han Solo", "hansolo"},
		{"Wedge Antilles", "wedgeantilles"},
		{"\"Backstabber\"", "backstabber"},
		{"R2-D2", "r2d2"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compact(tt.input))
		})
	}
}
