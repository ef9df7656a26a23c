package ident

import "strings"

// Suffix is a literal tag appended to identifiers, e.g. "-ability" for cards
// derived from pilot abilities. The zero value is a valid empty suffix that
// never matches and appends nothing.
type Suffix string

// Has reports whether id ends with the suffix.
func (s Suffix) Has(id string) bool {
	return s != "" && strings.HasSuffix(id, string(s))
}

// Strip removes the suffix from id. The boolean is true when something was removed.
func (s Suffix) Strip(id string) (string, bool) {
	if !s.Has(id) {
		return id, false
	}

	return strings.TrimSuffix(id, string(s)), true
}

// Append adds the suffix to id unless it is already present.
func (s Suffix) Append(id string) string {
	if s.Has(id) {
		return id
	}

	return id + string(s)
}

// String returns the literal suffix.
func (s Suffix) String() string {
	return string(s)
}
