package partition

import (
	"strings"

	"cardsmith/internal/record"
)

// KeySet accumulates composite keys already seen. It is passed explicitly
// between Dedup calls so that several files can share one set.
type KeySet map[string]struct{}

// NewKeySet creates an empty KeySet.
func NewKeySet() KeySet {
	return make(KeySet)
}

// Has reports whether key was seen.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Add records key. It reports whether the key was new.
func (s KeySet) Add(key string) bool {
	if s.Has(key) {
		return false
	}

	s[key] = struct{}{}

	return true
}

// CompositeKey joins the compact JSON values of fields. A missing field
// contributes an empty segment.
func CompositeKey(r *record.Record, fields ...string) string {
	parts := make([]string, len(fields))

	for i, f := range fields {
		if raw, ok := r.Raw(f); ok {
			parts[i] = string(raw)
		}
	}

	return strings.Join(parts, "\x00")
}

// Dedup keeps the first record for every composite key of fields and drops
// later ones, both in input order. Keys are added to seen, so a set shared
// across calls deduplicates across collections.
func Dedup(c record.Collection, seen KeySet, fields ...string) (kept, removed record.Collection) {
	if seen == nil {
		seen = NewKeySet()
	}

	kept = record.Collection{}
	removed = record.Collection{}

	for _, r := range c {
		if seen.Add(CompositeKey(r, fields...)) {
			kept = append(kept, r)
		} else {
			removed = append(removed, r)
		}
	}

	return kept, removed
}
