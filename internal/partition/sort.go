package partition

import (
	"cmp"
	"slices"

	"cardsmith/internal/record"
)

// SortBy stably sorts c in place by the given fields, ascending. Numbers
// compare numerically and strings lexicographically. Missing fields order
// first, then numbers, then strings. Records equal on every key keep their
// input order.
func SortBy(c record.Collection, keys ...string) {
	if len(keys) == 0 {
		return
	}

	slices.SortStableFunc(c, func(a, b *record.Record) int {
		for _, key := range keys {
			if n := compareField(a, b, key); n != 0 {
				return n
			}
		}

		return 0
	})
}

// Kinds in sort order. Fields that are neither numbers nor strings rank as
// missing.
const (
	kindMissing = iota
	kindNumber
	kindString
)

type sortValue struct {
	kind   int
	number float64
	text   string
}

func valueOf(r *record.Record, key string) sortValue {
	if n, ok := r.Number(key); ok {
		return sortValue{kind: kindNumber, number: n}
	}

	if s, ok := r.String(key); ok {
		return sortValue{kind: kindString, text: s}
	}

	return sortValue{kind: kindMissing}
}

func compareField(a, b *record.Record, key string) int {
	va, vb := valueOf(a, key), valueOf(b, key)

	if n := cmp.Compare(va.kind, vb.kind); n != 0 {
		return n
	}

	switch va.kind {
	case kindNumber:
		return cmp.Compare(va.number, vb.number)
	case kindString:
		return cmp.Compare(va.text, vb.text)
	default:
		return 0
	}
}
