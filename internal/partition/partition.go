package partition

import "cardsmith/internal/record"

// Predicate selects records.
type Predicate func(*record.Record) bool

// Split divides c into records matching pred and the remainder. Relative order
// is kept in both outputs and every record lands in exactly one of them.
func Split(c record.Collection, pred Predicate) (matching, remainder record.Collection) {
	matching = record.Collection{}
	remainder = record.Collection{}

	for _, r := range c {
		if pred(r) {
			matching = append(matching, r)
		} else {
			remainder = append(remainder, r)
		}
	}

	return matching, remainder
}

// ByField matches records whose string field equals value.
func ByField(key, value string) Predicate {
	return func(r *record.Record) bool {
		s, ok := r.String(key)
		return ok && s == value
	}
}

// ByType matches records of the given card type.
func ByType(cardType string) Predicate {
	return ByField(record.FieldType, cardType)
}

// GroupBy splits c into one group per listed value of key, in the order of
// values. Records whose value is not listed are returned as the remainder.
func GroupBy(c record.Collection, key string, values []string) (map[string]record.Collection, record.Collection) {
	groups := make(map[string]record.Collection, len(values))
	for _, v := range values {
		groups[v] = record.Collection{}
	}

	remainder := record.Collection{}

	for _, r := range c {
		v, _ := r.String(key)
		if group, ok := groups[v]; ok {
			groups[v] = append(group, r)
		} else {
			remainder = append(remainder, r)
		}
	}

	return groups, remainder
}

// Merge appends moved to dest and sorts the result by keys.
func Merge(dest, moved record.Collection, keys ...string) record.Collection {
	merged := make(record.Collection, 0, len(dest)+len(moved))
	merged = append(merged, dest...)
	merged = append(merged, moved...)

	SortBy(merged, keys...)

	return merged
}
