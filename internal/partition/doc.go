// Package partition splits card collections by a discriminant field, merges
// moved cards into existing collections with a total order, and removes
// cross-file duplicates by composite key.
package partition
