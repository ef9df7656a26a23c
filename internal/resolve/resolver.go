package resolve

import (
	"fmt"
	"strings"

	"cardsmith/internal/diagnostic"
	"cardsmith/internal/ident"
	"cardsmith/internal/record"
)

// Scope selects which records are renamed.
type Scope string

const (
	// ScopeDuplicates renames only records whose original id is shared.
	ScopeDuplicates Scope = "duplicates"
	// ScopeTagged renames every record whose id carries the tag suffix.
	ScopeTagged Scope = "tagged"
)

// Resolver rewrites colliding ids.
type Resolver struct {
	// Suffix is stripped from the original id before composing the new one.
	Suffix ident.Suffix
	// Reappend puts the suffix back on renamed ids that carried it.
	Reappend bool
	// Scope defaults to ScopeDuplicates.
	Scope Scope
	// File is attached to diagnostics.
	File string
}

// Rename records one id change.
type Rename struct {
	Index int
	OldID string
	NewID string
	Name  string
}

// Conflict is an id shared by more than one record.
type Conflict struct {
	ID      string
	Indexes []int
	Names   []string
}

// Result is the outcome of Resolve.
type Result struct {
	Collection  record.Collection
	Renames     []Rename
	Conflicts   []Conflict
	Diagnostics diagnostic.Diagnostics
}

// Changed reports whether any id was rewritten.
func (r *Result) Changed() bool {
	return len(r.Renames) > 0
}

// Resolve renames records in place and returns the same collection together
// with every rename and remaining conflict. Records without an id are never
// renamed nor reported.
func (r *Resolver) Resolve(c record.Collection) *Result {
	res := &Result{Collection: c}

	counts := make(map[string]int, len(c))
	for _, rec := range c {
		counts[rec.ID()]++
	}

	for i, rec := range c {
		oldID := rec.ID()
		if oldID == "" || !r.selects(oldID, counts[oldID]) {
			continue
		}

		newID := r.ComposeID(oldID, rec.Name())
		rec.SetID(newID)

		res.Renames = append(res.Renames, Rename{Index: i, OldID: oldID, NewID: newID, Name: rec.Name()})
		res.Diagnostics.AddInfo(diagnostic.CodeIDRenamed,
			fmt.Sprintf("changed %s -> %s (%q)", oldID, newID, rec.Name()), r.File, newID)
	}

	res.Conflicts = FindConflicts(c)
	ReportConflicts(&res.Diagnostics, r.File, res.Conflicts)

	return res
}

// ReportConflicts adds one id_conflict warning per conflict.
func ReportConflicts(d *diagnostic.Diagnostics, file string, conflicts []Conflict) {
	for _, conflict := range conflicts {
		d.AddWarning(diagnostic.CodeIDConflict,
			fmt.Sprintf("id %s is shared by %d records (%s)",
				conflict.ID, len(conflict.Indexes), strings.Join(conflict.Names, ", ")),
			file, conflict.ID)
	}
}

// ComposeID builds the replacement id for a record.
func (r *Resolver) ComposeID(oldID, name string) string {
	base, stripped := r.Suffix.Strip(oldID)
	newID := base + "-" + ident.Normalize(name)

	if stripped && r.Reappend {
		newID = r.Suffix.Append(newID)
	}

	return newID
}

func (r *Resolver) selects(id string, count int) bool {
	if r.Scope == ScopeTagged {
		return r.Suffix.Has(id)
	}

	return count > 1
}

// FindConflicts lists every id shared by more than one record, in order of
// first appearance.
func FindConflicts(c record.Collection) []Conflict {
	byID := make(map[string]*Conflict)

	var order []string

	for i, rec := range c {
		id := rec.ID()
		if id == "" {
			continue
		}

		conflict, ok := byID[id]
		if !ok {
			conflict = &Conflict{ID: id}
			byID[id] = conflict
			order = append(order, id)
		}

		conflict.Indexes = append(conflict.Indexes, i)
		conflict.Names = append(conflict.Names, rec.Name())
	}

	var conflicts []Conflict

	for _, id := range order {
		if conflict := byID[id]; len(conflict.Indexes) > 1 {
			conflicts = append(conflicts, *conflict)
		}
	}

	return conflicts
}

// ParseScope validates a scope name. The empty string selects ScopeDuplicates.
func ParseScope(s string) (Scope, error) {
	switch scope := Scope(strings.ToLower(strings.TrimSpace(s))); scope {
	case "":
		return ScopeDuplicates, nil
	case ScopeDuplicates, ScopeTagged:
		return scope, nil
	default:
		return "", fmt.Errorf("invalid scope %q (expected one of %s)", s,
			strings.Join([]string{string(ScopeDuplicates), string(ScopeTagged)}, "|"))
	}
}
