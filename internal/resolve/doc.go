// Package resolve restores id uniqueness in a card collection.
//
// Records sharing an id are renamed to base + "-" + Normalize(name), where
// base is the original id with its tag suffix stripped. Renames are counted
// against the original ids, so every member of a duplicate group is renamed,
// including the first. Collisions that survive renaming (same id and same
// name) are reported as conflicts and left in place.
package resolve
