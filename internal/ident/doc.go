// Package ident turns free text into stable identifier fragments and handles
// the tag suffixes that mark a card's category or origin.
//
// Key functions:
//   - Normalize: lowercase hyphenated slug ("Darth Vader (TIE)" -> "darth-vader-tie")
//   - Compact: slug without hyphens ("Han Solo" -> "hansolo")
//   - Suffix: has/strip/append operations for a literal tag such as "-ability"
package ident
