// Package diagnostic provides structured errors, warnings and notices
// collected while cards are converted, renamed and moved.
//
// Key capabilities:
//   - Skipped input files and invalid records
//   - Every id rename with its old and new value
//   - Id conflicts the resolver could not fix
//   - Records moved between card files
package diagnostic
