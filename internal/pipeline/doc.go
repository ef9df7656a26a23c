// Package pipeline drives the card maintenance runs: converting pilot files
// into partitioned card files, moving cards of one type between files, and
// fixing duplicate ids in place.
//
// Every run reads all of its inputs and transforms them in memory before the
// first write. Fatal problems (missing input directory, no input files, an
// unreadable primary file) abort before anything is written; problems that
// affect a single file or record are logged, recorded as diagnostics and
// skipped.
package pipeline
