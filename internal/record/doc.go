// Package record holds the card Record and Collection types and their JSON
// persistence.
//
// A Record is an insertion-ordered JSON object: fields read from disk keep
// their order and their exact values when written back, so a pass that only
// touches "id" leaves every other byte of a card alone. Collections are
// persisted as pretty-printed JSON arrays and written atomically.
package record
