package pipeline

import "errors"

var (
	// ErrInputMissing is returned when the input directory does not exist.
	ErrInputMissing = errors.New("input directory not found")
	// ErrNoInputFiles is returned when the input directory holds no matching files.
	ErrNoInputFiles = errors.New("no input files found")
	// ErrPrimaryUnreadable is returned when the file a run operates on cannot
	// be read or parsed.
	ErrPrimaryUnreadable = errors.New("primary file unreadable")
)
