package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"cardsmith/internal/record"
)

// writeCollection creates the parent directory if needed and atomically
// replaces path.
func writeCollection(path string, c record.Collection) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory for %s: %w", path, err)
	}

	return record.WriteCollection(path, c)
}

// readPrimary loads the collection a run operates on. Unlike destination
// files it must exist and hold valid JSON.
func readPrimary(path string) (record.Collection, error) {
	c, existed, err := record.ReadCollection(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPrimaryUnreadable, err)
	}

	if !existed {
		return nil, fmt.Errorf("%w: %s is missing or empty", ErrPrimaryUnreadable, path)
	}

	return c, nil
}
