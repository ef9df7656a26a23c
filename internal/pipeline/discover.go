package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover lists the files under dir matching pattern, sorted by path.
// Patterns may use doublestar syntax ("**/*.json").
func Discover(dir, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputMissing, dir)
		}

		return nil, fmt.Errorf("failed to stat input directory %s: %w", dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInputMissing, dir)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid input pattern %q: %w", pattern, err)
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s in %s", ErrNoInputFiles, pattern, dir)
	}

	slices.Sort(matches)

	files := make([]string, len(matches))
	for i, m := range matches {
		files[i] = filepath.Join(dir, filepath.FromSlash(m))
	}

	return files, nil
}
