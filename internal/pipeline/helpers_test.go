package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"cardsmith/internal/config"
	"cardsmith/internal/log"
	"cardsmith/internal/record"
)

func quietContext() context.Context {
	return log.WithContext(context.Background(), zerolog.New(io.Discard))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func readCollection(t *testing.T, path string) record.Collection {
	t.Helper()

	c, existed, err := record.ReadCollection(path)
	require.NoError(t, err)
	require.True(t, existed, "%s should exist", path)

	return c
}

// testConfig returns the default configuration anchored at dir.
func testConfig(t *testing.T, dir string) *config.Config {
	t.Helper()

	cfg, err := config.Parse(nil)
	require.NoError(t, err)

	cfg.BaseDir = dir

	return cfg
}
