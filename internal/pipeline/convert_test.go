package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardsmith/internal/config"
	"cardsmith/internal/diagnostic"
	"cardsmith/internal/partition"
	"cardsmith/internal/record"
	"cardsmith/internal/resolve"
)

const awingJSON = `{
  "faction": "rebelalliance",
  "pilots": [
    {"name": "Arvel Crynyd", "limited": 1, "initiative": 3, "ability": "Arvel"},
    {"name": "Luke Skywalker", "limited": 1, "initiative": 5, "force": {"value": 2}, "ability": "Luke A"}
  ]
}`

const xwingJSON = `{
  "faction": "rebelalliance",
  "pilots": [
    {"name": "Luke Skywalker", "limited": 1, "initiative": 5, "force": {"value": 2}, "ability": "Luke A"},
    {"name": "Luke Skywalker", "limited": 1, "initiative": 5, "force": {}, "ability": "Luke B"},
    {"name": "Wedge Antilles", "limited": 1, "initiative": 4, "ability": "Wedge", "artwork": "w.png", "charges": {"value": 1, "recovers": 1}},
    {"name": "Red Squadron Veteran", "limited": 0, "initiative": 3},
    {"name": "Biggs Darklighter", "limited": 1, "initiative": 3, "ability": "Biggs"}
  ]
}`

const wantSensitive = `[
  {
    "id": "lukeskywalker-ability",
    "name": "Luke Skywalker",
    "type": "Sensitive",
    "cost": 15,
    "description": "Luke A",
    "unique": true,
    "faction": "Neutral",
    "initiative": 5
  },
  {
    "id": "lukeskywalker-ability",
    "name": "Luke Skywalker",
    "type": "Sensitive",
    "cost": 15,
    "description": "Luke B",
    "unique": true,
    "faction": "Neutral",
    "initiative": 5
  }
]
`

func setupInput(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "input", "awing.json"), awingJSON)
	writeFile(t, filepath.Join(dir, "input", "broken.json"), `{"faction":`)
	writeFile(t, filepath.Join(dir, "input", "xwing.json"), xwingJSON)

	return dir
}

func TestConvert(t *testing.T) {
	dir := setupInput(t)
	cfg := testConfig(t, dir)

	sum, err := Convert(quietContext(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 3, sum.Files)
	assert.Equal(t, 1, sum.Skipped)
	assert.Equal(t, 7, sum.Pilots)
	assert.Equal(t, 1, sum.Filtered)
	assert.Equal(t, 6, sum.Processed)
	assert.Equal(t, 5, sum.Unique)
	assert.Equal(t, 1, sum.Removed)
	assert.Zero(t, sum.Unpartitioned)
	assert.Equal(t, 1, sum.Diagnostics.Count(diagnostic.CodeFileSkipped))

	require.Len(t, sum.Outputs, 2)
	assert.Equal(t, OutputSummary{
		Type: "Ace", Path: filepath.Join(dir, "output-ace.json"), Count: 3, SortBy: []string{"cost", "id"},
	}, sum.Outputs[0])
	assert.Equal(t, 2, sum.Outputs[1].Count)

	// same pilot with two abilities survives dedup and shares its id
	assert.Equal(t, 1, sum.Conflicts)
	assert.Equal(t, 1, sum.Diagnostics.Count(diagnostic.CodeIDConflict))
	assert.Equal(t, []resolve.Conflict{{
		ID:      "lukeskywalker-ability",
		Indexes: []int{0, 1},
		Names:   []string{"Luke Skywalker", "Luke Skywalker"},
	}}, sum.Outputs[1].Conflicts)

	ace := readCollection(t, filepath.Join(dir, "output-ace.json"))
	assert.Equal(t, []string{"arvelcrynyd-ability", "biggsdarklighter-ability", "wedgeantilles-ability"}, ace.IDs())

	wedge := ace[2]
	energy, _ := wedge.Number(record.FieldEnergy)
	recurring, _ := wedge.Number(record.FieldRecurringEnergy)
	assert.InDelta(t, 1.0, energy, 0)
	assert.InDelta(t, 1.0, recurring, 0)

	if diff := cmp.Diff(wantSensitive, readFile(t, filepath.Join(dir, "output-sensitive.json"))); diff != "" {
		t.Errorf("output-sensitive.json mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertOutputsHaveNoDuplicateKeys(t *testing.T) {
	dir := setupInput(t)
	cfg := testConfig(t, dir)

	_, err := Convert(quietContext(), cfg)
	require.NoError(t, err)

	seen := partition.NewKeySet()

	for _, o := range cfg.Outputs {
		for _, r := range readCollection(t, cfg.Path(o.Path)) {
			assert.True(t, seen.Add(partition.CompositeKey(r, cfg.Dedup.Keys...)), "duplicate %s", r.ID())
		}
	}
}

func TestConvertIsIdempotent(t *testing.T) {
	dir := setupInput(t)
	cfg := testConfig(t, dir)

	_, err := Convert(quietContext(), cfg)
	require.NoError(t, err)

	first := readFile(t, filepath.Join(dir, "output-ace.json"))

	_, err = Convert(quietContext(), cfg)
	require.NoError(t, err)

	assert.Equal(t, first, readFile(t, filepath.Join(dir, "output-ace.json")))
}

func TestConvertFatalErrorsWriteNothing(t *testing.T) {
	t.Run("missing input directory", func(t *testing.T) {
		dir := t.TempDir()

		_, err := Convert(quietContext(), testConfig(t, dir))
		require.ErrorIs(t, err, ErrInputMissing)
		assert.NoFileExists(t, filepath.Join(dir, "output-ace.json"))
	})

	t.Run("no eligible files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "input", "readme.md"), "")

		_, err := Convert(quietContext(), testConfig(t, dir))
		require.ErrorIs(t, err, ErrNoInputFiles)
		assert.NoFileExists(t, filepath.Join(dir, "output-sensitive.json"))
	})

	t.Run("cancelled", func(t *testing.T) {
		dir := setupInput(t)

		ctx, cancel := context.WithCancel(quietContext())
		cancel()

		_, err := Convert(ctx, testConfig(t, dir))
		require.ErrorIs(t, err, context.Canceled)
		assert.NoFileExists(t, filepath.Join(dir, "output-ace.json"))
	})
}

func TestConvertReportsUnpartitionedTypes(t *testing.T) {
	dir := setupInput(t)

	cfg, err := config.Parse([]byte("outputs:\n  - type: Ace\n    path: out/ace.json\n    sort_by: [id]\n"))
	require.NoError(t, err)

	cfg.BaseDir = dir

	sum, err := Convert(quietContext(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Unpartitioned)
	assert.Equal(t, 2, sum.Diagnostics.Count(diagnostic.CodeTypeUnpartitioned))
	assert.FileExists(t, filepath.Join(dir, "out", "ace.json"))
	assert.NoFileExists(t, filepath.Join(dir, "output-ace.json"))
	assert.NoFileExists(t, filepath.Join(dir, "output-sensitive.json"))
}

func TestConvertAcceptsCardFiles(t *testing.T) {
	dir := setupInput(t)
	writeFile(t, filepath.Join(dir, "input", "cards.json"), `[
  {"id": "arvelcrynyd-ability", "name": "Arvel Crynyd", "type": "Ace", "cost": 6, "description": "Arvel"},
  {"id": "custom-ability", "name": "Custom", "type": "Ace", "cost": 1},
  {"name": "No Id", "type": "Ace"}
]`)

	sum, err := Convert(quietContext(), testConfig(t, dir))
	require.NoError(t, err)

	assert.Equal(t, 4, sum.Files)
	assert.Equal(t, 8, sum.Processed)
	assert.Equal(t, 2, sum.Removed)
	assert.Equal(t, 1, sum.Diagnostics.Count(diagnostic.CodeRecordInvalid))

	ace := readCollection(t, filepath.Join(dir, "output-ace.json"))
	assert.Equal(t, []string{
		"custom-ability", "arvelcrynyd-ability", "biggsdarklighter-ability", "wedgeantilles-ability",
	}, ace.IDs())
}

func TestConvertReportsWriteFailure(t *testing.T) {
	dir := setupInput(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "output-sensitive.json", "taken"), 0o755))

	sum, err := Convert(quietContext(), testConfig(t, dir))
	require.Error(t, err)
	require.NotNil(t, sum)

	require.Len(t, sum.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeWriteFailed, sum.Diagnostics.Errors[0].Code)
	assert.Equal(t, "output-sensitive.json", sum.Diagnostics.Errors[0].File)
}
