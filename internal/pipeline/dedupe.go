package pipeline

import (
	"context"
	"path/filepath"

	"cardsmith/internal/config"
	"cardsmith/internal/diagnostic"
	"cardsmith/internal/log"
	"cardsmith/internal/record"
	"cardsmith/internal/resolve"
)

// DedupeSummary reports the outcome of Dedupe.
type DedupeSummary struct {
	Path        string
	Records     int
	Renames     []resolve.Rename
	Conflicts   []resolve.Conflict
	Written     bool
	Diagnostics diagnostic.Diagnostics
}

// Dedupe renames duplicate ids in cfg.Resolve.Path and writes the file back
// when anything changed.
func Dedupe(ctx context.Context, cfg *config.Config) (*DedupeSummary, error) {
	logger := log.WithComponent(ctx, "dedupe")

	path := cfg.Path(cfg.Resolve.Path)
	name := filepath.Base(path)

	c, err := readPrimary(path)
	if err != nil {
		return nil, err
	}

	sum := &DedupeSummary{Path: path, Records: len(c)}

	for _, r := range c {
		if err := record.Validate(r); err != nil {
			sum.Diagnostics.AddWarning(diagnostic.CodeRecordInvalid, err.Error(), name, r.ID())
			logger.Warn().Err(err).Str("file", name).Msg("invalid card")
		}
	}

	logger.Info().Int("cards", len(c)).Msgf("processing %d cards", len(c))

	res := cfg.Resolver(name).Resolve(c)

	sum.Renames = res.Renames
	sum.Conflicts = res.Conflicts
	sum.Diagnostics.Merge(res.Diagnostics)

	for _, rn := range res.Renames {
		logger.Info().Str("old_id", rn.OldID).Str("new_id", rn.NewID).Str("name", rn.Name).
			Msgf("changed: %s -> %s (%q)", rn.OldID, rn.NewID, rn.Name)
	}

	for _, conflict := range res.Conflicts {
		logger.Warn().Str("id", conflict.ID).Strs("names", conflict.Names).Ints("indexes", conflict.Indexes).
			Msg("id still shared after renaming")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !res.Changed() {
		logger.Info().Msg("no changes needed")

		return sum, nil
	}

	if err := writeCollection(path, res.Collection); err != nil {
		sum.Diagnostics.AddError(diagnostic.CodeWriteFailed, err.Error(), name, "")

		return sum, err
	}

	sum.Written = true

	logger.Info().Int("renamed", len(res.Renames)).Str("path", path).Msgf("fixed %d card ids", len(res.Renames))

	return sum, nil
}
