package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"cardsmith/internal/config"
	"cardsmith/internal/diagnostic"
	"cardsmith/internal/log"
	"cardsmith/internal/partition"
	"cardsmith/internal/record"
)

// MoveSummary reports the outcome of Move.
type MoveSummary struct {
	From        string
	To          string
	Type        string
	Moved       record.Collection
	Remaining   int
	Total       int
	Diagnostics diagnostic.Diagnostics
}

// Move takes every card of cfg.Move.Type out of cfg.Move.From and merges it
// into cfg.Move.To, which is then sorted by cfg.Move.SortBy. A missing, empty
// or unparseable destination starts out empty.
func Move(ctx context.Context, cfg *config.Config) (*MoveSummary, error) {
	logger := log.WithComponent(ctx, "move")

	from, to := cfg.Path(cfg.Move.From), cfg.Path(cfg.Move.To)
	sum := &MoveSummary{From: from, To: to, Type: cfg.Move.Type}

	source, err := readPrimary(from)
	if err != nil {
		return nil, err
	}

	dest, existed, err := record.ReadCollection(to)
	switch {
	case err != nil:
		sum.Diagnostics.AddWarning(diagnostic.CodeDestinationInvalid,
			fmt.Sprintf("invalid JSON, starting with an empty collection: %v", err), filepath.Base(to), "")
		logger.Warn().Err(err).Str("path", to).Msg("destination has invalid JSON, starting with empty array")

		dest = record.Collection{}
	case !existed:
		logger.Info().Str("path", to).Msg("destination does not exist yet, creating it")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	moved, remaining := partition.Split(source, partition.ByType(cfg.Move.Type))
	merged := partition.Merge(dest, moved, cfg.Move.SortBy...)

	sum.Moved = moved
	sum.Remaining = len(remaining)
	sum.Total = len(merged)

	// destination first: a failure in between duplicates cards instead of losing them
	if err := writeCollection(to, merged); err != nil {
		sum.Diagnostics.AddError(diagnostic.CodeWriteFailed, err.Error(), filepath.Base(to), "")

		return sum, err
	}

	if err := writeCollection(from, remaining); err != nil {
		sum.Diagnostics.AddError(diagnostic.CodeWriteFailed, err.Error(), filepath.Base(from), "")

		return sum, err
	}

	for _, r := range moved {
		sum.Diagnostics.AddInfo(diagnostic.CodeRecordMoved,
			fmt.Sprintf("moved %s to %s", r.Name(), filepath.Base(to)), filepath.Base(from), r.ID())
		logger.Info().Str("id", r.ID()).Str("name", r.Name()).Msg("moved card")
	}

	logger.Info().
		Int("moved", len(moved)).
		Int("remaining", sum.Remaining).
		Int("total", sum.Total).
		Msgf("moved %d %s cards from %s to %s", len(moved), cfg.Move.Type, filepath.Base(from), filepath.Base(to))

	return sum, nil
}
