package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cardsmith/internal/config"
	"cardsmith/internal/diagnostic"
	"cardsmith/internal/log"
	"cardsmith/internal/mapping"
	"cardsmith/internal/partition"
	"cardsmith/internal/record"
	"cardsmith/internal/resolve"
)

// ConvertSummary reports the outcome of Convert.
type ConvertSummary struct {
	Files         int
	Skipped       int
	Pilots        int
	Filtered      int
	Processed     int
	Unique        int
	Removed       int
	Unpartitioned int
	Conflicts     int
	Outputs       []OutputSummary
	Diagnostics   diagnostic.Diagnostics
}

// OutputSummary describes one written partition.
type OutputSummary struct {
	Type   string
	Path   string
	Count  int
	SortBy []string
	// Conflicts lists ids shared by several cards of the partition, with
	// indexes into the written file.
	Conflicts []resolve.Conflict
}

// Convert maps every pilot file of the input directory into cards, removes
// cross-file duplicates, and writes one sorted card file per configured type.
// Input files holding a JSON array are taken as cards unchanged.
func Convert(ctx context.Context, cfg *config.Config) (*ConvertSummary, error) {
	logger := log.WithComponent(ctx, "convert")

	files, err := Discover(cfg.Path(cfg.Input.Dir), cfg.Input.Pattern)
	if err != nil {
		return nil, err
	}

	logger.Info().Int("files", len(files)).Msgf("processing %d JSON files", len(files))

	sum := &ConvertSummary{Files: len(files)}
	mapper := mapping.NewMapper(cfg.MappingRules())

	var all record.Collection

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := filepath.Base(path)

		res, err := convertFile(mapper, path)
		if err != nil {
			sum.Skipped++
			sum.Diagnostics.AddWarning(diagnostic.CodeFileSkipped, err.Error(), name, "")
			logger.Warn().Err(err).Str("file", name).Msg("skipping file")

			continue
		}

		for _, d := range res.Diagnostics.Warnings {
			logger.Warn().Str("file", name).Msg(d.Message)
		}

		sum.Diagnostics.Merge(res.Diagnostics)
		sum.Pilots += res.Pilots
		sum.Filtered += res.Filtered
		all = append(all, res.Records...)

		logger.Info().Str("file", name).Int("cards", len(res.Records)).
			Msgf("%s: %d limited pilots", name, len(res.Records))
	}

	kept, removed := partition.Dedup(all, partition.NewKeySet(), cfg.Dedup.Keys...)
	for _, r := range removed {
		sum.Diagnostics.AddInfo(diagnostic.CodeRecordDuplicate, "duplicate removed", "", r.ID())
		logger.Debug().Str("id", r.ID()).Msg("duplicate removed")
	}

	sum.Processed = len(all)
	sum.Unique = len(kept)
	sum.Removed = len(removed)

	groups, rest := partition.GroupBy(kept, record.FieldType, cfg.OutputTypes())
	for _, r := range rest {
		sum.Unpartitioned++
		sum.Diagnostics.AddWarning(diagnostic.CodeTypeUnpartitioned,
			fmt.Sprintf("no output configured for type %q", r.Type()), "", r.ID())
		logger.Warn().Str("id", r.ID()).Str("type", r.Type()).Msg("no output configured for type")
	}

	for _, o := range cfg.Outputs {
		group := groups[o.Type]
		partition.SortBy(group, o.SortBy...)

		path := cfg.Path(o.Path)
		conflicts := resolve.FindConflicts(group)
		resolve.ReportConflicts(&sum.Diagnostics, filepath.Base(path), conflicts)

		for _, conflict := range conflicts {
			sum.Conflicts++
			logger.Warn().Str("file", filepath.Base(path)).Str("id", conflict.ID).Strs("names", conflict.Names).
				Msg("id shared by several cards")
		}

		sum.Outputs = append(sum.Outputs, OutputSummary{
			Type:      o.Type,
			Path:      path,
			Count:     len(group),
			SortBy:    o.SortBy,
			Conflicts: conflicts,
		})
	}

	for _, o := range sum.Outputs {
		if err := writeCollection(o.Path, groups[o.Type]); err != nil {
			sum.Diagnostics.AddError(diagnostic.CodeWriteFailed, err.Error(), filepath.Base(o.Path), "")

			return sum, err
		}
	}

	logger.Info().
		Int("total", sum.Processed).
		Int("unique", sum.Unique).
		Int("removed", sum.Removed).
		Int("conflicts", sum.Conflicts).
		Msg("conversion finished")

	for _, o := range sum.Outputs {
		logger.Info().Str("path", o.Path).Int("cards", o.Count).Strs("sort_by", o.SortBy).
			Msgf("%s: %d %s pilots", filepath.Base(o.Path), o.Count, o.Type)
	}

	return sum, nil
}

func convertFile(mapper *mapping.Mapper, path string) (*mapping.DocumentResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	name := filepath.Base(path)

	// card files are already in the target schema
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		return readCards(trimmed, name)
	}

	doc, err := mapping.ParseDocument(data)
	if err != nil {
		return nil, err
	}

	return mapper.MapDocument(doc, name), nil
}

func readCards(data []byte, file string) (*mapping.DocumentResult, error) {
	c, err := record.DecodeCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse card file: %w", err)
	}

	res := &mapping.DocumentResult{Records: record.Collection{}}

	for i, r := range c {
		if err := record.Validate(r); err != nil {
			res.Diagnostics.AddWarning(diagnostic.CodeRecordInvalid,
				fmt.Sprintf("card %d skipped: %v", i, err), file, r.ID())

			continue
		}

		res.Records = append(res.Records, r)
	}

	return res, nil
}
