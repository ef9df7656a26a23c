package mapping

import (
	"encoding/json"
	"errors"
	"fmt"

	"cardsmith/internal/diagnostic"
	"cardsmith/internal/ident"
	"cardsmith/internal/record"
)

var (
	// ErrNoMultiplier is returned when a card type has no cost multiplier.
	ErrNoMultiplier = errors.New("no cost multiplier for type")
	// ErrMissingInitiative is returned for limited pilots without an initiative.
	ErrMissingInitiative = errors.New("missing initiative")
)

// Context carries document-level values into Map.
type Context struct {
	// Faction is the document faction, used when the pilot has none.
	Faction string
	// File is attached to diagnostics.
	File string
}

// Mapper converts pilots into cards.
type Mapper struct {
	Rules Rules
}

// NewMapper creates a Mapper with the given rules.
func NewMapper(rules Rules) *Mapper {
	return &Mapper{Rules: rules}
}

// Map converts one pilot. It returns nil, nil when the pilot is not limited
// or has no name.
func (m *Mapper) Map(p *Pilot, ctx Context) (*record.Record, error) {
	if p.Limited == 0 || p.Name == "" {
		return nil, nil
	}

	if p.Initiative == nil {
		return nil, fmt.Errorf("pilot %q: %w", p.Name, ErrMissingInitiative)
	}

	cardType := m.Rules.TypeFor(p)

	cost, err := m.Rules.Cost(cardType, *p.Initiative)
	if err != nil {
		return nil, fmt.Errorf("pilot %q: %w", p.Name, err)
	}

	faction := p.Faction
	if faction == "" {
		faction = ctx.Faction
	}

	card := record.New()

	fields := []struct {
		key   string
		value any
		emit  bool
	}{
		{record.FieldID, m.Rules.IDSuffix.Append(ident.Compact(p.Name)), true},
		{record.FieldName, p.Name, true},
		{record.FieldType, cardType, true},
		{record.FieldCost, cost, true},
		{record.FieldDescription, firstOf(p.Ability, p.Text), p.Ability != nil || p.Text != nil},
		{record.FieldImage, firstOf(p.Artwork, p.Image), p.Artwork != nil || p.Image != nil},
		{record.FieldUnique, true, true},
		{record.FieldFaction, m.Rules.Faction(faction), true},
		{record.FieldInitiative, *p.Initiative, true},
		{record.FieldEnergy, energy(p.Charges), p.Charges != nil && p.Charges.Value != nil},
		{record.FieldRecurringEnergy, recurring(p.Charges), p.Charges != nil && p.Charges.Recovers > 0},
	}

	for _, f := range fields {
		if !f.emit {
			continue
		}

		if err := card.Set(f.key, f.value); err != nil {
			return nil, err
		}
	}

	return card, nil
}

// DocumentResult is the outcome of MapDocument.
type DocumentResult struct {
	Records     record.Collection
	Pilots      int
	Filtered    int
	Diagnostics diagnostic.Diagnostics
}

// MapDocument converts every pilot of a ship file. Pilots that fail to decode
// or map are skipped and reported; the rest of the document is still used.
func (m *Mapper) MapDocument(doc *Document, file string) *DocumentResult {
	res := &DocumentResult{Records: record.Collection{}, Pilots: len(doc.Pilots)}
	ctx := Context{Faction: doc.Faction, File: file}

	for i, raw := range doc.Pilots {
		pilot, err := ParsePilot(raw)
		if err != nil {
			res.Diagnostics.AddWarning(diagnostic.CodeRecordInvalid,
				fmt.Sprintf("pilot %d skipped: %v", i, err), file, "")

			continue
		}

		card, err := m.Map(pilot, ctx)
		if err != nil {
			res.Diagnostics.AddWarning(diagnostic.CodeRecordInvalid,
				fmt.Sprintf("pilot %d skipped: %v", i, err), file, "")

			continue
		}

		if card == nil {
			res.Filtered++
			res.Diagnostics.AddInfo(diagnostic.CodeRecordFiltered,
				fmt.Sprintf("pilot %d (%q) is not limited", i, pilot.Name), file, "")

			continue
		}

		res.Records = append(res.Records, card)
	}

	return res
}

// firstOf picks by key presence: a present preferred field wins even when
// it holds null.
func firstOf(preferred, fallback json.RawMessage) json.RawMessage {
	if preferred != nil {
		return preferred
	}

	return fallback
}

func energy(c *Charges) int {
	if c == nil || c.Value == nil {
		return 0
	}

	return *c.Value
}

func recurring(c *Charges) int {
	if c == nil {
		return 0
	}

	return c.Recovers
}
