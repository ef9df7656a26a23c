package mapping

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotPilotDocument is returned when a file has no "pilots" array.
var ErrNotPilotDocument = errors.New("not a pilot document")

// Document is one external ship file.
type Document struct {
	Faction string            `json:"faction"`
	Pilots  []json.RawMessage `json:"pilots"`
}

// Pilot is the source-schema record.
type Pilot struct {
	Name       string          `json:"name"`
	Limited    int             `json:"limited"`
	Initiative *int            `json:"initiative"`
	Force      json.RawMessage `json:"force"`
	Faction    string          `json:"faction"`
	Ability    json.RawMessage `json:"ability"`
	Text       json.RawMessage `json:"text"`
	Artwork    json.RawMessage `json:"artwork"`
	Image      json.RawMessage `json:"image"`
	Charges    *Charges        `json:"charges"`
}

// Charges describes a pilot's energy pool.
type Charges struct {
	Value    *int `json:"value"`
	Recovers int  `json:"recovers"`
}

// HasForce reports whether the pilot declares a force attribute, whatever its value.
func (p *Pilot) HasForce() bool {
	return p.Force != nil
}

// ParseDocument decodes a ship file. Individual pilots are decoded later so
// one malformed pilot does not discard the whole file.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse pilot document: %w", err)
	}

	if doc.Pilots == nil {
		return nil, ErrNotPilotDocument
	}

	return &doc, nil
}

// ParsePilot decodes a single pilot.
func ParsePilot(data []byte) (*Pilot, error) {
	var p Pilot
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse pilot: %w", err)
	}

	return &p, nil
}
