package mapping

import (
	"fmt"
	"maps"

	"cardsmith/internal/ident"
)

// Rules hold the naming and balance tables used by the Mapper.
type Rules struct {
	// IDSuffix is appended to every generated id.
	IDSuffix ident.Suffix
	// SensitiveType is assigned to pilots with a force attribute.
	SensitiveType string
	// DefaultType is assigned to every other pilot.
	DefaultType string
	// CostMultipliers maps a card type to its cost per initiative point.
	CostMultipliers map[string]int
	// Factions maps raw faction tokens to display names.
	Factions map[string]string
}

// DefaultRules returns the tables of the base game.
func DefaultRules() Rules {
	return Rules{
		IDSuffix:      ident.Suffix("-ability"),
		SensitiveType: "Sensitive",
		DefaultType:   "Ace",
		CostMultipliers: map[string]int{
			"Sensitive": 3,
			"Ace":       2,
		},
		Factions: DefaultFactions(),
	}
}

// DefaultFactions returns the faction display names of the base game.
func DefaultFactions() map[string]string {
	return map[string]string{
		"rebelalliance":      "Neutral",
		"galacticempire":     "Empire",
		"resistance":         "theresistance",
		"firstorder":         "FirstOrder",
		"scumandvillainy":    "Scum",
		"galacticrepublic":   "Republic",
		"separatistalliance": "Separatist",
	}
}

// Cost returns initiative * multiplier for the type.
func (r Rules) Cost(cardType string, initiative int) (int, error) {
	multiplier, ok := r.CostMultipliers[cardType]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoMultiplier, cardType)
	}

	return initiative * multiplier, nil
}

// Faction translates a raw faction token. Unknown tokens are returned unchanged.
func (r Rules) Faction(token string) string {
	if name, ok := r.Factions[token]; ok {
		return name
	}

	return token
}

// TypeFor picks the card type of a pilot.
func (r Rules) TypeFor(p *Pilot) string {
	if p.HasForce() {
		return r.SensitiveType
	}

	return r.DefaultType
}

// Clone returns a copy whose tables can be modified independently.
func (r Rules) Clone() Rules {
	r.CostMultipliers = maps.Clone(r.CostMultipliers)
	r.Factions = maps.Clone(r.Factions)

	return r
}
