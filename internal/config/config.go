package config

import (
	"path/filepath"

	"cardsmith/internal/ident"
	"cardsmith/internal/mapping"
	"cardsmith/internal/resolve"
)

// Config is the root of the configuration file.
type Config struct {
	Version string         `yaml:"version"`
	Input   InputConfig    `yaml:"input"`
	Outputs []OutputConfig `yaml:"outputs" validate:"required,min=1,unique=Type,dive"`
	Dedup   DedupConfig    `yaml:"dedup"`
	Rules   RulesConfig    `yaml:"rules"`
	Resolve ResolveConfig  `yaml:"resolve"`
	Move    MoveConfig     `yaml:"move"`

	// BaseDir anchors relative paths. It is set by LoadFile.
	BaseDir string `yaml:"-"`
}

// InputConfig locates the pilot files.
type InputConfig struct {
	Dir     string `yaml:"dir" validate:"required"`
	Pattern string `yaml:"pattern" validate:"required"`
}

// OutputConfig is one partition of converted cards.
type OutputConfig struct {
	Type   string   `yaml:"type" validate:"required"`
	Path   string   `yaml:"path" validate:"required"`
	SortBy []string `yaml:"sort_by" validate:"dive,required"`
}

// DedupConfig lists the fields forming the cross-file duplicate key.
type DedupConfig struct {
	Keys []string `yaml:"keys" validate:"required,min=1,dive,required"`
}

// RulesConfig holds the pilot-to-card mapping tables.
type RulesConfig struct {
	IDSuffix        string            `yaml:"id_suffix"`
	SensitiveType   string            `yaml:"sensitive_type" validate:"required"`
	DefaultType     string            `yaml:"default_type" validate:"required,nefield=SensitiveType"`
	CostMultipliers map[string]int    `yaml:"cost_multipliers" validate:"required,min=1,dive,keys,required,endkeys,gte=0"`
	Factions        map[string]string `yaml:"factions"`
}

// ResolveConfig configures duplicate id resolution.
type ResolveConfig struct {
	Path     string `yaml:"path" validate:"required"`
	Suffix   string `yaml:"suffix"`
	Reappend bool   `yaml:"reappend"`
	Scope    string `yaml:"scope" validate:"omitempty,oneof=duplicates tagged"`
}

// MoveConfig configures moving cards of one type between files.
type MoveConfig struct {
	From   string   `yaml:"from" validate:"required"`
	To     string   `yaml:"to" validate:"required"`
	Type   string   `yaml:"type" validate:"required"`
	SortBy []string `yaml:"sort_by" validate:"dive,required"`
}

// Default returns the configuration of the base game.
func Default() Config {
	rules := mapping.DefaultRules()

	return Config{
		Version: "1",
		Input: InputConfig{
			Dir:     "input",
			Pattern: "*.json",
		},
		Outputs: []OutputConfig{
			{Type: "Ace", Path: "output-ace.json", SortBy: []string{"cost", "id"}},
			{Type: "Sensitive", Path: "output-sensitive.json", SortBy: []string{"description"}},
		},
		Dedup: DedupConfig{Keys: []string{"id", "description"}},
		Rules: RulesConfig{
			IDSuffix:        rules.IDSuffix.String(),
			SensitiveType:   rules.SensitiveType,
			DefaultType:     rules.DefaultType,
			CostMultipliers: rules.CostMultipliers,
			Factions:        rules.Factions,
		},
		Resolve: ResolveConfig{
			Path:   "src/data/cards/ace.json",
			Suffix: "-ability",
			Scope:  string(resolve.ScopeDuplicates),
		},
		Move: MoveConfig{
			From:   "src/data/cards/ace.json",
			To:     "src/data/cards/sensitive.json",
			Type:   "Sensitive",
			SortBy: []string{"cost", "id"},
		},
	}
}

// Path resolves p against BaseDir.
func (c *Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) || c.BaseDir == "" {
		return filepath.Clean(p)
	}

	return filepath.Join(c.BaseDir, p)
}

// MappingRules builds the mapper rules.
func (c *Config) MappingRules() mapping.Rules {
	return mapping.Rules{
		IDSuffix:        ident.Suffix(c.Rules.IDSuffix),
		SensitiveType:   c.Rules.SensitiveType,
		DefaultType:     c.Rules.DefaultType,
		CostMultipliers: c.Rules.CostMultipliers,
		Factions:        c.Rules.Factions,
	}.Clone()
}

// Resolver builds a duplicate resolver for file.
func (c *Config) Resolver(file string) *resolve.Resolver {
	scope, err := resolve.ParseScope(c.Resolve.Scope)
	if err != nil {
		scope = resolve.ScopeDuplicates
	}

	return &resolve.Resolver{
		Suffix:   ident.Suffix(c.Resolve.Suffix),
		Reappend: c.Resolve.Reappend,
		Scope:    scope,
		File:     file,
	}
}

// OutputTypes lists the partition types in configuration order.
func (c *Config) OutputTypes() []string {
	types := make([]string, len(c.Outputs))
	for i, o := range c.Outputs {
		types[i] = o.Type
	}

	return types
}
