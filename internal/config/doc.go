// Package config loads the cardsmith YAML configuration.
//
// Every table the card tools depend on (faction names, cost multipliers, the
// "-ability" tag suffix, file locations and sort orders) lives here rather
// than in the conversion code. Unset values are filled from Default, so an
// empty file reproduces the base game setup.
//
// # Schema Overview
//
//	version: "1"
//	input:
//	  dir: input
//	  pattern: "*.json"
//	outputs:
//	  - type: Ace
//	    path: output-ace.json
//	    sort_by: [cost, id]
//	  - type: Sensitive
//	    path: output-sensitive.json
//	    sort_by: [description]
//	dedup:
//	  keys: [id, description]
//	rules:
//	  id_suffix: "-ability"
//	  sensitive_type: Sensitive
//	  default_type: Ace
//	  cost_multipliers: {Sensitive: 3, Ace: 2}
//	  factions: {rebelalliance: Neutral, galacticempire: Empire}
//	resolve:
//	  path: src/data/cards/ace.json
//	  suffix: "-ability"
//	  reappend: false
//	  scope: duplicates
//	move:
//	  from: src/data/cards/ace.json
//	  to: src/data/cards/sensitive.json
//	  type: Sensitive
//	  sort_by: [cost, id]
//
// Maps are merged with the defaults: listing one faction adds to the default
// table instead of replacing it. Lists replace the defaults.
//
// Relative paths are resolved against the directory of the configuration
// file, or the working directory when no file is used.
package config
