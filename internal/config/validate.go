package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig wraps every configuration problem.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks field constraints and the cross-field rules the tags cannot
// express.
func Validate(cfg *Config) error {
	var problems []string

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}

	for _, t := range []string{cfg.Rules.SensitiveType, cfg.Rules.DefaultType} {
		if t == "" {
			continue
		}

		if _, ok := cfg.Rules.CostMultipliers[t]; !ok {
			problems = append(problems, fmt.Sprintf("rules.cost_multipliers: no multiplier for type %q", t))
		}
	}

	paths := make(map[string]string, len(cfg.Outputs))
	for _, o := range cfg.Outputs {
		if o.Path == "" {
			continue
		}

		if other, ok := paths[o.Path]; ok {
			problems = append(problems, fmt.Sprintf("outputs: types %q and %q share path %q", other, o.Type, o.Path))
		}

		paths[o.Path] = o.Type
	}

	if cfg.Move.From != "" && cfg.Move.From == cfg.Move.To {
		problems = append(problems, fmt.Sprintf("move: from and to are the same file %q", cfg.Move.From))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	if fe.Param() != "" {
		return fmt.Sprintf("%s: failed %s=%s", field, fe.Tag(), fe.Param())
	}

	return fmt.Sprintf("%s: failed %s", field, fe.Tag())
}
