package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/aalvaropc/cartlab/internal/domain"
)

// MapConfig applies the parsed file on top of domain.DefaultConfig.
// A file that lists cases replaces the default cases entirely.
func MapConfig(path string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	y := yc.Cartlab

	if y.Reader.Min != nil {
		cfg.Reader.Min = *y.Reader.Min
	}
	if y.Reader.Max != nil {
		cfg.Reader.Max = *y.Reader.Max
	}
	if math.IsNaN(cfg.Reader.Min) || math.IsNaN(cfg.Reader.Max) {
		return domain.Config{}, invalidField(path, "reader", "min and max must be numbers")
	}
	if cfg.Reader.Min > cfg.Reader.Max {
		return domain.Config{}, invalidField(path, "reader",
			fmt.Sprintf("min (%g) must not exceed max (%g)", cfg.Reader.Min, cfg.Reader.Max))
	}

	if y.Point.Limit != nil {
		cfg.Point.Limit = *y.Point.Limit
	}

	if y.Table.Title != nil {
		cfg.Table.Title = strings.TrimSpace(*y.Table.Title)
	}
	if y.Table.Column != nil {
		if *y.Table.Column < 0 {
			return domain.Config{}, invalidField(path, "table.column", "must not be negative")
		}
		cfg.Table.Column = *y.Table.Column
	}
	if y.Table.Precision != nil {
		if *y.Table.Precision < 0 {
			return domain.Config{}, invalidField(path, "table.precision", "must not be negative")
		}
		cfg.Table.Precision = *y.Table.Precision
	}

	if y.Cases != nil {
		cfg.Cases = make([]domain.Case, 0, len(y.Cases))
		for i, c := range y.Cases {
			exp, err := parseExpect(c.Expect)
			if err != nil {
				return domain.Config{}, invalidField(path, fmt.Sprintf("cases[%d].expect", i), err.Error())
			}
			cfg.Cases = append(cfg.Cases, domain.Case{Input: c.Input, Expect: exp})
		}
	}

	return cfg, nil
}

func parseExpect(s string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return nil, nil
	case "yes", "y", "true", "numeric":
		return domain.Expect(true), nil
	case "no", "n", "false":
		return domain.Expect(false), nil
	default:
		return nil, fmt.Errorf("unsupported expectation %q (expected yes|no)", s)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
