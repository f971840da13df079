package domain

import "math"

// Config represents the cartlab configuration loaded from cartlab.yaml.
type Config struct {
	Reader ReaderConfig
	Point  PointConfig
	Table  TableConfig
	Cases  []Case
}

type ReaderConfig struct {
	Min float64
	Max float64
}

type PointConfig struct {
	Limit int
}

type TableConfig struct {
	Title     string // printed above the case table, underlined; empty for none
	Column    int
	Precision int
}

// DefaultConfig provides sane defaults if cartlab.yaml is partially missing.
// The default cases carry no expectations, so the table has two columns.
func DefaultConfig() Config {
	return Config{
		Reader: ReaderConfig{Min: -99.9, Max: 99.9},
		Point:  PointConfig{Limit: math.MaxInt},
		Table:  TableConfig{Title: "Lab 7 - Strings", Column: 12, Precision: 6},
		Cases: []Case{
			{Input: "123.45"},
			{Input: "chicken"},
		},
	}
}
