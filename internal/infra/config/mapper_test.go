package config

import (
	"strings"
	"testing"

	"github.com/aalvaropc/cartlab/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestMapConfigRejectsInvertedRange(t *testing.T) {
	yc := YAMLConfig{Cartlab: YAMLCartlab{
		Reader: YAMLReader{Min: ptr(5.0), Max: ptr(1.0)},
	}}

	_, err := MapConfig("cartlab.yaml", yc)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "field reader") {
		t.Fatalf("expected reader field in error, got %v", err)
	}
}

func TestMapConfigRejectsNegativeTable(t *testing.T) {
	cases := []struct {
		table YAMLTable
		field string
	}{
		{YAMLTable{Column: ptr(-1)}, "table.column"},
		{YAMLTable{Precision: ptr(-1)}, "table.precision"},
	}
	for _, c := range cases {
		_, err := MapConfig("cartlab.yaml", YAMLConfig{Cartlab: YAMLCartlab{Table: c.table}})
		if err == nil || !strings.Contains(err.Error(), c.field) {
			t.Fatalf("expected %s error, got %v", c.field, err)
		}
	}
}

func TestMapConfigExpectAliases(t *testing.T) {
	yc := YAMLConfig{Cartlab: YAMLCartlab{Cases: []YAMLCase{
		{Input: "1", Expect: "YES"},
		{Input: "2", Expect: "true"},
		{Input: "x", Expect: "No"},
		{Input: "y", Expect: "false"},
		{Input: "z"},
	}}}

	cfg, err := MapConfig("cartlab.yaml", yc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []*bool{domain.Expect(true), domain.Expect(true), domain.Expect(false), domain.Expect(false), nil}
	for i, w := range want {
		got := cfg.Cases[i].Expect
		if (w == nil) != (got == nil) || (w != nil && *w != *got) {
			t.Fatalf("case %d: unexpected expectation %v", i, got)
		}
	}
}

func TestMapConfigEmptyCaseListClearsDefaults(t *testing.T) {
	cfg, err := MapConfig("cartlab.yaml", YAMLConfig{Cartlab: YAMLCartlab{Cases: []YAMLCase{}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Cases) != 0 {
		t.Fatalf("expected no cases, got %d", len(cfg.Cases))
	}
}
