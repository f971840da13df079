package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aalvaropc/cartlab/internal/domain"
)

func TestUserMessage(t *testing.T) {
	rangeErr := &domain.OpError{
		Op:   "point.set_x",
		Kind: domain.KindOutOfRange,
		Err:  &domain.RangeError{Value: 9, Min: -2, Max: 2},
	}

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"workspace", &domain.OpError{Op: "workspacefinder.find_root", Kind: domain.KindNotFound, Err: domain.ErrNotFound}, "Workspace not found"},
		{"config missing", &domain.OpError{Op: "config.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}, "Config not found"},
		{"range", rangeErr, "Out of range: parameter (9) must be between -2 and 2"},
		{"wrapped range", fmt.Errorf("read: %w", rangeErr), "Out of range: parameter (9) must be between -2 and 2"},
		{"invalid no line", &domain.OpError{Op: "config.map", Kind: domain.KindInvalidConfig, Err: errors.New("table.column must be > 0")}, "Invalid config"},
		{"closed", &domain.OpError{Op: "console.read_line", Kind: domain.KindInputClosed, Err: domain.ErrInputClosed}, "Input closed"},
		{"too long", &domain.OpError{Op: "console.read_line", Kind: domain.KindInvalidInput, Err: domain.ErrLineTooLong}, "Line too long"},
		{"bare yaml", errors.New("yaml: line 2: mapping values are not allowed"), "Invalid YAML line 2"},
		{"other", errors.New("boom"), "Unexpected error (see logs)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := userMessage(tc.err); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestParsePointInput(t *testing.T) {
	x, y, err := parsePointInput("-3,  4")
	if err != nil || x != -3 || y != 4 {
		t.Fatalf("got %d %d %v", x, y, err)
	}

	for _, in := range []string{"", "1", "1 2 3", "1.5 2", "99999999999999999999 1"} {
		if _, _, err := parsePointInput(in); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}

func TestClampString(t *testing.T) {
	if got := clampString("abcdef", 3); got != "abc…" {
		t.Fatalf("got %q", got)
	}
	if got := clampString("ab", 3); got != "ab" {
		t.Fatalf("got %q", got)
	}
}
