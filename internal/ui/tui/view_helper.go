package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/cartlab/internal/domain"
	ucexpect "github.com/aalvaropc/cartlab/internal/usecase/expect"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// describeNumber renders the classifier verdict for s, e.g. "yes (decimal)".
func describeNumber(s string) (string, bool) {
	kind := domain.Classify(s)
	if kind == domain.NumberInvalid {
		return ucexpect.Verdict(false), false
	}
	return fmt.Sprintf("%s (%s)", ucexpect.Verdict(true), kind), true
}

// parsePointInput accepts "x, y" or "x y" with whole-number coordinates.
func parsePointInput(s string) (int, int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected two coordinates like 3, 4")
	}

	var out [2]int
	for i, f := range fields {
		if domain.Classify(f) != domain.NumberInteger {
			return 0, 0, fmt.Errorf("%q is not a whole number", f)
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return 0, 0, fmt.Errorf("%q does not fit in an integer", f)
		}
		out[i] = v
	}
	return out[0], out[1], nil
}

// parseLimitCommand recognizes "limit N".
func parseLimitCommand(s string) (int, bool, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || !strings.EqualFold(fields[0], "limit") {
		return 0, false, nil
	}
	if len(fields) != 2 || domain.Classify(fields[1]) != domain.NumberInteger {
		return 0, true, fmt.Errorf("usage: limit N")
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, true, fmt.Errorf("%q does not fit in an integer", fields[1])
	}
	return v, true, nil
}
