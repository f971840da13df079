// Package expect compares classifier verdicts with the verdicts a test case
// says it should produce.
package expect

import (
	"fmt"

	"github.com/aalvaropc/cartlab/internal/domain"
)

// Verdict renders a numeric verdict the way the tester table prints it.
func Verdict(numeric bool) string {
	if numeric {
		return "yes"
	}
	return "NO"
}

// Numeric checks a classifier verdict against the expected one.
func Numeric(expected bool, got bool) domain.CheckResult {
	if got == expected {
		return domain.CheckResult{
			Name:    "numeric",
			Passed:  true,
			Message: fmt.Sprintf("numeric %s", Verdict(got)),
		}
	}

	return domain.CheckResult{
		Name:    "numeric",
		Passed:  false,
		Message: fmt.Sprintf("expected numeric %s, got %s", Verdict(expected), Verdict(got)),
	}
}

// Evaluate classifies c.Input and applies its expectation, if any.
func Evaluate(c domain.Case) domain.CaseResult {
	kind := domain.Classify(c.Input)
	res := domain.CaseResult{
		Input:   c.Input,
		Kind:    kind,
		Numeric: kind != domain.NumberInvalid,
	}
	if c.Expect != nil {
		chk := Numeric(*c.Expect, res.Numeric)
		res.Check = &chk
	}
	return res
}

// Failures counts results whose expectation did not hold.
func Failures(results []domain.CaseResult) int {
	n := 0
	for _, r := range results {
		if r.Failed() {
			n++
		}
	}
	return n
}

// HasChecks reports whether any result carries an expectation.
func HasChecks(results []domain.CaseResult) bool {
	for _, r := range results {
		if r.Check != nil {
			return true
		}
	}
	return false
}
