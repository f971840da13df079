package domain

// Case is one string fed to the classifier by the tester harness.
// Expect is nil when the case only reports a verdict.
type Case struct {
	Input  string
	Expect *bool
}

// Expect returns a pointer to v, for building Cases.
func Expect(v bool) *bool { return &v }

// CheckResult is the outcome of comparing a verdict with its expectation.
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// CaseResult is the classifier verdict for a Case.
type CaseResult struct {
	Input   string
	Kind    NumberKind
	Numeric bool
	Check   *CheckResult
}

// Failed reports whether the case carried an expectation that did not hold.
func (r CaseResult) Failed() bool {
	return r.Check != nil && !r.Check.Passed
}
