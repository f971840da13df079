package ports

// LineSource yields one line of user input per call, without the line ending.
// When no more input is available it returns an error of kind
// domain.KindInputClosed. A line that was skipped as unusable is reported
// with kind domain.KindInvalidInput; the next call continues after it.
type LineSource interface {
	ReadLine() (string, error)
}
