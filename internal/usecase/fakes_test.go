package usecase

import (
	"github.com/aalvaropc/cartlab/internal/domain"
)

// unreadableLine makes fakeLines report an oversized line at that position.
const unreadableLine = "\x00unreadable"

type fakeLines struct {
	lines []string
	reads int
}

func (f *fakeLines) ReadLine() (string, error) {
	if f.reads >= len(f.lines) {
		return "", &domain.OpError{Op: "fake.read_line", Kind: domain.KindInputClosed, Err: domain.ErrInputClosed}
	}
	l := f.lines[f.reads]
	f.reads++
	if l == unreadableLine {
		return "", &domain.OpError{Op: "fake.read_line", Kind: domain.KindInvalidInput, Err: domain.ErrLineTooLong}
	}
	return l, nil
}

type errLines struct{ err error }

func (e errLines) ReadLine() (string, error) { return "", e.err }

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	calls int
	err   error
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	f.calls++
	return f.err
}
