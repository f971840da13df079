// Package console adapts terminal streams to the ports the use cases read from.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aalvaropc/cartlab/internal/domain"
	"github.com/aalvaropc/cartlab/internal/ports"
)

// maxLine bounds a single input line, newline excluded.
const maxLine = 64 * 1024

// LineReader reads newline-terminated lines. A final line without a newline
// is still returned; after that every call reports input_closed.
//
// A line longer than maxLine is consumed through its newline and reported as
// invalid_input, so the caller can ask again.
type LineReader struct {
	br  *bufio.Reader
	eof bool
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{br: bufio.NewReader(r)}
}

var _ ports.LineSource = (*LineReader)(nil)

func (r *LineReader) ReadLine() (string, error) {
	if r.eof {
		return "", closed()
	}

	var (
		line    []byte
		tooLong bool
	)
	for {
		chunk, err := r.br.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > maxLine+2 { // room for "\r\n"
				tooLong = true
				line = nil
			}
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			r.eof = true
			return "", &domain.OpError{Op: "console.read_line", Kind: domain.KindExecution, Err: err}
		}
		if err != nil {
			r.eof = true
			if len(line) == 0 && !tooLong {
				return "", closed()
			}
		}
		break
	}

	s := strings.TrimSuffix(string(line), "\n")
	s = strings.TrimSuffix(s, "\r")
	if tooLong || len(s) > maxLine {
		return "", &domain.OpError{
			Op:   "console.read_line",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("longer than %d bytes: %w", maxLine, domain.ErrLineTooLong),
		}
	}
	return s, nil
}

func closed() error {
	return &domain.OpError{
		Op:   "console.read_line",
		Kind: domain.KindInputClosed,
		Err:  domain.ErrInputClosed,
	}
}
