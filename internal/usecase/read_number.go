package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/aalvaropc/cartlab/internal/domain"
	"github.com/aalvaropc/cartlab/internal/ports"
)

type ReadNumber struct {
	in  ports.LineSource
	out io.Writer
	log *slog.Logger
}

func NewReadNumber(in ports.LineSource, out io.Writer, opts ...Option) *ReadNumber {
	o := applyOptions(opts)
	return &ReadNumber{in: in, out: out, log: o.log}
}

// Execute reads lines until one is a number within [min, max] and returns it.
// Malformed and out-of-range lines are reported to out and the user is asked
// again; there is no retry limit. The initial prompt is the caller's job.
//
// Lines the source reports as invalid_input (too long) are re-prompted like
// malformed ones. If the line source runs dry, its input_closed error is
// returned. ctx is only checked between attempts.
func (uc *ReadNumber) Execute(ctx context.Context, min, max float64) (float64, error) {
	if math.IsNaN(min) || math.IsNaN(max) || min > max {
		return 0, &domain.OpError{
			Op:   "usecase.read_number",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("range [%g, %g] is empty: %w", min, max, domain.ErrInvalidConfig),
		}
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		line, err := uc.in.ReadLine()
		if domain.IsKind(err, domain.KindInvalidInput) {
			uc.log.Debug("reader.rejected", "attempt", attempt, "reason", "unreadable", "err", err)
			prompt(uc.out, "That line could not be read. Enter a number between %g and %g: ", min, max)
			continue
		}
		if err != nil {
			uc.log.Warn("reader.input.failed", "attempt", attempt, "err", err)
			return 0, err
		}
		s := strings.TrimSpace(line)

		v, ok := parseNumber(s)
		if !ok {
			uc.log.Debug("reader.rejected", "attempt", attempt, "input", s, "reason", "not_numeric")
			prompt(uc.out, "%q is not a number. Enter a number between %g and %g: ", s, min, max)
			continue
		}
		if v < min || v > max {
			uc.log.Debug("reader.rejected", "attempt", attempt, "input", s, "reason", "out_of_range")
			prompt(uc.out, "%s is out of range. Enter a number between %g and %g: ", s, min, max)
			continue
		}

		uc.log.Info("reader.accepted", "attempt", attempt, "value", v)
		return v, nil
	}
}

// parseNumber converts s if the classifier accepts it. Literals too large
// for float64 come back as ±Inf, which any finite range rejects.
func parseNumber(s string) (float64, bool) {
	if !domain.IsNumeric(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

func prompt(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
