package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aalvaropc/cartlab/internal/domain"
	"github.com/aalvaropc/cartlab/internal/ports"
)

// ReadPoint fills a point from user input using only its public setters.
type ReadPoint struct {
	in  ports.LineSource
	out io.Writer
	log *slog.Logger
}

func NewReadPoint(in ports.LineSource, out io.Writer, opts ...Option) *ReadPoint {
	o := applyOptions(opts)
	return &ReadPoint{in: in, out: out, log: o.log}
}

// Execute prompts for x, then y. Each axis is asked again until a whole
// number inside the point's bounds is given. If x is accepted and the input
// closes before y, p keeps the new x.
func (uc *ReadPoint) Execute(ctx context.Context, p *domain.Point) error {
	if err := uc.readAxis(ctx, "x", p.SetX); err != nil {
		return err
	}
	return uc.readAxis(ctx, "y", p.SetY)
}

func (uc *ReadPoint) readAxis(ctx context.Context, axis string, set func(int) error) error {
	prompt(uc.out, "Enter the %s coordinate: ", axis)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := uc.in.ReadLine()
		if domain.IsKind(err, domain.KindInvalidInput) {
			prompt(uc.out, "That line could not be read. Enter the %s coordinate: ", axis)
			continue
		}
		if err != nil {
			return err
		}
		s := strings.TrimSpace(line)

		if domain.Classify(s) != domain.NumberInteger {
			prompt(uc.out, "%q is not a whole number. Enter the %s coordinate: ", s, axis)
			continue
		}

		v, err := strconv.Atoi(s)
		if err != nil {
			prompt(uc.out, "%s does not fit in an integer. Enter the %s coordinate: ", s, axis)
			continue
		}

		if err := set(v); err != nil {
			var re *domain.RangeError
			if !errors.As(err, &re) {
				return err
			}
			uc.log.Debug("point.set.failed", "axis", axis, "value", v, "err", err)
			prompt(uc.out, "Out of range: %v. Enter the %s coordinate: ", re, axis)
			continue
		}
		return nil
	}
}
