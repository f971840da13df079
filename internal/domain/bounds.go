package domain

import (
	"math"
	"sync/atomic"
)

// Bounds is the coordinate limit shared by every Point created with it.
// Points hold a reference, so SetLimit affects all later validations of
// existing points as well as new ones.
type Bounds struct {
	limit atomic.Int64
}

// NewBounds returns bounds with the absolute value of limit.
func NewBounds(limit int) *Bounds {
	b := &Bounds{}
	b.SetLimit(limit)
	return b
}

// DefaultBounds returns bounds limited to the largest representable int.
func DefaultBounds() *Bounds {
	return NewBounds(math.MaxInt)
}

// Limit returns the current limit. A nil *Bounds is unbounded.
func (b *Bounds) Limit() int {
	if b == nil {
		return math.MaxInt
	}
	return int(b.limit.Load())
}

// SetLimit stores |limit|. math.MinInt has no positive counterpart and
// saturates to math.MaxInt.
func (b *Bounds) SetLimit(limit int) {
	b.limit.Store(int64(absInt(limit)))
}

// Check validates v against [-Limit(), Limit()].
func (b *Bounds) Check(v int) error {
	l := b.Limit()
	if v < -l || v > l {
		return &RangeError{Value: v, Min: -l, Max: l}
	}
	return nil
}

func absInt(v int) int {
	switch {
	case v == math.MinInt:
		return math.MaxInt
	case v < 0:
		return -v
	default:
		return v
	}
}
