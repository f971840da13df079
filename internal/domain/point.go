package domain

import (
	"fmt"
	"math"
)

// DefaultCoordinate is used by DefaultPoint for both axes.
const DefaultCoordinate = 1

// Point is a 2D integer coordinate pair validated against shared Bounds.
//
// Coordinates are checked only when set. Tightening the bounds later does not
// invalidate a point that already holds a larger value.
type Point struct {
	x, y   int
	bounds *Bounds
}

// NewPoint validates x and y against b. A nil b is unbounded.
func NewPoint(b *Bounds, x, y int) (Point, error) {
	p := Point{bounds: b}
	if err := p.SetPoint(x, y); err != nil {
		return Point{}, err
	}
	return p, nil
}

// DefaultPoint returns (1, 1) validated against b.
func DefaultPoint(b *Bounds) (Point, error) {
	return NewPoint(b, DefaultCoordinate, DefaultCoordinate)
}

func (p Point) X() int { return p.x }
func (p Point) Y() int { return p.y }

// Bounds returns the shared bounds the point validates against.
func (p Point) Bounds() *Bounds { return p.bounds }

func (p *Point) SetX(x int) error {
	if err := p.bounds.Check(x); err != nil {
		return &OpError{Op: "point.set_x", Kind: KindOutOfRange, Err: err}
	}
	p.x = x
	return nil
}

func (p *Point) SetY(y int) error {
	if err := p.bounds.Check(y); err != nil {
		return &OpError{Op: "point.set_y", Kind: KindOutOfRange, Err: err}
	}
	p.y = y
	return nil
}

// SetPoint sets x then y. It is not atomic: if y is rejected, the new x stays.
func (p *Point) SetPoint(x, y int) error {
	if err := p.SetX(x); err != nil {
		return err
	}
	return p.SetY(y)
}

// DistanceTo returns the Euclidean distance between p and other.
// The deltas are taken in float64 so extreme coordinates cannot overflow.
func (p Point) DistanceTo(other Point) float64 {
	dx := float64(other.x) - float64(p.x)
	dy := float64(other.y) - float64(p.y)
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.x, p.y)
}
