package cycloid

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Rect is an axis-aligned rectangle with X0 <= X1 and Y0 <= Y1.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Width returns X1-X0. It is negative if the rectangle is not normalized.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1-Y0. It is negative if the rectangle is not normalized.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// UnionPoint returns the smallest rectangle containing r and pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Square returns the smallest square sharing r's center that contains r.
// Plotting through it keeps equal aspect ratio.
func (r Rect) Square() Rect {
	half := 0.5 * max(r.Width(), r.Height())
	c := r.Center()
	return Rect{X0: c.X - half, Y0: c.Y - half, X1: c.X + half, Y1: c.Y + half}
}

// Bounds returns the bounding box of all finite points of s. The zero Rect
// is returned when s has no finite points.
func Bounds(s Sample) Rect {
	var (
		r     Rect
		found bool
	)
	for i := range s.Len() {
		pt := s.Point(i)
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
			continue
		}
		if !found {
			r = Rect{X0: pt.X, Y0: pt.Y, X1: pt.X, Y1: pt.Y}
			found = true
			continue
		}
		r = r.UnionPoint(pt)
	}
	return r
}
