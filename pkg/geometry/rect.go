package geometry

import "math"

// Rect is an axis-aligned bounding box. The zero Rect is empty.
type Rect struct {
	Min, Max XY

	nonEmpty bool
}

// Empty reports whether no point has been added to r.
func (r Rect) Empty() bool {
	return !r.nonEmpty
}

// Extend returns the smallest Rect containing both r and p.
func (r Rect) Extend(p XY) Rect {
	if !r.nonEmpty {
		return Rect{Min: p, Max: p, nonEmpty: true}
	}

	return Rect{
		Min:      XY{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max:      XY{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
		nonEmpty: true,
	}
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}
