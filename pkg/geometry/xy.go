package geometry

import "math"

// XY is a point or displacement in the plane.
//
// Coordinates are y-up: positive Y points towards the top of a surface.
type XY struct {
	X, Y float64
}

// Polar returns the displacement of the given length along angle, measured in
// radians counter-clockwise from the positive x-axis.
func Polar(length, angle float64) XY {
	return XY{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}

func (xy XY) Add(o XY) XY {
	return XY{X: xy.X + o.X, Y: xy.Y + o.Y}
}

func (xy XY) Sub(o XY) XY {
	return XY{X: xy.X - o.X, Y: xy.Y - o.Y}
}

func (xy XY) Scale(s float64) XY {
	return XY{X: xy.X * s, Y: xy.Y * s}
}

// Length is the distance from the origin.
func (xy XY) Length() float64 {
	return math.Hypot(xy.X, xy.Y)
}

// Radians converts an angle in degrees.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
