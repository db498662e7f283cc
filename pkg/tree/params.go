package tree

import (
	"fmt"
	"math"
)

const (
	MinIterations = 1
	MaxIterations = 10

	// Angles are in degrees.
	MinAngle = 10.0
	MaxAngle = 45.0

	// Lengths are in surface units (pixels for the raster backends).
	MinLength = 50.0
	MaxLength = 150.0

	DefaultIterations = 5
	DefaultAngle      = 25.0
	DefaultLength     = 100.0
)

// Parameters are the three controls of a fractal tree.
//
// Values produced by SetParameters, Clamp, or Defaults are always within bounds.
type Parameters struct {
	// Iterations is the recursion depth: the number of branch generations
	// from the trunk to the leaves.
	Iterations int

	// Angle is the divergence of each child branch from its parent, in degrees.
	// Left children turn counter-clockwise and right children clockwise.
	Angle float64

	// Length is the length of the trunk.
	Length float64
}

// Defaults returns the parameters a freshly initialized renderer starts with.
func Defaults() Parameters {
	return Parameters{
		Iterations: DefaultIterations,
		Angle:      DefaultAngle,
		Length:     DefaultLength,
	}
}

// SetParameters clamps raw control values into Parameters.
// Iterations is rounded to the nearest integer before clamping.
// Out-of-range values are never rejected.
func SetParameters(iterations, angle, length float64) Parameters {
	return Parameters{
		Iterations: int(clamp(math.Round(iterations), MinIterations, MaxIterations)),
		Angle:      clamp(angle, MinAngle, MaxAngle),
		Length:     clamp(length, MinLength, MaxLength),
	}
}

// Clamp returns p with every field brought within bounds.
func (p Parameters) Clamp() Parameters {
	return SetParameters(float64(p.Iterations), p.Angle, p.Length)
}

func (p Parameters) String() string {
	return fmt.Sprintf("iterations=%d angle=%g length=%g", p.Iterations, p.Angle, p.Length)
}

// clamp maps NaN to lo so the stored state stays in range even when a caller
// passes garbage.
func clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v), v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
