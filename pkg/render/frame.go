package render

import (
	"image/color"
	"math"

	"github.com/willbeason/fractal-trees/pkg/tree"
)

// Segment is a line in pixel coordinates: origin top-left, y down.
type Segment struct {
	X0, Y0, X1, Y1 float64

	// Width is the stroke width in pixels.
	Width float64
}

// Stroke is how a frame is painted.
type Stroke struct {
	Color      color.RGBA
	Background color.RGBA

	// RoundCaps draws a disc at each segment end.
	RoundCaps bool
}

// DefaultStroke is white lines with round caps on black.
var DefaultStroke = Stroke{
	Color:      color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Background: color.RGBA{A: 0xff},
	RoundCaps:  true,
}

// Frame is one complete picture of the tree.
type Frame struct {
	// Number counts the frames drawn by the Host since Init, starting at 1.
	Number uint64

	// Rotation is the accumulated rotation of the whole tree, in radians.
	Rotation float64

	Parameters tree.Parameters
	Segments   []Segment
	Stroke     Stroke
}

// LineWidth is the stroke width of a branch with the given remaining depth.
func LineWidth(depth int) float64 {
	return math.Max(float64(depth)*0.8, 1.0)
}
