package transforms

import (
	"github.com/willbeason/fractal-trees/pkg/geometry"
	"math/cmplx"
)

// Linear treats the plane as the complex numbers and maps z to z*Multiply + Add:
// a rotation and uniform scale, then a translation.
type Linear struct {
	Multiply complex128
	Add      complex128
}

// Identity leaves every point where it is.
var Identity = Linear{Multiply: 1}

// Rotation turns points counter-clockwise by angle radians about pivot.
func Rotation(angle float64, pivot geometry.XY) Linear {
	m := cmplx.Rect(1.0, angle)
	p := complex(pivot.X, pivot.Y)

	return Linear{Multiply: m, Add: p - p*m}
}

func (l Linear) Next(z complex128) complex128 {
	return z*l.Multiply + l.Add
}

func (l Linear) Apply(xy geometry.XY) geometry.XY {
	z := l.Next(complex(xy.X, xy.Y))
	return geometry.XY{X: real(z), Y: imag(z)}
}
