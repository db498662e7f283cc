package transforms

import (
	"github.com/willbeason/fractal-trees/pkg/geometry"
)

// A Transform maps a point to another point.
type Transform interface {
	Apply(geometry.XY) geometry.XY
}

// Chain applies each Transform in order, first to last.
type Chain []Transform

func (c Chain) Apply(xy geometry.XY) geometry.XY {
	for _, t := range c {
		xy = t.Apply(xy)
	}
	return xy
}

// Screen maps surface-centred y-up coordinates to pixel coordinates, where the
// origin is the top-left corner and y grows downwards.
type Screen struct {
	Width, Height float64
}

func (s Screen) Apply(xy geometry.XY) geometry.XY {
	return geometry.XY{
		X: s.Width*0.5 + xy.X,
		Y: s.Height*0.5 - xy.Y,
	}
}

var (
	_ Transform = Chain{}
	_ Transform = Screen{}
	_ Transform = Linear{}
)
