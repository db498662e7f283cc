// Package raster is the headless rendering backend: surfaces are in-memory
// RGBA images filled by an anti-aliasing software rasteriser.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/willbeason/fractal-trees/pkg/render"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600

	// capSides is the number of sides of the polygon standing in for a round cap.
	capSides = 12
)

// Canvas is a raster Surface.
type Canvas struct {
	img        *image.RGBA
	rasterizer *vector.Rasterizer

	caption  bool
	onDraw   func(*image.RGBA, render.Frame)
	released bool
}

var _ render.Surface = (*Canvas)(nil)

// NewCanvas returns a blank Canvas. A non-positive width or height selects
// the default 800x600.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}

	return &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		rasterizer: vector.NewRasterizer(width, height),
	}
}

// SetCaption enables printing the tree parameters in the top-left corner.
func (c *Canvas) SetCaption(enabled bool) {
	c.caption = enabled
}

// OnDraw registers fn to be called after every frame is drawn. The image is
// reused by the next frame; fn must copy it to keep it.
func (c *Canvas) OnDraw(fn func(img *image.RGBA, f render.Frame)) {
	c.onDraw = fn
}

// Image is the current picture.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Draw(f render.Frame) {
	if c.released {
		return
	}

	bounds := c.img.Bounds()
	draw.Draw(c.img, bounds, image.NewUniform(f.Stroke.Background), image.Point{}, draw.Src)

	z := c.rasterizer
	z.Reset(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Over
	for _, s := range f.Segments {
		addLine(z, s, f.Stroke.RoundCaps)
	}
	z.Draw(c.img, bounds, image.NewUniform(f.Stroke.Color), image.Point{})

	if c.caption {
		drawCaption(c.img, f)
	}

	if c.onDraw != nil {
		c.onDraw(c.img, f)
	}
}

// Release stops further drawing. The last picture stays readable.
func (c *Canvas) Release() {
	c.released = true
}

// addLine adds a segment as a quadrilateral of the stroke width, plus discs at
// both ends for round caps.
//
// Every polygon is wound the same way so overlapping shapes add coverage
// instead of cancelling it.
func addLine(z *vector.Rasterizer, s render.Segment, roundCaps bool) {
	half := s.Width * 0.5
	dx, dy := s.X1-s.X0, s.Y1-s.Y0

	if length := math.Hypot(dx, dy); length > 0 {
		// Left normal of the segment, scaled to half the width.
		nx, ny := -dy/length*half, dx/length*half

		z.MoveTo(float32(s.X0+nx), float32(s.Y0+ny))
		z.LineTo(float32(s.X1+nx), float32(s.Y1+ny))
		z.LineTo(float32(s.X1-nx), float32(s.Y1-ny))
		z.LineTo(float32(s.X0-nx), float32(s.Y0-ny))
		z.ClosePath()
	}

	if roundCaps {
		addDisc(z, s.X0, s.Y0, half)
		addDisc(z, s.X1, s.Y1, half)
	}
}

func addDisc(z *vector.Rasterizer, cx, cy, r float64) {
	// Walk clockwise to match the winding of addLine's quadrilaterals.
	z.MoveTo(float32(cx+r), float32(cy))
	for i := 1; i < capSides; i++ {
		theta := -2 * math.Pi * float64(i) / capSides
		z.LineTo(float32(cx+r*math.Cos(theta)), float32(cy+r*math.Sin(theta)))
	}
	z.ClosePath()
}

func drawCaption(img *image.RGBA, f render.Frame) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 0x9f, G: 0x9f, B: 0x9f, A: 0xff}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(8, 8+basicfont.Face7x13.Ascent),
	}
	d.DrawString(f.Parameters.String())
}
