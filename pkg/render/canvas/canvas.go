//go:build js && wasm

// Package canvas is the WebAssembly rendering backend: it draws on an HTML
// canvas element through its 2D context and paces frames with
// requestAnimationFrame.
package canvas

import (
	"fmt"
	"image/color"
	"syscall/js"

	"github.com/willbeason/fractal-trees/pkg/render"
)

// Document resolves surface ids to canvas elements of an HTML document.
type Document struct {
	doc js.Value
}

var _ render.Resolver = Document{}

// NewDocument wraps the global document.
func NewDocument() Document {
	return Document{doc: js.Global().Get("document")}
}

func (d Document) Resolve(id string) (render.Surface, error) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, fmt.Errorf("no element %q: %w", id, render.ErrSurfaceNotFound)
	}

	if el.Get("getContext").Type() != js.TypeFunction {
		return nil, fmt.Errorf("element %q is not a canvas: %w", id, render.ErrInvalidSurface)
	}
	if el.Get("width").Type() != js.TypeNumber || el.Get("height").Type() != js.TypeNumber {
		return nil, fmt.Errorf("element %q has no size: %w", id, render.ErrInvalidSurface)
	}

	ctx := el.Call("getContext", "2d")
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, fmt.Errorf("element %q has no 2d context: %w", id, render.ErrInvalidSurface)
	}

	return &Surface{canvas: el, ctx: ctx}, nil
}

// Surface draws on one canvas element.
type Surface struct {
	canvas js.Value
	ctx    js.Value
}

var _ render.Surface = (*Surface)(nil)

func (s *Surface) Size() (int, int) {
	return s.canvas.Get("width").Int(), s.canvas.Get("height").Int()
}

func (s *Surface) Draw(f render.Frame) {
	if s.ctx.IsUndefined() {
		return
	}
	width, height := s.Size()

	s.ctx.Set("fillStyle", cssColor(f.Stroke.Background))
	s.ctx.Call("fillRect", 0, 0, width, height)

	s.ctx.Set("strokeStyle", cssColor(f.Stroke.Color))
	if f.Stroke.RoundCaps {
		s.ctx.Set("lineCap", "round")
	} else {
		s.ctx.Set("lineCap", "butt")
	}

	for _, seg := range f.Segments {
		s.ctx.Set("lineWidth", seg.Width)
		s.ctx.Call("beginPath")
		s.ctx.Call("moveTo", seg.X0, seg.Y0)
		s.ctx.Call("lineTo", seg.X1, seg.Y1)
		s.ctx.Call("stroke")
	}
}

// Release drops the 2D context. The canvas keeps its last picture.
func (s *Surface) Release() {
	s.ctx = js.Undefined()
}

func cssColor(c color.RGBA) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/0xff)
}
