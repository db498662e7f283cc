package raster

import (
	"fmt"

	"github.com/willbeason/fractal-trees/pkg/render"
)

// Registry resolves surface ids to the canvases added to it.
type Registry struct {
	canvases map[string]*Canvas
}

var _ render.Resolver = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{canvases: make(map[string]*Canvas)}
}

// Add creates a canvas called id, replacing any canvas with the same id.
func (r *Registry) Add(id string, width, height int) *Canvas {
	c := NewCanvas(width, height)
	r.canvases[id] = c
	return c
}

// Canvas returns the canvas called id, or nil.
func (r *Registry) Canvas(id string) *Canvas {
	return r.canvases[id]
}

// Resolve hands out the canvas called id. A released canvas can be resolved
// again and drawn on by its next owner.
func (r *Registry) Resolve(id string) (render.Surface, error) {
	c, ok := r.canvases[id]
	if !ok {
		return nil, fmt.Errorf("no canvas %q: %w", id, render.ErrSurfaceNotFound)
	}
	c.released = false
	return c, nil
}
