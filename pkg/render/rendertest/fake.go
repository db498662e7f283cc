// Package rendertest holds in-memory collaborators and the lifecycle contract
// every rendering backend must satisfy.
package rendertest

import (
	"fmt"

	"github.com/willbeason/fractal-trees/pkg/render"
	"github.com/willbeason/fractal-trees/pkg/tree"
)

// Surface records every frame drawn on it.
type Surface struct {
	Width, Height int

	Frames   []render.Frame
	Released bool
}

var _ render.Surface = (*Surface)(nil)

func (s *Surface) Size() (int, int) {
	return s.Width, s.Height
}

func (s *Surface) Draw(f render.Frame) {
	if s.Released {
		panic("draw on released surface")
	}
	s.Frames = append(s.Frames, f)
}

func (s *Surface) Release() {
	s.Released = true
}

// Surfaces resolves ids from a map.
type Surfaces map[string]*Surface

func (s Surfaces) Resolve(id string) (render.Surface, error) {
	surface, ok := s[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, render.ErrSurfaceNotFound)
	}
	surface.Released = false
	return surface, nil
}

// Recorder is an Observer that keeps what it is told.
type Recorder struct {
	Failures      []error
	Regenerations []tree.Parameters
	Frames        []render.Frame
}

var _ render.Observer = (*Recorder)(nil)

func (r *Recorder) InitFailed(_ string, err error) {
	r.Failures = append(r.Failures, err)
}

func (r *Recorder) Regenerated(p tree.Parameters, _ int) {
	r.Regenerations = append(r.Regenerations, p)
}

func (r *Recorder) FrameDrawn(f render.Frame) {
	r.Frames = append(r.Frames, f)
}

// Last is the most recent frame drawn.
func (r *Recorder) Last() (render.Frame, bool) {
	if len(r.Frames) == 0 {
		return render.Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}
