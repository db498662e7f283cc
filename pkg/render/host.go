package render

import (
	"fmt"
	"log/slog"

	"github.com/willbeason/fractal-trees/pkg/geometry"
	"github.com/willbeason/fractal-trees/pkg/transforms"
	"github.com/willbeason/fractal-trees/pkg/tree"
)

// Host renders one fractal tree on one surface.
//
// The zero Host is not usable; create one with NewHost.
// A Host is not safe for concurrent use.
type Host struct {
	resolver  Resolver
	scheduler Scheduler

	logger       *slog.Logger
	observer     Observer
	stroke       Stroke
	rotationStep float64

	surface       Surface
	surfaceID     string
	width, height int

	state     State
	params    tree.Parameters
	geometry  []tree.Branch
	animation Animation

	// loop is bumped on every Start and Stop so a callback scheduled by an
	// earlier loop never draws.
	loop       uint64
	pending    FrameID
	hasPending bool
	frames     uint64
}

var _ Renderer = (*Host)(nil)

// NewHost returns an uninitialized Host drawing through the given collaborators.
func NewHost(resolver Resolver, scheduler Scheduler, opts ...Option) *Host {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Host{
		resolver:     resolver,
		scheduler:    scheduler,
		logger:       o.logger,
		observer:     o.observer,
		stroke:       o.stroke,
		rotationStep: o.rotationStep,
		params:       tree.Defaults(),
	}
}

// Init binds the Host to the surface called surfaceID, resets the parameters to
// their defaults, and draws the tree once.
//
// If the Host was already initialized its previous surface is released first.
// If the surface cannot be resolved the failure is logged and the Host stays
// uninitialized.
func (h *Host) Init(surfaceID string) {
	if h.state != Uninitialized {
		h.Close()
	}

	surface, err := h.resolve(surfaceID)
	if err != nil {
		h.logger.Error("cannot initialize renderer", "surface", surfaceID, "err", err)
		h.observer.InitFailed(surfaceID, err)
		return
	}

	h.surface = surface
	h.surfaceID = surfaceID
	h.width, h.height = surface.Size()
	h.state = Stopped
	h.params = tree.Defaults()
	h.animation = Animation{}
	h.frames = 0

	h.regenerate()
	h.draw()

	h.logger.Info("renderer initialized",
		"surface", surfaceID, "width", h.width, "height", h.height, "segments", len(h.geometry))
}

func (h *Host) resolve(surfaceID string) (Surface, error) {
	surface, err := h.resolver.Resolve(surfaceID)
	if err != nil {
		return nil, fmt.Errorf("resolving surface %q: %w", surfaceID, err)
	}

	width, height := surface.Size()
	if width <= 0 || height <= 0 {
		surface.Release()
		return nil, fmt.Errorf("surface %q is %dx%d: %w", surfaceID, width, height, ErrInvalidSurface)
	}

	return surface, nil
}

// Start begins the animation loop. The first frame is drawn immediately and
// each following frame when the Scheduler calls back.
func (h *Host) Start() {
	switch h.state {
	case Uninitialized:
		h.logger.Debug("start ignored: renderer not initialized")
		return
	case Running:
		return
	}

	h.state = Running
	h.animation.Running = true
	h.loop++

	h.frame(h.loop)
}

// Stop halts the animation loop. The accumulated rotation is kept.
func (h *Host) Stop() {
	if h.state != Running {
		return
	}

	h.state = Stopped
	h.animation.Running = false
	h.loop++
	h.cancelPending()
}

// Update clamps the parameters and regenerates the tree. It does not draw:
// a running Host shows the new tree on its next frame, a stopped one when
// started again.
func (h *Host) Update(iterations, angle, length float64) {
	if h.state == Uninitialized {
		h.logger.Debug("update ignored: renderer not initialized")
		return
	}

	h.params = tree.SetParameters(iterations, angle, length)
	h.regenerate()
}

// Close stops the loop and releases the surface. The Host returns to the
// uninitialized state and may be initialized again.
func (h *Host) Close() {
	if h.state == Uninitialized {
		return
	}

	h.loop++
	h.cancelPending()

	h.surface.Release()
	h.surface = nil
	h.geometry = nil
	h.animation = Animation{}
	h.state = Uninitialized

	h.logger.Debug("renderer closed", "surface", h.surfaceID)
}

func (h *Host) State() State {
	return h.state
}

func (h *Host) Parameters() tree.Parameters {
	return h.params
}

func (h *Host) Animation() Animation {
	return h.animation
}

// Geometry returns a copy of the current branches.
func (h *Host) Geometry() []tree.Branch {
	if h.geometry == nil {
		return nil
	}
	return append([]tree.Branch(nil), h.geometry...)
}

// frame advances the rotation, draws, and schedules the next frame of loop.
func (h *Host) frame(loop uint64) {
	if loop != h.loop || h.state != Running {
		return
	}
	h.hasPending = false

	h.animation.Rotation += h.rotationStep
	h.draw()

	h.pending = h.scheduler.RequestFrame(func() { h.frame(loop) })
	h.hasPending = true
}

func (h *Host) cancelPending() {
	if !h.hasPending {
		return
	}
	h.scheduler.CancelFrame(h.pending)
	h.hasPending = false
}

func (h *Host) regenerate() {
	h.geometry = tree.Generate(tree.Origin, tree.Upright, h.params)
	h.observer.Regenerated(h.params, len(h.geometry))
}

// draw paints the current geometry rotated about the centre of the surface.
func (h *Host) draw() {
	view := transforms.Chain{
		transforms.Rotation(h.animation.Rotation, geometry.XY{}),
		transforms.Screen{Width: float64(h.width), Height: float64(h.height)},
	}

	segments := make([]Segment, len(h.geometry))
	for i, b := range h.geometry {
		start, end := view.Apply(b.Start), view.Apply(b.End)
		segments[i] = Segment{
			X0: start.X, Y0: start.Y,
			X1: end.X, Y1: end.Y,
			Width: LineWidth(b.Depth),
		}
	}

	h.frames++
	f := Frame{
		Number:     h.frames,
		Rotation:   h.animation.Rotation,
		Parameters: h.params,
		Segments:   segments,
		Stroke:     h.stroke,
	}

	h.surface.Draw(f)
	h.observer.FrameDrawn(f)
}
