// Package render drives a fractal tree on a drawing surface.
//
// A Host owns one surface and implements the four-call lifecycle shared by
// every backend: Init, Start, Stop and Update. Backends plug in three
// collaborators: a Resolver that turns a surface id into a Surface, a Scheduler
// that calls back once per displayed frame, and the Surface itself, which draws
// a Frame of line segments.
//
// Hosts are single-threaded. Lifecycle calls and frame callbacks must arrive
// from the goroutine driving the Scheduler.
package render

import (
	"errors"
)

var (
	// ErrSurfaceNotFound is returned by a Resolver for an unknown surface id.
	ErrSurfaceNotFound = errors.New("surface not found")

	// ErrInvalidSurface is returned when a surface exists but cannot be drawn on.
	ErrInvalidSurface = errors.New("invalid surface")
)

// Renderer is the lifecycle every backend exposes to a host page or program.
type Renderer interface {
	// Init binds the renderer to a surface and draws the default tree once.
	// Failures are logged and leave the renderer uninitialized.
	Init(surfaceID string)

	// Start begins the per-frame animation loop. Calling it while running has no effect.
	Start()

	// Stop halts the loop. Calling it while stopped has no effect.
	Stop()

	// Update clamps the parameters and regenerates the tree.
	Update(iterations, angle, length float64)
}

// Resolver finds the drawing surface with the given id.
type Resolver interface {
	Resolve(id string) (Surface, error)
}

// Surface is a drawing target exclusively owned by one Host.
type Surface interface {
	// Size is the fixed size of the surface in pixels.
	Size() (width, height int)

	// Draw clears the surface and draws the frame. The surface may keep f.
	Draw(f Frame)

	// Release detaches the surface. No Draw follows a Release.
	Release()
}

// FrameID identifies a pending frame callback.
type FrameID uint64

// Scheduler calls back once per displayed frame.
type Scheduler interface {
	// RequestFrame registers cb to run once at the next frame.
	RequestFrame(cb func()) FrameID

	// CancelFrame unregisters a callback that has not run yet.
	// Cancelling an unknown or already-run id does nothing.
	CancelFrame(id FrameID)
}
