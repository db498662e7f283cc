package rendertest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willbeason/fractal-trees/pkg/render"
	"github.com/willbeason/fractal-trees/pkg/tree"
)

// Backend is what a rendering backend provides to Contract.
type Backend struct {
	// SurfaceID names a surface the backend resolves successfully.
	SurfaceID string

	// New returns a fresh uninitialized Host for the backend and a function
	// that presents one frame.
	New func(t *testing.T, opts ...render.Option) (host *render.Host, advance func())
}

// Contract runs the lifecycle scenarios every backend must pass.
func Contract(t *testing.T, b Backend) {
	t.Helper()

	newHost := func(t *testing.T) (*render.Host, func(), *Recorder) {
		rec := &Recorder{}
		host, advance := b.New(t, render.WithObserver(rec))
		t.Cleanup(host.Close)
		return host, advance, rec
	}

	t.Run("Init_Defaults", func(t *testing.T) {
		host, _, rec := newHost(t)

		host.Init(b.SurfaceID)

		require.Equal(t, render.Stopped, host.State())
		assert.Equal(t, tree.Defaults(), host.Parameters())

		geometry := host.Geometry()
		require.Len(t, geometry, 31)
		assert.Equal(t, tree.Origin, geometry[0].Start)
		assert.InDelta(t, tree.Origin.X, geometry[0].End.X, 1e-9)
		assert.InDelta(t, tree.Origin.Y+100, geometry[0].End.Y, 1e-9)

		require.Len(t, rec.Frames, 1, "init draws once")
		assert.Len(t, rec.Frames[0].Segments, 31)
		assert.Zero(t, rec.Frames[0].Rotation)
	})

	t.Run("Init_UnknownSurface", func(t *testing.T) {
		host, advance, rec := newHost(t)

		host.Init("no-such-surface")
		host.Start()
		host.Update(3, 30, 60)
		advance()
		host.Stop()

		assert.Equal(t, render.Uninitialized, host.State())
		assert.Empty(t, host.Geometry())
		assert.Empty(t, rec.Frames)
		require.Len(t, rec.Failures, 1)
		assert.ErrorIs(t, rec.Failures[0], render.ErrSurfaceNotFound)
	})

	t.Run("Start_AdvancesEachFrame", func(t *testing.T) {
		host, advance, rec := newHost(t)
		host.Init(b.SurfaceID)

		host.Start()
		require.Equal(t, render.Running, host.State())
		assert.Len(t, rec.Frames, 2, "start draws its first frame immediately")

		advance()
		advance()

		assert.Len(t, rec.Frames, 4)
		assert.InDelta(t, 3*render.DefaultRotationStep, host.Animation().Rotation, 1e-12)
		assert.True(t, host.Animation().Running)

		last, _ := rec.Last()
		assert.InDelta(t, host.Animation().Rotation, last.Rotation, 1e-12)
	})

	t.Run("Start_Idempotent", func(t *testing.T) {
		host, advance, rec := newHost(t)
		host.Init(b.SurfaceID)

		host.Start()
		host.Start()
		advance()

		assert.Len(t, rec.Frames, 3, "a second start must not add a second loop")
		assert.InDelta(t, 2*render.DefaultRotationStep, host.Animation().Rotation, 1e-12)
	})

	t.Run("Stop_FreezesRotation", func(t *testing.T) {
		host, advance, rec := newHost(t)
		host.Init(b.SurfaceID)
		before := host.Geometry()

		host.Start()
		advance()
		host.Stop()
		host.Stop()

		frozen := host.Animation().Rotation
		drawn := len(rec.Frames)

		advance()
		advance()

		assert.Equal(t, render.Stopped, host.State())
		assert.False(t, host.Animation().Running)
		assert.Equal(t, frozen, host.Animation().Rotation)
		assert.Len(t, rec.Frames, drawn)
		assert.Equal(t, before, host.Geometry())
	})

	t.Run("Restart_ContinuesRotation", func(t *testing.T) {
		host, advance, _ := newHost(t)
		host.Init(b.SurfaceID)

		host.Start()
		host.Stop()
		host.Start()
		advance()

		assert.InDelta(t, 3*render.DefaultRotationStep, host.Animation().Rotation, 1e-12)
	})

	t.Run("Update_WhileStopped", func(t *testing.T) {
		host, advance, rec := newHost(t)
		host.Init(b.SurfaceID)

		host.Update(3, 30, 60)
		advance()

		assert.Equal(t, tree.Parameters{Iterations: 3, Angle: 30, Length: 60}, host.Parameters())
		assert.Len(t, host.Geometry(), 7)
		assert.Len(t, rec.Frames, 1, "update while stopped must not draw")

		host.Start()

		last, ok := rec.Last()
		require.True(t, ok)
		assert.Len(t, last.Segments, 7)
		assert.Equal(t, host.Parameters(), last.Parameters)
	})

	t.Run("Update_WhileRunning", func(t *testing.T) {
		host, advance, rec := newHost(t)
		host.Init(b.SurfaceID)
		host.Start()

		host.Update(20, 90, 300)
		assert.Equal(t, render.Running, host.State())
		assert.Equal(t, tree.Parameters{Iterations: 10, Angle: 45, Length: 150}, host.Parameters())

		advance()

		last, _ := rec.Last()
		assert.Len(t, last.Segments, 1023)
	})

	t.Run("Update_Clamps", func(t *testing.T) {
		host, _, _ := newHost(t)
		host.Init(b.SurfaceID)

		host.Update(0, 5, 10)
		assert.Equal(t, tree.Parameters{Iterations: 1, Angle: 10, Length: 50}, host.Parameters())
		assert.Len(t, host.Geometry(), 1)

		host.Update(0, 5, 10)
		assert.Equal(t, tree.Parameters{Iterations: 1, Angle: 10, Length: 50}, host.Parameters())
	})

	t.Run("Init_Again_ResetsParameters", func(t *testing.T) {
		host, advance, _ := newHost(t)
		host.Init(b.SurfaceID)
		host.Update(7, 12, 140)
		host.Start()
		advance()

		host.Init(b.SurfaceID)

		assert.Equal(t, render.Stopped, host.State())
		assert.Equal(t, tree.Defaults(), host.Parameters())
		assert.Zero(t, host.Animation().Rotation)
		assert.Len(t, host.Geometry(), 31)
	})

	t.Run("Close", func(t *testing.T) {
		host, advance, rec := newHost(t)
		host.Init(b.SurfaceID)
		host.Start()

		host.Close()
		host.Close()
		drawn := len(rec.Frames)
		advance()
		host.Start()

		assert.Equal(t, render.Uninitialized, host.State())
		assert.Len(t, rec.Frames, drawn)
	})

	t.Run("Segments_InPixelSpace", func(t *testing.T) {
		host, _, rec := newHost(t)
		host.Init(b.SurfaceID)

		first, ok := rec.Last()
		require.True(t, ok)

		trunk := first.Segments[0]
		assert.Greater(t, trunk.Y0, trunk.Y1, "the trunk grows up the surface")
		assert.InDelta(t, trunk.X0, trunk.X1, 1e-9)
		assert.InDelta(t, 100, trunk.Y0-trunk.Y1, 1e-9)
		assert.Equal(t, render.LineWidth(5), trunk.Width)
	})
}
