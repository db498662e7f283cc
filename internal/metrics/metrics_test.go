package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willbeason/fractal-trees/pkg/render"
	"github.com/willbeason/fractal-trees/pkg/render/frameclock"
	"github.com/willbeason/fractal-trees/pkg/render/rendertest"
	"github.com/willbeason/fractal-trees/pkg/tree"
)

func TestMetrics_Observer(t *testing.T) {
	m := New(prometheus.NewRegistry(), render.Raster)

	m.InitFailed("x", errors.New("missing"))
	m.Regenerated(tree.Parameters{Iterations: 4}, 15)
	m.FrameDrawn(render.Frame{Rotation: 0.25})
	m.FrameDrawn(render.Frame{Rotation: 0.5})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.initFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.regenerations))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.segments))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.iterations))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.frames))
	assert.Equal(t, 0.5, testutil.ToFloat64(m.rotation))
}

func TestMetrics_WithHost(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, render.Window)
	clock := &frameclock.Clock{}
	host := render.NewHost(rendertest.Surfaces{"s": {Width: 100, Height: 100}}, clock, render.WithObserver(m))

	host.Init("s")
	host.Update(3, 20, 80)
	host.Start()
	clock.Advance()
	host.Stop()

	assert.Equal(t, 3.0, testutil.ToFloat64(m.frames))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.regenerations))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.segments))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestWriteFile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, render.Raster)
	m.FrameDrawn(render.Frame{})

	path := filepath.Join(t.TempDir(), "trees.prom")
	require.NoError(t, WriteFile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `fractal_trees_frames_drawn_total{backend="raster"} 1`)
}
