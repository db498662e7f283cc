package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willbeason/fractal-trees/pkg/render"
	"github.com/willbeason/fractal-trees/pkg/render/frameclock"
	"github.com/willbeason/fractal-trees/pkg/render/rendertest"
)

func newHost(t *testing.T, opts ...render.Option) (*render.Host, func()) {
	t.Helper()

	registry := NewRegistry()
	registry.Add("canvas1", 0, 0)
	clock := &frameclock.Clock{}

	return render.NewHost(registry, clock, opts...), func() { clock.Advance() }
}

func TestRaster_Contract(t *testing.T) {
	rendertest.Contract(t, rendertest.Backend{
		SurfaceID: "canvas1",
		New:       newHost,
	})
}

func TestNewCanvas_DefaultSize(t *testing.T) {
	w, h := NewCanvas(0, 0).Size()
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)

	w, h = NewCanvas(320, 200).Size()
	assert.Equal(t, 320, w)
	assert.Equal(t, 200, h)
}

func TestCanvas_DrawsTrunk(t *testing.T) {
	registry := NewRegistry()
	canvas := registry.Add("c", 0, 0)
	host := render.NewHost(registry, &frameclock.Clock{})

	host.Init("c")
	require.Equal(t, render.Stopped, host.State())

	img := canvas.Image()
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black := color.RGBA{A: 0xff}

	// The trunk runs from (400, 450) up to (400, 350) and is 4px wide.
	assert.Equal(t, white, img.RGBAAt(400, 400))
	assert.Equal(t, white, img.RGBAAt(401, 440))
	assert.Equal(t, black, img.RGBAAt(420, 400))
	assert.Equal(t, black, img.RGBAAt(10, 590))
}

func TestCanvas_BackgroundAndColour(t *testing.T) {
	c := NewCanvas(20, 20)
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}

	c.Draw(render.Frame{
		Segments: []render.Segment{{X0: 0, Y0: 10, X1: 20, Y1: 10, Width: 4}},
		Stroke:   render.Stroke{Color: red, Background: blue},
	})

	assert.Equal(t, red, c.Image().RGBAAt(10, 10))
	assert.Equal(t, blue, c.Image().RGBAAt(10, 2))
}

func TestCanvas_OverlapDoesNotCancel(t *testing.T) {
	c := NewCanvas(20, 20)
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	// Two segments drawn in opposite directions over the same pixels.
	c.Draw(render.Frame{
		Segments: []render.Segment{
			{X0: 2, Y0: 10, X1: 18, Y1: 10, Width: 4},
			{X0: 18, Y0: 10, X1: 2, Y1: 10, Width: 4},
		},
		Stroke: render.Stroke{Color: white, Background: color.RGBA{A: 0xff}, RoundCaps: true},
	})

	assert.Equal(t, white, c.Image().RGBAAt(10, 10))
	assert.Equal(t, white, c.Image().RGBAAt(2, 10))
}

func TestCanvas_ReleasedIgnoresDraw(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Release()

	c.Draw(render.Frame{Stroke: render.Stroke{Background: color.RGBA{R: 0xff, A: 0xff}}})

	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(5, 5))
}

func TestCanvas_OnDraw(t *testing.T) {
	registry := NewRegistry()
	canvas := registry.Add("c", 64, 64)
	clock := &frameclock.Clock{}
	host := render.NewHost(registry, clock)

	var numbers []uint64
	canvas.OnDraw(func(img *image.RGBA, f render.Frame) {
		assert.Same(t, canvas.Image(), img)
		numbers = append(numbers, f.Number)
	})

	host.Init("c")
	host.Start()
	clock.Advance()
	host.Stop()
	clock.Advance()

	assert.Equal(t, []uint64{1, 2, 3}, numbers)
}

func TestCanvas_Caption(t *testing.T) {
	plain := NewCanvas(200, 40)
	captioned := NewCanvas(200, 40)
	captioned.SetCaption(true)

	f := render.Frame{Stroke: render.DefaultStroke}
	plain.Draw(f)
	captioned.Draw(f)

	assert.NotEqual(t, plain.Image().Pix, captioned.Image().Pix)
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	c := registry.Add("a", 10, 10)

	assert.Same(t, c, registry.Canvas("a"))
	assert.Nil(t, registry.Canvas("b"))

	_, err := registry.Resolve("b")
	assert.ErrorIs(t, err, render.ErrSurfaceNotFound)

	c.Release()
	s, err := registry.Resolve("a")
	require.NoError(t, err)
	assert.Same(t, c, s)
	assert.False(t, c.released)
}

func TestPNG(t *testing.T) {
	c := NewCanvas(32, 16)
	c.Draw(render.Frame{Stroke: render.DefaultStroke})

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, c.Image()))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 16), decoded.Bounds())

	path := filepath.Join(t.TempDir(), "nested", "frame.png")
	require.NoError(t, SavePNG(path, c.Image()))
	assert.FileExists(t, path)
}
