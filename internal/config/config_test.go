package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willbeason/fractal-trees/pkg/render"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trees.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, Parameters{Iterations: 5, Angle: 25, Length: 100}, cfg.Parameters)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
backend: window
surface:
  id: main
  width: 1024
parameters:
  iterations: 8
  angle: 30.5
animation:
  frames: 12
stroke:
  color: "#ff8800"
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "window", cfg.Backend)
	assert.Equal(t, Surface{ID: "main", Width: 1024, Height: 600}, cfg.Surface)
	assert.Equal(t, Parameters{Iterations: 8, Angle: 30.5, Length: 100}, cfg.Parameters)
	assert.Equal(t, 12, cfg.Animation.Frames)
	assert.Equal(t, 60, cfg.Animation.FPS, "unset keys keep their defaults")
	assert.Equal(t, "#ff8800", cfg.Stroke.Color)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeFile(t, "parameters:\n  iterations: 8\n")

	cfg, err := Load(path, []string{
		"parameters.iterations=3",
		"parameters.length=140",
		"output.caption=true",
		"log_level=debug",
	})
	require.NoError(t, err)

	assert.Equal(t, 3.0, cfg.Parameters.Iterations)
	assert.Equal(t, 140.0, cfg.Parameters.Length)
	assert.True(t, cfg.Output.Caption)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_OutOfRangeParametersAreKept(t *testing.T) {
	cfg, err := Load("", []string{"parameters.iterations=50", "parameters.angle=-4"})

	require.NoError(t, err)
	assert.Equal(t, 50.0, cfg.Parameters.Iterations)
	assert.Equal(t, -4.0, cfg.Parameters.Angle)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		overrides []string
		wantErr   error
	}{
		{name: "bad override", overrides: []string{"frames"}, wantErr: ErrBadOverride},
		{name: "empty key", overrides: []string{"=3"}, wantErr: ErrBadOverride},
		{name: "unknown key", overrides: []string{"colour=red"}, wantErr: ErrInvalid},
		{name: "bad type", overrides: []string{"animation.fps=fast"}, wantErr: ErrInvalid},
		{name: "unknown backend", file: "backend: vulkan\n", wantErr: ErrInvalid},
		{name: "bad colour", overrides: []string{"stroke.color=white"}, wantErr: ErrInvalid},
		{name: "zero frames", overrides: []string{"animation.frames=0"}, wantErr: ErrInvalid},
		{name: "negative size", overrides: []string{"surface.width=-1"}, wantErr: ErrInvalid},
		{name: "bad level", overrides: []string{"log_level=loud"}, wantErr: ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ""
			if tt.file != "" {
				path = writeFile(t, tt.file)
			}

			_, err := Load(path, tt.overrides)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeFile(t, "parameters: [1, 2"), nil)

	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x80, A: 0xff}, c)

	c, err = ParseColor("#f80")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x88, A: 0xff}, c)

	for _, bad := range []string{"", "ff8000", "#ff80", "#gggggg", "#fffff ", "# fffff", "#ff 800", "#f8 "} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestRequireBackend(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.RequireBackend(render.Raster), "an unset backend allows any command")
	assert.NoError(t, cfg.RequireBackend(render.Window))

	cfg.Backend = "window"
	assert.NoError(t, cfg.RequireBackend(render.Window))
	assert.ErrorIs(t, cfg.RequireBackend(render.Raster), ErrInvalid)
}

func TestStroke_Render(t *testing.T) {
	s, err := Default().Stroke.Render()

	require.NoError(t, err)
	assert.Equal(t, render.DefaultStroke, s)
}
