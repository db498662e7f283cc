// Package config loads renderer settings from a YAML file and key=value overrides.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/willbeason/fractal-trees/internal/logging"
	"github.com/willbeason/fractal-trees/pkg/render"
	"github.com/willbeason/fractal-trees/pkg/tree"
	"gopkg.in/yaml.v3"
)

var (
	ErrBadOverride = errors.New("override must be key=value")
	ErrInvalid     = errors.New("invalid configuration")
)

// Config is everything a renderer command needs.
type Config struct {
	// Backend, when set, names the only backend allowed to run this configuration.
	Backend     string `mapstructure:"backend" yaml:"backend"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`

	Surface    Surface    `mapstructure:"surface" yaml:"surface"`
	Parameters Parameters `mapstructure:"parameters" yaml:"parameters"`
	Animation  Animation  `mapstructure:"animation" yaml:"animation"`
	Stroke     Stroke     `mapstructure:"stroke" yaml:"stroke"`
	Output     Output     `mapstructure:"output" yaml:"output"`
}

type Surface struct {
	ID     string `mapstructure:"id" yaml:"id"`
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
}

// Parameters are raw tree controls. They are clamped when applied, never rejected.
type Parameters struct {
	Iterations float64 `mapstructure:"iterations" yaml:"iterations"`
	Angle      float64 `mapstructure:"angle" yaml:"angle"`
	Length     float64 `mapstructure:"length" yaml:"length"`
}

type Animation struct {
	// RotationStep is the rotation per frame in radians.
	RotationStep float64 `mapstructure:"rotation_step" yaml:"rotation_step"`
	FPS          int     `mapstructure:"fps" yaml:"fps"`
	Frames       int     `mapstructure:"frames" yaml:"frames"`
}

type Stroke struct {
	Color      string `mapstructure:"color" yaml:"color"`
	Background string `mapstructure:"background" yaml:"background"`
	RoundCaps  bool   `mapstructure:"round_caps" yaml:"round_caps"`
}

type Output struct {
	Dir     string `mapstructure:"dir" yaml:"dir"`
	Caption bool   `mapstructure:"caption" yaml:"caption"`
}

// Default is the configuration used when nothing is set.
func Default() Config {
	d := tree.Defaults()

	return Config{
		LogLevel: "info",
		Surface: Surface{
			ID:     "canvas1",
			Width:  800,
			Height: 600,
		},
		Parameters: Parameters{
			Iterations: float64(d.Iterations),
			Angle:      d.Angle,
			Length:     d.Length,
		},
		Animation: Animation{
			RotationStep: render.DefaultRotationStep,
			FPS:          60,
			Frames:       1,
		},
		Stroke: Stroke{
			Color:      "#ffffff",
			Background: "#000000",
			RoundCaps:  true,
		},
		Output: Output{
			Dir: "out",
		},
	}
}

// Load reads the YAML file at path, if path is not empty, applies overrides of
// the form "animation.frames=30" on top, and decodes the result over Default.
func Load(path string, overrides []string) (Config, error) {
	raw := make(map[string]any)

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		if raw == nil {
			raw = make(map[string]any)
		}
	}

	for _, o := range overrides {
		key, value, ok := strings.Cut(o, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return Config{}, fmt.Errorf("%q: %w", o, ErrBadOverride)
		}
		set(raw, strings.Split(strings.TrimSpace(key), "."), value)
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// set stores value at the nested key path, replacing non-map values on the way.
func set(m map[string]any, path []string, value string) {
	for _, k := range path[:len(path)-1] {
		next, ok := m[k].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[k] = next
		}
		m = next
	}
	m[path[len(path)-1]] = value
}

// Validate checks the fields that cannot simply be clamped.
func (c Config) Validate() error {
	var errs []error

	if c.Backend != "" {
		if _, err := render.ParseBackend(c.Backend); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Surface.ID == "" {
		errs = append(errs, errors.New("surface.id is empty"))
	}
	if c.Surface.Width < 0 || c.Surface.Height < 0 {
		errs = append(errs, fmt.Errorf("surface size %dx%d is negative", c.Surface.Width, c.Surface.Height))
	}
	if c.Animation.FPS < 0 {
		errs = append(errs, fmt.Errorf("animation.fps %d is negative", c.Animation.FPS))
	}
	if c.Animation.Frames < 1 {
		errs = append(errs, fmt.Errorf("animation.frames %d is less than 1", c.Animation.Frames))
	}
	if _, err := c.Stroke.Render(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// RequireBackend fails when the configuration selects a backend other than b.
func (c Config) RequireBackend(b render.Backend) error {
	if c.Backend != "" && c.Backend != string(b) {
		return fmt.Errorf("%w: backend %q selected, this command renders %q", ErrInvalid, c.Backend, b)
	}
	return nil
}

// Render converts the stroke colours.
func (s Stroke) Render() (render.Stroke, error) {
	fg, err := ParseColor(s.Color)
	if err != nil {
		return render.Stroke{}, fmt.Errorf("stroke.color: %w", err)
	}
	bg, err := ParseColor(s.Background)
	if err != nil {
		return render.Stroke{}, fmt.Errorf("stroke.background: %w", err)
	}

	return render.Stroke{Color: fg, Background: bg, RoundCaps: s.RoundCaps}, nil
}

// ParseColor reads an opaque colour written as #rgb or #rrggbb.
func ParseColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}

	if !strings.HasPrefix(s, "#") || strings.TrimLeft(s[1:], "0123456789abcdefABCDEF") != "" {
		return color.RGBA{}, fmt.Errorf("colour %q: want #rgb or #rrggbb", s)
	}

	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 0x11
		c.G *= 0x11
		c.B *= 0x11
	default:
		err = errors.New("want #rgb or #rrggbb")
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}

	return c, nil
}
