// Package cli holds the flag and configuration wiring shared by the commands.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/willbeason/fractal-trees/internal/config"
)

const (
	flagConfig      = "config"
	flagSet         = "set"
	flagIterations  = "iterations"
	flagAngle       = "angle"
	flagLength      = "length"
	flagSurface     = "surface"
	flagWidth       = "width"
	flagHeight      = "height"
	flagRotation    = "rotation-step"
	flagFPS         = "fps"
	flagLogLevel    = "log-level"
	flagMetricsFile = "metrics-file"
)

// AddFlags registers the flags every renderer command understands.
func AddFlags(cmd *cobra.Command) {
	d := config.Default()
	flags := cmd.Flags()

	flags.String(flagConfig, "", "YAML configuration file")
	flags.StringArray(flagSet, nil, "override a configuration key, e.g. --set animation.frames=30")

	flags.Float64(flagIterations, d.Parameters.Iterations, "recursion depth, 1 to 10")
	flags.Float64(flagAngle, d.Parameters.Angle, "branch angle in degrees, 10 to 45")
	flags.Float64(flagLength, d.Parameters.Length, "trunk length in pixels, 50 to 150")

	flags.String(flagSurface, d.Surface.ID, "surface id to initialize")
	flags.Int(flagWidth, d.Surface.Width, "surface width in pixels")
	flags.Int(flagHeight, d.Surface.Height, "surface height in pixels")

	flags.Float64(flagRotation, d.Animation.RotationStep, "rotation per frame in radians")
	flags.Int(flagFPS, d.Animation.FPS, "frames per second")

	flags.String(flagLogLevel, d.LogLevel, "debug, info, warn or error")
	flags.String(flagMetricsFile, "", "write Prometheus metrics to this file on exit")
}

// LoadConfig reads --config and --set, then applies every flag the user set
// explicitly on top.
func LoadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	path, err := flags.GetString(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	overrides, err := flags.GetStringArray(flagSet)
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(path, overrides)
	if err != nil {
		return config.Config{}, err
	}

	float64s := map[string]*float64{
		flagIterations: &cfg.Parameters.Iterations,
		flagAngle:      &cfg.Parameters.Angle,
		flagLength:     &cfg.Parameters.Length,
		flagRotation:   &cfg.Animation.RotationStep,
	}
	ints := map[string]*int{
		flagWidth:  &cfg.Surface.Width,
		flagHeight: &cfg.Surface.Height,
		flagFPS:    &cfg.Animation.FPS,
	}
	strs := map[string]*string{
		flagSurface:     &cfg.Surface.ID,
		flagLogLevel:    &cfg.LogLevel,
		flagMetricsFile: &cfg.MetricsFile,
	}

	for name, dst := range float64s {
		if flags.Changed(name) {
			*dst, _ = flags.GetFloat64(name)
		}
	}
	for name, dst := range ints {
		if flags.Changed(name) {
			*dst, _ = flags.GetInt(name)
		}
	}
	for name, dst := range strs {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}

	return cfg, cfg.Validate()
}
