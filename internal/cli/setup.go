package cli

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/willbeason/fractal-trees/internal/config"
	"github.com/willbeason/fractal-trees/internal/logging"
	"github.com/willbeason/fractal-trees/internal/metrics"
	"github.com/willbeason/fractal-trees/pkg/render"
)

// Runtime is the ambient machinery of one command run.
type Runtime struct {
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics

	metricsFile string
}

// NewRuntime builds the logger and metrics for cfg.
// It fails when cfg selects a different backend.
func NewRuntime(cfg config.Config, backend render.Backend) (*Runtime, error) {
	if err := cfg.RequireBackend(backend); err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()

	return &Runtime{
		Logger:      logging.New(level).With("backend", string(backend)),
		Registry:    reg,
		Metrics:     metrics.New(reg, backend),
		metricsFile: cfg.MetricsFile,
	}, nil
}

// HostOptions are the render options derived from cfg and the runtime.
func (r *Runtime) HostOptions(cfg config.Config) ([]render.Option, error) {
	stroke, err := cfg.Stroke.Render()
	if err != nil {
		return nil, err
	}

	return []render.Option{
		render.WithLogger(r.Logger),
		render.WithObserver(r.Metrics),
		render.WithStroke(stroke),
		render.WithRotationStep(cfg.Animation.RotationStep),
	}, nil
}

// Finish writes the metrics file, if one was requested.
func (r *Runtime) Finish() error {
	if r.metricsFile == "" {
		return nil
	}

	err := metrics.WriteFile(r.metricsFile, r.Registry)
	if err != nil {
		return err
	}
	r.Logger.Debug("metrics written", "path", r.metricsFile)

	return nil
}
