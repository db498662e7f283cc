package render

import (
	"context"
	"log/slog"
)

// DefaultRotationStep is how far the tree turns each frame, in radians.
const DefaultRotationStep = 0.002

// Option configures a Host.
type Option func(*hostOptions)

type hostOptions struct {
	logger       *slog.Logger
	observer     Observer
	stroke       Stroke
	rotationStep float64
}

func defaultOptions() hostOptions {
	return hostOptions{
		logger:       newNopLogger(),
		observer:     NopObserver{},
		stroke:       DefaultStroke,
		rotationStep: DefaultRotationStep,
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *hostOptions) {
		if l == nil {
			l = newNopLogger()
		}
		o.logger = l
	}
}

// WithObserver registers an Observer, for example a metrics collector.
func WithObserver(obs Observer) Option {
	return func(o *hostOptions) {
		if obs == nil {
			obs = NopObserver{}
		}
		o.observer = obs
	}
}

func WithStroke(s Stroke) Option {
	return func(o *hostOptions) {
		o.stroke = s
	}
}

// WithRotationStep sets the per-frame rotation in radians. Zero keeps the tree still.
func WithRotationStep(step float64) Option {
	return func(o *hostOptions) {
		o.rotationStep = step
	}
}

// nopHandler discards every record; Enabled returning false skips formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }
