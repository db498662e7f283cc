// Package metrics counts renderer activity with Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/willbeason/fractal-trees/pkg/render"
	"github.com/willbeason/fractal-trees/pkg/tree"
)

const namespace = "fractal_trees"

// Metrics is a render.Observer backed by Prometheus collectors.
type Metrics struct {
	frames        prometheus.Counter
	regenerations prometheus.Counter
	initFailures  prometheus.Counter
	segments      prometheus.Gauge
	rotation      prometheus.Gauge
	iterations    prometheus.Gauge
}

var _ render.Observer = (*Metrics)(nil)

// New registers the collectors on reg, labelled with the backend name.
func New(reg prometheus.Registerer, backend render.Backend) *Metrics {
	labels := prometheus.Labels{"backend": string(backend)}

	m := &Metrics{
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "frames_drawn_total",
			Help:        "Frames drawn on the surface.",
			ConstLabels: labels,
		}),
		regenerations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "regenerations_total",
			Help:        "Times the tree geometry was regenerated.",
			ConstLabels: labels,
		}),
		initFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "init_failures_total",
			Help:        "Init calls whose surface could not be resolved.",
			ConstLabels: labels,
		}),
		segments: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "segments",
			Help:        "Branches in the current tree geometry.",
			ConstLabels: labels,
		}),
		rotation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "rotation_radians",
			Help:        "Accumulated rotation of the last frame drawn.",
			ConstLabels: labels,
		}),
		iterations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "iterations",
			Help:        "Recursion depth of the current tree.",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(m.frames, m.regenerations, m.initFailures, m.segments, m.rotation, m.iterations)

	return m
}

func (m *Metrics) InitFailed(string, error) {
	m.initFailures.Inc()
}

func (m *Metrics) Regenerated(p tree.Parameters, segments int) {
	m.regenerations.Inc()
	m.segments.Set(float64(segments))
	m.iterations.Set(float64(p.Iterations))
}

func (m *Metrics) FrameDrawn(f render.Frame) {
	m.frames.Inc()
	m.rotation.Set(f.Rotation)
}

// WriteFile writes everything g gathers to path in the text exposition
// format, replacing the file atomically.
func WriteFile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
