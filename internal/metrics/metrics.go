// Package metrics instruments link-cut workloads with Prometheus metrics on
// a private registry.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/linkcut/internal/script"
)

const namespace = "linkcut"

// Recorder collects per-operation counts and latencies. It implements
// script.Observer and is safe for concurrent use.
type Recorder struct {
	reg      *prometheus.Registry
	ops      *prometheus.CounterVec
	duration *prometheus.HistogramVec
	vertices prometheus.Gauge
}

var _ script.Observer = (*Recorder)(nil)

// New registers the linkcut collectors on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		reg: reg,
		ops: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Forest operations executed, by kind and outcome.",
		}, []string{"op", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Latency of single forest operations.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10), // 100ns to ~26ms
		}, []string{"op"}),
		vertices: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "vertices",
			Help:      "Vertices in the forest under test.",
		}),
	}
}

func (r *Recorder) ObserveVertices(n int) {
	r.vertices.Set(float64(n))
}

func (r *Recorder) ObserveOp(kind script.Kind, label string, d time.Duration) {
	r.ops.WithLabelValues(string(kind), label).Inc()
	r.duration.WithLabelValues(string(kind)).Observe(d.Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// WriteTextfile writes the current metrics to path for the node exporter
// textfile collector. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}

	return nil
}
