// Package metrics holds the prometheus instrumentation for the
// covermetrics commands: computation counts and durations, and the
// sizes of the graphs and covers being evaluated.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Quality computation metrics
	ComputationsTotal   *prometheus.CounterVec
	ComputationDuration *prometheus.HistogramVec
	ReportsTotal        *prometheus.CounterVec
	ReportDuration      prometheus.Histogram
	BoundaryEdgesFound  prometheus.Histogram

	// Input metrics
	GraphVertices prometheus.Gauge
	GraphEdges    prometheus.Gauge
	CoverClusters prometheus.Gauge
	CoversLoaded  prometheus.Counter

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initQualityMetrics()
	r.initInputMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
