package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initQualityMetrics() {
	r.ComputationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "covermetrics_computations_total",
			Help: "Total number of cluster metric computations",
		},
		[]string{"metric", "status"},
	)

	r.ComputationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "covermetrics_computation_duration_seconds",
			Help:    "Per-metric computation duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"metric"},
	)

	r.ReportsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "covermetrics_reports_total",
			Help: "Total number of full metric reports computed",
		},
		[]string{"status"},
	)

	r.ReportDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "covermetrics_report_duration_seconds",
			Help:    "Full report computation duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		},
	)

	r.BoundaryEdgesFound = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "covermetrics_boundary_edges",
			Help:    "Boundary edge count per evaluated cover",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
	)
}

func (r *Registry) initInputMetrics() {
	r.GraphVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "covermetrics_graph_vertices",
			Help: "Vertex count of the graph under evaluation",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "covermetrics_graph_edges",
			Help: "Edge count of the graph under evaluation",
		},
	)

	r.CoverClusters = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "covermetrics_cover_clusters",
			Help: "Cluster count of the cover under evaluation",
		},
	)

	r.CoversLoaded = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "covermetrics_covers_loaded_total",
			Help: "Total number of cover files loaded",
		},
	)
}
