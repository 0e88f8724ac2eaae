package metrics

import (
	"time"
)

// RecordComputation records one cluster metric computation
func (r *Registry) RecordComputation(metric, status string, duration time.Duration) {
	r.ComputationsTotal.WithLabelValues(metric, status).Inc()
	r.ComputationDuration.WithLabelValues(metric).Observe(duration.Seconds())
}

// RecordReport records a full report computation
func (r *Registry) RecordReport(status string, duration time.Duration, boundaryEdges int) {
	r.ReportsTotal.WithLabelValues(status).Inc()
	r.ReportDuration.Observe(duration.Seconds())
	r.BoundaryEdgesFound.Observe(float64(boundaryEdges))
}

// SetGraphSize records the dimensions of the graph under evaluation
func (r *Registry) SetGraphSize(vertices, edges int) {
	r.GraphVertices.Set(float64(vertices))
	r.GraphEdges.Set(float64(edges))
}

// RecordCoverLoaded records a loaded cover and its cluster count
func (r *Registry) RecordCoverLoaded(clusters int) {
	r.CoversLoaded.Inc()
	r.CoverClusters.Set(float64(clusters))
}
