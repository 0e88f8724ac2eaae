package cover

import (
	"sort"

	"github.com/dd0wney/cluso-covermetrics/pkg/graphmetrics"
	"github.com/dd0wney/cluso-covermetrics/pkg/stats"
)

// Cluster metric names as they appear in reports.
const (
	MetricFOMD          = "Fraction over Median Degree"
	MetricExpansion     = "Expansion"
	MetricCutRatio      = "Cut Ratio"
	MetricConductance   = "Conductance"
	MetricNormalizedCut = "Normalized Cut"
	MetricMaxODF        = "Maximum Out Degree Fraction"
	MetricAvgODF        = "Average Out Degree Fraction"
	MetricFlakeODF      = "Flake Out Degree Fraction"
	MetricSeparability  = "Separability"
)

// MetricResult is one named metric: a value per cluster plus summary
// statistics over those values.
type MetricResult struct {
	Results     []float64
	Aggregation *stats.Aggregation
}

// Report maps metric names to per-cluster results. Names keep the
// order in which metrics were added.
type Report struct {
	metrics map[string]*MetricResult
	order   []string
}

// Names returns the metric names in report order.
func (r *Report) Names() []string {
	return r.order
}

// Metric returns the result for name, or nil when absent.
func (r *Report) Metric(name string) *MetricResult {
	return r.metrics[name]
}

// add stores a completed per-cluster sequence with its aggregation.
func (r *Report) add(name string, results []float64) {
	r.metrics[name] = &MetricResult{Results: results, Aggregation: stats.Aggregate(results)}
	r.order = append(r.order, name)
}

// appendValue grows the sequence for name by one cluster value,
// leaving the aggregation to a later pass.
func (r *Report) appendValue(name string, v float64) {
	m, ok := r.metrics[name]
	if !ok {
		m = &MetricResult{}
		r.metrics[name] = m
		r.order = append(r.order, name)
	}
	m.Results = append(m.Results, v)
}

// Metrics returns the memoized report, or nil when none has been
// computed. Reports are recomputed only on explicit request; mutating
// the graph after computing one leaves it stale.
func (c *Cover) Metrics() *Report {
	return c.report
}

// InvalidateMetrics drops the memoized report.
func (c *Cover) InvalidateMetrics() {
	c.report = nil
}

// ComputeMetrics computes every cluster metric plus the per-subgraph
// graph metrics, reusing a single boundary-edge index and a single ODF
// matrix across all of them, and memoizes the result on the cover.
func (c *Cover) ComputeMetrics(w WeightSpec, allowNaN bool) (*Report, error) {
	report := &Report{metrics: make(map[string]*MetricResult)}

	fomd, err := c.FractionOverMedianDegree(w)
	if err != nil {
		return nil, err
	}
	expansion, err := c.Expansion(w)
	if err != nil {
		return nil, err
	}
	cutRatio := c.CutRatio(allowNaN)
	conductance, err := c.Conductance(w, allowNaN)
	if err != nil {
		return nil, err
	}
	normalizedCut, err := c.NormalizedCut(w, allowNaN)
	if err != nil {
		return nil, err
	}

	odf, err := c.OutDegreeFraction(w, allowNaN)
	if err != nil {
		return nil, err
	}
	maxODF, err := c.MaximumOutDegreeFraction(odf, w)
	if err != nil {
		return nil, err
	}
	avgODF, err := c.AverageOutDegreeFraction(odf, w)
	if err != nil {
		return nil, err
	}
	flakeODF, err := c.FlakeOutDegreeFraction(odf, w)
	if err != nil {
		return nil, err
	}
	separability, err := c.Separability(w, allowNaN)
	if err != nil {
		return nil, err
	}

	report.add(MetricFOMD, fomd)
	report.add(MetricExpansion, expansion)
	report.add(MetricCutRatio, cutRatio)
	report.add(MetricConductance, conductance)
	report.add(MetricNormalizedCut, normalizedCut)
	report.add(MetricMaxODF, maxODF)
	report.add(MetricAvgODF, avgODF)
	report.add(MetricFlakeODF, flakeODF)
	report.add(MetricSeparability, separability)

	// Per-cluster subgraph metrics, merged one value per cluster
	var subgraphNames []string
	for i := 0; i < c.Len(); i++ {
		sg, err := c.Subgraph(i)
		if err != nil {
			return nil, err
		}
		sgMetrics := graphmetrics.Compute(sg)
		if subgraphNames == nil {
			subgraphNames = make([]string, 0, len(sgMetrics))
			for name := range sgMetrics {
				subgraphNames = append(subgraphNames, name)
			}
			sort.Strings(subgraphNames)
		}
		for _, name := range subgraphNames {
			report.appendValue(name, sgMetrics[name])
		}
	}
	for _, name := range subgraphNames {
		m := report.metrics[name]
		m.Aggregation = stats.Aggregate(m.Results)
	}

	c.report = report
	return report, nil
}
