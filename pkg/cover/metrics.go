package cover

import (
	"math"

	"github.com/dd0wney/cluso-covermetrics/pkg/stats"
)

// policyValue is the zero-denominator result selected per call: NaN
// under allowNaN, 0 otherwise.
func policyValue(allowNaN bool) float64 {
	if allowNaN {
		return math.NaN()
	}
	return 0
}

// FractionOverMedianDegree returns, per cluster, the fraction of its
// vertices whose weighted internal degree exceeds the median weighted
// degree over the whole graph. The median is a deliberately global
// threshold.
func (c *Cover) FractionOverMedianDegree(w WeightSpec) ([]float64, error) {
	attr, owns, err := w.resolve(c.g, "fomd")
	if err != nil {
		return nil, err
	}
	defer releaseWeights(c.g, attr, owns)

	weights, err := edgeWeights(c.g, attr)
	if err != nil {
		return nil, err
	}
	strength, err := c.g.Strength(attr)
	if err != nil {
		return nil, err
	}
	median := stats.Median(strength)

	internal := c.InternalEdges()
	edges := c.g.Edges()

	rv := make([]float64, len(c.clusters))
	for i := range c.clusters {
		size := c.Size(i)
		if size == 0 {
			continue
		}

		// weighted degree within the induced subgraph
		internalStrength := make(map[int]float64, size)
		for _, idx := range internal[i] {
			e := edges[idx]
			wv := 1.0
			if weights != nil {
				wv = weights[idx]
			}
			internalStrength[e.Source] += wv
			internalStrength[e.Target] += wv
		}

		over := 0
		for _, v := range c.clusters[i] {
			if internalStrength[v] > median {
				over++
			}
		}
		rv[i] = float64(over) / float64(size)
	}
	return rv, nil
}

// Expansion returns, per cluster, the weighted boundary-edge sum
// divided by the cluster size. Empty clusters yield 0.
func (c *Cover) Expansion(w WeightSpec) ([]float64, error) {
	attr, owns, err := w.resolve(c.g, "expansion")
	if err != nil {
		return nil, err
	}
	defer releaseWeights(c.g, attr, owns)

	weights, err := edgeWeights(c.g, attr)
	if err != nil {
		return nil, err
	}

	boundary := c.BoundaryEdges()
	rv := make([]float64, len(c.clusters))
	for i := range c.clusters {
		if size := c.Size(i); size > 0 {
			rv[i] = weightedSum(weights, boundary[i]) / float64(size)
		}
	}
	return rv, nil
}

// CutRatio returns, per cluster, the boundary-edge count divided by the
// maximum possible number of boundary edges, size(i) * (n - size(i)).
// When that denominator is zero the policy value applies.
func (c *Cover) CutRatio(allowNaN bool) []float64 {
	n := c.g.VertexCount()
	boundary := c.BoundaryEdges()

	rv := make([]float64, len(c.clusters))
	for i := range c.clusters {
		size := c.Size(i)
		denominator := float64(size) * float64(n-size)
		if denominator > 0 {
			rv[i] = float64(len(boundary[i])) / denominator
		} else {
			rv[i] = policyValue(allowNaN)
		}
	}
	return rv
}

// Conductance returns, per cluster, ext / (2*int + ext) where int and
// ext are the weighted internal and boundary edge sums. When the
// denominator is zero the policy value applies.
func (c *Cover) Conductance(w WeightSpec, allowNaN bool) ([]float64, error) {
	attr, owns, err := w.resolve(c.g, "conductance")
	if err != nil {
		return nil, err
	}
	defer releaseWeights(c.g, attr, owns)

	weights, err := edgeWeights(c.g, attr)
	if err != nil {
		return nil, err
	}

	boundary, internal := c.BoundaryEdges(), c.InternalEdges()
	rv := make([]float64, len(c.clusters))
	for i := range c.clusters {
		internalSum := weightedSum(weights, internal[i])
		externalSum := weightedSum(weights, boundary[i])
		denominator := 2*internalSum + externalSum
		if denominator > 0 {
			rv[i] = externalSum / denominator
		} else {
			rv[i] = policyValue(allowNaN)
		}
	}
	return rv, nil
}

// Separability returns, per cluster, the weighted internal edge sum
// divided by the weighted boundary edge sum. When the cluster has no
// boundary weight the policy value applies.
func (c *Cover) Separability(w WeightSpec, allowNaN bool) ([]float64, error) {
	attr, owns, err := w.resolve(c.g, "separability")
	if err != nil {
		return nil, err
	}
	defer releaseWeights(c.g, attr, owns)

	weights, err := edgeWeights(c.g, attr)
	if err != nil {
		return nil, err
	}

	boundary, internal := c.BoundaryEdges(), c.InternalEdges()
	rv := make([]float64, len(c.clusters))
	for i := range c.clusters {
		internalSum := weightedSum(weights, internal[i])
		externalSum := weightedSum(weights, boundary[i])
		if externalSum > 0 {
			rv[i] = internalSum / externalSum
		} else {
			rv[i] = policyValue(allowNaN)
		}
	}
	return rv, nil
}

// NormalizedCut returns, per cluster, the conductance plus
// ext / (2*(total - int) + ext), total being the weighted sum over
// every edge of the graph. Zero denominators contribute the policy
// value.
func (c *Cover) NormalizedCut(w WeightSpec, allowNaN bool) ([]float64, error) {
	rv, err := c.Conductance(w, allowNaN)
	if err != nil {
		return nil, err
	}

	attr, owns, err := w.resolve(c.g, "normalized_cut")
	if err != nil {
		return nil, err
	}
	defer releaseWeights(c.g, attr, owns)

	weights, err := edgeWeights(c.g, attr)
	if err != nil {
		return nil, err
	}
	total := totalWeight(c.g, weights)

	boundary, internal := c.BoundaryEdges(), c.InternalEdges()
	for i := range c.clusters {
		internalSum := weightedSum(weights, internal[i])
		externalSum := weightedSum(weights, boundary[i])
		denominator := 2*(total-internalSum) + externalSum
		if denominator > 0 {
			rv[i] += externalSum / denominator
		} else {
			rv[i] += policyValue(allowNaN)
		}
	}
	return rv, nil
}

// MaximumOutDegreeFraction returns, per cluster, the largest ODF value
// over its vertices. A nil odf is computed from w first; pass a shared
// matrix to avoid recomputation across the ODF variants.
func (c *Cover) MaximumOutDegreeFraction(odf *ODFMatrix, w WeightSpec) ([]float64, error) {
	if odf == nil {
		var err error
		odf, err = c.OutDegreeFraction(w, false)
		if err != nil {
			return nil, err
		}
	}

	rv := make([]float64, len(c.clusters))
	for i := range c.clusters {
		max := 0.0 // implicit entries are 0
		for _, v := range odf.Column(i) {
			if v > max {
				max = v
			}
		}
		rv[i] = max
	}
	return rv, nil
}

// AverageOutDegreeFraction returns, per cluster, the mean ODF value
// over its vertices, implicit zero entries included. Empty clusters
// yield 0.
func (c *Cover) AverageOutDegreeFraction(odf *ODFMatrix, w WeightSpec) ([]float64, error) {
	if odf == nil {
		var err error
		odf, err = c.OutDegreeFraction(w, false)
		if err != nil {
			return nil, err
		}
	}

	rv := make([]float64, len(c.clusters))
	for i := range c.clusters {
		size := c.Size(i)
		if size == 0 {
			continue
		}
		sum := 0.0
		for _, v := range odf.Column(i) {
			sum += v
		}
		rv[i] = sum / float64(size)
	}
	return rv, nil
}

// FlakeOutDegreeFraction returns, per cluster, the fraction of its
// vertices whose ODF value exceeds 1/2, i.e. vertices with more
// external than internal weight. Empty clusters yield 0.
//
// The 1/2 threshold is carried over from the reference formulation
// as-is.
func (c *Cover) FlakeOutDegreeFraction(odf *ODFMatrix, w WeightSpec) ([]float64, error) {
	if odf == nil {
		var err error
		odf, err = c.OutDegreeFraction(w, false)
		if err != nil {
			return nil, err
		}
	}

	rv := make([]float64, len(c.clusters))
	for i := range c.clusters {
		size := c.Size(i)
		if size == 0 {
			continue
		}
		count := 0
		for _, v := range odf.Column(i) {
			if v > 0.5 {
				count++
			}
		}
		rv[i] = float64(count) / float64(size)
	}
	return rv, nil
}
