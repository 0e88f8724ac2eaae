package cover

import "math"

// ODFMatrix is a sparse vertex-by-cluster matrix of out-degree
// fractions: entry (v, i) is the fraction of v's weighted degree
// carried by edges leaving cluster i. Only vertices with boundary
// contributions (or a zero-degree fallback) hold explicit entries;
// absent entries read as 0.
type ODFMatrix struct {
	cols []map[int]float64
}

// Len returns the number of cluster columns.
func (m *ODFMatrix) Len() int {
	return len(m.cols)
}

// Value returns entry (v, i), or 0 when no explicit entry exists.
func (m *ODFMatrix) Value(v, i int) float64 {
	return m.cols[i][v]
}

// Column returns the explicit entries of cluster i keyed by vertex.
// The map is shared and must not be modified.
func (m *ODFMatrix) Column(i int) map[int]float64 {
	return m.cols[i]
}

// OutDegreeFraction computes the ODF matrix for the cover. For every
// boundary edge of cluster i the (weighted) contribution is attributed
// to the endpoint inside the cluster; when overlap puts both endpoints
// inside, the source endpoint wins, so attribution is deterministic
// across overlapping clusters. Vertices with zero weighted degree take
// the fallback value: NaN when allowNaN is set, 0 otherwise.
func (c *Cover) OutDegreeFraction(w WeightSpec, allowNaN bool) (*ODFMatrix, error) {
	attr, owns, err := w.resolve(c.g, "out_degree_fraction")
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

	fallback := 0.0
	if allowNaN {
		fallback = math.NaN()
	}

	boundary := c.BoundaryEdges()
	edges := c.g.Edges()

	m := &ODFMatrix{cols: make([]map[int]float64, len(boundary))}
	for i, edgeIdxs := range boundary {
		external := make(map[int]float64)
		for _, idx := range edgeIdxs {
			e := edges[idx]
			v := e.Target
			if c.Contains(i, e.Source) {
				v = e.Source
			}
			if weights == nil {
				external[v]++
			} else {
				external[v] += weights[idx]
			}
		}

		col := make(map[int]float64, len(external))
		for v, ext := range external {
			if strength[v] == 0 {
				col[v] = fallback
			} else {
				col[v] = ext / strength[v]
			}
		}
		m.cols[i] = col
	}
	return m, nil
}
