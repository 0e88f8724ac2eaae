package cover

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-covermetrics/pkg/graph"
)

// syntheticNamespace scopes the attribute names minted for explicit
// weight arrays so they cannot collide with user attributes.
const syntheticNamespace = "cluso.covermetrics"

type weightKind int

const (
	weightNone weightKind = iota
	weightNamed
	weightExplicit
)

// WeightSpec selects how edge weights enter a metric computation:
// unweighted (every edge contributes 1.0), a named per-edge attribute
// already attached to the graph, or an explicit value array parallel to
// the edge list. The zero value is the unweighted spec.
type WeightSpec struct {
	kind   weightKind
	name   string
	values []float64
}

// Unweighted returns the spec under which every edge contributes 1.0.
func Unweighted() WeightSpec {
	return WeightSpec{}
}

// NamedWeights returns a spec referencing an existing edge attribute.
func NamedWeights(attr string) WeightSpec {
	return WeightSpec{kind: weightNamed, name: attr}
}

// ExplicitWeights returns a spec carrying a per-edge value array. The
// array is attached to the graph under a synthetic attribute name for
// the duration of the computation and removed afterward.
func ExplicitWeights(values []float64) WeightSpec {
	return WeightSpec{kind: weightExplicit, values: values}
}

// IsWeighted reports whether the spec supplies weights at all.
func (w WeightSpec) IsWeighted() bool {
	return w.kind != weightNone
}

// syntheticAttrName derives the attribute name used for explicit weight
// arrays: a UUIDv5 of the metric name under a fixed namespace, so
// repeated resolutions for the same metric reuse one name.
func syntheticAttrName(metricName string) string {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(metricName+"."+syntheticNamespace)).String()
}

// resolve normalizes the spec against g for the named metric. It
// returns the attribute name to read weights from ("" when unweighted)
// and whether the caller owns the attribute and must release it.
// Callers defer releaseWeights immediately so the synthetic attribute
// is removed on every exit path.
func (w WeightSpec) resolve(g *graph.Graph, metricName string) (attr string, owns bool, err error) {
	switch w.kind {
	case weightNone:
		return "", false, nil
	case weightNamed:
		return w.name, false, nil
	case weightExplicit:
		if len(w.values) != g.EdgeCount() {
			return "", false, fmt.Errorf("%d weights for %d edges: %w", len(w.values), g.EdgeCount(), ErrWeightLength)
		}
		name := syntheticAttrName(metricName)
		if err := g.SetEdgeAttribute(name, w.values); err != nil {
			return "", false, err
		}
		return name, true, nil
	default:
		return "", false, fmt.Errorf("unknown weight spec kind %d", w.kind)
	}
}

// releaseWeights removes the synthetic attribute iff the caller owns it.
func releaseWeights(g *graph.Graph, attr string, owns bool) {
	if owns {
		g.RemoveEdgeAttribute(attr)
	}
}

// edgeWeights returns the resolved per-edge weight array, or nil when
// unweighted.
func edgeWeights(g *graph.Graph, attr string) ([]float64, error) {
	if attr == "" {
		return nil, nil
	}
	return g.EdgeAttribute(attr)
}

// weightedSum sums the weights of the edges with the given indices: the
// edge count when unweighted.
func weightedSum(weights []float64, edges []int) float64 {
	if weights == nil {
		return float64(len(edges))
	}
	sum := 0.0
	for _, idx := range edges {
		sum += weights[idx]
	}
	return sum
}

// totalWeight sums the weights of every edge in g.
func totalWeight(g *graph.Graph, weights []float64) float64 {
	if weights == nil {
		return float64(g.EdgeCount())
	}
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	return sum
}
