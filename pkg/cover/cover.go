// Package cover implements vertex covers over a graph and the quality
// metrics used to evaluate community-detection output: boundary-edge
// extraction, out-degree-fraction matrices, the per-cluster metric
// family (conductance, expansion, cut ratio, separability, normalized
// cut, fraction over median degree, ODF variants), and the combined
// metrics report.
package cover

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dd0wney/cluso-covermetrics/pkg/graph"
)

// Common sentinel errors
var (
	ErrMembershipLength = errors.New("membership length does not match vertex count")
	ErrClusterIndex     = errors.New("cluster index out of range")
	ErrWeightLength     = errors.New("weight array length does not match edge count")
)

// Cover assigns each vertex of a fixed graph to zero or more clusters.
// The assignment is immutable once built; derived structures (boundary
// edge sets, induced subgraphs, the metrics report) are computed lazily
// and cached. Mutating the underlying graph after a cached structure
// exists leaves that structure stale; a Cover is not safe for
// concurrent use.
type Cover struct {
	g          *graph.Graph
	membership [][]int            // per-vertex sorted cluster ids
	clusters   [][]int            // per-cluster ascending vertex lists
	sets       []map[int]struct{} // per-cluster vertex sets
	subgraphs  []*graph.Graph     // lazily induced, indexed by cluster

	// cached boundary/internal edge indices, built in one pass
	boundary [][]int
	internal [][]int

	report *Report
}

// New creates a cover from a per-vertex membership: membership[v] lists
// the clusters containing v. The cluster count is the largest listed
// index plus one; vertices may belong to zero, one, or many clusters.
func New(g *graph.Graph, membership [][]int) (*Cover, error) {
	if len(membership) != g.VertexCount() {
		return nil, fmt.Errorf("cover over %d vertices: %w", g.VertexCount(), ErrMembershipLength)
	}

	k := 0
	for v, clusters := range membership {
		for _, i := range clusters {
			if i < 0 {
				return nil, fmt.Errorf("vertex %d in cluster %d: %w", v, i, ErrClusterIndex)
			}
			if i+1 > k {
				k = i + 1
			}
		}
	}

	c := &Cover{
		g:          g,
		membership: make([][]int, len(membership)),
		clusters:   make([][]int, k),
		sets:       make([]map[int]struct{}, k),
		subgraphs:  make([]*graph.Graph, k),
	}
	for i := range c.sets {
		c.sets[i] = make(map[int]struct{})
	}
	for v, clusters := range membership {
		own := make([]int, 0, len(clusters))
		for _, i := range clusters {
			if _, dup := c.sets[i][v]; dup {
				continue
			}
			c.sets[i][v] = struct{}{}
			c.clusters[i] = append(c.clusters[i], v)
			own = append(own, i)
		}
		sort.Ints(own)
		c.membership[v] = own
	}
	return c, nil
}

// FromClusters creates a cover from per-cluster vertex lists.
func FromClusters(g *graph.Graph, clusters [][]int) (*Cover, error) {
	membership := make([][]int, g.VertexCount())
	for i, vertices := range clusters {
		for _, v := range vertices {
			if v < 0 || v >= g.VertexCount() {
				return nil, &graph.GraphError{Op: "FromClusters", Entity: "vertex", Index: v, Cause: graph.ErrVertexOutOfRange}
			}
			membership[v] = append(membership[v], i)
		}
	}

	c, err := New(g, membership)
	if err != nil {
		return nil, err
	}
	// Preserve trailing empty clusters that New cannot infer
	for len(c.clusters) < len(clusters) {
		c.clusters = append(c.clusters, nil)
		c.sets = append(c.sets, make(map[int]struct{}))
		c.subgraphs = append(c.subgraphs, nil)
	}
	return c, nil
}

// Graph returns the underlying graph.
func (c *Cover) Graph() *graph.Graph {
	return c.g
}

// Len returns the number of clusters.
func (c *Cover) Len() int {
	return len(c.clusters)
}

// Size returns the number of vertices in cluster i.
func (c *Cover) Size(i int) int {
	return len(c.clusters[i])
}

// Cluster returns the vertices of cluster i in ascending order. The
// slice is shared and must not be modified.
func (c *Cover) Cluster(i int) []int {
	return c.clusters[i]
}

// Membership returns the per-vertex cluster lists. The slices are
// shared and must not be modified.
func (c *Cover) Membership() [][]int {
	return c.membership
}

// Contains reports whether vertex v belongs to cluster i.
func (c *Cover) Contains(i, v int) bool {
	_, ok := c.sets[i][v]
	return ok
}

// Subgraph returns the subgraph induced by cluster i. The result is
// cached; it reflects edge attributes present at first call.
func (c *Cover) Subgraph(i int) (*graph.Graph, error) {
	if i < 0 || i >= len(c.clusters) {
		return nil, fmt.Errorf("subgraph of cluster %d: %w", i, ErrClusterIndex)
	}
	if c.subgraphs[i] == nil {
		sub, err := c.g.Subgraph(c.clusters[i])
		if err != nil {
			return nil, err
		}
		c.subgraphs[i] = sub
	}
	return c.subgraphs[i], nil
}
