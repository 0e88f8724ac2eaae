// Package graph provides the in-memory undirected graph consumed by the
// cover metrics engine: a fixed vertex range, an ordered edge list, and
// named per-edge float64 attribute arrays.
package graph

// Edge is an undirected edge between two vertex ids.
type Edge struct {
	Source int
	Target int
}

// Graph is an undirected multigraph over vertices 0..n-1. Edges keep
// insertion order; attribute arrays are parallel to the edge list.
// A Graph is not safe for concurrent mutation.
type Graph struct {
	vertices int
	edges    []Edge
	attrs    map[string][]float64
	incident [][]int // vertex -> indices of incident edges, self-loops listed twice
}

// New creates a graph with the given number of vertices and no edges.
func New(vertices int) (*Graph, error) {
	if vertices < 0 {
		return nil, &GraphError{Op: "New", Entity: "vertex", Index: vertices, Cause: ErrNegativeVertices}
	}
	return &Graph{
		vertices: vertices,
		attrs:    make(map[string][]float64),
		incident: make([][]int, vertices),
	}, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	return g.vertices
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Edges returns the edge list in insertion order. The returned slice is
// shared with the graph and must not be modified.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Edge returns the edge at index i.
func (g *Graph) Edge(i int) (Edge, error) {
	if i < 0 || i >= len(g.edges) {
		return Edge{}, &GraphError{Op: "Edge", Entity: "edge", Index: i, Cause: ErrEdgeOutOfRange}
	}
	return g.edges[i], nil
}

// AddEdge appends an undirected edge between u and v and returns its
// index. Build the topology before attaching attribute arrays: arrays
// must match the edge count at attach time.
func (g *Graph) AddEdge(u, v int) (int, error) {
	if u < 0 || u >= g.vertices {
		return 0, &GraphError{Op: "AddEdge", Entity: "vertex", Index: u, Cause: ErrVertexOutOfRange}
	}
	if v < 0 || v >= g.vertices {
		return 0, &GraphError{Op: "AddEdge", Entity: "vertex", Index: v, Cause: ErrVertexOutOfRange}
	}

	idx := len(g.edges)
	g.edges = append(g.edges, Edge{Source: u, Target: v})
	g.incident[u] = append(g.incident[u], idx)
	g.incident[v] = append(g.incident[v], idx)
	return idx, nil
}

// IncidentEdges returns the indices of edges incident to v, with
// self-loops listed twice. The slice is shared and must not be modified.
func (g *Graph) IncidentEdges(v int) ([]int, error) {
	if v < 0 || v >= g.vertices {
		return nil, &GraphError{Op: "IncidentEdges", Entity: "vertex", Index: v, Cause: ErrVertexOutOfRange}
	}
	return g.incident[v], nil
}

// Neighbors returns the opposite endpoint of every edge incident to v,
// one entry per incident edge (parallel edges repeat, self-loops yield
// v itself twice).
func (g *Graph) Neighbors(v int) ([]int, error) {
	incident, err := g.IncidentEdges(v)
	if err != nil {
		return nil, err
	}

	neighbors := make([]int, 0, len(incident))
	for _, idx := range incident {
		e := g.edges[idx]
		if e.Source == v {
			neighbors = append(neighbors, e.Target)
		} else {
			neighbors = append(neighbors, e.Source)
		}
	}
	return neighbors, nil
}

// Degree returns the number of edge endpoints at v (self-loops count
// twice).
func (g *Graph) Degree(v int) (int, error) {
	incident, err := g.IncidentEdges(v)
	if err != nil {
		return 0, err
	}
	return len(incident), nil
}

// Strength returns the per-vertex weighted degree: the sum of incident
// edge weights, self-loops counted twice. An empty attribute name means
// unweighted, each edge contributing 1.0.
func (g *Graph) Strength(attr string) ([]float64, error) {
	var weights []float64
	if attr != "" {
		var err error
		weights, err = g.EdgeAttribute(attr)
		if err != nil {
			return nil, err
		}
	}

	strength := make([]float64, g.vertices)
	for v := 0; v < g.vertices; v++ {
		for _, idx := range g.incident[v] {
			if weights == nil {
				strength[v]++
			} else {
				strength[v] += weights[idx]
			}
		}
	}
	return strength, nil
}

// Subgraph returns the subgraph induced by the given vertices. Vertex i
// of the result corresponds to vertices[j] where j is the position of i,
// i.e. vertices are re-indexed by position. Edges with both endpoints in
// the set are kept in edge-list order, and every attribute array is
// carried over filtered to the kept edges.
func (g *Graph) Subgraph(vertices []int) (*Graph, error) {
	index := make(map[int]int, len(vertices))
	for pos, v := range vertices {
		if v < 0 || v >= g.vertices {
			return nil, &GraphError{Op: "Subgraph", Entity: "vertex", Index: v, Cause: ErrVertexOutOfRange}
		}
		index[v] = pos
	}

	sub, err := New(len(vertices))
	if err != nil {
		return nil, err
	}

	kept := make([]int, 0)
	for idx, e := range g.edges {
		src, okSrc := index[e.Source]
		dst, okDst := index[e.Target]
		if !okSrc || !okDst {
			continue
		}
		if _, err := sub.AddEdge(src, dst); err != nil {
			return nil, err
		}
		kept = append(kept, idx)
	}

	for name, values := range g.attrs {
		filtered := make([]float64, len(kept))
		for i, idx := range kept {
			filtered[i] = values[idx]
		}
		sub.attrs[name] = filtered
	}
	return sub, nil
}
