// Package graphmetrics computes whole-graph topology metrics. The
// cover metrics report runs it over every cluster's induced subgraph
// and merges the values per metric name.
package graphmetrics

import (
	"github.com/dd0wney/cluso-covermetrics/pkg/graph"
)

// Metric names as they appear in reports.
const (
	NameDensity             = "Density"
	NameAverageDegree       = "Average Degree"
	NameClusteringCoeff     = "Clustering Coefficient"
	NameDiameter            = "Diameter"
	NameConnectedComponents = "Connected Components"
)

// Compute returns every graph metric keyed by name.
func Compute(g *graph.Graph) map[string]float64 {
	return map[string]float64{
		NameDensity:             Density(g),
		NameAverageDegree:       AverageDegree(g),
		NameClusteringCoeff:     ClusteringCoefficient(g),
		NameDiameter:            float64(Diameter(g)),
		NameConnectedComponents: float64(ConnectedComponents(g)),
	}
}

// Density returns the edge count relative to the maximum possible for
// an undirected simple graph, 2m / (n * (n-1)). Graphs with fewer than
// two vertices have density 0.
func Density(g *graph.Graph) float64 {
	n := g.VertexCount()
	if n < 2 {
		return 0
	}
	return 2.0 * float64(g.EdgeCount()) / (float64(n) * float64(n-1))
}

// AverageDegree returns the mean vertex degree, self-loops counted
// twice.
func AverageDegree(g *graph.Graph) float64 {
	n := g.VertexCount()
	if n == 0 {
		return 0
	}
	return 2.0 * float64(g.EdgeCount()) / float64(n)
}

// neighborSets builds the distinct-neighbor set of every vertex,
// self-loops excluded.
func neighborSets(g *graph.Graph) []map[int]bool {
	sets := make([]map[int]bool, g.VertexCount())
	for v := 0; v < g.VertexCount(); v++ {
		sets[v] = make(map[int]bool)
	}
	for _, e := range g.Edges() {
		if e.Source == e.Target {
			continue
		}
		sets[e.Source][e.Target] = true
		sets[e.Target][e.Source] = true
	}
	return sets
}

// ClusteringCoefficient returns the mean local clustering coefficient:
// per vertex, the fraction of its neighbor pairs that are themselves
// connected, 0 for vertices with fewer than two neighbors.
func ClusteringCoefficient(g *graph.Graph) float64 {
	n := g.VertexCount()
	if n == 0 {
		return 0
	}

	sets := neighborSets(g)
	total := 0.0
	for v := 0; v < n; v++ {
		neighbors := make([]int, 0, len(sets[v]))
		for u := range sets[v] {
			neighbors = append(neighbors, u)
		}
		if len(neighbors) < 2 {
			continue
		}

		triangles := 0
		for i := 0; i < len(neighbors); i++ {
			for j := i + 1; j < len(neighbors); j++ {
				if sets[neighbors[i]][neighbors[j]] {
					triangles++
				}
			}
		}
		possible := len(neighbors) * (len(neighbors) - 1) / 2
		total += float64(triangles) / float64(possible)
	}
	return total / float64(n)
}

// bfsDistances returns the hop distance from start to every reachable
// vertex.
func bfsDistances(sets []map[int]bool, start int) map[int]int {
	dist := map[int]int{start: 0}
	queue := []int{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for u := range sets[v] {
			if _, seen := dist[u]; !seen {
				dist[u] = dist[v] + 1
				queue = append(queue, u)
			}
		}
	}
	return dist
}

// Diameter returns the longest shortest path between any two mutually
// reachable vertices; disconnected pairs are ignored, so the result is
// the largest component-local eccentricity.
func Diameter(g *graph.Graph) int {
	sets := neighborSets(g)
	diameter := 0
	for v := 0; v < g.VertexCount(); v++ {
		for _, d := range bfsDistances(sets, v) {
			if d > diameter {
				diameter = d
			}
		}
	}
	return diameter
}

// ConnectedComponents returns the number of connected components,
// isolated vertices included.
func ConnectedComponents(g *graph.Graph) int {
	sets := neighborSets(g)
	visited := make([]bool, g.VertexCount())
	components := 0
	for v := 0; v < g.VertexCount(); v++ {
		if visited[v] {
			continue
		}
		components++
		queue := []int{v}
		visited[v] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for u := range sets[cur] {
				if !visited[u] {
					visited[u] = true
					queue = append(queue, u)
				}
			}
		}
	}
	return components
}
