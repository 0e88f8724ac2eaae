package graph

import (
	"errors"
	"testing"
)

// buildCycle creates the 4-cycle 0-1-2-3-0 used across the metric tests
func buildCycle(t *testing.T) *Graph {
	t.Helper()

	g, err := New(4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d, %d) failed: %v", e[0], e[1], err)
		}
	}
	return g
}

func TestNew_NegativeVertices(t *testing.T) {
	_, err := New(-1)
	if !errors.Is(err, ErrNegativeVertices) {
		t.Errorf("Expected ErrNegativeVertices, got %v", err)
	}
}

func TestAddEdge_OutOfRange(t *testing.T) {
	g, _ := New(2)

	if _, err := g.AddEdge(0, 2); !errors.Is(err, ErrVertexOutOfRange) {
		t.Errorf("Expected ErrVertexOutOfRange, got %v", err)
	}
	if _, err := g.AddEdge(-1, 0); !errors.Is(err, ErrVertexOutOfRange) {
		t.Errorf("Expected ErrVertexOutOfRange, got %v", err)
	}
	if g.EdgeCount() != 0 {
		t.Errorf("Expected no edges after failed insert, got %d", g.EdgeCount())
	}
}

func TestDegree_Cycle(t *testing.T) {
	g := buildCycle(t)

	for v := 0; v < 4; v++ {
		deg, err := g.Degree(v)
		if err != nil {
			t.Fatalf("Degree(%d) failed: %v", v, err)
		}
		if deg != 2 {
			t.Errorf("Expected degree 2 for vertex %d, got %d", v, deg)
		}
	}
}

func TestDegree_SelfLoopCountsTwice(t *testing.T) {
	g, _ := New(1)
	g.AddEdge(0, 0)

	deg, err := g.Degree(0)
	if err != nil {
		t.Fatalf("Degree failed: %v", err)
	}
	if deg != 2 {
		t.Errorf("Expected self-loop degree 2, got %d", deg)
	}
}

func TestStrength_Unweighted(t *testing.T) {
	g := buildCycle(t)

	strength, err := g.Strength("")
	if err != nil {
		t.Fatalf("Strength failed: %v", err)
	}
	for v, s := range strength {
		if s != 2.0 {
			t.Errorf("Expected strength 2.0 for vertex %d, got %v", v, s)
		}
	}
}

func TestStrength_Weighted(t *testing.T) {
	g := buildCycle(t)
	if err := g.SetEdgeAttribute("weight", []float64{1, 2, 3, 4}); err != nil {
		t.Fatalf("SetEdgeAttribute failed: %v", err)
	}

	strength, err := g.Strength("weight")
	if err != nil {
		t.Fatalf("Strength failed: %v", err)
	}

	// Vertex 1 touches edges (0,1) and (1,2) with weights 1 and 2
	if strength[1] != 3.0 {
		t.Errorf("Expected strength 3.0 for vertex 1, got %v", strength[1])
	}
	// Vertex 0 touches edges (0,1) and (3,0) with weights 1 and 4
	if strength[0] != 5.0 {
		t.Errorf("Expected strength 5.0 for vertex 0, got %v", strength[0])
	}
}

func TestStrength_MissingAttribute(t *testing.T) {
	g := buildCycle(t)

	if _, err := g.Strength("nope"); !errors.Is(err, ErrAttributeNotFound) {
		t.Errorf("Expected ErrAttributeNotFound, got %v", err)
	}
}

func TestSetEdgeAttribute_LengthMismatch(t *testing.T) {
	g := buildCycle(t)

	err := g.SetEdgeAttribute("weight", []float64{1, 2})
	if !errors.Is(err, ErrAttributeLength) {
		t.Errorf("Expected ErrAttributeLength, got %v", err)
	}
	if g.HasEdgeAttribute("weight") {
		t.Error("Attribute should not be attached after failed set")
	}
}

func TestRemoveEdgeAttribute(t *testing.T) {
	g := buildCycle(t)
	g.SetEdgeAttribute("weight", []float64{1, 1, 1, 1})

	g.RemoveEdgeAttribute("weight")
	if g.HasEdgeAttribute("weight") {
		t.Error("Expected attribute to be removed")
	}

	// Removing twice is a no-op
	g.RemoveEdgeAttribute("weight")
}

func TestNeighbors_Cycle(t *testing.T) {
	g := buildCycle(t)

	neighbors, err := g.Neighbors(0)
	if err != nil {
		t.Fatalf("Neighbors failed: %v", err)
	}
	if len(neighbors) != 2 {
		t.Fatalf("Expected 2 neighbors, got %d", len(neighbors))
	}

	seen := map[int]bool{neighbors[0]: true, neighbors[1]: true}
	if !seen[1] || !seen[3] {
		t.Errorf("Expected neighbors {1, 3}, got %v", neighbors)
	}
}

func TestSubgraph_Induced(t *testing.T) {
	g := buildCycle(t)
	g.SetEdgeAttribute("weight", []float64{1, 2, 3, 4})

	sub, err := g.Subgraph([]int{0, 1})
	if err != nil {
		t.Fatalf("Subgraph failed: %v", err)
	}

	if sub.VertexCount() != 2 {
		t.Errorf("Expected 2 vertices, got %d", sub.VertexCount())
	}
	// Only edge (0,1) survives the induction
	if sub.EdgeCount() != 1 {
		t.Fatalf("Expected 1 edge, got %d", sub.EdgeCount())
	}

	weights, err := sub.EdgeAttribute("weight")
	if err != nil {
		t.Fatalf("EdgeAttribute failed: %v", err)
	}
	if len(weights) != 1 || weights[0] != 1 {
		t.Errorf("Expected carried-over weight [1], got %v", weights)
	}
}

func TestSubgraph_Reindexes(t *testing.T) {
	g := buildCycle(t)

	sub, err := g.Subgraph([]int{2, 3})
	if err != nil {
		t.Fatalf("Subgraph failed: %v", err)
	}

	if sub.EdgeCount() != 1 {
		t.Fatalf("Expected 1 edge, got %d", sub.EdgeCount())
	}
	e, _ := sub.Edge(0)
	if e.Source != 0 || e.Target != 1 {
		t.Errorf("Expected re-indexed edge (0,1), got (%d,%d)", e.Source, e.Target)
	}
}

func TestSubgraph_OutOfRangeVertex(t *testing.T) {
	g := buildCycle(t)

	if _, err := g.Subgraph([]int{0, 9}); !errors.Is(err, ErrVertexOutOfRange) {
		t.Errorf("Expected ErrVertexOutOfRange, got %v", err)
	}
}
