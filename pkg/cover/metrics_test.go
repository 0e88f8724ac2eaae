package cover

import (
	"math"
	"testing"
)

func TestFourCycleScenario(t *testing.T) {
	// 4-cycle with clusters {0,1} and {2,3}: each cluster has one
	// internal edge and two boundary edges
	_, c := fourCycle(t)

	expansion, err := c.Expansion(Unweighted())
	if err != nil {
		t.Fatalf("Expansion failed: %v", err)
	}
	if expansion[0] != 1.0 || expansion[1] != 1.0 {
		t.Errorf("Expected expansion [1 1], got %v", expansion)
	}

	cutRatio := c.CutRatio(false)
	if cutRatio[0] != 0.5 || cutRatio[1] != 0.5 {
		t.Errorf("Expected cut ratio [0.5 0.5], got %v", cutRatio)
	}

	conductance, err := c.Conductance(Unweighted(), false)
	if err != nil {
		t.Fatalf("Conductance failed: %v", err)
	}
	if conductance[0] != 0.5 || conductance[1] != 0.5 {
		t.Errorf("Expected conductance [0.5 0.5], got %v", conductance)
	}

	separability, err := c.Separability(Unweighted(), false)
	if err != nil {
		t.Fatalf("Separability failed: %v", err)
	}
	if separability[0] != 0.5 || separability[1] != 0.5 {
		t.Errorf("Expected separability [0.5 0.5], got %v", separability)
	}
}

func TestWholeGraphSingleCluster(t *testing.T) {
	// One cluster holding every vertex: no boundary edges anywhere
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	c, err := FromClusters(g, [][]int{{0, 1, 2, 3}})
	if err != nil {
		t.Fatalf("FromClusters failed: %v", err)
	}

	expansion, err := c.Expansion(Unweighted())
	if err != nil {
		t.Fatalf("Expansion failed: %v", err)
	}
	if expansion[0] != 0 {
		t.Errorf("Expected expansion 0, got %v", expansion[0])
	}

	// size(0) == n makes the cut ratio denominator zero
	if got := c.CutRatio(false)[0]; got != 0 {
		t.Errorf("Expected cut ratio 0, got %v", got)
	}
	if got := c.CutRatio(true)[0]; !math.IsNaN(got) {
		t.Errorf("Expected cut ratio NaN under allowNaN, got %v", got)
	}

	conductance, err := c.Conductance(Unweighted(), false)
	if err != nil {
		t.Fatalf("Conductance failed: %v", err)
	}
	if conductance[0] != 0 {
		t.Errorf("Expected conductance 0, got %v", conductance[0])
	}

	separability, err := c.Separability(Unweighted(), false)
	if err != nil {
		t.Fatalf("Separability failed: %v", err)
	}
	if separability[0] != 0 {
		t.Errorf("Expected separability 0 (policy), got %v", separability[0])
	}

	separability, err = c.Separability(Unweighted(), true)
	if err != nil {
		t.Fatalf("Separability failed: %v", err)
	}
	if !math.IsNaN(separability[0]) {
		t.Errorf("Expected separability NaN under allowNaN, got %v", separability[0])
	}
}

func TestConductance_NoBoundaryPolicies(t *testing.T) {
	// Two disjoint triangles, each its own cluster: no boundary edges,
	// but internal weight keeps the denominator positive
	g := buildGraph(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}})
	c, err := FromClusters(g, [][]int{{0, 1, 2}, {3, 4, 5}})
	if err != nil {
		t.Fatalf("FromClusters failed: %v", err)
	}

	for _, allowNaN := range []bool{false, true} {
		conductance, err := c.Conductance(Unweighted(), allowNaN)
		if err != nil {
			t.Fatalf("Conductance failed: %v", err)
		}
		// denominator 2*3+0 > 0, so the policy never kicks in
		if conductance[0] != 0 || conductance[1] != 0 {
			t.Errorf("allowNaN=%v: expected conductance [0 0], got %v", allowNaN, conductance)
		}
	}
}

func TestConductance_Weighted(t *testing.T) {
	g, c := fourCycle(t)
	if err := g.SetEdgeAttribute("weight", []float64{2, 1, 2, 1}); err != nil {
		t.Fatalf("SetEdgeAttribute failed: %v", err)
	}

	conductance, err := c.Conductance(NamedWeights("weight"), false)
	if err != nil {
		t.Fatalf("Conductance failed: %v", err)
	}

	// Cluster 0: internal edge (0,1) weight 2, boundary edges (1,2)
	// and (3,0) weights 1+1 -> 2 / (2*2 + 2) = 1/3
	want := 1.0 / 3.0
	if math.Abs(conductance[0]-want) > 1e-12 {
		t.Errorf("Expected weighted conductance %v, got %v", want, conductance[0])
	}
}

func TestConductance_ExplicitWeights(t *testing.T) {
	g, c := fourCycle(t)

	conductance, err := c.Conductance(ExplicitWeights([]float64{2, 1, 2, 1}), false)
	if err != nil {
		t.Fatalf("Conductance failed: %v", err)
	}

	want := 1.0 / 3.0
	if math.Abs(conductance[0]-want) > 1e-12 {
		t.Errorf("Expected conductance %v, got %v", want, conductance[0])
	}

	// The synthetic attribute must not leak
	if names := g.EdgeAttributeNames(); len(names) != 0 {
		t.Errorf("Expected no attributes after computation, got %v", names)
	}
}

func TestNormalizedCut_FourCycle(t *testing.T) {
	_, c := fourCycle(t)

	ncut, err := c.NormalizedCut(Unweighted(), false)
	if err != nil {
		t.Fatalf("NormalizedCut failed: %v", err)
	}

	// conductance 0.5 plus 2 / (2*(4-1) + 2) = 0.5 + 0.25
	want := 0.75
	if math.Abs(ncut[0]-want) > 1e-12 {
		t.Errorf("Expected normalized cut %v, got %v", want, ncut[0])
	}
}

func TestFractionOverMedianDegree_Cycle(t *testing.T) {
	// In the 4-cycle every vertex has global degree 2 (median 2) and
	// internal degree 1, so no vertex exceeds the median
	_, c := fourCycle(t)

	fomd, err := c.FractionOverMedianDegree(Unweighted())
	if err != nil {
		t.Fatalf("FractionOverMedianDegree failed: %v", err)
	}
	if fomd[0] != 0 || fomd[1] != 0 {
		t.Errorf("Expected fomd [0 0], got %v", fomd)
	}
}

func TestFractionOverMedianDegree_DenseCluster(t *testing.T) {
	// Triangle 0-1-2 plus pendants 3 and 4. Global degrees 3,2,3,1,1
	// give median 2; internal degrees never exceed it in either
	// cluster ({0,1,2}: 2,2,2; {0,2,3,4}: 2,2,1,1).
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {2, 4}})
	c, err := FromClusters(g, [][]int{{0, 1, 2}, {0, 2, 3, 4}})
	if err != nil {
		t.Fatalf("FromClusters failed: %v", err)
	}

	fomd, err := c.FractionOverMedianDegree(Unweighted())
	if err != nil {
		t.Fatalf("FractionOverMedianDegree failed: %v", err)
	}
	if fomd[0] != 0 {
		t.Errorf("Expected fomd 0 for cluster 0, got %v", fomd[0])
	}
	if fomd[1] != 0 {
		t.Errorf("Expected fomd 0 for cluster 1, got %v", fomd[1])
	}
}

func TestFractionOverMedianDegree_Weighted(t *testing.T) {
	// Heavy internal edge pushes cluster-0 vertices over the global
	// weighted median
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	g.SetEdgeAttribute("weight", []float64{10, 1, 1, 1})
	c, err := FromClusters(g, [][]int{{0, 1}, {2, 3}})
	if err != nil {
		t.Fatalf("FromClusters failed: %v", err)
	}

	// Global strengths: 0:11, 1:11, 2:2, 3:2 -> median 6.5. Internal
	// weighted degrees: cluster 0 -> 10,10 (both over); cluster 1 -> 1,1.
	fomd, err := c.FractionOverMedianDegree(NamedWeights("weight"))
	if err != nil {
		t.Fatalf("FractionOverMedianDegree failed: %v", err)
	}
	if fomd[0] != 1.0 {
		t.Errorf("Expected fomd 1.0 for cluster 0, got %v", fomd[0])
	}
	if fomd[1] != 0 {
		t.Errorf("Expected fomd 0 for cluster 1, got %v", fomd[1])
	}
}

func TestMetricResultLengths(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	c, err := FromClusters(g, [][]int{{0, 1}, {2, 3}, {4}})
	if err != nil {
		t.Fatalf("FromClusters failed: %v", err)
	}

	checks := map[string]func() ([]float64, error){
		"fomd":           func() ([]float64, error) { return c.FractionOverMedianDegree(Unweighted()) },
		"expansion":      func() ([]float64, error) { return c.Expansion(Unweighted()) },
		"cut_ratio":      func() ([]float64, error) { return c.CutRatio(false), nil },
		"conductance":    func() ([]float64, error) { return c.Conductance(Unweighted(), false) },
		"separability":   func() ([]float64, error) { return c.Separability(Unweighted(), false) },
		"normalized_cut": func() ([]float64, error) { return c.NormalizedCut(Unweighted(), false) },
		"max_odf":        func() ([]float64, error) { return c.MaximumOutDegreeFraction(nil, Unweighted()) },
		"avg_odf":        func() ([]float64, error) { return c.AverageOutDegreeFraction(nil, Unweighted()) },
		"flake_odf":      func() ([]float64, error) { return c.FlakeOutDegreeFraction(nil, Unweighted()) },
	}
	for name, fn := range checks {
		results, err := fn()
		if err != nil {
			t.Fatalf("%s failed: %v", name, err)
		}
		if len(results) != c.Len() {
			t.Errorf("%s: expected %d results, got %d", name, c.Len(), len(results))
		}
	}
}

func TestODFVariants_FourCycle(t *testing.T) {
	// Every vertex has one internal and one external edge: ODF 0.5
	_, c := fourCycle(t)

	odf, err := c.OutDegreeFraction(Unweighted(), false)
	if err != nil {
		t.Fatalf("OutDegreeFraction failed: %v", err)
	}

	maxODF, err := c.MaximumOutDegreeFraction(odf, Unweighted())
	if err != nil {
		t.Fatalf("MaximumOutDegreeFraction failed: %v", err)
	}
	if maxODF[0] != 0.5 || maxODF[1] != 0.5 {
		t.Errorf("Expected max ODF [0.5 0.5], got %v", maxODF)
	}

	avgODF, err := c.AverageOutDegreeFraction(odf, Unweighted())
	if err != nil {
		t.Fatalf("AverageOutDegreeFraction failed: %v", err)
	}
	if avgODF[0] != 0.5 || avgODF[1] != 0.5 {
		t.Errorf("Expected average ODF [0.5 0.5], got %v", avgODF)
	}

	// 0.5 does not exceed the 1/2 threshold
	flakeODF, err := c.FlakeOutDegreeFraction(odf, Unweighted())
	if err != nil {
		t.Fatalf("FlakeOutDegreeFraction failed: %v", err)
	}
	if flakeODF[0] != 0 || flakeODF[1] != 0 {
		t.Errorf("Expected flake ODF [0 0], got %v", flakeODF)
	}
}

func TestFlakeODF_OverThreshold(t *testing.T) {
	// Vertex 1 has two external edges and one internal: ODF 2/3 > 1/2
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {1, 3}})
	c, err := FromClusters(g, [][]int{{0, 1}, {2, 3}})
	if err != nil {
		t.Fatalf("FromClusters failed: %v", err)
	}

	flakeODF, err := c.FlakeOutDegreeFraction(nil, Unweighted())
	if err != nil {
		t.Fatalf("FlakeOutDegreeFraction failed: %v", err)
	}
	if flakeODF[0] != 0.5 {
		t.Errorf("Expected flake ODF 0.5 for cluster 0 (vertex 1 only), got %v", flakeODF[0])
	}
	// Vertices 2 and 3 have no internal edges: ODF 1 each
	if flakeODF[1] != 1.0 {
		t.Errorf("Expected flake ODF 1.0 for cluster 1, got %v", flakeODF[1])
	}
}
