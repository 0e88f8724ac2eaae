package cover

// OmegaIndex scores the agreement between two covers' membership
// structures over the same vertex range: the fraction of vertex pairs
// placed together in the same number of clusters by both covers,
// corrected for chance agreement. 1 means identical pair structure,
// 0 chance-level agreement; negative values mean worse than chance.
func OmegaIndex(a, b [][]int) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	pairs := n * (n - 1) / 2
	if pairs == 0 {
		return 1.0
	}

	// sharedClusters counts the clusters containing both u and v;
	// membership lists are sorted, so walk them in step.
	sharedClusters := func(m [][]int, u, v int) int {
		mu, mv := m[u], m[v]
		shared, i, j := 0, 0, 0
		for i < len(mu) && j < len(mv) {
			switch {
			case mu[i] == mv[j]:
				shared++
				i++
				j++
			case mu[i] < mv[j]:
				i++
			default:
				j++
			}
		}
		return shared
	}

	agreements := 0
	countsA := make(map[int]int) // shared-cluster level -> pair count
	countsB := make(map[int]int)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			ta := sharedClusters(a, u, v)
			tb := sharedClusters(b, u, v)
			if ta == tb {
				agreements++
			}
			countsA[ta]++
			countsB[tb]++
		}
	}

	observed := float64(agreements) / float64(pairs)
	expected := 0.0
	for level, ca := range countsA {
		expected += float64(ca) * float64(countsB[level])
	}
	expected /= float64(pairs) * float64(pairs)

	if expected == 1.0 {
		// both covers agree on every pair by construction
		return 1.0
	}
	return (observed - expected) / (1.0 - expected)
}

// CompareOmega returns the omega index between this cover and another.
// The second value is false when either cover is absent or the covers
// span different graphs, which is "not comparable" rather than an
// error.
func (c *Cover) CompareOmega(other *Cover) (float64, bool) {
	if c == nil || other == nil {
		return 0, false
	}
	if c.g.VertexCount() != other.g.VertexCount() {
		return 0, false
	}
	return OmegaIndex(c.membership, other.membership), true
}
