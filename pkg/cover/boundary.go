package cover

// BoundaryEdges returns, per cluster, the indices of edges with exactly
// one endpoint inside that cluster, in graph edge order. The result is
// computed once per cover and cached; every metric shares it.
//
// Classification is cluster-local: an edge between two vertices of an
// overlapping region is internal to every cluster containing both
// endpoints and a boundary edge of every cluster containing exactly
// one.
func (c *Cover) BoundaryEdges() [][]int {
	c.indexEdges()
	return c.boundary
}

// InternalEdges returns, per cluster, the indices of edges with both
// endpoints inside that cluster, in graph edge order. Built in the same
// pass as BoundaryEdges.
func (c *Cover) InternalEdges() [][]int {
	c.indexEdges()
	return c.internal
}

// indexEdges classifies every edge against every cluster touching one
// of its endpoints. Only the clusters in the endpoints' membership
// lists are tested, so the cost is O(E * avg membership), not O(E * k).
func (c *Cover) indexEdges() {
	if c.boundary != nil {
		return
	}

	k := len(c.clusters)
	boundary := make([][]int, k)
	internal := make([][]int, k)

	for idx, e := range c.g.Edges() {
		for _, i := range c.membership[e.Source] {
			if c.Contains(i, e.Target) {
				internal[i] = append(internal[i], idx)
			} else {
				boundary[i] = append(boundary[i], idx)
			}
		}
		for _, i := range c.membership[e.Target] {
			if !c.Contains(i, e.Source) {
				boundary[i] = append(boundary[i], idx)
			}
			// both-endpoint edges were already recorded from the source side
		}
	}

	c.boundary = boundary
	c.internal = internal
}
