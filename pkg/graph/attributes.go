package graph

import "sort"

// SetEdgeAttribute attaches a named float64 array parallel to the edge
// list, replacing any existing array of the same name.
func (g *Graph) SetEdgeAttribute(name string, values []float64) error {
	if len(values) != len(g.edges) {
		return &GraphError{Op: "SetEdgeAttribute", Entity: "attribute", Name: name, Cause: ErrAttributeLength}
	}
	g.attrs[name] = values
	return nil
}

// EdgeAttribute returns the attribute array for name. The slice is
// shared with the graph and must not be modified.
func (g *Graph) EdgeAttribute(name string) ([]float64, error) {
	values, ok := g.attrs[name]
	if !ok {
		return nil, &GraphError{Op: "EdgeAttribute", Entity: "attribute", Name: name, Cause: ErrAttributeNotFound}
	}
	return values, nil
}

// HasEdgeAttribute reports whether an attribute named name is attached.
func (g *Graph) HasEdgeAttribute(name string) bool {
	_, ok := g.attrs[name]
	return ok
}

// RemoveEdgeAttribute detaches the named attribute. Removing an absent
// attribute is a no-op.
func (g *Graph) RemoveEdgeAttribute(name string) {
	delete(g.attrs, name)
}

// EdgeAttributeNames returns the attached attribute names in sorted
// order.
func (g *Graph) EdgeAttributeNames() []string {
	names := make([]string, 0, len(g.attrs))
	for name := range g.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
