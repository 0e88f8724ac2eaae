package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrVertexOutOfRange  = errors.New("vertex out of range")
	ErrEdgeOutOfRange    = errors.New("edge out of range")
	ErrAttributeNotFound = errors.New("edge attribute not found")
	ErrAttributeLength   = errors.New("attribute length does not match edge count")
	ErrNegativeVertices  = errors.New("vertex count must be non-negative")
)

// GraphError provides structured error information for graph operations.
type GraphError struct {
	Op     string // Operation that failed (e.g., "AddEdge", "Subgraph")
	Entity string // Entity type (e.g., "vertex", "edge", "attribute")
	Name   string // Attribute name (for attribute operations)
	Index  int    // Entity index (if applicable)
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.Name, e.Cause)
	}
	return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.Index, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}
