package matching

import "errors"

var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Kuhn.
	ErrNilGraph = errors.New("matching: graph is nil")

	// ErrVertexNotFound indicates a left or right vertex id is missing
	// from the graph.
	ErrVertexNotFound = errors.New("matching: vertex not found")
)
