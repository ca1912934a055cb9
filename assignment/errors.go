package assignment

import "errors"

var (
	// ErrStepOutOfRange indicates a step index outside [0, Len()).
	ErrStepOutOfRange = errors.New("assignment: step index out of range")

	// ErrNegativeSize indicates a negative k was requested for New.
	ErrNegativeSize = errors.New("assignment: negative size")

	// ErrSelfLoop indicates a DAG edge whose parent equals its child.
	ErrSelfLoop = errors.New("assignment: self-loop not allowed in DAG")

	// ErrNodeOutOfRange indicates a DAG node index outside [0, N()).
	ErrNodeOutOfRange = errors.New("assignment: node index out of range")

	// ErrInternalInvariant signals a breach of a DAG invariant that
	// construction should have made impossible (e.g. a traversal over a
	// vertex NewDAG is supposed to have already created).
	ErrInternalInvariant = errors.New("assignment: internal invariant violated")
)
