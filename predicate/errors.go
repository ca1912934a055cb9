package predicate

import "errors"

var (
	// ErrEmptyScope indicates a predicate was constructed with an empty scope.
	ErrEmptyScope = errors.New("predicate: empty scope")

	// ErrBadLimit indicates a non-positive bound was supplied to at-most.
	ErrBadLimit = errors.New("predicate: bound must be positive")
)
