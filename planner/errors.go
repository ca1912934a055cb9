package planner

import "errors"

// ErrInternalInvariant signals a breach of an assignment-restore or
// matcher-size invariant (§7): a defect in the search itself, never a
// consequence of caller-supplied data, so it is fatal and surfaced as a
// panic rather than an error return.
var ErrInternalInvariant = errors.New("planner: internal invariant violated")
