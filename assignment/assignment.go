package assignment

// UNSET marks a step with no user assigned yet. It is distinguished from
// every valid user id because user ids are non-negative (§3 data model).
const UNSET = -1

// Assignment is a sequence of k signed ints, one per step, where UNSET
// encodes "no user yet". It is the single mutable buffer the planner
// threads through the search; see doc.go for the ownership discipline.
type Assignment []int

// New returns a length-k Assignment with every step UNSET.
func New(k int) Assignment {
	a := make(Assignment, k)
	for i := range a {
		a[i] = UNSET
	}

	return a
}

// Len returns the number of steps.
func (a Assignment) Len() int { return len(a) }

// Get returns the user assigned to step s, or UNSET.
func (a Assignment) Get(s int) int {
	if s < 0 || s >= len(a) {
		return UNSET
	}

	return a[s]
}

// Set assigns user u to step s in place.
func (a Assignment) Set(s, u int) error {
	if s < 0 || s >= len(a) {
		return ErrStepOutOfRange
	}
	a[s] = u

	return nil
}

// Unset restores step s to UNSET in place.
func (a Assignment) Unset(s int) error {
	if s < 0 || s >= len(a) {
		return ErrStepOutOfRange
	}
	a[s] = UNSET

	return nil
}

// IsComplete reports whether every step has a non-UNSET user.
func (a Assignment) IsComplete() bool {
	for _, u := range a {
		if u == UNSET {
			return false
		}
	}

	return true
}

// Clone returns an independent copy, for callers preserving an outer view
// across a nested call (§5 shared-resource policy, §9 mutable-shared-state).
func (a Assignment) Clone() Assignment {
	c := make(Assignment, len(a))
	copy(c, a)

	return c
}

// Equal reports whether two assignments have identical length and values;
// used by tests asserting the assignment-restore invariant (§8 property 3).
func (a Assignment) Equal(other Assignment) bool {
	if len(a) != len(other) {
		return false
	}
	for i, v := range a {
		if other[i] != v {
			return false
		}
	}

	return true
}
