package predicate

import "github.com/katalvlaran/wspplanner/assignment"

// assignmentDependent is valid iff A[x] ∉ U1 OR A[y] ∈ U2, tolerant of
// either side being unset: an unset x cannot yet be known to be in U1, and
// an unset y cannot yet be known to be in U2, so both leave the predicate
// satisfied until both steps are assigned.
type assignmentDependent struct {
	base
	x, y   int
	u1, u2 []int
}

// AssignmentDependent constructs an assignment-dependent(x,y,U1,U2)
// predicate (§3, non-ui-class, weight +5).
func AssignmentDependent(x, y int, u1, u2 []int) Scoped {
	return &assignmentDependent{
		base: base{scope: []int{x, y}, class: NonUI, weight: 5},
		x:    x, y: y,
		u1: append([]int(nil), u1...),
		u2: append([]int(nil), u2...),
	}
}

func (p *assignmentDependent) Eval(a assignment.Assignment) bool {
	ax, ay := a.Get(p.x), a.Get(p.y)

	return ax == assignment.UNSET || ay == assignment.UNSET || !containsInt(p.u1, ax) || containsInt(p.u2, ay)
}

func (p *assignmentDependent) EvalAt(a assignment.Assignment, s int) bool {
	if !p.inScope(s) {
		return true
	}

	return p.Eval(a)
}
