package predicate

import "github.com/katalvlaran/wspplanner/assignment"

// sual: once every step in scope is assigned, if the number of distinct
// users among them is at most limit, every such user must be a super-user
// (§3). Partially-assigned scopes trivially hold (§9 "partial assignments
// conservatively").
type sual struct {
	base
	limit      int
	superUsers []int
}

// SUAL constructs a sual(S, L, SU) predicate (§3, non-ui-class, weight +5
// — treated as an assignment-dependent-class weight, as SPEC_FULL.md's
// predicate module notes, since it inspects concrete user identities like
// wang-li).
func SUAL(steps []int, limit int, superUsers []int) Scoped {
	return &sual{
		base:       base{scope: append([]int(nil), steps...), class: NonUI, weight: 5},
		limit:      limit,
		superUsers: append([]int(nil), superUsers...),
	}
}

func (p *sual) Eval(a assignment.Assignment) bool {
	users := make(map[int]struct{}, len(p.scope))
	for _, s := range p.scope {
		u := a.Get(s)
		if u == assignment.UNSET {
			return true // not all steps assigned yet
		}
		users[u] = struct{}{}
	}
	if len(users) > p.limit {
		return true
	}
	for u := range users {
		if !containsInt(p.superUsers, u) {
			return false
		}
	}

	return true
}

func (p *sual) EvalAt(a assignment.Assignment, s int) bool {
	if !p.inScope(s) {
		return true
	}

	return p.Eval(a)
}
