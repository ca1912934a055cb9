package predicate

import "github.com/katalvlaran/wspplanner/assignment"

// atmost caps the number of distinct assigned users across a step set.
type atmost struct {
	base
	m int
}

// AtMost constructs an at-most(m, steps) predicate (§3, ui-class, each
// member step contributes weight +100 via base.scope/WeightAt). m must be
// positive; a zero or negative bound is a construction error the loader
// surfaces, not a search-time failure, so AtMost panics on it like the
// teacher's builder options panic on malformed constructor arguments
// (see SPEC_FULL.md AMBIENT STACK, "Errors").
func AtMost(m int, steps []int) Scoped {
	if m <= 0 {
		panic(ErrBadLimit)
	}
	if len(steps) == 0 {
		panic(ErrEmptyScope)
	}

	return &atmost{base: base{scope: append([]int(nil), steps...), class: UI, weight: 100}, m: m}
}

func (p *atmost) Eval(a assignment.Assignment) bool {
	seen := make(map[int]struct{}, len(p.scope))
	for _, s := range p.scope {
		u := a.Get(s)
		if u == assignment.UNSET {
			continue
		}
		seen[u] = struct{}{}
	}

	return len(seen) <= p.m
}

func (p *atmost) EvalAt(a assignment.Assignment, s int) bool {
	if !p.inScope(s) {
		return true
	}

	return p.Eval(a)
}
