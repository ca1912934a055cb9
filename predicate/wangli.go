package predicate

import "github.com/katalvlaran/wspplanner/assignment"

// noGroup marks a user who belongs to none of the predicate's groups.
const noGroup = -1

// wangli requires all assigned users in scope to lie in a single group;
// violated if any two assigned users belong to different groups, or any
// assigned user belongs to no listed group at all (§3).
type wangli struct {
	base
	groups [][]int
}

// WangLi constructs a wang-li(S, G1..Gm) predicate (§3, non-ui-class,
// weight +5).
func WangLi(steps []int, groups [][]int) Scoped {
	gs := make([][]int, len(groups))
	for i, g := range groups {
		gs[i] = append([]int(nil), g...)
	}

	return &wangli{base: base{scope: append([]int(nil), steps...), class: NonUI, weight: 5}, groups: gs}
}

func (p *wangli) groupOf(u int) int {
	for gi, grp := range p.groups {
		if containsInt(grp, u) {
			return gi
		}
	}

	return noGroup
}

func (p *wangli) Eval(a assignment.Assignment) bool {
	first := noGroup - 1 // sentinel: "no assigned user seen yet"
	for _, s := range p.scope {
		u := a.Get(s)
		if u == assignment.UNSET {
			continue
		}
		g := p.groupOf(u)
		if g == noGroup {
			return false
		}
		if first == noGroup-1 {
			first = g
		} else if first != g {
			return false
		}
	}

	return true
}

func (p *wangli) EvalAt(a assignment.Assignment, s int) bool {
	if !p.inScope(s) {
		return true
	}

	return p.Eval(a)
}
