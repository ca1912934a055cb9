package predicate

import "github.com/katalvlaran/wspplanner/assignment"

// bod is binding-of-duty: valid iff x or y is unset, or they coincide.
type bod struct {
	base
	x, y int
}

// BoD constructs a bod(x,y) predicate (§3, ui-class, weight +100).
func BoD(x, y int) Scoped {
	return &bod{base: base{scope: []int{x, y}, class: UI, weight: 100}, x: x, y: y}
}

func (p *bod) Eval(a assignment.Assignment) bool {
	ax, ay := a.Get(p.x), a.Get(p.y)

	return ax == assignment.UNSET || ay == assignment.UNSET || ax == ay
}

func (p *bod) EvalAt(a assignment.Assignment, s int) bool {
	if !p.inScope(s) {
		return true
	}

	return p.Eval(a)
}
