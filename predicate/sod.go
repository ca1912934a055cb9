package predicate

import "github.com/katalvlaran/wspplanner/assignment"

// sod is separation-of-duty: valid iff x or y is unset, or they differ.
type sod struct {
	base
	x, y int
}

// SoD constructs a sod(x,y) predicate (§3, ui-class, weight +1).
func SoD(x, y int) Scoped {
	return &sod{base: base{scope: []int{x, y}, class: UI, weight: 1}, x: x, y: y}
}

func (p *sod) Eval(a assignment.Assignment) bool {
	ax, ay := a.Get(p.x), a.Get(p.y)

	return ax == assignment.UNSET || ay == assignment.UNSET || ax != ay
}

func (p *sod) EvalAt(a assignment.Assignment, s int) bool {
	if !p.inScope(s) {
		return true
	}

	return p.Eval(a)
}
