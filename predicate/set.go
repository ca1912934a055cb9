package predicate

import (
	"sort"

	"github.com/katalvlaran/wspplanner/assignment"
)

// Scoped is one constraint: a boolean test over an assignment plus an
// ordered scope of step indices used for back-jumping (§4.1).
type Scoped interface {
	// Eval evaluates φ(A) over the whole assignment.
	Eval(a assignment.Assignment) bool
	// EvalAt returns true immediately if s is outside this predicate's
	// scope (it cannot have been affected by setting step s); otherwise
	// it returns Eval(a).
	EvalAt(a assignment.Assignment, s int) bool
	// Prev returns the step immediately preceding s in scope, if any.
	Prev(s int) (int, bool)
	// Scope returns the ordered step indices this predicate depends on.
	Scope() []int
	// Classify reports ui vs non-ui (§3).
	Classify() Class
	// Weight reports this predicate's contribution to predweight (§3).
	Weight() int
}

// Set is a collection of scoped predicates, evaluated in registration
// order (§9 Open Question (c) resolves ties on that order).
type Set struct {
	preds []Scoped
}

// NewSet builds a Set from the given predicates, in registration order.
func NewSet(preds ...Scoped) Set {
	return Set{preds: append([]Scoped(nil), preds...)}
}

// Len reports the number of predicates in the set.
func (s Set) Len() int { return len(s.preds) }

// Preds returns an independent copy of the registered predicates.
func (s Set) Preds() []Scoped { return append([]Scoped(nil), s.preds...) }

// Eval is the logical AND of every predicate's Eval (§4.2 mode 1).
func (s Set) Eval(a assignment.Assignment) bool {
	for _, p := range s.preds {
		if !p.Eval(a) {
			return false
		}
	}

	return true
}

// EvalIncremental is the logical AND of EvalAt(a, step) over every
// predicate (§4.2 mode 2). On any failure it collects Prev(step) from the
// failing predicate and keeps only the one whose step sits latest in pos,
// a map from step id to its position in the generator's exploration order
// (§4.5) — the max-culprit rule. hasCulprit is false when every failure's
// Prev was empty or outside pos (Err(None) in the spec's notation).
func (s Set) EvalIncremental(a assignment.Assignment, step int, pos map[int]int) (ok bool, culprit int, hasCulprit bool) {
	ok = true
	bestPos := -1
	for _, p := range s.preds {
		if p.EvalAt(a, step) {
			continue
		}
		ok = false
		prev, has := p.Prev(step)
		if !has {
			continue
		}
		prevPos, known := pos[prev]
		if !known {
			continue
		}
		if prevPos > bestPos {
			bestPos = prevPos
			culprit = prev
			hasCulprit = true
		}
	}

	return ok, culprit, hasCulprit
}

// ByClass returns the subset of predicates with the given classification,
// used by the planner to split P_ui from P_nonui.
func (s Set) ByClass(c Class) Set {
	out := make([]Scoped, 0, len(s.preds))
	for _, p := range s.preds {
		if p.Classify() == c {
			out = append(out, p)
		}
	}

	return Set{preds: out}
}

// NonPatternSteps returns N (§3): the sorted union of scopes of every
// non-ui predicate in the set.
func (s Set) NonPatternSteps() []int {
	seen := make(map[int]struct{})
	for _, p := range s.preds {
		if p.Classify() != NonUI {
			continue
		}
		for _, st := range p.Scope() {
			seen[st] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for st := range seen {
		out = append(out, st)
	}
	sort.Ints(out)

	return out
}

// WeightAt sums Weight() over every predicate scoped to step, the
// predweight[s] term of §3's priority formula (§9 Open Question (a):
// summed across predicates, not maxed).
func (s Set) WeightAt(step int) int {
	total := 0
	for _, p := range s.preds {
		for _, st := range p.Scope() {
			if st == step {
				total += p.Weight()

				break
			}
		}
	}

	return total
}
