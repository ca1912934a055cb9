package backjump

import (
	"github.com/katalvlaran/wspplanner/assignment"
	"github.com/katalvlaran/wspplanner/predicate"
)

// Option configures a Generator at construction time.
type Option func(*Generator)

// WithOnStep installs an observer invoked after every assign+evaluate
// attempt, before the generator decides whether to descend or retry.
// ok reports whether the evaluation held. Used by service to stream
// search progress over a websocket without entangling the generator
// with any transport concern.
func WithOnStep(fn func(depth, step, user int, ok bool)) Option {
	return func(g *Generator) { g.onStep = fn }
}

// Generator is the conflict-directed back-jumping search of §4.5: a
// depth-first traversal of ord, one authorized user per step, with
// per-depth conflict sets that let a dead end skip straight back to the
// deepest step actually responsible for it instead of the immediately
// preceding one.
//
// A Generator is a manual coroutine: Next resumes the search exactly
// where the previous call left it (retreated one step past the last
// emission), grounded on dfs.DFS's explicit-cursor traversal rather
// than language-level recursion, so the search can be paused, observed,
// and resumed one solution at a time.
type Generator struct {
	a      assignment.Assignment
	preds  predicate.Set
	ord    []int
	pos    map[int]int // step id -> position in ord
	auth   [][]int     // auth[i] = authorization list for ord[i]
	cursor []int       // cursor[i] = index into auth[i], -1 before first try
	conf   []map[int]struct{}

	i       int
	emptyOK bool // ord is empty: emit the vacuous solution exactly once
	done    bool

	onStep func(depth, step, user int, ok bool)
}

// New builds a Generator over a fixed exploration order ord, evaluating
// preds incrementally after every assignment. auth maps each step in
// ord to its authorized users, explored in the given slice order. a is
// the assignment buffer the generator assigns into and emits by
// reference; the caller owns it and must not mutate it between calls to
// Next while relying on its contents.
func New(a assignment.Assignment, preds predicate.Set, ord []int, auth map[int][]int, opts ...Option) *Generator {
	n := len(ord)
	g := &Generator{
		a:      a,
		preds:  preds,
		ord:    append([]int(nil), ord...),
		pos:    make(map[int]int, n),
		auth:   make([][]int, n),
		cursor: make([]int, n),
		conf:   make([]map[int]struct{}, n),
	}
	for idx, s := range ord {
		g.pos[s] = idx
		g.auth[idx] = append([]int(nil), auth[s]...)
		g.cursor[idx] = -1
		g.conf[idx] = make(map[int]struct{})
	}
	for _, o := range opts {
		o(g)
	}

	return g
}

// Assignment exposes the generator's working buffer. Valid to read only
// immediately after Next returns true; the buffer is mutated in place
// on every subsequent call.
func (g *Generator) Assignment() assignment.Assignment { return g.a }

// Next advances the search to the next complete assignment over ord and
// returns true, or returns false once the search space is exhausted.
// On the final false, the assignment buffer holds all-UNSET for ord.
func (g *Generator) Next() bool {
	if g.done {
		return false
	}
	if len(g.ord) == 0 {
		if g.emptyOK {
			g.done = true

			return false
		}
		g.emptyOK = true

		return true
	}

	for {
		i := g.i
		step := g.ord[i]
		g.cursor[i]++
		if g.cursor[i] >= len(g.auth[i]) {
			_ = g.a.Unset(step)
			g.cursor[i] = -1
			if !g.backtrack() {
				g.done = true

				return false
			}
			continue
		}

		user := g.auth[i][g.cursor[i]]
		_ = g.a.Set(step, user)
		ok, culprit, hasCulprit := g.preds.EvalIncremental(g.a, step, g.pos)
		if g.onStep != nil {
			g.onStep(i, step, user, ok)
		}
		if ok {
			g.i++
			if g.i == len(g.ord) {
				g.i = len(g.ord) - 1

				return true
			}
			continue
		}
		if hasCulprit {
			g.conf[i][culprit] = struct{}{}
		}
		// Err(None): no identifiable culprit; stay and advance at the
		// same depth on the next loop iteration.
	}
}

// backtrack implements "backtrack with back-jump" (§4.5): depth i just
// exhausted its authorization options. Reports false when the search is
// fully exhausted (jumped past depth 0).
func (g *Generator) backtrack() bool {
	i := g.i
	target := i - 1
	if culprits := g.conf[i]; len(culprits) > 0 {
		j := -1
		for q := range culprits {
			if p, ok := g.pos[q]; ok && p > j {
				j = p
			}
		}
		if j >= 0 {
			target = j
		}
	}

	for k := i - 1; k > target; k-- {
		_ = g.a.Unset(g.ord[k])
		g.cursor[k] = -1
	}
	for k := target; k <= i && k >= 0 && k < len(g.conf); k++ {
		g.conf[k] = make(map[int]struct{})
	}

	if target < 0 {
		return false
	}
	g.i = target

	return true
}
