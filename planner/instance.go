package planner

import (
	"math"
	"sort"

	"github.com/katalvlaran/wspplanner/predicate"
)

// config holds the tunable priority weights (§3, §9 Open Question (a)).
type config struct {
	unauthWeight float64
	predWeight   float64
}

func defaultConfig() config {
	return config{unauthWeight: 0.5, predWeight: 2.5}
}

// Option configures an Instance's priority computation at construction
// time, following the teacher's BuilderOption idiom.
type Option func(*config)

// WithPriorityWeights overrides the two empirical constants in
// prio[s] = round(unauthWeight*unauth[s] + predWeight*predweight[s]).
func WithPriorityWeights(unauthWeight, predWeight float64) Option {
	return func(c *config) {
		c.unauthWeight = unauthWeight
		c.predWeight = predWeight
	}
}

// Instance is a fully loaded, immutable WSP instance: K steps, N users,
// a per-step authorization list, the full predicate set, and the
// priority each step was assigned at load time (§3 "auth, the
// predicate set, and priorities are built once by the loader and are
// immutable").
type Instance struct {
	K          int
	N          int
	Auth       [][]int
	Preds      predicate.Set
	Priorities []int
}

// NewInstance builds an Instance and computes every step's priority
// once, per §3's formula.
func NewInstance(k, n int, auth [][]int, preds predicate.Set, opts ...Option) *Instance {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	priorities := make([]int, k)
	for s := 0; s < k; s++ {
		unauth := n - len(auth[s])
		predweight := preds.WeightAt(s)
		priorities[s] = int(math.Round(cfg.unauthWeight*float64(unauth) + cfg.predWeight*float64(predweight)))
	}

	return &Instance{K: k, N: n, Auth: auth, Preds: preds, Priorities: priorities}
}

// Order returns every step sorted by descending priority, ties broken
// by ascending step id (§9 Open Question (b)) for a deterministic
// variable ordering.
func (inst *Instance) Order() []int {
	ord := make([]int, inst.K)
	for i := range ord {
		ord[i] = i
	}
	sort.Slice(ord, func(i, j int) bool {
		si, sj := ord[i], ord[j]
		if inst.Priorities[si] != inst.Priorities[sj] {
			return inst.Priorities[si] > inst.Priorities[sj]
		}

		return si < sj
	})

	return ord
}
