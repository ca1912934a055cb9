package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/wspplanner/assignment"
	"github.com/katalvlaran/wspplanner/backjump"
	"github.com/katalvlaran/wspplanner/core"
	"github.com/katalvlaran/wspplanner/matching"
	"github.com/katalvlaran/wspplanner/partition"
	"github.com/katalvlaran/wspplanner/predicate"
)

// PlanAll is the top-level solve (§4.6): it drives the back-jumping
// generator over the non-pattern step set N, and for every partial
// assignment it emits, either returns it directly (when N already
// covers every step and no pattern-compatible predicate remains) or
// restricts authorizations to the chosen users and runs pattern
// planning over the rest. Returns (solution, true) or (zero value,
// false) if the search space is exhausted with no solution.
func PlanAll(inst *Instance) (assignment.Assignment, bool) {
	if inst.K == 0 {
		// §9 Open Question (d): zero steps is vacuously satisfiable.
		return assignment.New(0), true
	}

	ordAll := inst.Order()
	nonUI := inst.Preds.ByClass(predicate.NonUI)
	uiPreds := inst.Preds.ByClass(predicate.UI)
	nSet := stepSet(inst.Preds.NonPatternSteps())

	ordN := make([]int, 0, len(nSet))
	for _, s := range ordAll {
		if _, ok := nSet[s]; ok {
			ordN = append(ordN, s)
		}
	}
	authN := make(map[int][]int, len(ordN))
	for _, s := range ordN {
		authN[s] = inst.Auth[s]
	}

	a := assignment.New(inst.K)
	gen := backjump.New(a, nonUI, ordN, authN)

	for gen.Next() {
		if !everyAssignmentAuthorized(inst.Auth, ordN, a) {
			continue
		}

		if len(nSet) == inst.K && uiPreds.Len() == 0 {
			return a.Clone(), true
		}

		authPrime := make([][]int, inst.K)
		copy(authPrime, inst.Auth)
		for _, s := range ordN {
			authPrime[s] = []int{a.Get(s)}
		}

		if sol, ok := planPattern(a.Clone(), ordAll, authPrime, uiPreds, inst.N); ok {
			return sol, true
		}
	}

	return assignment.New(inst.K), false
}

func stepSet(steps []int) map[int]struct{} {
	out := make(map[int]struct{}, len(steps))
	for _, s := range steps {
		out[s] = struct{}{}
	}

	return out
}

func everyAssignmentAuthorized(auth [][]int, steps []int, a assignment.Assignment) bool {
	for _, s := range steps {
		u := a.Get(s)
		if u == assignment.UNSET {
			continue
		}
		found := false
		for _, cand := range auth[s] {
			if cand == u {
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// planPattern drives the incremental partition generator over ordAll
// (the full priority order, §4.6 point 2), evaluating predsUI on every
// produced RGS prefix and attempting a bipartite match over the
// resulting blocks. a is reset to UNSET and reused as the pattern
// layer's working buffer; the caller retains ownership of its own copy.
func planPattern(a assignment.Assignment, ordAll []int, authPrime [][]int, predsUI predicate.Set, n int) (assignment.Assignment, bool) {
	k := len(ordAll)
	if k == 0 {
		return a, true
	}
	if k == 1 {
		// New(1)'s implicit seed is never re-emitted by Next (see
		// partition.Generator's documented boundary case), so the
		// single-step instance is handled directly: one block holding
		// the one step.
		return matchSingleBlock(a, ordAll, authPrime, predsUI, n)
	}

	for s := range ordAll {
		_ = a.Unset(ordAll[s])
	}

	gen := partition.New(k)
	p, ok := gen.Next()
	for ok {
		project(a, ordAll, p)

		if !predsUI.Eval(a) {
			p, ok = gen.IncNext()

			continue
		}

		blocks := buildBlocks(p, ordAll)
		m, matched := combine(authPrime, blocks, n)
		if !matched {
			p, ok = gen.IncNext()

			continue
		}

		if len(p) == k {
			applyMatch(a, ordAll, p, m, len(blocks))

			return a, true
		}

		p, ok = gen.Next()
	}

	return a, false
}

func matchSingleBlock(a assignment.Assignment, ordAll []int, authPrime [][]int, predsUI predicate.Set, n int) (assignment.Assignment, bool) {
	s := ordAll[0]
	_ = a.Unset(s)
	if !predsUI.Eval(a) {
		return a, false
	}
	m, matched := combine(authPrime, [][]int{{s}}, n)
	if !matched {
		return a, false
	}
	userStr, ok := m.Right(blockID(0))
	if !ok {
		panic(fmt.Errorf("planPattern: matched block has no user: %w", ErrInternalInvariant))
	}
	_ = a.Set(s, parseUserID(userStr))

	return a, true
}

// project maps RGS positions onto the assignment through the priority
// ordering: position idx of p governs step ordAll[idx]; any position
// beyond the current (possibly partial) RGS is left UNSET.
func project(a assignment.Assignment, ordAll []int, p []int) {
	for idx, s := range ordAll {
		if idx < len(p) {
			_ = a.Set(s, p[idx])
		} else {
			_ = a.Unset(s)
		}
	}
}

func buildBlocks(p []int, ordAll []int) [][]int {
	maxBlock := 0
	for _, b := range p {
		if b > maxBlock {
			maxBlock = b
		}
	}
	blocks := make([][]int, maxBlock+1)
	for idx, b := range p {
		blocks[b] = append(blocks[b], ordAll[idx])
	}

	return blocks
}

func applyMatch(a assignment.Assignment, ordAll []int, p []int, m matching.Matching, numBlocks int) {
	resolved := make([]int, numBlocks)
	for b := 0; b < numBlocks; b++ {
		userStr, ok := m.Right(blockID(b))
		if !ok {
			panic(fmt.Errorf("planPattern: block %d unmatched after combine reported success: %w", b, ErrInternalInvariant))
		}
		resolved[b] = parseUserID(userStr)
	}
	for idx, s := range ordAll {
		_ = a.Set(s, resolved[p[idx]])
	}
}

func blockID(b int) string { return fmt.Sprintf("block-%d", b) }
func userID(u int) string  { return fmt.Sprintf("user-%d", u) }

func parseUserID(id string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(id, "user-"))
	if err != nil {
		panic(fmt.Errorf("parseUserID(%q): %w", id, ErrInternalInvariant))
	}

	return n
}

// combine builds the block-to-user bipartite adjacency exactly as
// original_source/src/planning.rs's combine does (a per-block user
// frequency count, keeping only users authorized for every step in the
// block), but via *core.Graph and matching.Kuhn instead of a raw
// adjacency vector, and reports success only if every block matched.
func combine(auth [][]int, blocks [][]int, n int) (matching.Matching, bool) {
	g := core.NewGraph(core.WithDirected(true))
	left := make([]string, len(blocks))
	right := make([]string, n)
	for b := range blocks {
		left[b] = blockID(b)
		_ = g.AddVertex(left[b])
	}
	for u := 0; u < n; u++ {
		right[u] = userID(u)
		_ = g.AddVertex(right[u])
	}

	for b, block := range blocks {
		freq := make([]int, n)
		for _, s := range block {
			for _, u := range auth[s] {
				if u < 0 || u >= n {
					continue
				}
				freq[u]++
			}
		}
		bsize := len(block)
		for u, cnt := range freq {
			if cnt == bsize {
				if _, err := g.AddEdge(left[b], right[u], 0); err != nil {
					panic(fmt.Errorf("combine: building matcher graph: %w", ErrInternalInvariant))
				}
			}
		}
	}

	m, err := matching.Kuhn(g, left, right)
	if err != nil {
		panic(fmt.Errorf("combine: %w: %v", ErrInternalInvariant, err))
	}
	if m.Size() != len(blocks) {
		return matching.Matching{}, false
	}

	return m, true
}
