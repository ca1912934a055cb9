package matching

import "github.com/katalvlaran/wspplanner/core"

// Kuhn computes a maximum matching between left and right vertex ids of g
// by classical augmenting-path search (§4.3), grounded on
// original_source/src/bipartite_matching.rs's BipartiteGraph.try_kuhn /
// max_matching_set. Only edges from a left id to a right id are followed;
// g may contain other vertices and edges, which are ignored.
//
// Visited markers are reset per left vertex, and recursion along any one
// augmenting search is bounded by len(right), matching §4.3's contract.
func Kuhn(g *core.Graph, left, right []string) (Matching, error) {
	if g == nil {
		return Matching{}, ErrNilGraph
	}
	rightSet := make(map[string]struct{}, len(right))
	for _, r := range right {
		if !g.HasVertex(r) {
			return Matching{}, ErrVertexNotFound
		}
		rightSet[r] = struct{}{}
	}
	for _, l := range left {
		if !g.HasVertex(l) {
			return Matching{}, ErrVertexNotFound
		}
	}

	matchOf := make(map[string]string, len(right)) // right id -> left id

	var tryKuhn func(v string, visited map[string]bool) bool
	tryKuhn = func(v string, visited map[string]bool) bool {
		neighbors, err := g.NeighborIDs(v)
		if err != nil {
			return false
		}
		for _, to := range neighbors {
			if _, ok := rightSet[to]; !ok {
				continue
			}
			if visited[to] {
				continue
			}
			visited[to] = true
			cur, matched := matchOf[to]
			if !matched || tryKuhn(cur, visited) {
				matchOf[to] = v

				return true
			}
		}

		return false
	}

	for _, v := range left {
		visited := make(map[string]bool, len(right))
		tryKuhn(v, visited)
	}

	m := Matching{
		rightOf: make(map[string]string, len(matchOf)),
		leftOf:  make(map[string]string, len(matchOf)),
	}
	for r, l := range matchOf {
		m.rightOf[l] = r
		m.leftOf[r] = l
	}

	return m, nil
}
