package matching

// Matching is a maximum bipartite matching's edge set, keyed both ways for
// O(1) lookup (§4.3 contract: output is a set of edges of size equal to
// max_matching <= min(m,n)).
type Matching struct {
	rightOf map[string]string // left id -> right id
	leftOf  map[string]string // right id -> left id
}

// Right returns the user matched to block left, if any.
func (m Matching) Right(left string) (string, bool) {
	r, ok := m.rightOf[left]

	return r, ok
}

// Left returns the block matched to user right, if any.
func (m Matching) Left(right string) (string, bool) {
	l, ok := m.leftOf[right]

	return l, ok
}

// Size returns the number of matched edges.
func (m Matching) Size() int { return len(m.rightOf) }

// Edges returns every matched (left, right) pair, in no particular order.
func (m Matching) Edges() [][2]string {
	out := make([][2]string, 0, len(m.rightOf))
	for l, r := range m.rightOf {
		out = append(out, [2]string{l, r})
	}

	return out
}
