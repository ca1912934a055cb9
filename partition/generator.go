package partition

// Generator enumerates restricted-growth strings of target length in
// lexicographic order, one extension or increment at a time.
type Generator struct {
	current []int
	maxVals []int
	target  int
}

// New returns a Generator seeded at [0], ready to grow toward length
// target via Next.
func New(target int) *Generator {
	return &Generator{current: []int{0}, maxVals: []int{0}, target: target}
}

// Next advances to the next RGS in lexicographic order (§4.4): if the
// current prefix is shorter than target, extend it by appending 0
// (deepening); otherwise delegate to IncNext. Returns (nil, false) once
// the stream is exhausted.
func (g *Generator) Next() ([]int, bool) {
	if len(g.current) == 0 {
		return nil, false
	}
	if len(g.current) == g.target {
		return g.IncNext()
	}

	return g.appendElement(), true
}

// IncNext advances without extending: increments the last element if a
// larger block id is still valid there, else pops it and retries on the
// new last element, repeating until an increment succeeds or the string
// is exhausted.
func (g *Generator) IncNext() ([]int, bool) {
	for len(g.current) > 0 {
		last := len(g.current) - 1
		if g.current[last] < g.maxVals[last] {
			g.current[last]++

			return g.snapshot(), true
		}
		g.current = g.current[:last]
		g.maxVals = g.maxVals[:last]
	}

	return nil, false
}

// appendElement grows the current prefix by one position, set to block id
// 0, with the new position's max computed as max(prev value + 1, prev max)
// — the restricted-growth invariant p[i] <= 1 + max(p[0..i]).
func (g *Generator) appendElement() []int {
	last := len(g.current) - 1
	nextMax := g.current[last] + 1
	if g.maxVals[last] > nextMax {
		nextMax = g.maxVals[last]
	}
	g.current = append(g.current, 0)
	g.maxVals = append(g.maxVals, nextMax)

	return g.snapshot()
}

func (g *Generator) snapshot() []int {
	out := make([]int, len(g.current))
	copy(out, g.current)

	return out
}
