package assignment

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/wspplanner/core"
	"github.com/katalvlaran/wspplanner/dfs"
)

const dagVertexPrefix = "step-"

// DAG is a step precedence graph, used only by equality policies (§2
// "optional DAG adjacency"). It mirrors workflow.Graph's adjacency_list
// from the original planner, rehosted onto *core.Graph the way the rest of
// this module rehosts traversal concerns onto the teacher's graph carrier
// rather than hand-rolling a second adjacency representation.
type DAG struct {
	n int
	g *core.Graph
}

// NewDAG returns an empty precedence DAG over n steps (step ids [0,n)).
func NewDAG(n int) *DAG {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < n; i++ {
		_ = g.AddVertex(dagVertexID(i))
	}

	return &DAG{n: n, g: g}
}

// N returns the number of steps this DAG was built over.
func (d *DAG) N() int { return d.n }

// Add records a parent→child precedence edge. No cycle detection is
// performed here; the caller is expected to only add edges consistent with
// a true precedence DAG (only tests call it in this repository).
func (d *DAG) Add(parent, child int) error {
	if parent < 0 || parent >= d.n || child < 0 || child >= d.n {
		return ErrNodeOutOfRange
	}
	if parent == child {
		return ErrSelfLoop
	}
	if _, err := d.g.AddEdge(dagVertexID(parent), dagVertexID(child), 0); err != nil {
		return fmt.Errorf("assignment: adding DAG edge %d->%d: %w", parent, child, err)
	}

	return nil
}

// Children returns the direct successors of parent, sorted ascending. It
// walks the graph via dfs.DFS bounded to depth one, the same traversal
// primitive backjump.Generator's design is grounded on, rather than
// re-reading the adjacency structure directly.
func (d *DAG) Children(parent int) []int {
	if parent < 0 || parent >= d.n {
		return nil
	}

	root := dagVertexID(parent)
	var children []int
	_, err := dfs.DFS(d.g, root, dfs.WithMaxDepth(1), dfs.WithOnVisit(func(id string) error {
		if id != root {
			children = append(children, dagVertexIndex(id))
		}

		return nil
	}))
	if err != nil {
		panic(fmt.Errorf("assignment: DAG.Children(%d): %w", parent, ErrInternalInvariant))
	}

	sort.Ints(children)

	return children
}

// Edges returns every (parent, child) pair added so far, in deterministic
// order: parents ascending, then children ascending within a parent.
func (d *DAG) Edges() [][2]int {
	out := make([][2]int, 0, d.g.EdgeCount())
	for p := 0; p < d.n; p++ {
		for _, c := range d.Children(p) {
			out = append(out, [2]int{p, c})
		}
	}

	return out
}

func dagVertexID(i int) string { return dagVertexPrefix + strconv.Itoa(i) }

func dagVertexIndex(id string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(id, dagVertexPrefix))
	if err != nil {
		panic(fmt.Errorf("assignment: DAG vertex id %q: %w", id, ErrInternalInvariant))
	}

	return n
}
