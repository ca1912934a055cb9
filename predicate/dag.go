package predicate

import "github.com/katalvlaran/wspplanner/assignment"

// SoDAlongEdges generates one sod(parent, child) predicate per edge of d,
// expressing a "no child equals parent" DAG policy (§8 scenario 2) as
// pattern-compatible predicates instead of a seventh predicate kind. This
// lives in predicate rather than assignment so assignment need not import
// predicate (predicate already depends on assignment one way, via
// Scoped.Eval's parameter).
func SoDAlongEdges(d *assignment.DAG) []Scoped {
	edges := d.Edges()
	out := make([]Scoped, 0, len(edges))
	for _, e := range edges {
		out = append(out, SoD(e[0], e[1]))
	}

	return out
}
