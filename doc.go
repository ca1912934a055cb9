// Package wspplanner solves the Workflow Satisfiability Problem (WSP):
// given a workflow of steps, a set of users each authorized for some
// subset of those steps, and a set of constraints over step-to-user
// assignments, find an assignment of exactly one user to every step that
// satisfies every constraint — or prove none exists.
//
// 🚀 What is wspplanner?
//
//	A deterministic, dependency-light planning engine built from three
//	cooperating search layers:
//
//	  • A conflict-directed back-jumping search over the steps whose
//	    constraints depend on which user is assigned, not merely on the
//	    shape of the assignment.
//	  • A restricted-growth-string generator enumerating the ways the
//	    remaining "pattern" steps can be grouped into same-user blocks.
//	  • A bipartite matcher binding each block to a concrete user.
//
// ✨ Why this shape?
//
//   - Fixed-parameter tractable — exponential only in the number of
//     steps, polynomial in the number of users.
//   - Deterministic — identical inputs always search identical paths and
//     return identical results; no hidden map-order nondeterminism.
//   - Incremental — constraints are evaluated step-by-step as the search
//     assigns users, so violations prune the tree as early as possible.
//
// Under the hood, everything is organized under these subpackages:
//
//	assignment/ — the mutable per-step user buffer threaded through search
//	predicate/   — the six constraint kinds and their ui/non-ui split
//	partition/   — restricted-growth-string generator over pattern steps
//	matching/    — Kuhn's augmenting-path bipartite matcher
//	backjump/    — the conflict-directed back-jumping generator
//	planner/     — composes the above into PlanAll
//	instance/    — the §6 instance-file grammar loader and random fixtures
//	cmd/wspsolve/ — CLI entry point
//	service/     — optional HTTP surface wrapping the planner
//
// See DESIGN.md for how each piece is grounded, and cmd/wspsolve for a
// minimal driver:
//
//	go run ./cmd/wspsolve instance.txt
package wspplanner
