// Package backjump implements the conflict-directed back-jumping
// generator (§4.5): a depth-first search over a subset of steps (the
// non-pattern step set N) with per-depth conflict sets driving
// non-chronological backtracking.
//
// Generator is a manual coroutine in the sense of §9's design notes: all
// search state (per-step authorization cursors, the depth cursor, and the
// conflict sets) lives on the object, and Next resumes the search exactly
// where the previous call left it. The state-machine shape (explicit
// cursors instead of language-level recursion/async) is grounded on
// dfs.DFS's manual recursive-traversal idiom, generalized from graph
// recursion to constraint-search recursion.
package backjump
