// Package assignment defines the in-progress assignment vector the planner
// mutates during search (step → user id, or UNSET), plus the optional step
// precedence DAG used by equality policies over a workflow graph.
//
// An Assignment is owned by exactly one generator at a time (see the
// shared-resource policy documented on backjump.Generator); callers that
// need to preserve an outer view across a nested call must Clone it first.
package assignment
