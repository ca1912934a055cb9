// Package planner composes the back-jumping generator, the incremental
// partition generator, and the bipartite matcher into the full
// workflow-satisfiability solver (§4.6): PlanAll drives the
// back-jumping phase over the non-pattern steps, then, for every
// partial assignment it emits, restricts authorizations and drives
// pattern planning over the remaining steps.
//
// Variable ordering (which step the search considers first) is the
// priority formula of §3: a step that is authorized for few users and
// is named by heavyweight predicates (bind-of-duty, at-most) is
// explored earlier, since it is the most likely to prune the tree.
package planner
