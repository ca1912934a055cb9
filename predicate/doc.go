// Package predicate implements scoped boolean constraints over an
// assignment.Assignment (§4.1) and the predicate set that aggregates them
// for whole-assignment and scope-filtered incremental evaluation (§4.2).
//
// Each concrete predicate kind (sod, bod, atmost, assignmentdependent,
// wangli, sual) is a small tagged-variant struct rather than a closure,
// following §9's "variant encoding is preferred for serialization and
// debugger ergonomics" guidance — the instance loader reconstructs
// predicates from a line-oriented grammar, which maps onto typed
// constructors more naturally than opaque functions.
package predicate
