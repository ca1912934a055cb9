// Package instance loads a WSP instance from the line-oriented text
// grammar of §6 into a *planner.Instance, and (in fixtures.go) generates
// deterministic random instances for tests and benchmarks.
//
// The grammar's step and user ids are 1-based; every id is converted to
// the model's 0-based ids as it is parsed, exactly once, at the loader
// boundary — no other package in this module ever sees a 1-based id.
package instance
