// Package service wraps the planner in an HTTP surface: POST /solve runs
// an instance to completion and returns the result as JSON; GET
// /solve/stream upgrades to a websocket and streams the back-jumping
// generator's step-by-step search, for demos and debugging.
//
// service depends on planner; planner never depends on service — the
// library has no knowledge this surface exists.
package service
