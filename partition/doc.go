// Package partition enumerates set partitions of {0,...,k-1} as
// restricted-growth strings (RGS), with two cursors on a single stream:
// Next (extend the current prefix, deepening it by one position) and
// IncNext (increment without extending, backtracking over exhausted
// positions first). This separation gives the planner prefix-based
// pruning (§4.4): it can skip a whole subtree of extensions by calling
// IncNext instead of Next whenever the current prefix is already known to
// be invalid.
//
// Grounded on original_source/src/partition_generator.rs's
// IncrementalPartitionGenerator; the append_element/inc_next split there
// maps one-to-one onto Next/IncNext here.
package partition
