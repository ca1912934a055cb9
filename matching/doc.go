// Package matching implements classical Kuhn augmenting-path maximum
// bipartite matching (§4.3) over a core.Graph: left vertices are blocks,
// right vertices are users, and edges encode "this block may be assigned
// to this user". It is rehosted from a raw adjacency slice onto
// *core.Graph so it shares the same graph carrier as assignment.DAG and
// the matcher's caller in planner.combine, the way the teacher rehosts
// traversal algorithms (dfs.DFS) onto *core.Graph rather than a bare slice.
package matching
