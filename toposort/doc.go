// Package toposort computes a topological ordering of a requirement DAG,
// adapted from the teacher library's dfs.TopologicalSort: the same
// white/gray/black DFS and cycle-detection contract, generalized from
// core.Graph to the small Graph interface here (so reqdag.DAG can satisfy
// it without toposort importing reqdag) and extended with a reverse
// order, which is what both the simple and merger solvers walk their
// DAGs in.
package toposort
