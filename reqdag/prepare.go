package reqdag

import (
	"github.com/edgarcosta92/fibbing/igpgraph"
	"github.com/edgarcosta92/fibbing/spt"
	"github.com/edgarcosta92/fibbing/toposort"
)

// AddDestToDAG grafts dest onto dag when the requirement does not already
// mention it: every current sink gets a required edge into dest. This
// mirrors ssu.add_dest_to_graph(dest, dag) in the original solver, where a
// requirement silent about the final hop into dest is read as "any sink
// reaches dest directly".
func AddDestToDAG(dag *DAG, dest string) {
	if dag.HasNode(dest) {
		return
	}
	for _, s := range dag.Sinks() {
		dag.AddEdge(s, dest)
	}
	dag.ensure(dest)
}

// AddDestToIGP grafts dest onto the IGP topology when the real network
// never advertised a node by that name (dest is an address owned by a
// router rather than a router itself, for instance). Every node that
// dag requires to reach dest directly gets a new edge of cost
// newEdgeMetric, and dest is marked as a destination so igp.AddEdge
// continues to treat it as a sink. Mirrors
// ssu.add_dest_to_graph(dest, topo, edges_src=dag.predecessors, ...).
func AddDestToIGP(igp *igpgraph.Graph, dag *DAG, dest string, newEdgeMetric int64) error {
	if igp.HasNode(dest) {
		return nil
	}
	for _, p := range dag.Predecessors(dest) {
		if _, err := igp.AddEdge(p, dest, newEdgeMetric); err != nil {
			return err
		}
	}

	return igp.AddDestination(dest)
}

// CompleteDag fills in dag with the IGP's own default next hops for every
// node the requirement is silent about (spec.md §4.3): for each node u of
// the IGP graph that is neither already in dag nor in skip (the set of
// destinations under explicit requirement, which must not silently gain
// unrelated successors), every member of oracle.NextHops(u, dest) becomes
// a required successor of u. Mirrors ssu.complete_dag(dag, topo, dest,
// spt, skip=reqs.keys()).
func CompleteDag(dag *DAG, igp *igpgraph.Graph, dest string, oracle *spt.Oracle, skip map[string]bool) {
	for _, u := range igp.Nodes() {
		if u == dest || dag.HasNode(u) || skip[u] {
			continue
		}
		for nh := range oracle.NextHops(u, dest) {
			dag.AddEdge(u, nh)
		}
	}
}

// Solvable reports whether dag, once completed, is usable: every node
// other than dest has at least one required successor (no dead ends),
// and the successor relation is acyclic. Mirrors ssu.solvable(dag, topo).
func Solvable(dag *DAG, dest string) bool {
	for _, n := range dag.Nodes() {
		if n == dest {
			continue
		}
		if len(dag.Successors(n)) == 0 {
			return false
		}
	}
	_, err := toposort.Sort(dag)

	return err == nil
}
