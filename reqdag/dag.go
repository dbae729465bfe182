package reqdag

import "sort"

// DefaultNewEdgeMetric is the sentinel metric used to graft a destination
// into the IGP graph when it is not already present there (spec.md §4.3,
// §6): large enough that it never distorts choices among real routers.
const DefaultNewEdgeMetric int64 = 100000

// DAG is a directed graph over the same node-label space as the IGP
// graph, expressing required forwarding successors for one destination.
// Unlike igpgraph.Graph it carries no metric: only the successor
// relation matters.
type DAG struct {
	nodes     map[string]bool
	adjacency map[string]map[string]bool
	reverse   map[string]map[string]bool
}

// New constructs an empty DAG.
func New() *DAG {
	return &DAG{
		nodes:     make(map[string]bool),
		adjacency: make(map[string]map[string]bool),
		reverse:   make(map[string]map[string]bool),
	}
}

// FromEdges is a convenience constructor building a DAG from a literal
// edge list, mirroring how the gadget tests in tests/test_merger.py build
// an IGPGraph([(u,v), ...]) as a requirement DAG.
func FromEdges(edges [][2]string) *DAG {
	d := New()
	for _, e := range edges {
		d.AddEdge(e[0], e[1])
	}

	return d
}

func (d *DAG) ensure(id string) {
	if d.nodes[id] {
		return
	}
	d.nodes[id] = true
	d.adjacency[id] = make(map[string]bool)
	d.reverse[id] = make(map[string]bool)
}

// AddEdge records a required successor relation u -> v.
func (d *DAG) AddEdge(u, v string) {
	d.ensure(u)
	d.ensure(v)
	d.adjacency[u][v] = true
	d.reverse[v][u] = true
}

// HasNode reports whether id appears anywhere in the DAG.
func (d *DAG) HasNode(id string) bool { return d.nodes[id] }

// Successors returns the sorted required successors of id.
func (d *DAG) Successors(id string) []string {
	out := make([]string, 0, len(d.adjacency[id]))
	for v := range d.adjacency[id] {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// Predecessors returns the sorted set of nodes requiring id as a
// successor.
func (d *DAG) Predecessors(id string) []string {
	out := make([]string, 0, len(d.reverse[id]))
	for u := range d.reverse[id] {
		out = append(out, u)
	}
	sort.Strings(out)

	return out
}

// Nodes returns every node in the DAG, sorted ascending.
func (d *DAG) Nodes() []string {
	out := make([]string, 0, len(d.nodes))
	for id := range d.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Sinks returns the sorted set of nodes with no required successors
// ("dangling" ends, usually destined to reach dest through IGP default
// behavior or a to-be-added edge into dest).
func (d *DAG) Sinks() []string {
	var out []string
	for _, id := range d.Nodes() {
		if len(d.adjacency[id]) == 0 {
			out = append(out, id)
		}
	}

	return out
}

// Clone returns a deep, independent copy.
func (d *DAG) Clone() *DAG {
	c := New()
	for u, succs := range d.adjacency {
		c.ensure(u)
		for v := range succs {
			c.AddEdge(u, v)
		}
	}
	for id := range d.nodes {
		c.ensure(id)
	}

	return c
}
