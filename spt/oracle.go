package spt

import (
	"container/heap"
	"sort"
	"sync"

	"github.com/edgarcosta92/fibbing/igpgraph"
)

// Oracle answers shortest-path queries against a fixed igpgraph.Graph. It
// caches one reverse-shortest-path tree per destination queried so far;
// call Invalidate after mutating the underlying graph.
type Oracle struct {
	g *igpgraph.Graph

	mu    sync.Mutex
	trees map[string]*tree
}

// tree holds, for one destination d, the distance from every node to d and
// the ECMP next-hop set every node should use to reach d optimally.
type tree struct {
	dist     map[string]int64
	nextHops map[string]map[string]struct{}
}

// New builds an oracle over g. The oracle holds no lock on g between
// queries; if g is mutated concurrently with querying, call Invalidate
// after the mutation completes.
func New(g *igpgraph.Graph) *Oracle {
	return &Oracle{g: g, trees: make(map[string]*tree)}
}

// Invalidate drops all cached per-destination trees, forcing the next
// query to recompute from the current graph state.
func (o *Oracle) Invalidate() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.trees = make(map[string]*tree)
}

// treeFor returns the (possibly cached) shortest-path tree rooted at dest.
func (o *Oracle) treeFor(dest string) *tree {
	o.mu.Lock()
	defer o.mu.Unlock()

	if t, ok := o.trees[dest]; ok {
		return t
	}
	t := computeReverseTree(o.g, dest)
	o.trees[dest] = t

	return t
}

// NextHops returns the ECMP next-hop set N*(u,dest): every node v such that
// (u,v) is an edge and w(u,v)+δ(v,dest) == δ(u,dest). Returns an empty set,
// never an error, when u cannot reach dest (spec.md §3/§7: NoPath is never
// fatal).
func (o *Oracle) NextHops(u, dest string) map[string]struct{} {
	t := o.treeFor(dest)
	nh, ok := t.nextHops[u]
	if !ok {
		return map[string]struct{}{}
	}

	return nh
}

// Cost returns δ(u,dest) and whether u can reach dest at all.
func (o *Oracle) Cost(u, dest string) (int64, bool) {
	t := o.treeFor(dest)
	d, ok := t.dist[u]

	return d, ok
}

// DefaultPath returns one concrete shortest path [u, ..., dest], breaking
// ties by picking the lexicographically smallest next hop at each step
// (spec.md §4.2: "implementation choice of tie-break is irrelevant so long
// as the chosen edge is in the ECMP set").
func (o *Oracle) DefaultPath(u, dest string) ([]string, error) {
	t := o.treeFor(dest)
	if _, ok := t.dist[u]; !ok {
		return nil, &NoPathError{From: u, To: dest}
	}

	path := []string{u}
	cur := u
	for cur != dest {
		nh := t.nextHops[cur]
		next := smallestOf(nh)
		path = append(path, next)
		cur = next
	}

	return path, nil
}

// AllShortestPaths enumerates every equal-cost shortest path [u, ..., dest]
// as a vertex sequence, plus the common cost. Returns NoPathError if
// unreachable.
func (o *Oracle) AllShortestPaths(u, dest string) ([][]string, int64, error) {
	t := o.treeFor(dest)
	cost, ok := t.dist[u]
	if !ok {
		return nil, 0, &NoPathError{From: u, To: dest}
	}

	var expand func(node string) [][]string
	expand = func(node string) [][]string {
		if node == dest {
			return [][]string{{dest}}
		}
		var out [][]string
		nexts := sortedKeys(t.nextHops[node])
		for _, nh := range nexts {
			for _, tail := range expand(nh) {
				out = append(out, append([]string{node}, tail...))
			}
		}

		return out
	}

	return expand(u), cost, nil
}

func smallestOf(set map[string]struct{}) string {
	best := ""
	for k := range set {
		if best == "" || k < best {
			best = k
		}
	}

	return best
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// computeReverseTree runs a reverse-rooted Dijkstra from dest: it walks
// backwards along predecessor edges, so the resulting dist[v] is the
// forward shortest-path distance from v to dest, and nextHops[v] is the
// ECMP set of forward successors of v that realize that distance.
func computeReverseTree(g *igpgraph.Graph, dest string) *tree {
	dist := map[string]int64{dest: 0}
	nextHops := make(map[string]map[string]struct{})
	visited := make(map[string]bool)

	pq := &nodePQ{{id: dest, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*nodeItem)
		if visited[cur.id] {
			continue
		}
		visited[cur.id] = true

		// Predecessors of cur in the forward graph are the nodes whose
		// shortest path to dest may continue through cur.
		for _, p := range g.Predecessors(cur.id) {
			if visited[p] {
				continue
			}
			m, ok := g.Metric(p, cur.id)
			if !ok {
				continue
			}
			nd := cur.dist + m
			best, known := dist[p]
			switch {
			case !known || nd < best:
				dist[p] = nd
				nextHops[p] = map[string]struct{}{cur.id: {}}
				heap.Push(pq, &nodeItem{id: p, dist: nd})
			case nd == best:
				if nextHops[p] == nil {
					nextHops[p] = make(map[string]struct{})
				}
				nextHops[p][cur.id] = struct{}{}
			}
		}
	}

	return &tree{dist: dist, nextHops: nextHops}
}

type nodeItem struct {
	id   string
	dist int64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
