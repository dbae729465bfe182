package solver

import (
	"math"

	"github.com/edgarcosta92/fibbing/igpgraph"
	"github.com/edgarcosta92/fibbing/spt"
)

// attraction is one node's resolved Global LSA, or a fallback to Local
// when no positive costPhantom exists.
type attraction struct {
	node    string
	nh      string
	fwd     string
	dest    string
	cost    int64 // -1 means "fall back to a Local LSA instead"
	w1      int64
	deltaFw int64
}

// resolveCost computes the advertised cost for node's phantom attached
// via nh, forwarding toward fwd, following spec.md §4.5's formula:
// costPhantom = max(1, M - w1 - deltaFwd - 1), cost = w1 + costPhantom +
// deltaFwd, as long as that is strictly less than M. Falls back to a
// Local LSA (cost == -1) when no such costPhantom is positive.
func resolveCost(igp *igpgraph.Graph, oracle *spt.Oracle, node, nh, fwd, dest string, req map[string]bool) attraction {
	a := attraction{node: node, nh: nh, fwd: fwd, dest: dest, cost: -1}

	w1, ok := igp.Metric(node, nh)
	if !ok {
		return a
	}
	deltaFwd, ok := oracle.Cost(fwd, dest)
	if !ok {
		return a
	}
	a.w1, a.deltaFw = w1, deltaFwd

	m, hasAlt := alternativeMin(igp, oracle, node, dest, req)
	if !hasAlt {
		m = math.MaxInt64 / 4
	}

	costPhantom := m - w1 - deltaFwd - 1
	if costPhantom < 1 {
		costPhantom = 1
	}
	cost := w1 + costPhantom + deltaFwd
	if cost >= m && hasAlt {
		return a // no positive costPhantom keeps the path strictly shortest
	}

	a.cost = cost

	return a
}
