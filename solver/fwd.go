package solver

import (
	"sort"

	"github.com/edgarcosta92/fibbing/igpgraph"
	"github.com/edgarcosta92/fibbing/spt"
)

// candidate is one attracted node's single-member requirement, together
// with the chain of real routers it could plausibly use as a forwarding
// address: its required next hop's own default path toward dest, which
// is exactly the set of routers "on n -> dest via a required next hop of
// n" spec.md §4.5 describes.
type candidate struct {
	node  string
	nh    string
	chain []string // required next hop, then the rest of its default path to (not including) dest
}

// buildCandidates computes, for every attracted node with exactly one
// required next hop, the fwd candidate chain. Nodes whose requirement
// keeps more than one next hop (a multi-member RestrictECMP survivor
// set) are reported separately: a single phantom attachment cannot
// represent "prefer these N next hops equally", so the caller falls back
// to per-next-hop Local LSAs for them.
func buildCandidates(attracted []attractedNode, dest string, oracle *spt.Oracle) (single []candidate, multi []attractedNode) {
	for _, a := range attracted {
		if len(a.req) > 1 {
			multi = append(multi, a)
			continue
		}
		nh := a.req[0]
		path, err := oracle.DefaultPath(nh, dest)
		if err != nil {
			multi = append(multi, a) // unreachable: fall back to a local override
			continue
		}
		chain := path
		if len(chain) > 0 && chain[len(chain)-1] == dest {
			chain = chain[:len(chain)-1]
		}
		if len(chain) == 0 {
			multi = append(multi, a) // nh is dest itself: no router to use as fwd
			continue
		}
		single = append(single, candidate{node: a.node, nh: nh, chain: chain})
	}

	return single, multi
}

// groupByForwardingAddress runs the greedy set-cover pass spec.md §4.5
// describes: repeatedly pick the candidate chain member used by the most
// still-unassigned nodes (ties broken lexicographically on the label),
// assign every node whose chain contains it, and repeat over the
// remainder until every node has a chosen fwd.
func groupByForwardingAddress(cands []candidate) map[string][]candidate {
	remaining := make([]candidate, len(cands))
	copy(remaining, cands)

	groups := make(map[string][]candidate)
	for len(remaining) > 0 {
		counts := make(map[string]int)
		for _, c := range remaining {
			seen := make(map[string]bool, len(c.chain))
			for _, x := range c.chain {
				if !seen[x] {
					counts[x]++
					seen[x] = true
				}
			}
		}

		best := bestCandidate(counts)

		var kept []candidate
		for _, c := range remaining {
			if containsString(c.chain, best) {
				groups[best] = append(groups[best], c)
			} else {
				kept = append(kept, c)
			}
		}
		remaining = kept
	}

	return groups
}

func bestCandidate(counts map[string]int) string {
	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}

		return labels[i] < labels[j]
	})

	return labels[0]
}

func containsString(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}

	return false
}

// alternativeMin computes M: the minimum, over every real neighbor of
// node not itself required, of the cost of reaching dest via that
// neighbor. Returns (0, false) when node has no such alternative (the
// fake cost is then unconstrained from above, so any positive
// costPhantom is safe — callers treat the "no alternative" case as an
// unbounded M).
func alternativeMin(igp *igpgraph.Graph, oracle *spt.Oracle, node, dest string, req map[string]bool) (int64, bool) {
	var (
		best  int64
		found bool
	)
	for _, v := range igp.Successors(node) {
		if req[v] {
			continue
		}
		w, ok := igp.Metric(node, v)
		if !ok {
			continue
		}
		d, ok := oracle.Cost(v, dest)
		if !ok {
			continue
		}
		total := w + d
		if !found || total < best {
			best = total
			found = true
		}
	}

	return best, found
}
