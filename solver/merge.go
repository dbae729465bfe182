package solver

import (
	"github.com/edgarcosta92/fibbing/igpgraph"
	"github.com/edgarcosta92/fibbing/spt"
)

// phantomLabel names the fake vertex used for this internal safety
// probe only - unrelated to the "__f_<node>_<nh>_<dest>" naming
// validate/ospfrender use for the LSAs actually emitted. The prefix
// makes collisions with real router labels implausible without
// requiring the caller to reserve a namespace.
func phantomLabel(node, dest string) string {
	return "φ:" + node + ":" + dest
}

// augmentWithGroup clones igp and grafts a phantom for every cost >= 0
// member of group, the same way a real Global LSA's phantom vertex would
// appear once originated (spec.md §3). Shared by resolveGroup's
// spectator check and its incremental absorption probe so both reason
// about identical graphs.
func augmentWithGroup(igp *igpgraph.Graph, group []attraction, dest string) (*igpgraph.Graph, error) {
	aug := igp.Clone()
	for _, a := range group {
		if a.cost < 0 {
			continue
		}
		p := phantomLabel(a.node, dest)
		if _, err := aug.AddEdge(a.node, p, a.w1); err != nil {
			return nil, err
		}
		if _, err := aug.AddEdge(p, dest, a.cost-a.w1); err != nil {
			return nil, err
		}
	}

	return aug, nil
}

// spectatorsUnaffected checks that, under augOracle, no node outside
// attractedAll changed its next-hop set toward dest relative to base
// (spec.md §4.5 merge condition (c)).
func spectatorsUnaffected(igp *igpgraph.Graph, base, augOracle *spt.Oracle, dest string, attractedAll map[string]bool) bool {
	for _, node := range igp.Nodes() {
		if node == dest || attractedAll[node] {
			continue
		}
		before := sortedSet(base.NextHops(node, dest))
		after := sortedSet(augOracle.NextHops(node, dest))
		if !sameSet(before, after) {
			return false
		}
	}

	return true
}
