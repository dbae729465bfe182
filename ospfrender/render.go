package ospfrender

import (
	"fmt"

	"github.com/edgarcosta92/fibbing/igpgraph"
	"github.com/edgarcosta92/fibbing/lsa"
	"github.com/edgarcosta92/fibbing/ospfconfig"
)

// Advertisement is the per-router OSPF interface stanza a solver's LSA
// implies: for a Global LSA, a real interface advertising the phantom's
// stub network at the real edge cost plus a phantom interface
// advertising the destination at the remaining cost; for a Local LSA, a
// single zero-cost override interface preferring the required next hop.
type Advertisement struct {
	Router    string
	PhantomID string // empty for a Local-derived Advertisement
	Metrics   []ospfconfig.InterfaceConfig
	Dest      string
}

// Render turns lsas into the Advertisement records their injection would
// produce. topo supplies the real edge metric a Global LSA's router-to-
// next-hop interface already advertises; Render performs no I/O.
func Render(lsas []lsa.LSA, topo *igpgraph.Graph) []Advertisement {
	out := make([]Advertisement, 0, len(lsas))
	for _, l := range lsas {
		switch v := l.(type) {
		case lsa.Local:
			out = append(out, Advertisement{
				Router: v.Node,
				Dest:   v.Dest,
				Metrics: []ospfconfig.InterfaceConfig{
					{Name: ifaceName(v.Node, v.NextHop), Cost: 0, Networks: []string{v.Dest}},
				},
			})
		case lsa.Global:
			realCost, _ := topo.Metric(v.Node, v.NextHop)
			phantomID := fmt.Sprintf("__f_%s_%s_%s", v.Node, v.NextHop, v.Dest)
			out = append(out, Advertisement{
				Router:    v.Node,
				PhantomID: phantomID,
				Dest:      v.Dest,
				Metrics: []ospfconfig.InterfaceConfig{
					{Name: ifaceName(v.Node, v.NextHop), Cost: realCost, Networks: []string{phantomID}},
					{Name: phantomIfaceName(phantomID), Cost: v.Cost - realCost, Networks: []string{v.Dest}},
				},
			})
		}
	}

	return out
}

func ifaceName(node, nextHop string) string {
	return fmt.Sprintf("%s-%s", node, nextHop)
}

func phantomIfaceName(phantomID string) string {
	return fmt.Sprintf("phantom-%s", phantomID)
}
