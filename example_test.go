// Package fibbing_test provides a runnable walkthrough of the core
// requirement-to-LSA flow: build an IGP, describe what each router
// should prefer, and solve for the fake LSAs that make it so.
package fibbing_test

import (
	"fmt"

	"github.com/edgarcosta92/fibbing/igpgraph"
	"github.com/edgarcosta92/fibbing/lsa"
	"github.com/edgarcosta92/fibbing/reqdag"
	"github.com/edgarcosta92/fibbing/solver"
)

// ExampleSimple_eCMPOverride builds a small ECMP diamond (A has two
// equal-cost paths to D, via Y1 and via Y2) and asks the simple solver
// to make A strictly prefer Y1.
func ExampleSimple_eCMPOverride() {
	// 1) Build the real IGP: A has two equal-cost (15) paths to D.
	igp := igpgraph.New()
	for _, e := range []struct {
		From, To string
		Metric   int64
	}{
		{"A", "Y1", 5}, {"Y1", "A", 5},
		{"A", "Y2", 5}, {"Y2", "A", 5},
		{"Y1", "D", 10}, {"D", "Y1", 10},
		{"Y2", "D", 10}, {"D", "Y2", 10},
	} {
		if _, err := igp.AddEdge(e.From, e.To, e.Metric); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	// 2) Describe the requirement: A should forward towards D only via
	//    Y1, even though Y2 is an equally good IGP next hop.
	reqs := map[string]*reqdag.DAG{
		"D": reqdag.FromEdges([][2]string{{"A", "Y1"}}),
	}

	// 3) Solve. The simple solver is conservative: it emits an override
	//    whenever the requirement differs at all from the IGP's own
	//    ECMP choice, even though the requirement is a subset of it.
	lsas, err := solver.NewSimple(solver.Options{}).Solve(igp, reqs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, l := range lsas {
		rec := l.Record()
		fmt.Printf("node=%s nextHop=%s dest=%s local=%v\n", rec.Node, rec.NHOrFwd, rec.Dest, rec.Cost == lsa.LocalCost)
	}
	// Output: node=A nextHop=Y1 dest=D local=true
}
