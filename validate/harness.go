package validate

import (
	"fmt"
	"sort"

	"github.com/edgarcosta92/fibbing/igpgraph"
	"github.com/edgarcosta92/fibbing/lsa"
	"github.com/edgarcosta92/fibbing/reqdag"
	"github.com/edgarcosta92/fibbing/spt"
)

// CheckForwardingDAGs is a direct port of check_fwd_dags from
// tests/test_merger.py: it reconstructs, for every destination, the
// forwarding graph the given lsas would induce once injected into a
// copy of topo, and asserts that every node named in reqs realizes
// exactly the successor and predecessor sets its requirement DAG names.
func CheckForwardingDAGs(reqs map[string]*reqdag.DAG, topo *igpgraph.Graph, lsas []lsa.LSA, newEdgeMetric int64) (bool, error) {
	work := topo.Clone()
	dags := make(map[string]*reqdag.DAG, len(reqs))
	for dest, dag := range reqs {
		d := dag.Clone()
		reqdag.AddDestToDAG(d, dest)
		if err := reqdag.AddDestToIGP(work, d, dest, newEdgeMetric); err != nil {
			return false, fmt.Errorf("validate: grafting dest %q: %w", dest, err)
		}
		dags[dest] = d
	}
	// Complete each requirement with the IGP's default next hops, as the
	// solvers do on their own copies, so nodes the requirement is silent
	// about are compared against their default forwarding.
	skip := make(map[string]bool, len(reqs))
	for dest := range reqs {
		skip[dest] = true
	}
	base := spt.New(work)
	for dest, d := range dags {
		reqdag.CompleteDag(d, work, dest, base, skip)
	}

	phantomToNH := make(map[[3]string]string) // (node, phantom, dest) -> real next hop
	localNH := make(map[[2]string][]string)   // (node, dest) -> required next hops, for local LSAs
	phantomIDs := make(map[string]bool)

	for _, l := range lsas {
		rec := l.Record()
		if rec.Cost < 0 {
			key := [2]string{rec.Node, rec.Dest}
			localNH[key] = append(localNH[key], rec.NHOrFwd)

			continue
		}

		w, ok := topo.Metric(rec.Node, rec.NHOrFwd)
		if !ok {
			return false, fmt.Errorf("validate: LSA references non-adjacent next hop %s -> %s", rec.Node, rec.NHOrFwd)
		}
		phantom := fmt.Sprintf("__f_%s_%s_%s", rec.Node, rec.NHOrFwd, rec.Dest)
		phantomIDs[phantom] = true
		phantomToNH[[3]string{rec.Node, phantom, rec.Dest}] = rec.NHOrFwd

		if _, err := work.AddEdge(rec.Node, phantom, w); err != nil {
			return false, fmt.Errorf("validate: injecting phantom edge: %w", err)
		}
		if _, err := work.AddEdge(phantom, rec.Dest, rec.Cost-w); err != nil {
			return false, fmt.Errorf("validate: injecting phantom tail edge: %w", err)
		}
	}

	oracle := spt.New(work)

	correct := true
	for dest, reqDag := range dags {
		realized := reqdag.New()
		for _, n := range work.Nodes() {
			if _, isReq := reqs[n]; isReq {
				continue // a node that is itself a requirement key is never a spectator path source
			}
			if phantomIDs[n] {
				continue
			}
			paths, _, err := oracle.AllShortestPaths(n, dest)
			if err != nil {
				continue
			}
			for _, p := range paths {
				for i := 0; i < len(p)-1; i++ {
					u, v := p[i], p[i+1]
					if nh, ok := phantomToNH[[3]string{u, v, dest}]; ok {
						realized.AddEdge(u, nh)

						break
					}
					if nhs, ok := localNH[[2]string{u, dest}]; ok && len(nhs) > 0 {
						for _, h := range nhs {
							realized.AddEdge(u, h)
						}

						break
					}
					realized.AddEdge(u, v)
				}
			}
		}

		for _, n := range reqDag.Nodes() {
			gotSucc := sortedStrings(realized.Successors(n))
			wantSucc := sortedStrings(reqDag.Successors(n))
			if !sameStrings(gotSucc, wantSucc) {
				correct = false
			}

			gotPred := sortedStrings(realized.Predecessors(n))
			wantPred := sortedStrings(reqDag.Predecessors(n))
			if !sameStrings(gotPred, wantPred) && len(gotSucc) > 0 {
				correct = false
			}
		}
	}

	return correct, nil
}

func sortedStrings(xs []string) []string {
	out := make([]string, len(xs))
	copy(out, xs)
	sort.Strings(out)

	return out
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
