package solver

import (
	"sort"

	"github.com/edgarcosta92/fibbing/igpgraph"
	"github.com/edgarcosta92/fibbing/lsa"
	"github.com/edgarcosta92/fibbing/reqdag"
	"github.com/edgarcosta92/fibbing/spt"
	"github.com/edgarcosta92/fibbing/toposort"
)

// Merger implements the ECMP-aware solver (spec.md §4.5,
// "PartialECMPMerger" in the original): it classifies nodes, selects a
// shared forwarding address per group of attracted routers via a greedy
// set-cover pass, computes a phantom cost per node, and falls back to
// per-node Local LSAs wherever merging a group is unsafe or no positive
// phantom cost exists.
type Merger struct {
	opts Options
}

// NewMerger builds a Merger solver with the given options (zero value
// valid; see Options).
func NewMerger(opts Options) *Merger {
	return &Merger{opts: opts.withDefaults()}
}

// attractedNode is a non-unchanged node together with its required
// successor set, computed once per destination's classification pass.
type attractedNode struct {
	node string
	req  []string
}

// Solve implements the ECMP-aware requirement-to-LSA algorithm. igp and
// reqs are never mutated.
func (m *Merger) Solve(igp *igpgraph.Graph, reqs map[string]*reqdag.DAG) ([]lsa.LSA, error) {
	workIGP, workDAGs, skip := prepareAll(igp, reqs)
	dests := sortedDestKeys(reqs)

	solveOne := func(dest string) ([]lsa.LSA, error) {
		dag := workDAGs[dest]
		reqdag.AddDestToDAG(dag, dest)
		if err := reqdag.AddDestToIGP(workIGP, dag, dest, m.opts.NewEdgeMetric); err != nil {
			return nil, &InternalError{Op: "Merger.Solve", Msg: err.Error()}
		}

		oracle := spt.New(workIGP)
		reqdag.CompleteDag(dag, workIGP, dest, oracle, skip)

		if !reqdag.Solvable(dag, dest) {
			m.opts.Logger.Warn("skipping unsolvable requirement", "dest", dest)
			return nil, nil
		}

		order, err := toposort.ReverseSort(dag)
		if err != nil {
			m.opts.Logger.Warn("skipping unsolvable requirement", "dest", dest, "error", err)
			return nil, nil
		}

		return m.solveDestination(workIGP, oracle, dag, dest, order), nil
	}

	perDest, errs := runDestinations(dests, m.opts.Parallel, solveOne)

	var out []lsa.LSA
	for i, err := range errs {
		if err != nil {
			return nil, err
		}
		out = append(out, perDest[i]...)
	}

	return out, nil
}

func (m *Merger) solveDestination(igp *igpgraph.Graph, oracle *spt.Oracle, dag *reqdag.DAG, dest string, order []string) []lsa.LSA {
	var attracted []attractedNode
	for _, node := range order {
		if node == dest {
			continue
		}
		req := dag.Successors(node)
		orig := sortedSet(oracle.NextHops(node, dest))
		if classify(req, orig) == classUnchanged {
			continue
		}
		attracted = append(attracted, attractedNode{node: node, req: req})
	}
	if len(attracted) == 0 {
		return nil
	}

	attractedAll := make(map[string]bool, len(attracted))
	for _, a := range attracted {
		attractedAll[a.node] = true
	}

	single, multi := buildCandidates(attracted, dest, oracle)

	var result []lsa.LSA
	for _, a := range multi {
		m.opts.Logger.Debug("ECMP-restrict survivor set too wide for one phantom, falling back to local overrides", "dest", dest, "node", a.node)
		for _, nh := range a.req {
			result = append(result, lsa.Local{Node: a.node, NextHop: nh, Dest: dest})
		}
	}

	groups := groupByForwardingAddress(single)
	for _, fwd := range sortedGroupKeys(groups) {
		result = append(result, m.resolveGroup(igp, oracle, groups[fwd], fwd, dest, attractedAll)...)
	}

	sort.Slice(result, func(i, j int) bool {
		ri, rj := result[i].Record(), result[j].Record()
		if ri.Node != rj.Node {
			return ri.Node < rj.Node
		}

		return ri.NHOrFwd < rj.NHOrFwd
	})

	return result
}

// resolveGroup computes a per-node cost for every candidate sharing fwd,
// demotes to local overrides any member with no positive costPhantom,
// then tries to actually merge the remainder: one valid member at a time
// is promoted to a representative Global LSA, and every other member
// whose own shortest path now transits that phantom for free (spec.md
// §4.5's "a single global LSA... serves all attracted routers") needs no
// LSA of its own at all. A representative that would perturb a
// spectator's next-hop set is demoted to Local instead, and the process
// continues with whoever is left.
func (m *Merger) resolveGroup(igp *igpgraph.Graph, oracle *spt.Oracle, cands []candidate, fwd, dest string, attractedAll map[string]bool) []lsa.LSA {
	var out []lsa.LSA

	var remaining []attraction
	for _, c := range cands {
		req := map[string]bool{c.nh: true}
		att := resolveCost(igp, oracle, c.node, c.nh, fwd, dest, req)
		if att.cost < 0 {
			out = append(out, lsa.Local{Node: c.node, NextHop: c.nh, Dest: dest})
			continue
		}
		remaining = append(remaining, att)
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i].node < remaining[j].node })

	var committed []attraction
	for len(remaining) > 0 {
		rep := remaining[0]
		remaining = remaining[1:]

		trial := append(append([]attraction{}, committed...), rep)
		aug, err := augmentWithGroup(igp, trial, dest)
		if err != nil {
			out = append(out, lsa.Local{Node: rep.node, NextHop: rep.nh, Dest: dest})
			continue
		}
		augOracle := spt.New(aug)

		if !spectatorsUnaffected(igp, oracle, augOracle, dest, attractedAll) {
			out = append(out, lsa.Local{Node: rep.node, NextHop: rep.nh, Dest: dest})
			continue
		}

		committed = trial

		var stillNeeded []attraction
		for _, c := range remaining {
			if sameSet(sortedSet(augOracle.NextHops(c.node, dest)), []string{c.nh}) {
				continue // absorbed: c's own shortest path now transits rep's phantom unaided
			}
			stillNeeded = append(stillNeeded, c)
		}
		remaining = stillNeeded
	}

	for _, a := range committed {
		out = append(out, lsa.Global{Node: a.node, NextHop: a.nh, Cost: a.cost, Dest: a.dest})
	}

	return out
}

func sortedGroupKeys(groups map[string][]candidate) []string {
	out := make([]string, 0, len(groups))
	for k := range groups {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
