package solver

import (
	"github.com/edgarcosta92/fibbing/igpgraph"
	"github.com/edgarcosta92/fibbing/lsa"
	"github.com/edgarcosta92/fibbing/reqdag"
	"github.com/edgarcosta92/fibbing/spt"
	"github.com/edgarcosta92/fibbing/toposort"
)

// Simple implements the conservative requirement-to-LSA algorithm
// (spec.md §4.4): per destination, in reverse topological order, emit
// one locally-visible override per required next hop unless the
// required set and the IGP's own next-hop set are the same single next
// hop (equal sets with several members still get overrides). Kept
// deliberately non-selective even when the requirement is a strict
// subset of the IGP's ECMP set, per the spec's own Open Question
// decision — see DESIGN.md.
type Simple struct {
	opts Options
}

// NewSimple builds a Simple solver with the given options (zero value
// valid; see Options).
func NewSimple(opts Options) *Simple {
	return &Simple{opts: opts.withDefaults()}
}

// Solve implements the simple requirement-to-LSA algorithm. igp and reqs
// are never mutated.
func (s *Simple) Solve(igp *igpgraph.Graph, reqs map[string]*reqdag.DAG) ([]lsa.LSA, error) {
	workIGP, workDAGs, skip := prepareAll(igp, reqs)
	dests := sortedDestKeys(reqs)

	solveOne := func(dest string) ([]lsa.LSA, error) {
		dag := workDAGs[dest]
		reqdag.AddDestToDAG(dag, dest)
		if err := reqdag.AddDestToIGP(workIGP, dag, dest, s.opts.NewEdgeMetric); err != nil {
			return nil, &InternalError{Op: "Simple.Solve", Msg: err.Error()}
		}

		oracle := spt.New(workIGP)
		reqdag.CompleteDag(dag, workIGP, dest, oracle, skip)

		if !reqdag.Solvable(dag, dest) {
			s.opts.Logger.Warn("skipping unsolvable requirement", "dest", dest)
			return nil, nil
		}

		order, err := toposort.ReverseSort(dag)
		if err != nil {
			s.opts.Logger.Warn("skipping unsolvable requirement", "dest", dest, "error", err)
			return nil, nil
		}

		var destOut []lsa.LSA
		for _, node := range order {
			if node == dest {
				continue
			}
			req := dag.Successors(node)
			orig := sortedSet(oracle.NextHops(node, dest))
			if len(req) <= 1 && len(orig) <= 1 && sameSet(req, orig) {
				continue
			}
			for _, nh := range req {
				destOut = append(destOut, lsa.Local{Node: node, NextHop: nh, Dest: dest})
			}
		}

		return destOut, nil
	}

	perDest, errs := runDestinations(dests, s.opts.Parallel, solveOne)

	var out []lsa.LSA
	for i, err := range errs {
		if err != nil {
			return nil, err
		}
		out = append(out, perDest[i]...)
	}

	return out, nil
}
