package solver

import (
	"github.com/edgarcosta92/fibbing/igpgraph"
	"github.com/edgarcosta92/fibbing/reqdag"
)

// prepareAll clones igp and every requirement DAG so Solve never mutates
// the caller's inputs (§5's documented strengthening over the Python
// original), and returns the skip set complete_dag needs: every
// destination label, so one destination's completion never silently
// grafts edges out of another destination's sink.
func prepareAll(igp *igpgraph.Graph, reqs map[string]*reqdag.DAG) (*igpgraph.Graph, map[string]*reqdag.DAG, map[string]bool) {
	workIGP := igp.Clone()

	workDAGs := make(map[string]*reqdag.DAG, len(reqs))
	skip := make(map[string]bool, len(reqs))
	for d, dag := range reqs {
		workDAGs[d] = dag.Clone()
		skip[d] = true
	}

	return workIGP, workDAGs, skip
}
