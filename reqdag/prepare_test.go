package reqdag

import (
	"testing"

	"github.com/edgarcosta92/fibbing/igpgraph"
	"github.com/edgarcosta92/fibbing/spt"
)

// trapezoid is a one-directional Gadgets.Trapezoid from
// tests/test_merger.py: R1 reaches D through E1 (cost 110) or through R2
// and E2 (cost 120).
func trapezoid(t *testing.T) *igpgraph.Graph {
	t.Helper()
	g := igpgraph.New()
	edges := [][3]interface{}{
		{"R1", "E1", int64(100)},
		{"R1", "R2", int64(100)},
		{"R2", "E2", int64(10)},
		{"E1", "D", int64(10)},
		{"E2", "D", int64(10)},
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e[0].(string), e[1].(string), e[2].(int64)); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}
	if err := g.AddDestination("D"); err != nil {
		t.Fatal(err)
	}

	return g
}

func TestAddDestToDAGGraftsSinks(t *testing.T) {
	dag := FromEdges([][2]string{{"R1", "E1"}})
	AddDestToDAG(dag, "D")

	if got := dag.Successors("E1"); len(got) != 1 || got[0] != "D" {
		t.Fatalf("expected E1 -> D, got %v", got)
	}
}

func TestAddDestToDAGNoopWhenPresent(t *testing.T) {
	dag := FromEdges([][2]string{{"R1", "D"}})
	AddDestToDAG(dag, "D")

	if got := dag.Successors("R1"); len(got) != 1 || got[0] != "D" {
		t.Fatalf("expected unchanged R1 -> D, got %v", got)
	}
}

func TestAddDestToIGPNoopWhenPresent(t *testing.T) {
	igp := trapezoid(t)
	dag := FromEdges([][2]string{{"E1", "D"}, {"E2", "D"}})

	if err := AddDestToIGP(igp, dag, "D", DefaultNewEdgeMetric); err != nil {
		t.Fatal(err)
	}
	if !igp.IsDestination("D") {
		t.Fatal("D should remain a destination")
	}
}

func TestAddDestToIGPGrafts(t *testing.T) {
	igp := igpgraph.New()
	if _, err := igp.AddEdge("R1", "E1", 100); err != nil {
		t.Fatal(err)
	}
	dag := FromEdges([][2]string{{"E1", "D"}})

	if err := AddDestToIGP(igp, dag, "D", DefaultNewEdgeMetric); err != nil {
		t.Fatal(err)
	}
	if !igp.HasEdge("E1", "D") {
		t.Fatal("expected grafted edge E1 -> D")
	}
	if !igp.IsDestination("D") {
		t.Fatal("expected D marked as destination")
	}
	m, ok := igp.Metric("E1", "D")
	if !ok || m != DefaultNewEdgeMetric {
		t.Fatalf("expected grafted metric %d, got %d", DefaultNewEdgeMetric, m)
	}
}

func TestCompleteDagFillsFromOracle(t *testing.T) {
	igp := trapezoid(t)
	oracle := spt.New(igp)

	dag := FromEdges([][2]string{{"R2", "E2"}})
	skip := map[string]bool{"R2": true}
	CompleteDag(dag, igp, "D", oracle, skip)

	if !dag.HasNode("E1") {
		t.Fatal("expected E1 completed into dag")
	}
	if got := dag.Successors("E1"); len(got) != 1 || got[0] != "D" {
		t.Fatalf("expected E1 -> D from IGP default, got %v", got)
	}
	if got := dag.Successors("R1"); len(got) != 1 || got[0] != "E1" {
		t.Fatalf("expected R1 -> E1 as IGP default next hop, got %v", got)
	}
	if got := dag.Successors("R2"); len(got) != 1 || got[0] != "E2" {
		t.Fatalf("expected R2 -> E2 unchanged by skip, got %v", got)
	}
}

func TestSolvableDetectsDeadEnd(t *testing.T) {
	dag := FromEdges([][2]string{{"R1", "E1"}})
	dag.ensure("Orphan")

	if Solvable(dag, "D") {
		t.Fatal("expected unsolvable: Orphan has no successor")
	}
}

func TestSolvableDetectsCycle(t *testing.T) {
	dag := FromEdges([][2]string{{"R1", "R2"}, {"R2", "R1"}})

	if Solvable(dag, "D") {
		t.Fatal("expected unsolvable: cycle between R1 and R2")
	}
}

func TestSolvableAcceptsCompleteDag(t *testing.T) {
	igp := trapezoid(t)
	oracle := spt.New(igp)

	dag := FromEdges([][2]string{{"E1", "D"}, {"E2", "D"}})
	CompleteDag(dag, igp, "D", oracle, map[string]bool{})
	AddDestToDAG(dag, "D")

	if !Solvable(dag, "D") {
		t.Fatal("expected a fully completed trapezoid DAG to be solvable")
	}
}
