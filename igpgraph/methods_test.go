package igpgraph

import "testing"

func TestAddEdgeParallel(t *testing.T) {
	g := New()
	if _, err := g.AddEdge("R1", "R2", 10); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge("R1", "R2", 4); err != nil {
		t.Fatal(err)
	}
	m, ok := g.Metric("R1", "R2")
	if !ok || m != 4 {
		t.Errorf("expected min metric 4, got %d (ok=%v)", m, ok)
	}
}

func TestAddEdgeRejectsNonPositiveMetric(t *testing.T) {
	g := New()
	if _, err := g.AddEdge("R1", "R2", 0); err != ErrNonPositiveMetric {
		t.Errorf("expected ErrNonPositiveMetric, got %v", err)
	}
	if _, err := g.AddEdge("R1", "R2", -5); err != ErrNonPositiveMetric {
		t.Errorf("expected ErrNonPositiveMetric, got %v", err)
	}
}

func TestDestinationIsSink(t *testing.T) {
	g := New()
	if err := g.AddDestination("D"); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge("D", "R1", 1); err != ErrDestinationIsSink {
		t.Errorf("expected ErrDestinationIsSink, got %v", err)
	}
	// Incoming edges toward a destination are fine.
	if _, err := g.AddEdge("R1", "D", 1); err != nil {
		t.Errorf("unexpected error adding edge into destination: %v", err)
	}
}

func TestSuccessorsPredecessors(t *testing.T) {
	g := New()
	mustAdd(t, g, "A", "B", 1)
	mustAdd(t, g, "A", "C", 1)
	mustAdd(t, g, "B", "C", 1)

	succ := g.Successors("A")
	if len(succ) != 2 || succ[0] != "B" || succ[1] != "C" {
		t.Errorf("unexpected successors: %v", succ)
	}
	pred := g.Predecessors("C")
	if len(pred) != 2 || pred[0] != "A" || pred[1] != "B" {
		t.Errorf("unexpected predecessors: %v", pred)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := New()
	mustAdd(t, g, "A", "B", 5)

	clone := g.Clone()
	if _, err := clone.AddEdge("B", "C", 1); err != nil {
		t.Fatal(err)
	}
	if g.HasEdge("B", "C") {
		t.Errorf("mutating the clone must not affect the original graph")
	}
}

func mustAdd(t *testing.T, g *Graph, from, to string, metric int64) {
	t.Helper()
	if _, err := g.AddEdge(from, to, metric); err != nil {
		t.Fatalf("AddEdge(%s,%s,%d): %v", from, to, metric, err)
	}
}
