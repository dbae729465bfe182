package spt

import (
	"testing"

	"github.com/edgarcosta92/fibbing/igpgraph"
)

func bidirectional(t *testing.T, g *igpgraph.Graph, a, b string, metric int64) {
	t.Helper()
	if _, err := g.AddEdge(a, b, metric); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge(b, a, metric); err != nil {
		t.Fatal(err)
	}
}

func trapezoid(t *testing.T) *igpgraph.Graph {
	t.Helper()
	g := igpgraph.New()
	bidirectional(t, g, "R1", "E1", 100)
	bidirectional(t, g, "R1", "R2", 100)
	bidirectional(t, g, "R2", "E2", 10)
	bidirectional(t, g, "E1", "D", 10)
	bidirectional(t, g, "E2", "D", 10)

	return g
}

func TestNextHopsSingle(t *testing.T) {
	g := trapezoid(t)
	o := New(g)

	nh := o.NextHops("R1", "D")
	if _, ok := nh["E1"]; !ok || len(nh) != 1 {
		t.Errorf("expected R1's only next hop to D to be E1, got %v", nh)
	}
}

func TestCostAndNoPath(t *testing.T) {
	g := trapezoid(t)
	o := New(g)

	cost, ok := o.Cost("R1", "D")
	if !ok || cost != 110 {
		t.Errorf("expected cost 110, got %d (ok=%v)", cost, ok)
	}

	if _, err := o.DefaultPath("R1", "nowhere"); err == nil {
		t.Errorf("expected NoPathError for unreachable destination")
	}
}

func TestInvalidateRecomputes(t *testing.T) {
	g := trapezoid(t)
	o := New(g)

	_ = o.NextHops("R1", "D") // populate cache

	// Add a much cheaper direct edge and invalidate.
	if _, err := g.AddEdge("R1", "D", 1); err != nil {
		t.Fatal(err)
	}
	o.Invalidate()

	cost, ok := o.Cost("R1", "D")
	if !ok || cost != 1 {
		t.Errorf("expected cost 1 after invalidation, got %d (ok=%v)", cost, ok)
	}
}
