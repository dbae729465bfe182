package lsa

// LocalCost is the sentinel cost value a Flat record carries for a Local
// LSA, mirroring ssu.LSA's use of -1 to mean "no explicit cost, prefer
// this next hop" in the original flat representation.
const LocalCost int64 = -1

// LSA is a fake advertisement a solver emits for one destination. It is
// either a Local announcement (node prefers nextHop) or a Global one
// (node advertises a phantom reachable at cost via its real next hop).
type LSA interface {
	isLSA()
	// Record returns the literal spec.md §6 4-tuple shape, for callers
	// (chiefly the validation harness and ospfrender) that want one
	// output type regardless of which variant produced it.
	Record() Flat
}

// Flat is the external output shape: one row per LSA, with Cost ==
// LocalCost for a Local entry and the advertised phantom cost for a
// Global one.
type Flat struct {
	Node    string
	NHOrFwd string
	Dest    string
	Cost    int64
}

// Local announces that Node should simply prefer NextHop towards Dest,
// overriding whatever the unmodified IGP shortest path would have
// chosen. This is the only kind of LSA the simple solver ever emits.
type Local struct {
	Node    string
	NextHop string
	Dest    string
}

func (Local) isLSA() {}

// Record implements LSA.
func (l Local) Record() Flat {
	return Flat{Node: l.Node, NHOrFwd: l.NextHop, Dest: l.Dest, Cost: LocalCost}
}

// Global announces that a phantom is reachable from Node, via Node's own
// real edge to NextHop, at total advertised distance Cost towards Dest:
// the phantom's tail edge makes that distance look shorter than any
// alternative, network-wide, so every router whose own shortest path
// happens to transit Node picks up the same diversion without needing
// its own LSA. Emitted only by the merger solver.
type Global struct {
	Node    string
	NextHop string
	Cost    int64
	Dest    string
}

func (Global) isLSA() {}

// Record implements LSA.
func (g Global) Record() Flat {
	return Flat{Node: g.Node, NHOrFwd: g.NextHop, Dest: g.Dest, Cost: g.Cost}
}

// Records flattens a whole LSA slice, preserving order.
func Records(lsas []LSA) []Flat {
	out := make([]Flat, len(lsas))
	for i, l := range lsas {
		out[i] = l.Record()
	}

	return out
}
