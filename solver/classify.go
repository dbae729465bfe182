package solver

// class is a non-destination node's relationship between its required
// successors and the IGP's own ECMP next-hop set, per spec.md §4.5.
type class int

const (
	// classUnchanged means req(node) == N*(node,dest): the IGP already
	// does the right thing, no LSA needed.
	classUnchanged class = iota
	// classRestrictECMP means req is a strict, non-empty subset of
	// N*(node,dest): the unwanted equal-cost next hops must be
	// suppressed.
	classRestrictECMP
	// classDivert means at least one required next hop is not in
	// N*(node,dest): a strictly shorter path must be manufactured.
	classDivert
)

// classify compares req and orig, both already sorted ascending.
func classify(req, orig []string) class {
	if sameSet(req, orig) {
		return classUnchanged
	}
	if isSubset(req, orig) {
		return classRestrictECMP
	}

	return classDivert
}
