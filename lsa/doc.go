// Package lsa defines the fake link-state advertisement a solver emits:
// a tagged union of a Local announcement (a single preferred next hop)
// and a Global announcement (a phantom node reachable at a specific
// cost through the node's real adjacent next hop). This
// favors the tagged variant spec.md's Design Notes recommend over a
// single flat struct with a cost sentinel, while still offering a Flat
// view for callers that want the literal 4-tuple shape (the validation
// harness, in particular).
package lsa
