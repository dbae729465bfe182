// Package spt is the shortest-path oracle: given an igpgraph.Graph, answer
// "what are all the equal-cost next hops from u toward d" (the ECMP set
// N*(u,d) of spec.md §3), "what is one concrete shortest path", and "what
// is the shortest-path cost", for any destination reachable in the graph.
//
// The oracle computes, per destination, a single reverse-rooted Dijkstra
// run (spec.md §4.2: "Dijkstra from every source, or reverse-Dijkstra from
// every destination" — this package takes the reverse-Dijkstra option,
// since both solvers query "next hop toward d" for many sources but only
// ever for the destinations named in the requirement map) and caches the
// resulting distance-to-d and ECMP-next-hop-set tables per destination.
// Invalidate must be called after any mutation of the underlying graph;
// the oracle does not observe mutations on its own.
package spt
