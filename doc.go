// Package fibbing turns a set of per-destination forwarding requirements
// into the fake OSPF LSAs that make a router's own shortest-path
// computation honor them — a requirement-to-LSA control engine for
// "fibbing" an IGP, without touching the routers' real link weights.
//
// 🚀 What is fibbing?
//
//	A small, thread-safe library that brings together:
//
//	  • igpgraph  — the real, positively-weighted IGP multigraph
//	  • reqdag    — per-destination requirement DAGs, completed and
//	                checked solvable against the IGP
//	  • spt       — shortest-path-tree oracle (ECMP next hops, costs,
//	                all-shortest-paths)
//	  • solver    — Simple (conservative, per-node overrides) and Merger
//	                (ECMP-aware, phantom-node-sharing) requirement-to-LSA
//	                algorithms
//	  • lsa       — the Local/Global LSA output types
//	  • validate  — a forwarding-DAG reconstruction harness for tests
//
// ✨ Why choose it?
//
//   - Correct by construction — every LSA batch is checked against the
//     requirement DAGs it was built from (see validate)
//   - Thread-safe            — igpgraph.Graph is safe under concurrent
//     reads and writes; solver.Options.Parallel fans destinations out
//     over a bounded worker pool
//   - Side-effect-free       — solvers never mutate their inputs; no
//     OSPF wire protocol, no routing daemon, no file I/O
//
// Under the hood, everything is organized under its own subpackages:
//
//	igpgraph/    — the real IGP topology
//	reqdag/      — requirement DAGs: completion, solvability
//	spt/         — shortest-path-tree oracle
//	solver/      — Simple and Merger requirement-to-LSA algorithms
//	lsa/         — LSA output types
//	toposort/    — topological and reverse-topological ordering
//	ospfconfig/  — router/interface configuration records
//	ospfrender/  — LSA -> OSPF interface stanza rendering
//	validate/    — forwarding-DAG reconstruction, for tests
//
// Quick ASCII example — A has ECMP {Y1, Y2} towards D, but the operator
// wants every packet from A to go via Y1:
//
//	A ──Y1── X ──── D
//	└──Y2────┘
//
//	A single Local LSA {Node: "A", NextHop: "Y1", Dest: "D"} makes A
//	prefer Y1 without touching any link's real weight.
//
// See SPEC_FULL.md and DESIGN.md for the full component design and the
// grounding behind each package.
//
//	go get github.com/edgarcosta92/fibbing
package fibbing
