// Package reqdag implements the per-destination requirement DAG type and
// the preparation steps spec.md §4.3 describes: grafting the destination
// into both the DAG and the IGP graph, then completing the DAG with the
// IGP's own default next hops wherever the requirement is silent.
package reqdag
