// Package igpgraph implements the weighted directed multigraph that models
// an IGP (link-state, OSPF-style) topology: routers and destination
// prefixes as vertices, positive-metric links as edges.
//
// Graph is the sole mutable type in this package. It supports parallel
// edges between the same ordered pair (routers may be joined by several
// physical links); the metric the shortest-path oracle in package spt sees
// for a pair is the minimum over all parallel edges, per spec.md §4.1.
//
// Destinations are sinks: once a vertex is marked as a destination via
// AddDestination, AddEdge refuses to add an edge leaving it.
//
// Graph is safe for concurrent use: reads and writes are guarded by a
// sync.RWMutex, in the same style as the teacher's core.Graph.
package igpgraph
