package igpgraph

import "errors"

// Sentinel errors for igpgraph operations. Callers should branch on these
// with errors.Is rather than comparing formatted strings.
var (
	// ErrEmptyNodeID indicates an empty node label was supplied.
	ErrEmptyNodeID = errors.New("igpgraph: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a node absent from
	// the graph.
	ErrNodeNotFound = errors.New("igpgraph: node not found")

	// ErrEdgeNotFound indicates an operation referenced an edge ID absent
	// from the graph.
	ErrEdgeNotFound = errors.New("igpgraph: edge not found")

	// ErrNonPositiveMetric indicates an AddEdge call supplied a metric <= 0;
	// spec.md §3 requires metrics to be strictly positive.
	ErrNonPositiveMetric = errors.New("igpgraph: metric must be strictly positive")

	// ErrDestinationIsSink indicates an attempt to add an edge leaving a
	// vertex that has been marked as a destination.
	ErrDestinationIsSink = errors.New("igpgraph: destinations cannot have outgoing edges")
)
