// SPDX-License-Identifier: MIT
// Package: evroute/roadgraph
//
// types.go — Node, Edge, Graph, Stats and sentinel errors.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (node index, edge position) is attached with %w at the call site.

package roadgraph

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrIndexOutOfRange indicates a node index outside [0, NodeCount()).
	ErrIndexOutOfRange = errors.New("roadgraph: node index out of range")

	// ErrIndexMismatch indicates a Node whose Index does not equal its position.
	ErrIndexMismatch = errors.New("roadgraph: node index does not match position")

	// ErrEmptyLabel indicates a Node with an empty Label.
	ErrEmptyLabel = errors.New("roadgraph: node label is empty")

	// ErrDanglingEdge indicates an Edge whose destination is not a node of the graph.
	ErrDanglingEdge = errors.New("roadgraph: edge destination does not exist")

	// ErrNegativeWeight indicates an Edge with a weight below zero.
	ErrNegativeWeight = errors.New("roadgraph: negative edge weight")

	// ErrBadWeight indicates an Edge weight that is NaN or ±Inf.
	ErrBadWeight = errors.New("roadgraph: edge weight is not a finite number")
)

// Edge is a directed, weighted connection owned by its source node.
type Edge struct {
	// To is the destination node index.
	To int

	// Weight is the non-negative travel cost of the edge.
	Weight float64
}

// Node is a labeled location in the road network.
type Node struct {
	// Index is the node's stable position in the graph.
	Index int

	// Label is the human-readable name used for display. It need not be unique.
	Label string

	// Station marks the node as a charging station.
	Station bool

	// Edges lists outgoing edges in declaration order.
	Edges []Edge
}

// Graph owns every node and, through them, every edge.
// The zero value is an empty graph with no nodes.
type Graph struct {
	nodes    []Node
	edges    int   // total edge count, cached by New
	stations []int // ascending station indices, cached by New
}

// Stats is a compact summary of a Graph, used for diagnostics.
type Stats struct {
	Nodes    int // number of nodes
	Edges    int // number of directed edges
	Stations int // number of charging stations
}
