// SPDX-License-Identifier: MIT
// Package: evroute/roadgraph
//
// graph.go — construction and read-only queries.
//
// Determinism:
//   - Nodes are returned in index order; edges in declaration order.
//   - Stations() is ascending by index.

package roadgraph

import (
	"fmt"
	"math"
)

// New validates nodes and returns an immutable Graph that owns a deep copy of them.
//
// Implementation:
//   - Stage 1: Check Index/position agreement and labels for every node.
//   - Stage 2: Check every edge destination and weight against [0, N) and [0, +Inf).
//   - Stage 3: Copy nodes and edges into a fresh arena and cache counters.
//
// Errors:
//   - ErrIndexMismatch, ErrEmptyLabel, ErrDanglingEdge, ErrNegativeWeight, ErrBadWeight,
//     each wrapped with the offending node (and edge) position.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func New(nodes []Node) (*Graph, error) {
	n := len(nodes)

	// 1) Node-level invariants.
	var i int
	for i = range nodes {
		if nodes[i].Index != i {
			return nil, fmt.Errorf("node %d: declared index %d: %w", i, nodes[i].Index, ErrIndexMismatch)
		}
		if nodes[i].Label == "" {
			return nil, fmt.Errorf("node %d: %w", i, ErrEmptyLabel)
		}

		// 2) Edge-level invariants.
		for j, e := range nodes[i].Edges {
			if e.To < 0 || e.To >= n {
				return nil, fmt.Errorf("node %d edge %d: destination %d not in [0,%d): %w", i, j, e.To, n, ErrDanglingEdge)
			}
			if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
				return nil, fmt.Errorf("node %d edge %d: weight %v: %w", i, j, e.Weight, ErrBadWeight)
			}
			if e.Weight < 0 {
				return nil, fmt.Errorf("node %d edge %d: weight %v: %w", i, j, e.Weight, ErrNegativeWeight)
			}
		}
	}

	// 3) Deep copy so the caller cannot mutate the graph through its own slices.
	g := &Graph{nodes: make([]Node, n)}
	for i = range nodes {
		g.nodes[i] = Node{
			Index:   i,
			Label:   nodes[i].Label,
			Station: nodes[i].Station,
			Edges:   append([]Edge(nil), nodes[i].Edges...),
		}
		g.edges += len(nodes[i].Edges)
		if nodes[i].Station {
			g.stations = append(g.stations, i)
		}
	}

	return g, nil
}

// NodeCount returns the number of nodes N.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the total number of directed edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Node returns a copy of node i, including a copy of its edge list.
func (g *Graph) Node(i int) (Node, error) {
	if err := g.check(i); err != nil {
		return Node{}, err
	}
	nd := g.nodes[i]
	nd.Edges = append([]Edge(nil), nd.Edges...)

	return nd, nil
}

// Edges returns a copy of node i's outgoing edges in declaration order.
func (g *Graph) Edges(i int) ([]Edge, error) {
	if err := g.check(i); err != nil {
		return nil, err
	}

	return append([]Edge(nil), g.nodes[i].Edges...), nil
}

// Label returns the display label of node i.
func (g *Graph) Label(i int) (string, error) {
	if err := g.check(i); err != nil {
		return "", err
	}

	return g.nodes[i].Label, nil
}

// IsStation reports whether node i is a charging station.
func (g *Graph) IsStation(i int) (bool, error) {
	if err := g.check(i); err != nil {
		return false, err
	}

	return g.nodes[i].Station, nil
}

// Stations returns the indices of all charging stations in ascending order.
func (g *Graph) Stations() []int {
	return append([]int(nil), g.stations...)
}

// Stats returns node, edge and station counts.
func (g *Graph) Stats() Stats {
	return Stats{
		Nodes:    len(g.nodes),
		Edges:    g.edges,
		Stations: len(g.stations),
	}
}

// ForEachEdge calls fn for every outgoing edge of node i in declaration order
// without copying the edge list. fn must not retain the graph's internals.
func (g *Graph) ForEachEdge(i int, fn func(e Edge)) error {
	if err := g.check(i); err != nil {
		return err
	}
	for _, e := range g.nodes[i].Edges {
		fn(e)
	}

	return nil
}

// check bounds-checks a node index.
func (g *Graph) check(i int) error {
	if i < 0 || i >= len(g.nodes) {
		return fmt.Errorf("index %d not in [0,%d): %w", i, len(g.nodes), ErrIndexOutOfRange)
	}

	return nil
}
