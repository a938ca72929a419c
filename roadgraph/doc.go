// SPDX-License-Identifier: MIT
// Package roadgraph defines the immutable road network consumed by the
// loader, the shortest-path engine and the reporter.
//
// A Graph G = (V,E) is stored as a flat arena:
//
//   - Nodes live in a single []Node, addressed by their zero-based Index.
//   - Each Node owns its outgoing []Edge by value, in declaration order.
//   - An Edge refers to its destination strictly by node index, never by pointer.
//
// Invariants (enforced by New):
//
//   - Node.Index == position in the arena; indices are contiguous [0, N).
//   - Node.Label is non-empty.
//   - Every Edge.To resolves to a node of the same graph.
//   - Every Edge.Weight is finite and ≥ 0.
//
// Lifecycle:
//
//	raw nodes ──New──▶ *Graph (read-only) ──▶ dijkstra / report
//
// There is no mutation API. Accessors that expose slices return copies, so a
// Graph can be shared freely once built.
//
// Errors (sentinel):
//
//	ErrIndexOutOfRange - a query referenced an index outside [0, N).
//	ErrIndexMismatch   - Node.Index differs from its position during New.
//	ErrEmptyLabel      - a node was declared without a label.
//	ErrDanglingEdge    - an edge destination is outside [0, N).
//	ErrNegativeWeight  - an edge weight is below zero.
//	ErrBadWeight       - an edge weight is NaN or infinite.
//
// Complexity:
//
//   - New:   O(V + E) time and space.
//   - Node/Edges: O(deg) for the defensive copy; NodeCount/EdgeCount: O(1).
package roadgraph
