// SPDX-License-Identifier: MIT
// Package dijkstra computes single-source shortest paths over a
// *roadgraph.Graph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPaths returns a Result holding a distance table and a
//     predecessor table, both indexed by node index.
//   - The engine is the classic O(V²) variant: no priority queue, each round
//     performs a linear scan for the closest unvisited node and relaxes its
//     outgoing edges.
//   - Unreached nodes keep Dist = +Inf and Prev = NoPredecessor.
//
// Tie-break policy:
//
//   - Among unvisited nodes at the same minimum distance, the lowest index is
//     settled first (strict "<" during a left-to-right scan).
//   - Relaxation is also strict: an equal-cost alternative never replaces an
//     existing predecessor, so the first path discovered in settle order and
//     edge declaration order wins.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V) for the distance, predecessor and visited tables.
//
// Options:
//
//   - WithMaxDistance(d): nodes farther than d stay unreached (d ≥ 0).
//   - WithOnSettle(fn):   called once per settled node, in settle order.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        the graph pointer is nil.
//   - ErrIndexOutOfRange: the source index is outside [0, N); also matches
//     roadgraph.ErrIndexOutOfRange.
//   - ErrOptionViolation: an option received an invalid value.
//
// Thread safety:
//
//   - A roadgraph.Graph is immutable, so concurrent calls on the same graph are
//     safe. Each call owns its tables exclusively.
package dijkstra
