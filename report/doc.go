// SPDX-License-Identifier: MIT
// Package report turns shortest-path tables into paths, a nearest charging
// station recommendation and display records.
//
// Building blocks:
//
//   - ReconstructPath walks a predecessor table back from a node to the source
//     and returns the path in source → node order.
//   - NearestChargingStation picks the station with the smallest finite
//     distance; ties go to the lowest index.
//   - FormatReport emits one Record per charging station, or per node when
//     displayAll is set.
//   - Build runs all three over a dijkstra.Result and returns a Summary.
//
// Rendering:
//
//   - WriteText prints "Label (distance): A -> B -> C" lines and the
//     recommendation, colored through termenv when a profile allows it.
//   - WriteJSON encodes the Summary with goccy/go-json; unreachable distances
//     are encoded as null.
//
// Errors (sentinel):
//
//	ErrIndexOutOfRange - node index outside the tables (matches roadgraph.ErrIndexOutOfRange).
//	ErrConsistency     - tables disagree with the graph or a predecessor cycle was found.
//	ErrNilInput        - a nil graph, result or summary was passed.
package report
