// Package evroute finds the nearest electric-vehicle charging station in a
// road network.
//
// A network is a weighted directed graph loaded from a small line-oriented
// text format. From a chosen origin, evroute computes shortest paths to every
// node and recommends the closest charging station together with the route
// that reaches it.
//
// Under the hood, everything is organized under four packages:
//
//	roadgraph/ — immutable arena graph: nodes, edges by index, station flags
//	loader/    — text format parser with typed, line-accurate load errors
//	dijkstra/  — O(V²) linear-scan shortest paths with distance/predecessor tables
//	report/    — path reconstruction, nearest-station selection, text & JSON output
//
// plus the console program in cmd/evroute (wired by internal/cli).
//
// Quick example of the input format:
//
//	3          node count
//	A.0        label.flag  (1 = charging station)
//	B.0
//	C.1
//	1:5        edges of A: destination:weight, comma separated
//	2:3        edges of B
//	           edges of C (none)
//
// From A this yields distances [0 5 8] and recommends C via A -> B -> C.
package evroute
