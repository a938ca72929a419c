// SPDX-License-Identifier: MIT
// Package: evroute/report
//
// path.go — predecessor walks and charging-station selection.

package report

import (
	"fmt"
	"math"

	"github.com/katalvlaran/evroute/dijkstra"
	"github.com/katalvlaran/evroute/roadgraph"
)

// ReconstructPath returns the node indices from the source to node, following prev.
//
// Implementation:
//   - Stage 1: Walk prev backwards from node until NoPredecessor, collecting indices.
//   - Stage 2: Reverse the collected indices into source → node order.
//
// For the source itself the path is [node]. For an unreached node the walk also
// stops immediately, so callers must check reachability first (Build does).
//
// Errors:
//   - ErrIndexOutOfRange if node is outside prev.
//   - ErrConsistency if the walk revisits more than len(prev) nodes (a cycle)
//     or meets a predecessor outside prev.
//
// Complexity:
//   - Time O(path length), Space O(path length).
func ReconstructPath(prev []int, node int) ([]int, error) {
	if node < 0 || node >= len(prev) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, node, len(prev))
	}

	// 1) Walk back; a forest rooted at the source never needs more than len(prev) steps.
	path := []int{node}
	for cur := node; prev[cur] != dijkstra.NoPredecessor; {
		p := prev[cur]
		if p < 0 || p >= len(prev) {
			return nil, fmt.Errorf("%w: predecessor %d of node %d not in [0,%d)", ErrConsistency, p, cur, len(prev))
		}
		if len(path) >= len(prev) {
			return nil, fmt.Errorf("%w: predecessor cycle reached from node %d", ErrConsistency, node)
		}
		path = append(path, p)
		cur = p
	}

	// 2) Reverse to source → node.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// NearestChargingStation returns the station with the smallest finite distance.
// ok is false when g has no station or none is reachable.
func NearestChargingStation(g *roadgraph.Graph, dist []float64) (station int, ok bool, err error) {
	if g == nil {
		return 0, false, ErrNilInput
	}
	if len(dist) != g.NodeCount() {
		return 0, false, fmt.Errorf("%w: %d distances for %d nodes", ErrConsistency, len(dist), g.NodeCount())
	}

	best := math.Inf(1)
	station = -1
	for _, s := range g.Stations() { // ascending, so strict < keeps the first on ties
		if dist[s] < best {
			best, station = dist[s], s
		}
	}
	if station < 0 {
		return 0, false, nil
	}

	return station, true, nil
}
