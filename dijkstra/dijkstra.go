// SPDX-License-Identifier: MIT
// Package: evroute/dijkstra
//
// dijkstra.go — the O(V²) greedy relaxation engine.

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/evroute/roadgraph"
)

// ShortestPaths computes distances and predecessors from source to every node of g.
//
// Returns:
//
//   - *Result: Dist[i] is the minimum distance (math.Inf(1) if unreachable);
//     Prev[i] is the predecessor of i on one shortest path, or NoPredecessor
//     if i is the source or unreachable.
//   - err: ErrOptionViolation, ErrNilGraph, ErrIndexOutOfRange or
//     ErrDistanceOverflow.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. source must be in [0, N) (ErrIndexOutOfRange).
//
// Edge weights are guaranteed finite and non-negative by roadgraph.New, so no
// weight pre-scan is needed here. Their sums are not: a relaxation whose
// candidate distance rounds to +Inf aborts the run with ErrDistanceOverflow
// instead of leaving the neighbor looking unreached.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V)
func ShortestPaths(g *roadgraph.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate source is a node of g.
	n := g.NodeCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d not in [0,%d)", ErrIndexOutOfRange, source, n)
	}

	// 4) Run.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{
		Source:  source,
		Dist:    r.dist,
		Prev:    r.prev,
		settled: r.settled,
	}, nil
}

// runner holds the mutable state for a single ShortestPaths execution.
type runner struct {
	g       *roadgraph.Graph // read-only input
	options Options          // resolved options
	dist    []float64        // node index → best known distance
	prev    []int            // node index → predecessor on the best known path
	visited []bool           // node index → distance finalized
	settled int              // number of finalized nodes
}

// init sets dist[*] = +Inf, prev[*] = NoPredecessor, visited[*] = false and dist[source] = 0.
func (r *runner) init(source int) {
	inf := math.Inf(1)
	for i := range r.dist {
		r.dist[i] = inf
		r.prev[i] = NoPredecessor
	}
	r.dist[source] = 0
}

// process repeats up to N rounds of select-then-relax.
//
// Loop termination conditions:
//
//   - N nodes have been settled.
//   - The closest unvisited node is at +Inf (the rest is disconnected).
//   - The closest unvisited node lies beyond MaxDistance.
func (r *runner) process() error {
	for round := 0; round < len(r.dist); round++ {
		// 1) Pick the closest unvisited node.
		u := r.closest()
		if u < 0 {
			return nil
		}

		// 2) Nodes beyond the cap are never finalized; roll back tentative
		//    distances so they read as unreached.
		if r.dist[u] > r.options.MaxDistance {
			r.dropUnsettled()
			return nil
		}

		// 3) Finalize u.
		r.visited[u] = true
		r.settled++
		r.options.OnSettle(u, r.dist[u])

		// 4) Relax its outgoing edges.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// closest returns the unvisited node with the smallest finite distance,
// preferring the lowest index on ties, or -1 if none is reachable.
func (r *runner) closest() int {
	best := -1
	bestDist := math.Inf(1)
	for i, d := range r.dist {
		if r.visited[i] {
			continue
		}
		if d < bestDist { // strict: the first index at the minimum wins
			best, bestDist = i, d
		}
	}

	return best
}

// relax tries to improve every unvisited neighbor of u through u.
// Only a strictly shorter candidate replaces the current distance.
func (r *runner) relax(u int) error {
	du := r.dist[u]
	var overflow error
	// u is a valid index by construction, so ForEachEdge cannot fail here.
	_ = r.g.ForEachEdge(u, func(e roadgraph.Edge) {
		if r.visited[e.To] {
			return
		}
		cand := du + e.Weight
		if math.IsInf(cand, 1) {
			if overflow == nil {
				overflow = fmt.Errorf("%w: %g + %g on edge %d -> %d", ErrDistanceOverflow, du, e.Weight, u, e.To)
			}
			return
		}
		if cand < r.dist[e.To] {
			r.dist[e.To] = cand
			r.prev[e.To] = u
		}
	})

	return overflow
}

// dropUnsettled resets every unvisited node to the unreached state.
func (r *runner) dropUnsettled() {
	inf := math.Inf(1)
	for i := range r.dist {
		if !r.visited[i] {
			r.dist[i] = inf
			r.prev[i] = NoPredecessor
		}
	}
}
