// SPDX-License-Identifier: MIT
// Package: evroute/dijkstra
//
// types.go — sentinels, Result and functional options.

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/evroute/roadgraph"
)

// NoPredecessor marks a node with no predecessor: the source or an unreached node.
const NoPredecessor = -1

// Sentinel errors returned by ShortestPaths.
var (
	// ErrNilGraph indicates that a nil *roadgraph.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrIndexOutOfRange indicates a source or query index outside [0, N).
	// Errors carrying it also match roadgraph.ErrIndexOutOfRange.
	ErrIndexOutOfRange = fmt.Errorf("dijkstra: %w", roadgraph.ErrIndexOutOfRange)

	// ErrDistanceOverflow indicates a path length that exceeds the float64 range.
	ErrDistanceOverflow = errors.New("dijkstra: path length overflows float64")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Result holds the tables produced by one ShortestPaths call.
type Result struct {
	// Source is the origin node index.
	Source int

	// Dist[i] is the minimum total weight from Source to i, or +Inf if unreached.
	Dist []float64

	// Prev[i] is the node before i on one shortest path, or NoPredecessor.
	Prev []int

	settled int
}

// Reachable reports whether node i was reached from Source.
// Out-of-range indices are reported as unreachable.
func (r *Result) Reachable(i int) bool {
	return i >= 0 && i < len(r.Dist) && !math.IsInf(r.Dist[i], 1)
}

// Distance returns Dist[i] with a bounds check.
func (r *Result) Distance(i int) (float64, error) {
	if i < 0 || i >= len(r.Dist) {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(r.Dist))
	}

	return r.Dist[i], nil
}

// Settled returns how many nodes were finalized, including the source.
func (r *Result) Settled() int { return r.settled }

// Option configures ShortestPaths via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the resolved engine parameters.
type Options struct {
	// MaxDistance caps exploration; nodes beyond it stay unreached. Default +Inf.
	MaxDistance float64

	// OnSettle is called when a node's distance becomes final.
	OnSettle func(node int, dist float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no distance cap and a no-op settle hook.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
		OnSettle:    func(int, float64) {},
	}
}

// WithMaxDistance stops exploration beyond d. d must be ≥ 0 and not NaN.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if math.IsNaN(d) || d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%v)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithOnSettle registers a callback invoked once per settled node.
func WithOnSettle(fn func(node int, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}
