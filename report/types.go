// SPDX-License-Identifier: MIT
// Package: evroute/report
//
// types.go — sentinels, Record and Summary.

package report

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/evroute/roadgraph"
)

// Sentinel errors for report construction.
var (
	// ErrIndexOutOfRange indicates a node index outside the predecessor table.
	ErrIndexOutOfRange = fmt.Errorf("report: %w", roadgraph.ErrIndexOutOfRange)

	// ErrConsistency indicates tables that cannot come from a correct engine run:
	// a predecessor cycle, a dangling predecessor, or a size mismatch with the graph.
	ErrConsistency = errors.New("report: inconsistent shortest-path tables")

	// ErrNilInput indicates a nil graph, result or summary.
	ErrNilInput = errors.New("report: nil input")
)

// PathSeparator joins labels when a path is rendered as text.
const PathSeparator = " -> "

// Record is one display line of a report.
type Record struct {
	// Index is the node index.
	Index int

	// Label is the node's display label.
	Label string

	// Station reports whether the node is a charging station.
	Station bool

	// Distance is the shortest distance from the source (+Inf if unreachable).
	Distance float64

	// Reachable is false when the node cannot be reached from the source.
	Reachable bool

	// Path lists node indices from the source to Index; empty when unreachable.
	Path []int

	// PathLabels mirrors Path with node labels.
	PathLabels []string
}

// Summary is the complete outcome of one query.
type Summary struct {
	// Source is the origin node index.
	Source int

	// SourceLabel is the origin's display label.
	SourceLabel string

	// DisplayAll records whether non-station nodes were included.
	DisplayAll bool

	// Records are ordered by node index.
	Records []Record

	// Nearest is the recommended charging station, or nil when none is reachable.
	Nearest *Record
}
