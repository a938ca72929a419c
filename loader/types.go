// SPDX-License-Identifier: MIT
// Package: evroute/loader
//
// types.go — load error kinds, sentinels, LoadError and options.

package loader

import (
	"errors"
	"fmt"
)

// Kind classifies a load failure.
type Kind int

// Load failure kinds, in the order the loader can encounter them.
const (
	KindUnreadable Kind = iota + 1
	KindMalformedCount
	KindMissingNode
	KindMalformedNode
	KindMissingEdges
	KindMalformedEdge
	KindDestOutOfRange
	KindBadWeight
	KindNegativeWeight
	KindTrailingData
)

// Sentinel errors, one per Kind. A *LoadError unwraps to the sentinel of its Kind.
var (
	ErrUnreadable      = errors.New("loader: source unreadable")
	ErrMalformedCount  = errors.New("loader: malformed node count line")
	ErrMissingNode     = errors.New("loader: missing node line")
	ErrMalformedNode   = errors.New("loader: malformed node line")
	ErrMissingEdges    = errors.New("loader: missing edge line")
	ErrMalformedEdge   = errors.New("loader: malformed edge token")
	ErrDestOutOfRange  = errors.New("loader: destination index out of range")
	ErrBadWeight       = errors.New("loader: unparseable edge weight")
	ErrNegativeWeight  = errors.New("loader: negative edge weight")
	ErrTrailingData    = errors.New("loader: unexpected data after last edge line")
	ErrTooManyNodes    = errors.New("loader: node count exceeds limit")
	ErrOptionViolation = errors.New("loader: invalid option supplied")
)

var kindSentinels = map[Kind]error{
	KindUnreadable:     ErrUnreadable,
	KindMalformedCount: ErrMalformedCount,
	KindMissingNode:    ErrMissingNode,
	KindMalformedNode:  ErrMalformedNode,
	KindMissingEdges:   ErrMissingEdges,
	KindMalformedEdge:  ErrMalformedEdge,
	KindDestOutOfRange: ErrDestOutOfRange,
	KindBadWeight:      ErrBadWeight,
	KindNegativeWeight: ErrNegativeWeight,
	KindTrailingData:   ErrTrailingData,
}

var kindNames = map[Kind]string{
	KindUnreadable:     "unreadable source",
	KindMalformedCount: "malformed count line",
	KindMissingNode:    "missing node line",
	KindMalformedNode:  "malformed node line",
	KindMissingEdges:   "missing edge line",
	KindMalformedEdge:  "malformed edge token",
	KindDestOutOfRange: "destination out of range",
	KindBadWeight:      "unparseable weight",
	KindNegativeWeight: "negative weight",
	KindTrailingData:   "trailing data",
}

// String returns the human-readable name of k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinel returns the package-level error matching k, or nil for an unknown Kind.
func (k Kind) Sentinel() error { return kindSentinels[k] }

// LoadError reports why a load was aborted.
type LoadError struct {
	// Kind classifies the failure.
	Kind Kind

	// Line is the 1-based line number, or 0 when no line applies
	// (e.g. the source could not be opened).
	Line int

	// Input is the offending line or token, if any.
	Input string

	// Err is the underlying cause, if any (I/O or strconv error).
	Err error
}

// Error formats the failure as "loader: line <n>: <kind>: <input>: <cause>".
func (e *LoadError) Error() string {
	msg := "loader: "
	if e.Line > 0 {
		msg += fmt.Sprintf("line %d: ", e.Line)
	}
	msg += e.Kind.String()
	if e.Input != "" {
		msg += fmt.Sprintf(" %q", e.Input)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes both the Kind sentinel and the cause to errors.Is / errors.As.
func (e *LoadError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.Sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

// Defaults for Options.
const (
	DefaultMaxNodes     = 1 << 20
	DefaultMaxLineBytes = 1 << 20
)

// Option configures a load via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Load.
type Option func(*Options)

// Options holds the resolved load parameters.
type Options struct {
	// MaxNodes bounds the declared node count N.
	MaxNodes int

	// MaxLineBytes bounds the length of any single line.
	MaxLineBytes int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultMaxNodes and DefaultMaxLineBytes.
func DefaultOptions() Options {
	return Options{
		MaxNodes:     DefaultMaxNodes,
		MaxLineBytes: DefaultMaxLineBytes,
	}
}

// WithMaxNodes caps the node count; n must be ≥ 0.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxNodes cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxNodes = n
	}
}

// WithMaxLineBytes caps the length of a single line; n must be > 0.
func WithMaxLineBytes(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxLineBytes must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLineBytes = n
	}
}
