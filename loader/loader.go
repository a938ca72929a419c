// SPDX-License-Identifier: MIT
// Package: evroute/loader
//
// loader.go — Load / LoadFile and the per-record parsers.
//
// Contract:
//   - Reads exactly 1 + N + N records, then accepts only empty lines.
//   - Fails fast with a *LoadError; never returns a partial graph.
//   - The file opened by LoadFile is closed on every exit path.

package loader

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/evroute/roadgraph"
)

const (
	fieldSep = "." // label.flag
	edgeSep  = "," // token,token
	pairSep  = ":" // dst:weight

	flagStation = "1"
	flagPlain   = "0"

	initialNodeCap = 1024
)

// LoadFile opens path and loads the graph it describes.
func LoadFile(path string, opts ...Option) (*roadgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: KindUnreadable, Input: path, Err: err}
	}
	defer f.Close()

	return Load(f, opts...)
}

// Load parses a graph description from r.
//
// Implementation:
//   - Stage 1: Resolve options.
//   - Stage 2: Read the count line and N node lines (labels, station flags).
//   - Stage 3: Read N edge lines, resolving each destination against [0, N).
//   - Stage 4: Reject trailing non-empty data and hand the arena to roadgraph.New.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - *LoadError for every input problem (see Kind).
//
// Complexity:
//   - Time O(bytes), Space O(V+E).
func Load(r io.Reader, opts ...Option) (*roadgraph.Graph, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	lr := newLineReader(r, cfg.MaxLineBytes)

	// 2) Node count.
	n, err := readCount(lr, cfg.MaxNodes)
	if err != nil {
		return nil, err
	}

	// 3) Node lines. Capacity grows with the input, not with the declared count.
	nodes := make([]roadgraph.Node, 0, min(n, initialNodeCap))
	var i int
	for i = 0; i < n; i++ {
		line, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &LoadError{Kind: KindMissingNode, Line: lr.line + 1,
				Err: fmt.Errorf("expected %d node lines, found %d", n, i)}
		}
		nd, err := parseNode(line, i, lr.line)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, nd)
	}

	// 4) Edge lines, one per node in the same order.
	for i = 0; i < n; i++ {
		line, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			// A scanner never yields the empty line after a final newline,
			// so EOF in place of the last edge line reads as zero edges.
			if i == n-1 {
				break
			}
			return nil, &LoadError{Kind: KindMissingEdges, Line: lr.line + 1,
				Err: fmt.Errorf("expected %d edge lines, found %d", n, i)}
		}
		if nodes[i].Edges, err = parseEdges(line, n, lr.line); err != nil {
			return nil, err
		}
	}

	// 5) Only blank lines may follow.
	for {
		line, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if strings.TrimSpace(line) != "" {
			return nil, &LoadError{Kind: KindTrailingData, Line: lr.line, Input: line}
		}
	}

	g, err := roadgraph.New(nodes)
	if err != nil {
		// roadgraph.New re-checks the invariants the parsers already enforced.
		return nil, fmt.Errorf("loader: %w", err)
	}

	return g, nil
}

// readCount parses line 1 as a node count in [0, maxNodes].
func readCount(lr *lineReader, maxNodes int) (int, error) {
	line, ok, err := lr.next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &LoadError{Kind: KindMalformedCount, Line: 1, Err: io.ErrUnexpectedEOF}
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, &LoadError{Kind: KindMalformedCount, Line: lr.line, Input: line, Err: err}
	}
	if n < 0 {
		return 0, &LoadError{Kind: KindMalformedCount, Line: lr.line, Input: line,
			Err: fmt.Errorf("node count %d is negative", n)}
	}
	if n > maxNodes {
		return 0, &LoadError{Kind: KindMalformedCount, Line: lr.line, Input: line,
			Err: fmt.Errorf("%w: %d > %d", ErrTooManyNodes, n, maxNodes)}
	}

	return n, nil
}

// parseNode decodes "label.flag".
func parseNode(line string, index, lineNo int) (roadgraph.Node, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) != 2 {
		return roadgraph.Node{}, &LoadError{Kind: KindMalformedNode, Line: lineNo, Input: line,
			Err: fmt.Errorf("want exactly one %q separator, found %d", fieldSep, len(parts)-1)}
	}
	if parts[0] == "" {
		return roadgraph.Node{}, &LoadError{Kind: KindMalformedNode, Line: lineNo, Input: line,
			Err: roadgraph.ErrEmptyLabel}
	}

	var station bool
	switch strings.TrimSpace(parts[1]) {
	case flagStation:
		station = true
	case flagPlain:
		station = false
	default:
		return roadgraph.Node{}, &LoadError{Kind: KindMalformedNode, Line: lineNo, Input: line,
			Err: fmt.Errorf("station flag %q is not %s or %s", parts[1], flagPlain, flagStation)}
	}

	return roadgraph.Node{Index: index, Label: parts[0], Station: station}, nil
}

// parseEdges decodes "dst:weight,dst:weight,..." for a graph of n nodes.
// A fully empty line yields no edges.
func parseEdges(line string, n, lineNo int) ([]roadgraph.Edge, error) {
	if line == "" {
		return nil, nil
	}

	tokens := strings.Split(line, edgeSep)
	edges := make([]roadgraph.Edge, 0, len(tokens))
	for _, tok := range tokens {
		e, err := parseEdge(tok, n, lineNo)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	return edges, nil
}

// parseEdge decodes a single "dst:weight" token.
func parseEdge(tok string, n, lineNo int) (roadgraph.Edge, error) {
	pair := strings.Split(tok, pairSep)
	if len(pair) != 2 {
		return roadgraph.Edge{}, &LoadError{Kind: KindMalformedEdge, Line: lineNo, Input: tok,
			Err: fmt.Errorf("want exactly one %q separator, found %d", pairSep, len(pair)-1)}
	}

	to, err := strconv.Atoi(strings.TrimSpace(pair[0]))
	if err != nil {
		return roadgraph.Edge{}, &LoadError{Kind: KindMalformedEdge, Line: lineNo, Input: tok, Err: err}
	}
	if to < 0 || to >= n {
		return roadgraph.Edge{}, &LoadError{Kind: KindDestOutOfRange, Line: lineNo, Input: tok,
			Err: fmt.Errorf("destination %d not in [0,%d)", to, n)}
	}

	w, err := strconv.ParseFloat(strings.TrimSpace(pair[1]), 64)
	if err != nil {
		return roadgraph.Edge{}, &LoadError{Kind: KindBadWeight, Line: lineNo, Input: tok, Err: err}
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return roadgraph.Edge{}, &LoadError{Kind: KindBadWeight, Line: lineNo, Input: tok,
			Err: roadgraph.ErrBadWeight}
	}
	if w < 0 {
		return roadgraph.Edge{}, &LoadError{Kind: KindNegativeWeight, Line: lineNo, Input: tok,
			Err: roadgraph.ErrNegativeWeight}
	}

	return roadgraph.Edge{To: to, Weight: w}, nil
}

// lineReader yields lines with their trailing '\r' removed and tracks the line number.
type lineReader struct {
	sc   *bufio.Scanner
	line int // number of the last line returned
}

func newLineReader(r io.Reader, maxLine int) *lineReader {
	sc := bufio.NewScanner(r)
	initial := 64 * 1024
	if maxLine < initial {
		initial = maxLine
	}
	sc.Buffer(make([]byte, 0, initial), maxLine)

	return &lineReader{sc: sc}
}

// next returns the next line; ok is false at end of input.
// Read failures (including over-long lines) surface as KindUnreadable.
func (lr *lineReader) next() (string, bool, error) {
	if !lr.sc.Scan() {
		if err := lr.sc.Err(); err != nil {
			return "", false, &LoadError{Kind: KindUnreadable, Line: lr.line + 1, Err: err}
		}
		return "", false, nil
	}
	lr.line++

	return strings.TrimSuffix(lr.sc.Text(), "\r"), true, nil
}
