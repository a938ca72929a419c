// SPDX-License-Identifier: MIT
// Package loader parses the line-oriented road network description into a
// validated *roadgraph.Graph.
//
// Format (ASCII/UTF-8, one record per line):
//
//	<N>
//	<label_0>.<0|1>
//	...
//	<label_(N-1)>.<0|1>
//	<dst>:<weight>,<dst>:<weight>,...      (edges of node 0)
//	...
//	<dst>:<weight>,...                     (edges of node N-1)
//
// Rules:
//
//   - Line 1 is a non-negative integer node count N.
//   - Node lines split on '.' into exactly a non-empty label and a flag
//     ('1' marks a charging station, '0' does not). Labels cannot contain '.'.
//   - Edge lines split on ',' into tokens, each token on ':' into a destination
//     index in [0, N) and a finite, non-negative weight (integer or fractional).
//   - A fully empty edge line declares zero edges; an empty token inside a
//     non-empty line (e.g. a trailing comma) is malformed.
//   - The last node's edge line may be omitted when it is empty: input that
//     ends right after node N-2's edges gives node N-1 zero edges. Any other
//     missing edge line is an error.
//   - A trailing '\r' is stripped from every line; numeric fields are trimmed.
//   - After the 2N+1 records only empty lines may follow.
//
// Error handling:
//
// Loading fails fast on the first problem and never returns a partial graph.
// Every failure is a *LoadError that names its Kind, the 1-based line and the
// offending input. LoadError unwraps to the kind's sentinel and to the cause:
//
//	g, err := loader.LoadFile("network.txt")
//	if errors.Is(err, loader.ErrDestOutOfRange) { ... }
//	var le *loader.LoadError
//	if errors.As(err, &le) { fmt.Println(le.Kind, le.Line) }
//
// Options:
//
//   - WithMaxNodes(n):     upper bound on N (default DefaultMaxNodes).
//   - WithMaxLineBytes(n): longest accepted line (default DefaultMaxLineBytes).
//
// Complexity:
//
//   - Time O(bytes), Space O(V + E).
package loader
