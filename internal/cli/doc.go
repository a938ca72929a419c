// SPDX-License-Identifier: MIT
// Package cli wires the evroute core into a console program: configuration
// (flags and an optional YAML file), structured logging, the interactive
// prompt, output selection and process exit codes.
//
// Flow:
//
//	flags/YAML ─▶ Config ─▶ loader.LoadFile ─▶ prompt (source, display-all)
//	          ─▶ dijkstra.ShortestPaths ─▶ report.Build ─▶ text | json
//
// Exit codes:
//
//	ExitOK        (0) success
//	ExitLoadError (1) the graph file could not be loaded; nothing is printed to stdout
//	ExitUsage     (2) bad flags, bad config, bad source index or an empty graph
//	ExitNoInput   (3) the prompt ran out of input
package cli
