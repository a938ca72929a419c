// SPDX-License-Identifier: MIT
// Package: evroute/internal/cli
//
// run.go — the program body, returning a process exit code.

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/katalvlaran/evroute/dijkstra"
	"github.com/katalvlaran/evroute/loader"
	"github.com/katalvlaran/evroute/report"
)

// Exit codes returned by Run.
const (
	ExitOK        = 0
	ExitLoadError = 1
	ExitUsage     = 2
	ExitNoInput   = 3
)

// Run executes one query and returns the process exit code.
// args excludes the program name.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// 1) Configuration.
	cfg, err := ParseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintln(stderr, "evroute:", err)
		return ExitUsage
	}

	log, err := NewLogger(stderr, cfg.Log, isTerminal(stderr))
	if err != nil {
		fmt.Fprintln(stderr, "evroute:", err)
		return ExitUsage
	}

	// 2) Load; any failure aborts with no partial output.
	g, err := loader.LoadFile(cfg.Graph, loader.WithMaxNodes(cfg.MaxNodes))
	if err != nil {
		// The diagnostic reaches stderr at every log level; the event adds
		// the structured fields for log consumers.
		fmt.Fprintln(stderr, "evroute:", err)
		ev := log.Error().Err(err).Str("graph", cfg.Graph)
		var le *loader.LoadError
		if errors.As(err, &le) {
			ev = ev.Str("kind", le.Kind.String()).Int("line", le.Line)
		}
		ev.Msg("cannot load graph")
		return ExitLoadError
	}
	st := g.Stats()
	log.Info().Str("graph", cfg.Graph).Int("nodes", st.Nodes).Int("edges", st.Edges).
		Int("stations", st.Stations).Msg("graph loaded")

	if st.Nodes == 0 {
		log.Error().Str("graph", cfg.Graph).Msg("graph has no nodes; nothing to route")
		return ExitUsage
	}

	// 3) Ask for whatever the configuration left open.
	prompter := NewPrompter(stdin, stdout, isTerminal(stdin), log)
	source, displayAll, code := resolveQuery(cfg, st.Nodes, prompter, log)
	if code != ExitOK {
		return code
	}

	// 4) Compute.
	res, err := dijkstra.ShortestPaths(g, source, dijkstra.WithOnSettle(settleLogger(log)))
	if err != nil {
		log.Error().Err(err).Int("source", source).Msg("shortest paths failed")
		return ExitUsage
	}
	log.Info().Int("source", source).Int("settled", res.Settled()).Msg("shortest paths computed")

	// 5) Report.
	summary, err := report.Build(g, res, displayAll)
	if err != nil {
		log.Error().Err(err).Msg("cannot build report")
		return ExitUsage
	}
	if cfg.Format == FormatJSON {
		err = report.WriteJSON(stdout, summary)
	} else {
		err = report.WriteText(stdout, summary, report.WithProfile(colorProfile(cfg.Color, stdout)))
	}
	if err != nil {
		log.Error().Err(err).Msg("cannot write report")
		return ExitUsage
	}

	return ExitOK
}

// resolveQuery returns the start node and display mode, prompting where the
// configuration is silent.
func resolveQuery(cfg Config, n int, p *Prompter, log zerolog.Logger) (source int, displayAll bool, code int) {
	if cfg.Source != nil {
		source = *cfg.Source
		if source < 0 || source >= n {
			log.Error().Int("source", source).Int("nodes", n).Msg("source index out of range")
			return 0, false, ExitUsage
		}
	} else {
		var err error
		if source, err = p.AskSource(n); err != nil {
			log.Error().Err(err).Msg("no start node given")
			return 0, false, ExitNoInput
		}
	}

	if cfg.DisplayAll != nil {
		return source, *cfg.DisplayAll, ExitOK
	}
	displayAll, err := p.AskYesNo("Display all nodes? Answer n to list charging stations only")
	if err != nil {
		log.Error().Err(err).Msg("no display mode given")
		return 0, false, ExitNoInput
	}

	return source, displayAll, ExitOK
}

// settleLogger emits one debug event per settled node.
func settleLogger(log zerolog.Logger) func(int, float64) {
	if log.GetLevel() > zerolog.DebugLevel {
		return nil
	}
	return func(node int, dist float64) {
		log.Debug().Int("node", node).Float64("dist", dist).Msg("settled")
	}
}

// colorProfile maps the color mode to a termenv profile for w.
func colorProfile(mode string, w io.Writer) termenv.Profile {
	switch mode {
	case ColorAlways:
		return termenv.ANSI256
	case ColorNever:
		return termenv.Ascii
	}
	if !isTerminal(w) {
		return termenv.Ascii
	}

	return termenv.NewOutput(w).EnvColorProfile()
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
