// SPDX-License-Identifier: MIT
// Package: evroute/internal/cli
//
// flags.go — command-line parsing with defaults < YAML file < explicit flags.

package cli

import (
	"flag"
	"fmt"
	"io"
)

// ParseArgs resolves the configuration from args (without the program name).
// A positional argument is accepted as the graph path when -graph is not set.
func ParseArgs(args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("evroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: evroute [flags] [graph-file]")
		fmt.Fprintln(fs.Output(), "Computes shortest paths from a start node and recommends the nearest charging station.")
		fs.PrintDefaults()
	}

	def := DefaultConfig()
	var (
		configPath = fs.String("config", "", "Path to an optional YAML configuration file")
		graph      = fs.String("graph", "", "Path to the graph description file")
		source     = fs.Int("source", -1, "Start node index; -1 asks at the prompt")
		all        = fs.Bool("all", false, "Display all nodes instead of charging stations only (asked at the prompt when not set)")
		format     = fs.String("format", def.Format, "Output format. Expected values: text / json")
		color      = fs.String("color", def.Color, "Colored text output. Expected values: auto / always / never")
		maxNodes   = fs.Int("max-nodes", def.MaxNodes, "Largest node count accepted from the graph file")
		logLevel   = fs.String("log-level", def.Log.Level, "Log level. Expected values: debug / info / warn / error")
		logFormat  = fs.String("log-format", def.Log.Format, "Log format. Expected values: console / json")
	)
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if fs.NArg() > 1 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %v", ErrConfig, fs.Args()[1:])
	}

	cfg := def
	if *configPath != "" {
		if err := LoadConfigFile(*configPath, &cfg); err != nil {
			return Config{}, err
		}
	}
	if fs.NArg() == 1 {
		cfg.Graph = fs.Arg(0)
	}

	// Explicit flags win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "graph":
			cfg.Graph = *graph
		case "source":
			if *source < 0 {
				cfg.Source = nil
			} else {
				v := *source
				cfg.Source = &v
			}
		case "all":
			v := *all
			cfg.DisplayAll = &v
		case "format":
			cfg.Format = *format
		case "color":
			cfg.Color = *color
		case "max-nodes":
			cfg.MaxNodes = *maxNodes
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
