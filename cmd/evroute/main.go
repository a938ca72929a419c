// SPDX-License-Identifier: MIT
// Command evroute loads a road network, computes shortest paths from a start
// node and recommends the nearest charging station.
//
// Usage:
//
//	evroute [-config file.yaml] [-source N] [-all] [-format text|json] graph.txt
package main

import (
	"os"

	"github.com/katalvlaran/evroute/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
