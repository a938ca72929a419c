// SPDX-License-Identifier: MIT
// Package dijkstra_test provides runnable examples for ShortestPaths.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/evroute/dijkstra"
	"github.com/katalvlaran/evroute/roadgraph"
)

// ExampleShortestPaths runs the engine on the A→B→C chain.
func ExampleShortestPaths() {
	g, _ := roadgraph.New([]roadgraph.Node{
		{Index: 0, Label: "A", Edges: []roadgraph.Edge{{To: 1, Weight: 5}}},
		{Index: 1, Label: "B", Edges: []roadgraph.Edge{{To: 2, Weight: 3}}},
		{Index: 2, Label: "C", Station: true},
	})

	res, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Dist, res.Prev)
	// Output: [0 5 8] [-1 0 1]
}

// ExampleWithMaxDistance leaves nodes beyond the cap unreached.
func ExampleWithMaxDistance() {
	g, _ := roadgraph.New([]roadgraph.Node{
		{Index: 0, Label: "A", Edges: []roadgraph.Edge{{To: 1, Weight: 5}}},
		{Index: 1, Label: "B", Edges: []roadgraph.Edge{{To: 2, Weight: 3}}},
		{Index: 2, Label: "C"},
	})

	res, _ := dijkstra.ShortestPaths(g, 0, dijkstra.WithMaxDistance(6))
	fmt.Println(res.Dist, res.Reachable(2))
	// Output: [0 5 +Inf] false
}
