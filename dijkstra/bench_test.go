// SPDX-License-Identifier: MIT
package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/evroute/dijkstra"
)

func benchmarkShortestPaths(b *testing.B, n int) {
	g := randomGraph(b, rand.New(rand.NewSource(1)), n, 4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPaths(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkShortestPaths_100(b *testing.B)  { benchmarkShortestPaths(b, 100) }
func BenchmarkShortestPaths_1000(b *testing.B) { benchmarkShortestPaths(b, 1000) }
