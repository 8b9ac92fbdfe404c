package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/chiton/gridgraph"
)

// BenchmarkExpand measures Expand on a random 100×100 base grid.
// Complexity: O(25×W×H)
func BenchmarkExpand(b *testing.B) {
	base := randomGrid(rand.New(rand.NewSource(42)), 100, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gridgraph.Expand(base)
	}
}

// BenchmarkParse measures Parse on a 500×500 digit grid.
func BenchmarkParse(b *testing.B) {
	text := randomGrid(rand.New(rand.NewSource(42)), 500, 500).String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.Parse(text); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNeighbors measures neighbour enumeration over every cell of a 1000×1000 grid.
func BenchmarkNeighbors(b *testing.B) {
	g := randomGrid(rand.New(rand.NewSource(42)), 1000, 1000)
	pts := g.Points()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range pts {
			_ = g.Neighbors(p)
		}
	}
}
