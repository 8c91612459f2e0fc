package island_test

import (
	"testing"

	"github.com/katalvlaran/islands/grid"
	"github.com/katalvlaran/islands/island"
)

// benchGrid builds the 1000×1000 random map used by the command-line tool.
func benchGrid(b *testing.B, p float64) *grid.Grid {
	b.Helper()
	g, err := grid.Random(1000, 1000, grid.WithSeed(42), grid.WithLandProbability(p))
	if err != nil {
		b.Fatalf("setup Random failed: %v", err)
	}

	return g
}

// BenchmarkFind measures Find on a 1000×1000 grid at 25% land for every
// work-list and visited-set combination.
// Complexity: O(W×H×8)
func BenchmarkFind(b *testing.B) {
	g := benchGrid(b, grid.DefaultLandProbability)
	cases := []struct {
		name string
		opts []island.Option
	}{
		{"StackDense", nil},
		{"QueueDense", []island.Option{island.WithWorkList(island.BreadthFirst)}},
		{"StackSparse", []island.Option{island.WithVisited(island.SparseVisited)}},
		{"QueueSparse", []island.Option{island.WithWorkList(island.BreadthFirst), island.WithVisited(island.SparseVisited)}},
	}
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = island.Find(g, tc.opts...)
			}
		})
	}
}

// BenchmarkFind_Dense measures Find when almost every cell is land, so a single
// island dominates and the work-list grows large.
func BenchmarkFind_Dense(b *testing.B) {
	g := benchGrid(b, 0.9)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = island.Find(g)
	}
}
