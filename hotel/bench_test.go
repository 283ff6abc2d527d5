package hotel_test

import (
	"testing"

	"github.com/katalvlaran/ugraph/gen"
	"github.com/katalvlaran/ugraph/hotel"
)

// BenchmarkDominatingSetGreedy measures greedy covering on a 20x20 grid.
func BenchmarkDominatingSetGreedy(b *testing.B) {
	g, err := gen.Grid(20, 20)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = hotel.DominatingSetGreedy(g)
	}
}

// BenchmarkKCenters measures farthest-first selection of 10 centers on
// the same grid.
func BenchmarkKCenters(b *testing.B) {
	g, err := gen.Grid(20, 20)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = hotel.KCenters(g, 10)
	}
}
