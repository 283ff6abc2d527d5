package connectivity_test

import (
	"testing"

	"github.com/katalvlaran/ugraph/connectivity"
	"github.com/katalvlaran/ugraph/gen"
)

// BenchmarkDFSComponents measures component discovery on a sparse seeded
// random graph that fragments into many islands.
func BenchmarkDFSComponents(b *testing.B) {
	g, err := gen.Random(2000, 0.001, gen.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = connectivity.DFSComponents(g)
	}
}

// BenchmarkBFSComponents measures the queue-based variant on the same
// graph.
func BenchmarkBFSComponents(b *testing.B) {
	g, err := gen.Random(2000, 0.001, gen.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = connectivity.BFSComponents(g)
	}
}
