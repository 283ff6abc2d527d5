package mst_test

import (
	"testing"

	"github.com/katalvlaran/ugraph/gen"
	"github.com/katalvlaran/ugraph/mst"
)

// BenchmarkKruskal measures performance on a seeded random graph with
// 500 vertices and edge probability 0.05.
func BenchmarkKruskal(b *testing.B) {
	g, err := gen.Random(500, 0.05, gen.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mst.Kruskal(g)
	}
}

// BenchmarkPrim measures performance on the same random graph, always
// starting from vertex 0.
func BenchmarkPrim(b *testing.B) {
	g, err := gen.Random(500, 0.05, gen.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mst.Prim(g, 0)
	}
}
