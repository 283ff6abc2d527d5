// Package gen builds deterministic test and benchmark graphs: complete,
// random, path, cycle, star, and grid topologies over vertices 0..n-1.
//
// All constructors are reproducible. Stochastic ones (edge weights,
// Random's edge selection) draw from a seeded generator; the same seed
// always yields the same graph. Invalid parameters surface as sentinel
// errors wrapped with constructor context, so callers branch with
// errors.Is:
//
//	g, err := gen.Random(100, 0.1, gen.WithSeed(42))
//	if errors.Is(err, gen.ErrInvalidProbability) {
//		// p outside [0,1]
//	}
package gen
