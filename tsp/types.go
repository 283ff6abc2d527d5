package tsp

import "github.com/katalvlaran/ugraph/core"

// Algorithm selects a solver in Solve.
type Algorithm int

const (
	// AlgoBruteForce exhaustively enumerates permutations (optimal).
	AlgoBruteForce Algorithm = iota

	// AlgoNearestNeighbor runs the greedy construction heuristic.
	AlgoNearestNeighbor

	// AlgoHybrid runs NearestNeighbor followed by TwoOpt refinement.
	AlgoHybrid
)

// Result is the outcome of a tour computation.
//
// Found must be checked first: it is false when the start vertex is absent
// or no closed route through all vertices exists along the attempted
// construction. Tour is a closed cycle (first == last == start) when Found.
type Result struct {
	// Tour is the visiting order, closed back to the start vertex.
	Tour []int64

	// TotalDistance is the sum of edge weights along the tour.
	TotalDistance float64

	// Iterations counts permutations tried (brute force), greedy steps
	// (nearest neighbor), or candidate moves examined (2-opt).
	Iterations int

	// Optimal is true only for exhaustive search results.
	Optimal bool

	// Found reports whether a complete closed tour was produced.
	Found bool
}

// Options configures Solve.
type Options struct {
	// Algo picks the solver; AlgoHybrid by default.
	Algo Algorithm

	// Start is the tour's fixed start vertex.
	Start int64
}

// Option mutates Options.
type Option func(*Options)

// WithAlgorithm selects the solver.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algo = a }
}

// WithStart sets the tour's start vertex.
func WithStart(start int64) Option {
	return func(o *Options) { o.Start = start }
}

// DefaultOptions returns the defaults: hybrid solver starting at vertex 0.
func DefaultOptions() Options {
	return Options{Algo: AlgoHybrid}
}

// Solve dispatches to the solver chosen by the options. An unknown
// algorithm yields an empty, not-found result.
func Solve(g *core.Graph, opts ...Option) Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Algo {
	case AlgoBruteForce:
		return BruteForce(g, o.Start)
	case AlgoNearestNeighbor:
		return NearestNeighbor(g, o.Start)
	case AlgoHybrid:
		return Hybrid(g, o.Start)
	default:
		return Result{}
	}
}

// Hybrid builds a tour with NearestNeighbor and refines it with TwoOpt.
// The refined tour is never longer than the greedy one.
func Hybrid(g *core.Graph, start int64) Result {
	return TwoOpt(g, NearestNeighbor(g, start))
}
