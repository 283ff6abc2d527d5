package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ugraph/core"
	"github.com/katalvlaran/ugraph/tsp"
)

// buildComplete constructs the complete graph on vertices 0..n-1 with
// weight(i, j) = 1 + (i+j) mod 10 — the generator the original benchmark
// suite used for TSP workloads.
func buildComplete(n int) *core.Graph {
	g := core.NewGraph()
	for id := int64(0); id < int64(n); id++ {
		g.AddVertex(id, "")
	}
	for i := int64(0); i < int64(n); i++ {
		for j := i + 1; j < int64(n); j++ {
			g.AddEdge(i, j, float64(1+(i+j)%10))
		}
	}

	return g
}

// buildSquare constructs the 4-cycle 0—1—2—3—0 with unit weights plus
// heavy diagonals, whose optimal tour is the perimeter of length 4.
func buildSquare() *core.Graph {
	g := core.NewGraph()
	for id := int64(0); id < 4; id++ {
		g.AddVertex(id, "")
	}
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(3, 0, 1)
	g.AddEdge(0, 2, 5)
	g.AddEdge(1, 3, 5)

	return g
}

// requireClosedTour asserts the tour is a closed cycle over all n vertices
// starting and ending at start.
func requireClosedTour(t *testing.T, tour []int64, n int, start int64) {
	t.Helper()
	require.Len(t, tour, n+1)
	require.Equal(t, start, tour[0])
	require.Equal(t, start, tour[n])
	seen := make(map[int64]bool, n)
	for _, v := range tour[:n] {
		require.Falsef(t, seen[v], "vertex %d visited twice", v)
		seen[v] = true
	}
}

func TestBruteForce_SquareOptimum(t *testing.T) {
	res := tsp.BruteForce(buildSquare(), 0)

	require.True(t, res.Found)
	assert.True(t, res.Optimal)
	assert.Equal(t, 4.0, res.TotalDistance)
	requireClosedTour(t, res.Tour, 4, 0)
	// 3! = 6 permutations of the remaining vertices.
	assert.Equal(t, 6, res.Iterations)
}

func TestBruteForce_LowerBoundsHeuristics(t *testing.T) {
	g := buildComplete(7)

	exact := tsp.BruteForce(g, 0)
	greedy := tsp.NearestNeighbor(g, 0)
	hybrid := tsp.Hybrid(g, 0)

	require.True(t, exact.Found)
	require.True(t, greedy.Found)
	require.True(t, hybrid.Found)
	assert.LessOrEqual(t, exact.TotalDistance, greedy.TotalDistance)
	assert.LessOrEqual(t, exact.TotalDistance, hybrid.TotalDistance)
}

func TestNearestNeighbor_CompleteGraph(t *testing.T) {
	g := buildComplete(6)
	res := tsp.NearestNeighbor(g, 2)

	require.True(t, res.Found)
	assert.False(t, res.Optimal)
	requireClosedTour(t, res.Tour, 6, 2)

	dist, ok := tsp.TourDistance(g, res.Tour)
	require.True(t, ok)
	assert.Equal(t, res.TotalDistance, dist)
}

func TestNearestNeighbor_DeadEndNotFound(t *testing.T) {
	// Path 0—1—2: greedy reaches 2 but cannot close back to 0.
	g := core.NewGraph()
	for id := int64(0); id < 3; id++ {
		g.AddVertex(id, "")
	}
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)

	res := tsp.NearestNeighbor(g, 0)
	assert.False(t, res.Found)
	assert.Empty(t, res.Tour)
}

func TestBruteForce_NoHamiltonianCycle(t *testing.T) {
	// Star graphs have no Hamiltonian cycle.
	g := core.NewGraph()
	for id := int64(0); id < 4; id++ {
		g.AddVertex(id, "")
	}
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 1)
	g.AddEdge(0, 3, 1)

	res := tsp.BruteForce(g, 0)
	assert.False(t, res.Found)
	assert.Empty(t, res.Tour)
}

func TestTwoOpt_NeverWorsens(t *testing.T) {
	g := buildComplete(9)
	initial := tsp.NearestNeighbor(g, 0)
	require.True(t, initial.Found)

	improved := tsp.TwoOpt(g, initial)
	require.True(t, improved.Found)
	assert.LessOrEqual(t, improved.TotalDistance, initial.TotalDistance)
	requireClosedTour(t, improved.Tour, 9, 0)

	// Reported distance stays consistent with the tour itself.
	dist, ok := tsp.TourDistance(g, improved.Tour)
	require.True(t, ok)
	assert.InDelta(t, improved.TotalDistance, dist, 1e-9)

	// The input tour must not be mutated.
	d0, ok := tsp.TourDistance(g, initial.Tour)
	require.True(t, ok)
	assert.Equal(t, initial.TotalDistance, d0)
}

func TestTwoOpt_FixesCrossedSquare(t *testing.T) {
	g := buildSquare()
	// Deliberately crossed tour using both diagonals: 0-2-1-3-0, cost 12.
	crossed := tsp.Result{
		Tour:          []int64{0, 2, 1, 3, 0},
		TotalDistance: 12,
		Found:         true,
	}

	res := tsp.TwoOpt(g, crossed)
	require.True(t, res.Found)
	assert.Equal(t, 4.0, res.TotalDistance)
	requireClosedTour(t, res.Tour, 4, 0)
}

func TestTwoOpt_PassesThroughNotFound(t *testing.T) {
	g := buildSquare()
	res := tsp.TwoOpt(g, tsp.Result{})
	assert.False(t, res.Found)
}

func TestHybrid_NoWorseThanNearestNeighbor(t *testing.T) {
	for _, n := range []int{5, 8, 11} {
		g := buildComplete(n)
		nn := tsp.NearestNeighbor(g, 0)
		hy := tsp.Hybrid(g, 0)
		require.Truef(t, nn.Found, "n=%d", n)
		require.Truef(t, hy.Found, "n=%d", n)
		assert.LessOrEqualf(t, hy.TotalDistance, nn.TotalDistance, "n=%d", n)
	}
}

func TestSolve_Dispatch(t *testing.T) {
	g := buildComplete(6)

	bf := tsp.Solve(g, tsp.WithAlgorithm(tsp.AlgoBruteForce), tsp.WithStart(1))
	require.True(t, bf.Found)
	assert.True(t, bf.Optimal)

	hy := tsp.Solve(g, tsp.WithStart(1)) // default hybrid
	require.True(t, hy.Found)
	assert.GreaterOrEqual(t, hy.TotalDistance, bf.TotalDistance)

	bad := tsp.Solve(g, tsp.WithAlgorithm(tsp.Algorithm(99)))
	assert.False(t, bad.Found)
}

func TestSolve_AbsentStart(t *testing.T) {
	g := buildComplete(4)
	assert.False(t, tsp.Solve(g, tsp.WithStart(77)).Found)
	assert.False(t, tsp.BruteForce(nil, 0).Found)
}
