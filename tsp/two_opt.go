package tsp

import "github.com/katalvlaran/ugraph/core"

// TwoOpt improves a closed tour by first-improvement 2-opt local search:
// for each cut pair (i, k) it considers replacing edges (a,b) and (c,d)
// with (a,c) and (b,d), where a=Tour[i-1], b=Tour[i], c=Tour[k],
// d=Tour[k+1], applying the segment reversal whenever the replacement is
// strictly shorter. Sweeps repeat until a full pass finds no improving
// move, so the returned distance never exceeds the initial one.
//
// Candidate moves whose replacement edges do not exist in g are skipped,
// which keeps the search sound on incomplete graphs. The initial result is
// passed through untouched when it is not a found tour of at least four
// stops. Iterations accumulates on top of the initial result's count.
//
// Complexity: O(sweeps · V²) time, O(V) space.
func TwoOpt(g *core.Graph, initial Result) Result {
	res := initial
	if g == nil || !res.Found || len(res.Tour) < 4 {
		return res
	}
	// The caller's tour is never mutated.
	res.Tour = append([]int64(nil), initial.Tour...)
	res.Optimal = false

	improved := true
	for improved {
		improved = false
		for i := 1; i < len(res.Tour)-2; i++ {
			for k := i + 1; k < len(res.Tour)-1; k++ {
				res.Iterations++

				a := res.Tour[i-1]
				b := res.Tour[i]
				c := res.Tour[k]
				d := res.Tour[k+1]

				if !g.HasEdge(a, c) || !g.HasEdge(b, d) {
					continue
				}
				oldDist := g.EdgeWeight(a, b) + g.EdgeWeight(c, d)
				newDist := g.EdgeWeight(a, c) + g.EdgeWeight(b, d)
				if newDist >= oldDist {
					continue
				}

				reverseSegment(res.Tour, i, k)
				res.TotalDistance -= oldDist - newDist
				improved = true
			}
		}
	}

	return res
}

// reverseSegment flips tour[i..k] in place.
func reverseSegment(tour []int64, i, k int) {
	for ; i < k; i, k = i+1, k-1 {
		tour[i], tour[k] = tour[k], tour[i]
	}
}

// TourDistance sums the edge weights along a closed tour, reporting false
// if any consecutive pair lacks an edge.
func TourDistance(g *core.Graph, tour []int64) (float64, bool) {
	if g == nil || len(tour) < 2 {
		return 0, false
	}
	total := 0.0
	for i := 0; i+1 < len(tour); i++ {
		if !g.HasEdge(tour[i], tour[i+1]) {
			return 0, false
		}
		total += g.EdgeWeight(tour[i], tour[i+1])
	}

	return total, true
}
