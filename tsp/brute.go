package tsp

import (
	"sort"

	"github.com/katalvlaran/ugraph/core"
)

// BruteForce finds the optimal tour from start by trying every permutation
// of the remaining vertices in lexicographic ID order. Permutations whose
// consecutive pair lacks an edge are abandoned early. Found is false when
// the start vertex is absent or no permutation closes into a cycle.
//
// Complexity: O(n!) — callers bound n (about a dozen vertices at most).
func BruteForce(g *core.Graph, start int64) Result {
	res := Result{Optimal: true}
	if g == nil || !g.HasVertex(start) {
		return res
	}

	// Remaining vertices, sorted ascending for lexicographic enumeration.
	rest := make([]int64, 0, g.VertexCount()-1)
	for _, v := range g.Vertices() {
		if v != start {
			rest = append(rest, v)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })

	if len(rest) == 0 {
		// Degenerate single-vertex tour.
		res.Tour = []int64{start, start}
		res.Found = true
		res.Iterations = 1

		return res
	}

	var (
		best     []int64
		bestDist float64
		found    bool
	)
	for {
		res.Iterations++
		if dist, ok := routeDistance(g, start, rest); ok {
			if !found || dist < bestDist {
				found = true
				bestDist = dist
				best = append(best[:0], rest...)
			}
		}
		if !nextPermutation(rest) {
			break
		}
	}

	if !found {
		return res
	}
	res.Tour = make([]int64, 0, len(best)+2)
	res.Tour = append(res.Tour, start)
	res.Tour = append(res.Tour, best...)
	res.Tour = append(res.Tour, start)
	res.TotalDistance = bestDist
	res.Found = true

	return res
}

// routeDistance sums start→rest[0]→…→rest[n-1]→start, reporting false as
// soon as a required edge is missing.
func routeDistance(g *core.Graph, start int64, rest []int64) (float64, bool) {
	dist := 0.0
	cur := start
	for _, next := range rest {
		if !g.HasEdge(cur, next) {
			return 0, false
		}
		dist += g.EdgeWeight(cur, next)
		cur = next
	}
	if !g.HasEdge(cur, start) {
		return 0, false
	}

	return dist + g.EdgeWeight(cur, start), true
}

// nextPermutation advances p to its next lexicographic permutation in
// place, reporting false once p is the final (descending) one.
func nextPermutation(p []int64) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
