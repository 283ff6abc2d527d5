package hotel

import "github.com/katalvlaran/ugraph/core"

// DominatingSetGreedy selects centers by greedy set cover: repeatedly
// take the uncovered vertex whose closed neighborhood (itself plus its
// neighbors) contains the most still-uncovered vertices, marking all of
// them covered. Ties keep the earliest-inserted vertex. Every vertex ends
// up in the set or adjacent to a member; the set is not guaranteed
// minimum.
//
// The selection finishes with a nearest-center assignment.
//
// Complexity: O(V² + V·E) time, O(V) space.
func DominatingSetGreedy(g *core.Graph) Assignment {
	var res Assignment
	if g == nil || g.VertexCount() == 0 {
		return res
	}

	order := g.Vertices()
	uncovered := make(map[int64]bool, len(order))
	for _, v := range order {
		uncovered[v] = true
	}

	for len(uncovered) > 0 {
		best := int64(0)
		bestScore := 0
		for _, v := range order {
			if !uncovered[v] {
				continue
			}
			score := 1
			for _, nb := range g.NeighborIDs(v) {
				if uncovered[nb] {
					score++
				}
			}
			if score > bestScore {
				best = v
				bestScore = score
			}
		}

		res.Centers = append(res.Centers, best)
		delete(uncovered, best)
		for _, nb := range g.NeighborIDs(best) {
			delete(uncovered, nb)
		}
	}

	assignToNearest(g, &res)

	return res
}
