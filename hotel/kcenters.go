package hotel

import "github.com/katalvlaran/ugraph/core"

// KCenters selects k centers by farthest-first traversal: seed with the
// first-inserted vertex, then repeatedly add the vertex whose distance to
// its nearest already-chosen center is largest. A vertex no center can
// reach counts as farther than every reachable one, so each component
// receives a center before any component gets a second. Ties keep the
// earliest-inserted vertex.
//
// Requires 0 < k ≤ vertex count; otherwise the result is invalid. The
// selection finishes with a nearest-center assignment.
//
// Complexity: O(k·(V+E)) time, O(V) space.
func KCenters(g *core.Graph, k int) Assignment {
	var res Assignment
	if g == nil || g.VertexCount() == 0 || k <= 0 || k > g.VertexCount() {
		return res
	}

	order := g.Vertices()
	res.Centers = append(res.Centers, order[0])

	// toNearest[v] is the distance from v to its closest chosen center;
	// absence means no center reaches v yet.
	toNearest := bfsWeightedDistances(g, order[0])
	chosen := map[int64]bool{order[0]: true}

	for round := 1; round < k; round++ {
		farthest := int64(0)
		farthestDist := 0.0
		found := false
		unreached := false
		for _, v := range order {
			if chosen[v] {
				continue
			}
			d, ok := toNearest[v]
			if !ok {
				if !unreached {
					farthest = v
					unreached = true
					found = true
				}
				continue
			}
			if unreached {
				continue
			}
			if !found || d > farthestDist {
				farthest = v
				farthestDist = d
				found = true
			}
		}
		if !found {
			break
		}

		res.Centers = append(res.Centers, farthest)
		chosen[farthest] = true
		for v, d := range bfsWeightedDistances(g, farthest) {
			if cur, ok := toNearest[v]; !ok || d < cur {
				toNearest[v] = d
			}
		}
	}

	assignToNearest(g, &res)

	return res
}
