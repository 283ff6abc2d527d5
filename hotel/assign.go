package hotel

import "github.com/katalvlaran/ugraph/core"

// bfsWeightedDistances runs a breadth-first traversal from source and
// returns the accumulated edge weight along each vertex's first-visit
// path. Unreachable vertices are absent from the map. This is the
// distance notion of this package: hop-greedy, not weight-minimal.
func bfsWeightedDistances(g *core.Graph, source int64) map[int64]float64 {
	dist := map[int64]float64{source: 0}
	queue := []int64{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, nb := range g.Neighbors(u) {
			if _, seen := dist[nb.ID]; seen {
				continue
			}
			dist[nb.ID] = dist[u] + nb.Weight
			queue = append(queue, nb.ID)
		}
	}

	return dist
}

// assignToNearest binds every vertex to the closest of res.Centers,
// filling AssignedTo, Unassigned, MaxDistance and MeanDistance. A tie
// keeps the earlier center. It marks the assignment valid.
func assignToNearest(g *core.Graph, res *Assignment) {
	res.AssignedTo = make(map[int64]int64, g.VertexCount())

	// One traversal per center, reused for every vertex lookup.
	fromCenter := make([]map[int64]float64, len(res.Centers))
	for i, c := range res.Centers {
		fromCenter[i] = bfsWeightedDistances(g, c)
	}

	total := 0.0
	assigned := 0
	for _, v := range g.Vertices() {
		nearest := int64(0)
		nearestDist := 0.0
		found := false
		for i, c := range res.Centers {
			d, ok := fromCenter[i][v]
			if !ok {
				continue
			}
			if !found || d < nearestDist {
				nearest = c
				nearestDist = d
				found = true
			}
		}
		if !found {
			res.Unassigned = append(res.Unassigned, v)
			continue
		}
		res.AssignedTo[v] = nearest
		if nearestDist > res.MaxDistance {
			res.MaxDistance = nearestDist
		}
		total += nearestDist
		assigned++
	}

	if assigned > 0 {
		res.MeanDistance = total / float64(assigned)
	}
	res.IsValid = true
}
