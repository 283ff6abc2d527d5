package tsp

import "github.com/katalvlaran/ugraph/core"

// NearestNeighbor builds a tour greedily: from the current vertex, hop to
// the cheapest unvisited neighbor (insertion-order scan keeps the first on
// a weight tie), until all vertices are visited, then close back to start.
// Found is false when the start vertex is absent, some vertex has no edge
// from the current position, or the final closing edge is missing.
//
// Complexity: O(V²) time, O(V) space.
func NearestNeighbor(g *core.Graph, start int64) Result {
	var res Result
	if g == nil || !g.HasVertex(start) {
		return res
	}

	visited := map[int64]bool{start: true}
	res.Tour = append(res.Tour, start)
	cur := start

	for remaining := g.VertexCount() - 1; remaining > 0; remaining-- {
		res.Iterations++
		nearest := int64(0)
		nearestW := 0.0
		ok := false
		for _, nb := range g.Neighbors(cur) {
			if visited[nb.ID] {
				continue
			}
			if !ok || nb.Weight < nearestW {
				nearest = nb.ID
				nearestW = nb.Weight
				ok = true
			}
		}
		if !ok {
			// Dead end: unvisited vertices remain but none is adjacent.
			res.Tour = nil

			return res
		}
		visited[nearest] = true
		res.Tour = append(res.Tour, nearest)
		res.TotalDistance += nearestW
		cur = nearest
	}

	if !g.HasEdge(cur, start) {
		res.Tour = nil
		res.TotalDistance = 0

		return res
	}
	res.TotalDistance += g.EdgeWeight(cur, start)
	res.Tour = append(res.Tour, start)
	res.Found = true

	return res
}
