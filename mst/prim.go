package mst

import "github.com/katalvlaran/ugraph/core"

// Prim computes a minimum spanning tree of g grown from root.
//
// Each vertex carries its cheapest known connection cost into the tree and
// the parent providing it. Every round extracts the cheapest not-yet-
// included vertex by scanning vertices in insertion order (ties go to the
// earlier-inserted vertex), records its connecting edge (none for the
// root), and relaxes its neighbors. Vertices the root cannot reach are
// never extracted, so a disconnected graph reports IsConnected=false with
// the tree of root's component.
//
// A nil graph or absent root yields an empty, disconnected result (except
// the degenerate single-vertex graph whose lone vertex is the root).
//
// Complexity: O(V² + E) time, O(V) space.
func Prim(g *core.Graph, root int64) Result {
	if g == nil {
		return Result{}
	}
	res := Result{VertexCount: g.VertexCount()}
	if res.VertexCount == 0 || !g.HasVertex(root) {
		return res
	}

	vertices := g.Vertices()
	inTree := make(map[int64]bool, len(vertices))
	cost := make(map[int64]float64, len(vertices))   // cheapest known connection
	parent := make(map[int64]int64, len(vertices))   // provider of that connection
	known := map[int64]bool{root: true}              // vertices with a finite cost
	cost[root] = 0

	for count := 0; count < res.VertexCount; count++ {
		// Select the cheapest frontier vertex; insertion order breaks ties.
		var u int64
		found := false
		for _, v := range vertices {
			if inTree[v] || !known[v] {
				continue
			}
			if !found || cost[v] < cost[u] {
				u = v
				found = true
			}
		}
		if !found {
			break // remaining vertices unreachable from root
		}

		inTree[u] = true
		if p, ok := parent[u]; ok {
			res.Edges = append(res.Edges, core.Edge{From: p, To: u, Weight: cost[u]})
			res.TotalWeight += cost[u]
		}

		for _, nb := range g.Neighbors(u) {
			if inTree[nb.ID] {
				continue
			}
			if !known[nb.ID] || nb.Weight < cost[nb.ID] {
				known[nb.ID] = true
				cost[nb.ID] = nb.Weight
				parent[nb.ID] = u
			}
		}
	}

	res.IsConnected = len(res.Edges) == res.VertexCount-1

	return res
}
