package mst

import (
	"sort"

	"github.com/katalvlaran/ugraph/core"
)

// Kruskal computes a minimum spanning tree of g.
//
// All edges are sorted ascending by weight (stable, so equal weights keep
// their insertion-derived order), then accepted greedily whenever their
// endpoints belong to different union-find sets. Acceptance stops at V−1
// edges; if fewer could be accepted the graph is disconnected and the
// partial forest is returned with IsConnected=false.
//
// A nil or empty graph yields an empty result; a single vertex is a trivial
// connected tree with no edges.
//
// Complexity: O(E log E) time, O(V + E) space.
func Kruskal(g *core.Graph) Result {
	if g == nil {
		return Result{}
	}
	res := Result{VertexCount: g.VertexCount()}
	if res.VertexCount == 0 {
		return res
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	uf := NewUnionFind(res.VertexCount)
	for _, e := range edges {
		if !uf.Unite(e.From, e.To) {
			continue // endpoints already connected; edge would close a cycle
		}
		res.Edges = append(res.Edges, e)
		res.TotalWeight += e.Weight
		if len(res.Edges) == res.VertexCount-1 {
			break
		}
	}

	res.IsConnected = len(res.Edges) == res.VertexCount-1

	return res
}
