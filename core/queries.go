// Query primitives for Graph. All returned slices are fresh copies; holding
// them across later mutations is safe.

package core

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	_, ok := g.vertices[id]
	return ok
}

// Vertex returns a copy of the vertex record for id, and whether it exists.
// Complexity: O(1).
func (g *Graph) Vertex(id int64) (Vertex, bool) {
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, false
	}
	return *v, true
}

// HasEdge reports whether an edge connects from and to. Symmetric by
// construction: HasEdge(a, b) == HasEdge(b, a) at all times.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to int64) bool {
	for _, nb := range g.adj[from] {
		if nb.ID == to {
			return true
		}
	}
	return false
}

// EdgeWeight returns the weight of the edge between from and to, or 0 if no
// such edge exists. Zero is a sentinel, not a marker: callers must check
// HasEdge first when 0 is a legal weight.
// Complexity: O(deg(from)).
func (g *Graph) EdgeWeight(from, to int64) float64 {
	for _, nb := range g.adj[from] {
		if nb.ID == to {
			return nb.Weight
		}
	}
	return 0
}

// NeighborIDs returns the IDs adjacent to id in insertion order.
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id int64) []int64 {
	list := g.adj[id]
	out := make([]int64, len(list))
	for i, nb := range list {
		out[i] = nb.ID
	}
	return out
}

// Neighbors returns the (neighbor, weight) adjacency entries for id in
// insertion order.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int64) []Neighbor {
	list := g.adj[id]
	out := make([]Neighbor, len(list))
	copy(out, list)
	return out
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []int64 {
	out := make([]int64, len(g.order))
	copy(out, g.order)
	return out
}

// Edges returns every undirected edge exactly once, deduplicated by the
// unordered endpoint pair. Order follows vertex insertion order, then each
// vertex's adjacency order.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	type pair struct{ a, b int64 }
	seen := make(map[pair]struct{}, g.edges)
	out := make([]Edge, 0, g.edges)
	for _, u := range g.order {
		for _, nb := range g.adj[u] {
			key := pair{u, nb.ID}
			if key.a > key.b {
				key.a, key.b = key.b, key.a
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, Edge{From: u, To: nb.ID, Weight: nb.Weight})
		}
	}
	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of undirected edges; the counter is
// maintained by mutations, not recomputed.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edges }
