// Mutation primitives for Graph.
//
// Structural misuse — adding a self-loop, touching an edge with an absent
// endpoint, removing what is not there — is absorbed as a no-op rather than
// surfaced. Callers that want strict validation check HasVertex/HasEdge
// before mutating.

package core

// AddVertex inserts a vertex with the given ID and optional label.
// Idempotent: if the ID already exists the call is a no-op and the first
// label is kept.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int64, label string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Label: label, Color: -1}
	g.adj[id] = nil
	g.order = append(g.order, id)
}

// RemoveVertex deletes the vertex and every edge incident to it,
// decrementing the edge count accordingly. No-op if the vertex is absent.
// Complexity: O(V + Σ deg(neighbor)).
func (g *Graph) RemoveVertex(id int64) {
	if _, exists := g.vertices[id]; !exists {
		return
	}
	// Drop the mirrored entry from each neighbor's list; each removed
	// adjacency pair is one undirected edge.
	for _, nb := range g.adj[id] {
		g.adj[nb.ID] = removeNeighbor(g.adj[nb.ID], id)
		g.edges--
	}
	delete(g.adj, id)
	delete(g.vertices, id)
	for i, v := range g.order {
		if v == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// AddEdge connects from and to with the given weight. Self-loops and edges
// with an absent endpoint are no-ops. Re-adding an existing pair overwrites
// its weight (last write wins) without duplicating the edge.
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) AddEdge(from, to int64, weight float64) {
	if from == to {
		return
	}
	if _, ok := g.vertices[from]; !ok {
		return
	}
	if _, ok := g.vertices[to]; !ok {
		return
	}
	if updateWeight(g.adj[from], to, weight) {
		updateWeight(g.adj[to], from, weight)
		return
	}
	g.adj[from] = append(g.adj[from], Neighbor{ID: to, Weight: weight})
	g.adj[to] = append(g.adj[to], Neighbor{ID: from, Weight: weight})
	g.edges++
}

// RemoveEdge deletes the edge between from and to in both directions and
// decrements the edge count once. No-op if the edge does not exist.
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) RemoveEdge(from, to int64) {
	if !g.HasEdge(from, to) {
		return
	}
	g.adj[from] = removeNeighbor(g.adj[from], to)
	g.adj[to] = removeNeighbor(g.adj[to], from)
	g.edges--
}

// Clear removes all vertices and edges, returning the graph to its
// freshly constructed state.
func (g *Graph) Clear() {
	g.vertices = make(map[int64]*Vertex)
	g.adj = make(map[int64][]Neighbor)
	g.order = nil
	g.edges = 0
}

// updateWeight overwrites the weight of the entry for id, reporting whether
// it was present. The slice is mutated in place.
func updateWeight(list []Neighbor, id int64, weight float64) bool {
	for i := range list {
		if list[i].ID == id {
			list[i].Weight = weight
			return true
		}
	}
	return false
}

// removeNeighbor returns list without the entry for id, preserving the
// insertion order of the remaining entries.
func removeNeighbor(list []Neighbor, id int64) []Neighbor {
	for i := range list {
		if list[i].ID == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
