package shortestpath

// Tree is the single-source result of Dijkstra: distances and predecessor
// links for every vertex reachable from Source.
//
// A vertex that is absent from Dist is unreachable. Prev[v] is the
// predecessor of v on its shortest path; the source has no entry.
type Tree struct {
	// Source is the vertex the search started from.
	Source int64

	// Dist maps each reachable vertex to its minimum distance from Source.
	Dist map[int64]float64

	// Prev maps each reachable vertex (except Source) to the vertex it was
	// relaxed from, for path reconstruction.
	Prev map[int64]int64
}

// Reachable reports whether v was reached from the source.
func (t Tree) Reachable(v int64) bool {
	_, ok := t.Dist[v]
	return ok
}

// PathResult is a concrete source→target path.
//
// Found must be checked before trusting Path and Distance: it is false when
// either endpoint is absent from the graph or the target is unreachable.
// For FindPath, Distance is the sum of edge weights; for BFS it is the
// number of edges on the path.
type PathResult struct {
	Path     []int64
	Distance float64
	Found    bool
}
