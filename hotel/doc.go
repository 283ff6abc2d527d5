// Package hotel solves facility-location style placement over a weighted
// undirected graph: pick a set of center vertices, then bind every vertex
// to its nearest center.
//
// Two selection strategies are provided:
//
//   - DominatingSetGreedy — classical greedy set cover over closed
//     neighborhoods (ln n approximation of the minimum dominating set).
//   - KCenters — farthest-first traversal, the standard 2-approximation
//     for the k-center problem.
//
// Both conclude with a nearest-center assignment and report the maximum
// and mean assignment distance. Distances use a weighted breadth-first
// search: the accumulated weight along the first-visit tree, which favors
// few hops over minimal weight. Vertices that cannot reach any center are
// listed in Assignment.Unassigned and never enter MaxDistance or
// MeanDistance.
//
// Example:
//
//	g := core.NewGraph()
//	for id := int64(0); id < 5; id++ {
//		g.AddVertex(id, "")
//	}
//	g.AddEdge(0, 1, 1)
//	g.AddEdge(0, 2, 1)
//	g.AddEdge(0, 3, 1)
//	g.AddEdge(0, 4, 1)
//
//	a := hotel.DominatingSetGreedy(g)
//	// a.Centers == []int64{0}, a.MaxDistance == 1
package hotel
