// Package ugraph is a toolkit of classic algorithms over weighted
// undirected graphs: shortest paths, minimum spanning trees, graph
// coloring, connected components, facility placement, and the traveling
// salesman problem.
//
// Everything is organized as one flat package per algorithm family:
//
//	core/         — the Graph, Vertex and Edge types plus mutation & query primitives
//	shortestpath/ — Dijkstra single-source distances and BFS hop paths
//	mst/          — Kruskal (union-find) and Prim minimum spanning trees
//	connectivity/ — connected-component discovery (DFS and BFS)
//	coloring/     — greedy and Welsh–Powell vertex coloring with a validator
//	tsp/          — brute-force, nearest-neighbor and 2-opt tour solvers
//	hotel/        — dominating-set and k-center facility placement
//	gen/          — deterministic seeded graph generators for tests and benchmarks
//	examples/     — runnable demonstration scenarios
//
// Every algorithm takes a *core.Graph it never mutates and returns a plain
// result value that stays valid after the graph changes. The graph itself
// is not safe for concurrent mutation; callers needing shared access must
// serialize writes or work on independent copies.
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3───4
//
//	g := core.NewGraph()
//	for id := int64(0); id < 5; id++ {
//		g.AddVertex(id, "")
//	}
//	g.AddEdge(0, 1, 2)
//	g.AddEdge(0, 2, 4)
//	g.AddEdge(1, 3, 7)
//	g.AddEdge(2, 3, 2)
//	g.AddEdge(3, 4, 1)
//	res := shortestpath.FindPath(g, 0, 4)
//	// res.Path == [0 2 3 4], res.Distance == 7
package ugraph
