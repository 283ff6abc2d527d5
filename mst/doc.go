// Package mst computes minimum spanning trees of a weighted undirected
// core.Graph via Kruskal's and Prim's algorithms.
//
// What
//
//   - Kruskal(g): sort all edges ascending by weight, then greedily accept
//     an edge iff its endpoints lie in different union-find sets, stopping
//     once V−1 edges are in. Backed by a disjoint-set structure with
//     in-line path compression and union by rank.
//   - Prim(g, root): grow from root, tracking each vertex's cheapest known
//     connection cost and connecting parent, extracting the cheapest
//     not-yet-included vertex by a linear scan in vertex insertion order.
//   - Compute(g, opts...): dispatcher selecting either algorithm through
//     functional options.
//
// Both report the accepted edges and total weight. A graph whose spanning
// forest has fewer than V−1 edges yields IsConnected=false rather than an
// error; the partial forest and its weight are still returned. On the same
// connected graph Kruskal and Prim always agree on TotalWeight, though the
// edge sets may differ when duplicate weights exist.
//
// Tie-breaks are deterministic: Kruskal uses a stable sort over the
// insertion-ordered edge list, and Prim's frontier scan follows vertex
// insertion order.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Kruskal: O(E log E) time for the sort plus near-linear union-find.
//   - Prim (linear-scan frontier): O(V² + E) time, O(V) space.
package mst
