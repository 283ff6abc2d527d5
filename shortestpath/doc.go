// Package shortestpath computes single-source shortest paths over a
// core.Graph: weighted distances via Dijkstra and unweighted hop distances
// via breadth-first search.
//
// What
//
//   - Dijkstra(g, source): minimum-cost distances from source to every
//     reachable vertex, plus predecessor links for path recovery.
//   - FindPath(g, source, target): Dijkstra plus backward predecessor walk,
//     yielding the concrete vertex sequence and its total weight.
//   - BFS(g, source, target): level-order search where distance is the
//     number of edges on the path, independent of weights.
//
// Unreachable vertices are simply absent from Tree.Dist — there is no
// "infinite" numeric sentinel to leak into arithmetic. Path lookups report
// Found=false when either endpoint is missing or the target cannot be
// reached; no error is returned for those ordinary outcomes.
//
// Dijkstra assumes non-negative edge weights; behavior on negative weights
// is unspecified.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Dijkstra: O((V + E) log V) time with a lazy-decrease-key binary heap,
//     O(V + E) space.
//   - BFS: O(V + E) time, O(V) space.
package shortestpath
