// Package tsp builds and improves traveling-salesman tours over a weighted
// undirected core.Graph.
//
// What
//
//   - BruteForce(g, start): enumerate every permutation of the remaining
//     vertices in lexicographic ID order; optimal, O(n!), practical only up
//     to roughly a dozen vertices. The caller bounds the input size — there
//     is no internal guard.
//   - NearestNeighbor(g, start): repeatedly hop to the cheapest unvisited
//     neighbor; fast O(n²) heuristic with no quality guarantee.
//   - TwoOpt(g, initial): first-improvement local search that reverses a
//     tour segment whenever swapping two edges shortens the tour, sweeping
//     until no move improves. Never worsens the tour it is given.
//   - Hybrid(g, start): NearestNeighbor seeded into TwoOpt.
//   - Solve(g, opts...): dispatcher selecting any of the above through
//     functional options.
//
// A tour is a closed cycle: Tour[0] == Tour[len-1] == the start vertex.
// When no Hamiltonian cycle exists along the attempted route the result
// carries Found=false; there is no "infinite distance" numeric sentinel.
// TwoOpt only considers moves whose replacement edges actually exist, so
// it is safe on incomplete graphs.
//
// Results report the number of candidate routes or moves examined in
// Iterations, and Optimal marks exhaustive search results.
package tsp
