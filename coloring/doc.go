// Package coloring assigns colors to the vertices of a core.Graph so that
// no edge connects two vertices of the same color.
//
// What
//
//   - Greedy(g): process vertices in insertion order, giving each the
//     smallest non-negative color unused by its already-colored neighbors.
//   - WelshPowell(g): same assignment rule, but vertices are first sorted
//     by descending degree (stable, so equal degrees keep insertion order).
//     Usually needs fewer colors; never guaranteed minimal.
//   - Validate(g, colors): checks colors[u] != colors[v] for every edge.
//
// Both colorers self-validate and report the outcome. The reported
// chromatic number is (max color used) + 1 — an upper bound only, since
// exact minimum coloring is NP-hard and out of scope.
//
// Complexity: O(V² + E) time worst case, O(V) space
// (WelshPowell adds an O(V log V) sort).
package coloring
