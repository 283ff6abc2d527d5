// Package connectivity discovers the connected components of a core.Graph.
//
// What
//
//   - DFSComponents(g): recursive depth-first discovery.
//   - DFSComponentsIterative(g): explicit-stack variant producing the exact
//     same partition, for graphs deep enough to threaten the call stack.
//   - BFSComponents(g): queue-based discovery; same partition as DFS, only
//     the visitation order inside a component differs.
//   - IsConnected(g): true iff at most one component.
//   - LargestComponentSize(g): maximum member count, 0 for an empty graph.
//
// Vertices are enumerated in insertion order, so component numbering is
// deterministic: component 0 contains the earliest-inserted vertex, and so
// on.
//
// Complexity: O(V + E) time, O(V) space for every entry point.
package connectivity
