// Package core defines the central Graph, Vertex, and Edge types and the
// mutation and query primitives every algorithm package builds on.
//
// The graph is undirected, weighted, and adjacency-list backed. Vertex
// identifiers are arbitrary caller-chosen int64 keys; internally they index
// maps, so identifiers may be sparse, negative, or huge without penalty.
// Vertex and neighbor enumeration is pinned to insertion order, which makes
// every tie-break downstream (Prim's frontier scan, greedy coloring,
// dominating-set selection) reproducible across runs.
//
// A Graph is not safe for concurrent use. Algorithms treat it as a read-only
// snapshot; callers that mutate from several goroutines must serialize
// writes themselves.
package core

// Vertex is a node of the graph.
//
// ID uniquely identifies the vertex. Label, X, Y, and Color are
// presentation and scratch fields: no algorithm in this module reads them,
// and coloring results are returned separately rather than written back.
type Vertex struct {
	// ID is the unique caller-assigned identifier.
	ID int64

	// Label is an optional display name. The first label supplied for an
	// ID wins; re-adding the vertex never overwrites it.
	Label string

	// X, Y are optional 2D coordinates for visualization.
	X, Y float64

	// Color is a scratch slot for external tooling; -1 means uncolored.
	Color int
}

// Edge is an undirected connection between two vertices. (From, To) and
// (To, From) denote the same edge; Graph.Edges reports each pair once.
type Edge struct {
	From   int64
	To     int64
	Weight float64
}

// Neighbor is one adjacency-list entry: the far endpoint and the weight of
// the connecting edge.
type Neighbor struct {
	ID     int64
	Weight float64
}

// Graph is an undirected weighted graph backed by an adjacency list.
//
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	vertices map[int64]*Vertex    // vertex ID → vertex record
	adj      map[int64][]Neighbor // vertex ID → neighbors in insertion order
	order    []int64              // vertex IDs in insertion order
	edges    int                  // maintained undirected edge count
}

// NewGraph creates an empty graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[int64]*Vertex),
		adj:      make(map[int64][]Neighbor),
	}
}
