package mst

import "github.com/katalvlaran/ugraph/core"

// MethodKruskal selects Kruskal's algorithm (edge sort + union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (frontier growth from a root).
const MethodPrim = "prim"

// Result is the outcome of a spanning-tree computation.
//
// When IsConnected is false the graph admits only a spanning forest; Edges
// and TotalWeight then describe that partial forest and callers must not
// treat it as a tree.
type Result struct {
	// Edges are the accepted tree edges, in acceptance order.
	Edges []core.Edge

	// TotalWeight is the sum of the accepted edge weights.
	TotalWeight float64

	// VertexCount is the number of vertices in the input graph.
	VertexCount int

	// IsConnected reports whether V−1 edges were accepted.
	IsConnected bool
}

// Options configures Compute.
type Options struct {
	// Method is MethodKruskal or MethodPrim.
	Method string

	// Root is the start vertex for Prim; ignored by Kruskal.
	Root int64
}

// Option mutates Options.
type Option func(*Options)

// WithMethod selects the algorithm; MethodKruskal and MethodPrim are valid.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets the start vertex for Prim.
func WithRoot(root int64) Option {
	return func(o *Options) { o.Root = root }
}

// DefaultOptions returns the defaults: Kruskal, root 0.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Compute dispatches to Kruskal or Prim according to the options. An
// unknown method yields an empty, disconnected Result.
func Compute(g *core.Graph, opts ...Option) Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, o.Root)
	default:
		return Result{}
	}
}
