package gen

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/ugraph/core"
)

// addVertices inserts vertices 0..n-1 with their decimal IDs as labels.
func addVertices(g *core.Graph, n int) {
	for id := int64(0); id < int64(n); id++ {
		g.AddVertex(id, strconv.FormatInt(id, 10))
	}
}

// Complete builds K_n: every unordered pair connected. Requires n ≥ 1.
func Complete(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}

	g := core.NewGraph()
	addVertices(g, n)
	for i := int64(0); i < int64(n); i++ {
		for j := i + 1; j < int64(n); j++ {
			g.AddEdge(i, j, cfg.weight())
		}
	}

	return g, nil
}

// Random builds a G(n, p) graph: each unordered pair is an edge with
// probability p, decided in lexicographic pair order so a fixed seed
// yields a fixed graph. Requires n ≥ 1 and 0 ≤ p ≤ 1.
func Random(n int, p float64, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Random: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("Random: p=%v: %w", p, ErrInvalidProbability)
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("Random: %w", err)
	}

	g := core.NewGraph()
	addVertices(g, n)
	for i := int64(0); i < int64(n); i++ {
		for j := i + 1; j < int64(n); j++ {
			if cfg.rng.Float64() < p {
				g.AddEdge(i, j, cfg.weight())
			}
		}
	}

	return g, nil
}

// Path builds the path 0—1—…—(n-1). Requires n ≥ 1; n = 1 is a single
// vertex with no edges.
func Path(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("Path: %w", err)
	}

	g := core.NewGraph()
	addVertices(g, n)
	for i := int64(0); i+1 < int64(n); i++ {
		g.AddEdge(i, i+1, cfg.weight())
	}

	return g, nil
}

// Cycle builds the cycle 0—1—…—(n-1)—0. Requires n ≥ 3.
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("Cycle: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("Cycle: %w", err)
	}

	g := core.NewGraph()
	addVertices(g, n)
	for i := int64(0); i < int64(n); i++ {
		g.AddEdge(i, (i+1)%int64(n), cfg.weight())
	}

	return g, nil
}

// Star builds a star with center 0 and leaves 1..n-1. Requires n ≥ 2.
func Star(n int, opts ...Option) (*core.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("Star: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("Star: %w", err)
	}

	g := core.NewGraph()
	addVertices(g, n)
	for leaf := int64(1); leaf < int64(n); leaf++ {
		g.AddEdge(0, leaf, cfg.weight())
	}

	return g, nil
}

// Grid builds a rows×cols lattice: vertex r*cols+c connects right and
// down. Requires rows ≥ 1 and cols ≥ 1.
func Grid(rows, cols int, opts ...Option) (*core.Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("Grid: %w", err)
	}

	g := core.NewGraph()
	addVertices(g, rows*cols)
	for r := int64(0); r < int64(rows); r++ {
		for c := int64(0); c < int64(cols); c++ {
			id := r*int64(cols) + c
			if c+1 < int64(cols) {
				g.AddEdge(id, id+1, cfg.weight())
			}
			if r+1 < int64(rows) {
				g.AddEdge(id, id+int64(cols), cfg.weight())
			}
		}
	}

	return g, nil
}
