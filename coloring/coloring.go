package coloring

import (
	"sort"

	"github.com/katalvlaran/ugraph/core"
)

// Result is the outcome of a coloring run.
//
// Colors maps every vertex to a non-negative color. ChromaticNumber is
// (max color used) + 1 — an upper bound on the true chromatic number.
// IsValid reports the self-validation outcome and is true for an empty
// graph.
type Result struct {
	Colors          map[int64]int
	ChromaticNumber int
	IsValid         bool
}

// Greedy colors vertices in insertion order, assigning each the smallest
// color not used by any already-colored neighbor.
func Greedy(g *core.Graph) Result {
	if g == nil {
		return Result{Colors: map[int64]int{}, IsValid: true}
	}

	return colorInOrder(g, g.Vertices())
}

// WelshPowell colors vertices in stable descending-degree order with the
// same smallest-free-color rule. A heuristic that tends to use fewer
// colors than plain Greedy; no optimality guarantee.
func WelshPowell(g *core.Graph) Result {
	if g == nil {
		return Result{Colors: map[int64]int{}, IsValid: true}
	}
	vertices := g.Vertices()
	degree := make(map[int64]int, len(vertices))
	for _, v := range vertices {
		degree[v] = len(g.NeighborIDs(v))
	}
	sort.SliceStable(vertices, func(i, j int) bool {
		return degree[vertices[i]] > degree[vertices[j]]
	})

	return colorInOrder(g, vertices)
}

// colorInOrder applies the greedy rule over the given vertex order and
// self-validates the assignment.
func colorInOrder(g *core.Graph, order []int64) Result {
	res := Result{Colors: make(map[int64]int, len(order))}
	used := make([]bool, 0, len(order))

	for _, v := range order {
		used = used[:0]
		// Mark neighbor colors as taken.
		for _, nb := range g.NeighborIDs(v) {
			c, colored := res.Colors[nb]
			if !colored {
				continue
			}
			for len(used) <= c {
				used = append(used, false)
			}
			used[c] = true
		}
		// Smallest free color.
		color := 0
		for color < len(used) && used[color] {
			color++
		}
		res.Colors[v] = color
		if color+1 > res.ChromaticNumber {
			res.ChromaticNumber = color + 1
		}
	}

	res.IsValid = Validate(g, res.Colors)

	return res
}

// Validate reports whether colors is a proper coloring of g: every edge
// (u, v) has colors[u] != colors[v]. A vertex missing from colors fails
// validation unless the graph has no edges touching it.
func Validate(g *core.Graph, colors map[int64]int) bool {
	if g == nil {
		return true
	}
	for _, e := range g.Edges() {
		cu, okU := colors[e.From]
		cv, okV := colors[e.To]
		if !okU || !okV || cu == cv {
			return false
		}
	}

	return true
}
