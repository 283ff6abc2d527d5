package connectivity

import "github.com/katalvlaran/ugraph/core"

// Result describes a partition of the graph into connected components.
type Result struct {
	// Components lists each component's members in discovery order.
	// Component IDs index this slice.
	Components [][]int64

	// ComponentID maps every vertex to the component containing it.
	ComponentID map[int64]int

	// Count is the number of components.
	Count int
}

// DFSComponents partitions g into connected components using recursive
// depth-first traversal. Vertices are seeded in insertion order; every
// not-yet-assigned vertex starts a new component.
func DFSComponents(g *core.Graph) Result {
	res := newResult(g)
	if g == nil {
		return res
	}
	for _, v := range g.Vertices() {
		if _, seen := res.ComponentID[v]; seen {
			continue
		}
		var members []int64
		dfsVisit(g, v, res.Count, &members, res.ComponentID)
		res.Components = append(res.Components, members)
		res.Count++
	}

	return res
}

// dfsVisit assigns v to component id and recurses into unassigned neighbors.
func dfsVisit(g *core.Graph, v int64, id int, members *[]int64, assigned map[int64]int) {
	assigned[v] = id
	*members = append(*members, v)
	for _, nb := range g.NeighborIDs(v) {
		if _, seen := assigned[nb]; !seen {
			dfsVisit(g, nb, id, members, assigned)
		}
	}
}

// DFSComponentsIterative is DFSComponents with an explicit stack instead of
// recursion. The partition (membership and component numbering) is
// identical; only the order members are recorded within a component may
// differ.
func DFSComponentsIterative(g *core.Graph) Result {
	res := newResult(g)
	if g == nil {
		return res
	}
	for _, start := range g.Vertices() {
		if _, seen := res.ComponentID[start]; seen {
			continue
		}
		var members []int64
		stack := []int64{start}
		res.ComponentID[start] = res.Count
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			members = append(members, v)
			for _, nb := range g.NeighborIDs(v) {
				if _, seen := res.ComponentID[nb]; !seen {
					res.ComponentID[nb] = res.Count
					stack = append(stack, nb)
				}
			}
		}
		res.Components = append(res.Components, members)
		res.Count++
	}

	return res
}

// BFSComponents partitions g using queue-based breadth-first traversal.
// Same partition as DFSComponents; visitation order within a component is
// level-order instead of depth-first.
func BFSComponents(g *core.Graph) Result {
	res := newResult(g)
	if g == nil {
		return res
	}
	for _, start := range g.Vertices() {
		if _, seen := res.ComponentID[start]; seen {
			continue
		}
		var members []int64
		queue := []int64{start}
		res.ComponentID[start] = res.Count
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			members = append(members, v)
			for _, nb := range g.NeighborIDs(v) {
				if _, seen := res.ComponentID[nb]; !seen {
					res.ComponentID[nb] = res.Count
					queue = append(queue, nb)
				}
			}
		}
		res.Components = append(res.Components, members)
		res.Count++
	}

	return res
}

// IsConnected reports whether g has at most one connected component.
// An empty graph counts as connected.
func IsConnected(g *core.Graph) bool {
	return DFSComponents(g).Count <= 1
}

// LargestComponentSize returns the member count of the biggest component,
// or 0 for an empty (or nil) graph.
func LargestComponentSize(g *core.Graph) int {
	max := 0
	for _, c := range DFSComponents(g).Components {
		if len(c) > max {
			max = len(c)
		}
	}

	return max
}

func newResult(g *core.Graph) Result {
	n := 0
	if g != nil {
		n = g.VertexCount()
	}

	return Result{ComponentID: make(map[int64]int, n)}
}
