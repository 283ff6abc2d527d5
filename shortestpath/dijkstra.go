package shortestpath

import (
	"container/heap"

	"github.com/katalvlaran/ugraph/core"
)

// Dijkstra computes shortest distances from source to every reachable
// vertex of g. It processes vertices in order of increasing tentative
// distance using a min-heap, pushing a fresh entry whenever a strictly
// smaller distance is found and skipping stale entries lazily on pop
// (the "lazy decrease-key" pattern).
//
// If g is nil or source is absent, the returned tree is empty. Requires
// non-negative edge weights.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, source int64) Tree {
	t := Tree{
		Source: source,
		Dist:   make(map[int64]float64),
		Prev:   make(map[int64]int64),
	}
	if g == nil || !g.HasVertex(source) {
		return t
	}

	pq := make(nodePQ, 0, g.VertexCount())
	heap.Init(&pq)
	heap.Push(&pq, nodeItem{id: source, dist: 0})
	t.Dist[source] = 0

	done := make(map[int64]bool, g.VertexCount())
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(nodeItem)
		if done[item.id] {
			// Stale entry superseded by a shorter push; skip.
			continue
		}
		done[item.id] = true

		for _, nb := range g.Neighbors(item.id) {
			next := item.dist + nb.Weight
			if best, seen := t.Dist[nb.ID]; seen && next >= best {
				continue
			}
			t.Dist[nb.ID] = next
			t.Prev[nb.ID] = item.id
			heap.Push(&pq, nodeItem{id: nb.ID, dist: next})
		}
	}

	return t
}

// FindPath runs Dijkstra from source and reconstructs the shortest path to
// target by following predecessor links backward, then reversing. Found is
// false when either endpoint is absent or the target is unreachable.
//
// Complexity: O((V + E) log V).
func FindPath(g *core.Graph, source, target int64) PathResult {
	if g == nil || !g.HasVertex(source) || !g.HasVertex(target) {
		return PathResult{}
	}

	t := Dijkstra(g, source)
	dist, ok := t.Dist[target]
	if !ok {
		return PathResult{}
	}

	path := []int64{target}
	for cur := target; cur != source; {
		cur = t.Prev[cur]
		path = append(path, cur)
	}
	reverse(path)

	return PathResult{Path: path, Distance: dist, Found: true}
}

// reverse flips the slice in place.
func reverse(p []int64) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// nodeItem pairs a vertex with its tentative distance at push time.
type nodeItem struct {
	id   int64
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending. Duplicate
// entries per vertex are expected; stale ones are filtered on pop.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
