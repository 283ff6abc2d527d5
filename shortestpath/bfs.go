package shortestpath

import "github.com/katalvlaran/ugraph/core"

// BFS finds a path from source to target by level-order traversal. The
// reported Distance is the number of edges on the path, independent of
// edge weights. Found is false when either endpoint is absent or target
// cannot be reached.
//
// Complexity: O(V + E) time, O(V) space.
func BFS(g *core.Graph, source, target int64) PathResult {
	if g == nil || !g.HasVertex(source) || !g.HasVertex(target) {
		return PathResult{}
	}

	parent := map[int64]int64{}
	visited := map[int64]bool{source: true}
	queue := []int64{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == target {
			break
		}
		for _, v := range g.NeighborIDs(u) {
			if visited[v] {
				continue
			}
			visited[v] = true
			parent[v] = u
			queue = append(queue, v)
		}
	}

	if !visited[target] {
		return PathResult{}
	}

	path := []int64{target}
	for cur := target; cur != source; {
		cur = parent[cur]
		path = append(path, cur)
	}
	reverse(path)

	return PathResult{Path: path, Distance: float64(len(path) - 1), Found: true}
}
