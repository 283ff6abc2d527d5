package mst

// UnionFind is a disjoint-set structure over vertex IDs with path
// compression and union by rank. It is keyed by ID, so identifiers may be
// arbitrary int64 values.
type UnionFind struct {
	parent map[int64]int64
	rank   map[int64]int
}

// NewUnionFind creates a structure sized for n elements. Elements are
// registered lazily on first use; every fresh element is its own set.
func NewUnionFind(n int) *UnionFind {
	return &UnionFind{
		parent: make(map[int64]int64, n),
		rank:   make(map[int64]int, n),
	}
}

// Find returns the representative of x's set, flattening the path as it
// walks (each visited node is pointed at its grandparent).
// Complexity: amortized near O(1).
func (u *UnionFind) Find(x int64) int64 {
	if _, ok := u.parent[x]; !ok {
		u.parent[x] = x
	}
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// Unite merges the sets of x and y, reporting whether a merge happened
// (false means they were already together). The lower-rank root is attached
// under the higher-rank root; on a rank tie y's root goes under x's, whose
// rank then grows.
func (u *UnionFind) Unite(x, y int64) bool {
	rx, ry := u.Find(x), u.Find(y)
	if rx == ry {
		return false
	}
	switch {
	case u.rank[rx] < u.rank[ry]:
		u.parent[rx] = ry
	case u.rank[rx] > u.rank[ry]:
		u.parent[ry] = rx
	default:
		u.parent[ry] = rx
		u.rank[rx]++
	}

	return true
}

// Same reports whether x and y are in the same set.
func (u *UnionFind) Same(x, y int64) bool { return u.Find(x) == u.Find(y) }
