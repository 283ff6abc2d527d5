package hotel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ugraph/core"
	"github.com/katalvlaran/ugraph/hotel"
)

// buildStar constructs a star with center 0 and leaves 1..4, unit weights.
func buildStar() *core.Graph {
	g := core.NewGraph()
	for id := int64(0); id < 5; id++ {
		g.AddVertex(id, "")
	}
	for leaf := int64(1); leaf < 5; leaf++ {
		g.AddEdge(0, leaf, 1)
	}

	return g
}

// buildIslands constructs components {0,1} (weight 2), {2,3} (weight 3)
// and the isolated vertex 4.
func buildIslands() *core.Graph {
	g := core.NewGraph()
	for id := int64(0); id < 5; id++ {
		g.AddVertex(id, "")
	}
	g.AddEdge(0, 1, 2)
	g.AddEdge(2, 3, 3)

	return g
}

func TestDominatingSetGreedy_StarPicksHub(t *testing.T) {
	res := hotel.DominatingSetGreedy(buildStar())

	require.True(t, res.IsValid)
	assert.Equal(t, []int64{0}, res.Centers)
	assert.Equal(t, 1.0, res.MaxDistance)
	assert.InDelta(t, 0.8, res.MeanDistance, 1e-9) // (0+1+1+1+1)/5
	assert.Empty(t, res.Unassigned)
	for leaf := int64(1); leaf < 5; leaf++ {
		assert.Equal(t, int64(0), res.AssignedTo[leaf])
	}
}

func TestDominatingSetGreedy_Path(t *testing.T) {
	// 0—1—2—3—4 with unit weights. Vertex 1 scores 3 first, then 3
	// covers the tail.
	g := core.NewGraph()
	for id := int64(0); id < 5; id++ {
		g.AddVertex(id, "")
	}
	for id := int64(0); id < 4; id++ {
		g.AddEdge(id, id+1, 1)
	}

	res := hotel.DominatingSetGreedy(g)
	require.True(t, res.IsValid)
	assert.Equal(t, []int64{1, 3}, res.Centers)
	assert.Equal(t, 1.0, res.MaxDistance)
	assert.InDelta(t, 0.6, res.MeanDistance, 1e-9)
	assert.Equal(t, int64(1), res.AssignedTo[0])
	assert.Equal(t, int64(3), res.AssignedTo[4])
}

func TestDominatingSetGreedy_EmptyInvalid(t *testing.T) {
	assert.False(t, hotel.DominatingSetGreedy(core.NewGraph()).IsValid)
	assert.False(t, hotel.DominatingSetGreedy(nil).IsValid)
}

func TestKCenters_AllVerticesZeroDistance(t *testing.T) {
	g := buildStar()
	res := hotel.KCenters(g, g.VertexCount())

	require.True(t, res.IsValid)
	assert.Len(t, res.Centers, 5)
	assert.Equal(t, 0.0, res.MaxDistance)
	assert.Equal(t, 0.0, res.MeanDistance)
	for _, v := range g.Vertices() {
		assert.Equal(t, v, res.AssignedTo[v])
	}
}

func TestKCenters_OutOfRangeK(t *testing.T) {
	g := buildStar()
	assert.False(t, hotel.KCenters(g, 0).IsValid)
	assert.False(t, hotel.KCenters(g, -1).IsValid)
	assert.False(t, hotel.KCenters(g, 6).IsValid)
	assert.False(t, hotel.KCenters(core.NewGraph(), 1).IsValid)
}

func TestKCenters_DisconnectedCoversComponentsFirst(t *testing.T) {
	res := hotel.KCenters(buildIslands(), 3)

	require.True(t, res.IsValid)
	// Seed 0, then one center per unreached component in insertion order.
	assert.Equal(t, []int64{0, 2, 4}, res.Centers)
	assert.Empty(t, res.Unassigned)
	assert.Equal(t, 3.0, res.MaxDistance)
	assert.InDelta(t, 1.0, res.MeanDistance, 1e-9) // (0+2+0+3+0)/5
}

func TestKCenters_UnassignedDoNotSkewMean(t *testing.T) {
	res := hotel.KCenters(buildIslands(), 1)

	require.True(t, res.IsValid)
	assert.Equal(t, []int64{0}, res.Centers)
	assert.ElementsMatch(t, []int64{2, 3, 4}, res.Unassigned)
	assert.Equal(t, 2.0, res.MaxDistance)
	// Mean over the two assigned vertices only: (0+2)/2.
	assert.InDelta(t, 1.0, res.MeanDistance, 1e-9)
	_, ok := res.AssignedTo[4]
	assert.False(t, ok)
}

func TestKCenters_TieKeepsEarlierCenter(t *testing.T) {
	// 2 sits at distance 5 from both centers 0 and 1.
	g := core.NewGraph()
	for id := int64(0); id < 3; id++ {
		g.AddVertex(id, "")
	}
	g.AddEdge(0, 2, 5)
	g.AddEdge(1, 2, 5)

	res := hotel.KCenters(g, 2)
	require.True(t, res.IsValid)
	require.Equal(t, []int64{0, 1}, res.Centers)
	assert.Equal(t, int64(0), res.AssignedTo[2])
}

func TestAssignment_DistanceIsFirstVisitWeight(t *testing.T) {
	// The direct 0—1 edge is discovered first by the breadth-first
	// walk, so the reported distance is 10 even though 0—2—1 sums to 2.
	g := core.NewGraph()
	for id := int64(0); id < 3; id++ {
		g.AddVertex(id, "")
	}
	g.AddEdge(0, 1, 10)
	g.AddEdge(0, 2, 1)
	g.AddEdge(2, 1, 1)

	res := hotel.KCenters(g, 1)
	require.True(t, res.IsValid)
	assert.Equal(t, 10.0, res.MaxDistance)
}
