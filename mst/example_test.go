package mst_test

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
	"github.com/katalvlaran/ugraph/mst"
)

func ExampleKruskal() {
	g := core.NewGraph()
	for id := int64(0); id < 5; id++ {
		g.AddVertex(id, "")
	}
	g.AddEdge(0, 1, 2)
	g.AddEdge(0, 2, 4)
	g.AddEdge(1, 2, 1)
	g.AddEdge(1, 3, 7)
	g.AddEdge(2, 3, 2)
	g.AddEdge(3, 4, 1)

	res := mst.Kruskal(g)
	fmt.Println("total weight:", res.TotalWeight)
	fmt.Println("connected:", res.IsConnected)
	fmt.Println("edges:", len(res.Edges))
	// Output:
	// total weight: 6
	// connected: true
	// edges: 4
}
