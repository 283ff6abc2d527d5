package shortestpath_test

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
	"github.com/katalvlaran/ugraph/shortestpath"
)

func ExampleFindPath() {
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

	res := shortestpath.FindPath(g, 0, 4)
	fmt.Println("path:", res.Path)
	fmt.Println("distance:", res.Distance)
	// Output:
	// path: [0 1 2 3 4]
	// distance: 6
}
