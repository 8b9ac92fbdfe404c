// Package dijkstra_test provides examples demonstrating the grid search.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/chiton/dijkstra"
	"github.com/katalvlaran/chiton/gridgraph"
)

// ExampleShortestPath demonstrates the default corner-to-corner search on a
// small cost map.
// Complexity: O(N log N) for N cells.
func ExampleShortestPath() {
	// 1) Parse the map: one row per line, each digit the cost of entering that cell.
	g, err := gridgraph.Parse("131\n151\n111\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Search from (0,0) to (2,2); both are the defaults.
	res, err := dijkstra.ShortestPath(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The start cell is free; the four cells entered along the left and
	//    bottom edges cost 1 each.
	fmt.Println("cost:", res.Cost)
	fmt.Println("route:", res.Route)
	// Output:
	// cost: 4
	// route: [0,0 0,1 0,2 1,2 2,2]
}

// ExampleShortestPath_expanded searches the 5×5 tiling of a single cell.
func ExampleShortestPath_expanded() {
	g, _ := gridgraph.Parse("8\n")
	big := gridgraph.Expand(g)

	res, _ := dijkstra.ShortestPath(big)
	fmt.Println(big.Width, big.Height, res.Cost, len(res.Route))
	// Output: 5 5 37 9
}

// ExampleReconstruct shows how a predecessor map turns into a route.
func ExampleReconstruct() {
	prev := map[gridgraph.Point]gridgraph.Point{
		gridgraph.Pt(0, 1): gridgraph.Pt(0, 0),
		gridgraph.Pt(1, 1): gridgraph.Pt(0, 1),
	}
	route, err := dijkstra.Reconstruct(prev, gridgraph.Pt(0, 0), gridgraph.Pt(1, 1))
	fmt.Println(route, err)
	// Output: [0,0 0,1 1,1] <nil>
}
