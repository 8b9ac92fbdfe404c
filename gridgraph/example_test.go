// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/chiton/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Parse and Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors demonstrates parsing a digit grid and inspecting
// the entry costs around a cell.
// Scenario:
//
//   - 3×3 grid, one row per line.
//   - Neighbours of the centre cell in N, E, S, W order.
//
// Complexity: O(W·H) to parse, O(1) per Neighbors call.
func ExampleGrid_Neighbors() {
	g, _ := gridgraph.Parse("123\n456\n789\n")

	for _, p := range g.Neighbors(gridgraph.Pt(1, 1)) {
		c, _ := g.Cost(p)
		fmt.Printf("(%v) cost %d\n", p, c)
	}

	// Output:
	// (1,0) cost 2
	// (2,1) cost 6
	// (1,2) cost 8
	// (0,1) cost 4
}

////////////////////////////////////////////////////////////////////////////////
// Example: Expand
////////////////////////////////////////////////////////////////////////////////

// ExampleExpand demonstrates the 5×5 tiling of a single cell.
// Each tile to the right or below adds one to the cost, wrapping 9 → 1.
func ExampleExpand() {
	base, _ := gridgraph.Parse("8\n")
	fmt.Print(gridgraph.Expand(base))

	// Output:
	// 89123
	// 91234
	// 12345
	// 23456
	// 34567
}
