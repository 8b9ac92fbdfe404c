// Package gridgraph defines the cost grid, its coordinates and the
// bounds used by the rest of chiton.
package gridgraph

import "fmt"

// Cost bounds for a single cell.
const (
	MinCost = 1
	MaxCost = 9
)

// DefaultTileFactor is the number of tiles per axis produced by Expand.
const DefaultTileFactor = 5

// Point is a cell coordinate. X grows to the right, Y grows downwards.
// Points are comparable and can be used directly as map keys.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// String renders the point as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a rectangular matrix of entry costs. It is immutable once built:
// constructors copy their input and nothing in the package mutates costs
// afterwards, so a *Grid may be shared freely between goroutines.
//
// costs holds Width×Height values in row-major order (index y*Width + x).
// neighborOffsets is precomputed for adjacency lookups (N, E, S, W).
type Grid struct {
	Width, Height   int
	costs           []int
	neighborOffsets [4][2]int
}

// conn4 lists the orthogonal offsets in the fixed order N, E, S, W.
var conn4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
