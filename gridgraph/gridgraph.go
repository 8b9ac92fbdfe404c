// Package gridgraph provides an immutable cost grid with bounds-checked
// lookup and orthogonal adjacency.
package gridgraph

import "fmt"

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice indexed
// rows[y][x]. It copies the input so later changes to rows do not leak in.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrInvalidCost if any
// value lies outside [MinCost, MaxCost].
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	costs := make([]int, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, c := range row {
			if c < MinCost || c > MaxCost {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidCost, c, x, y)
			}
		}
		costs = append(costs, row...)
	}

	return newGrid(w, h, costs), nil
}

// newGrid wraps already validated row-major costs without copying.
func newGrid(w, h int, costs []int) *Grid {
	return &Grid{
		Width:           w,
		Height:          h,
		costs:           costs,
		neighborOffsets: conn4,
	}
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cost returns the entry cost of p. The boolean is false when p is out of
// bounds, in which case the cost is 0.
func (g *Grid) Cost(p Point) (int, bool) {
	if !g.InBounds(p) {
		return 0, false
	}

	return g.costs[g.index(p)], true
}

// MustCost is Cost for callers that have already bounds-checked p.
// It panics with an error wrapping ErrOutOfBounds otherwise.
func (g *Grid) MustCost(p Point) int {
	c, ok := g.Cost(p)
	if !ok {
		panic(fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.Width, g.Height))
	}

	return c
}

// Neighbors returns the orthogonal neighbours of p that lie inside the grid,
// in the fixed order N, E, S, W. A point outside the grid has no neighbours.
// Complexity: O(1).
func (g *Grid) Neighbors(p Point) []Point {
	if !g.InBounds(p) {
		return nil
	}
	out := make([]Point, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		q := p.Add(d[0], d[1])
		if g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// Points enumerates every cell in row-major order.
func (g *Grid) Points() []Point {
	pts := make([]Point, 0, g.Len())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			pts = append(pts, Point{X: x, Y: y})
		}
	}

	return pts
}

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int { return g.Width * g.Height }

// Start is the conventional source cell, the top-left corner.
func (g *Grid) Start() Point { return Point{} }

// End is the conventional destination cell, the bottom-right corner.
func (g *Grid) End() Point { return Point{X: g.Width - 1, Y: g.Height - 1} }

// Rows returns a copy of the costs as rows[y][x].
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.Height)
	for y := range rows {
		rows[y] = make([]int, g.Width)
		copy(rows[y], g.costs[y*g.Width:(y+1)*g.Width])
	}

	return rows
}

// Equal reports whether g and o have the same dimensions and costs.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Width != o.Width || g.Height != o.Height {
		return false
	}
	for i, c := range g.costs {
		if o.costs[i] != c {
			return false
		}
	}

	return true
}

// index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}
