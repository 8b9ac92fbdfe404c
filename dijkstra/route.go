package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/chiton/gridgraph"
)

// Route is an ordered sequence of cells from source to destination inclusive.
type Route []gridgraph.Point

// Reconstruct walks prev backwards from target until it reaches a cell with
// no predecessor, then reverses the walk into source→target order.
//
// The walk must end exactly at source; otherwise, or if the chain loops,
// ErrBrokenChain is returned. prev must not hold an entry for source.
//
// Complexity: O(L) for a route of L cells.
func Reconstruct(prev map[gridgraph.Point]gridgraph.Point, source, target gridgraph.Point) (Route, error) {
	route := Route{target}
	at := target
	for steps := 0; ; steps++ {
		p, ok := prev[at]
		if !ok {
			break
		}
		// A simple chain uses each entry at most once.
		if steps >= len(prev) {
			return nil, fmt.Errorf("%w: cycle through %v", ErrBrokenChain, at)
		}
		route = append(route, p)
		at = p
	}
	if at != source {
		return nil, fmt.Errorf("%w: chain from %v ends at %v, want %v", ErrBrokenChain, target, at, source)
	}
	slices.Reverse(route)

	return route, nil
}

// Cost sums the entry costs of every cell except the first.
// It panics with gridgraph.ErrOutOfBounds if the route leaves g.
func (r Route) Cost(g *gridgraph.Grid) int {
	total := 0
	for i := 1; i < len(r); i++ {
		total += g.MustCost(r[i])
	}

	return total
}

// Validate reports ErrNotContiguous unless every pair of consecutive cells
// differs by one unit along exactly one axis.
func (r Route) Validate() error {
	for i := 1; i < len(r); i++ {
		a, b := r[i-1], r[i]
		dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)
		if dx+dy != 1 {
			return fmt.Errorf("%w: step %d from %v to %v", ErrNotContiguous, i, a, b)
		}
	}

	return nil
}

// Source returns the first cell; the zero Point for an empty route.
func (r Route) Source() gridgraph.Point {
	if len(r) == 0 {
		return gridgraph.Point{}
	}

	return r[0]
}

// Target returns the last cell; the zero Point for an empty route.
func (r Route) Target() gridgraph.Point {
	if len(r) == 0 {
		return gridgraph.Point{}
	}

	return r[len(r)-1]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
