package gridgraph

import "fmt"

// Expand tiles base DefaultTileFactor times along each axis.
// It is shorthand for ExpandBy(base, DefaultTileFactor), which cannot fail.
func Expand(base *Grid) *Grid {
	g, err := ExpandBy(base, DefaultTileFactor)
	if err != nil {
		panic(err) // unreachable: DefaultTileFactor >= 1
	}

	return g
}

// ExpandBy returns a new (n·W)×(n·H) grid made of n×n copies of base.
// The copy at tile (tx,ty) has every cost raised by tx+ty, wrapping from
// MaxCost back to MinCost.
//
// Behavior:
//  1. Validate n >= 1 (ErrBadTileFactor).
//  2. For every output cell compute tile indices and base coordinate.
//  3. Apply WrapCost once to the base cost with the summed tile offset.
//
// base is never modified.
// Complexity: O(n²·W·H) time and memory.
func ExpandBy(base *Grid, n int) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadTileFactor, n)
	}
	w, h := base.Width, base.Height
	ow, oh := w*n, h*n
	costs := make([]int, ow*oh)
	for y := 0; y < oh; y++ {
		ty, by := y/h, y%h
		for x := 0; x < ow; x++ {
			tx, bx := x/w, x%w
			costs[y*ow+x] = WrapCost(base.costs[by*w+bx], tx+ty)
		}
	}

	return newGrid(ow, oh, costs), nil
}

// WrapCost raises cost c by offset and wraps the result into
// [MinCost, MaxCost]: ((c - 1 + offset) mod 9) + 1.
func WrapCost(c, offset int) int {
	const span = MaxCost - MinCost + 1
	v := (c - MinCost + offset) % span
	if v < 0 {
		v += span
	}

	return v + MinCost
}
