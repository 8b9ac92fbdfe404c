// Package gridgraph treats a rectangular grid of entry costs as a graph
// whose vertices are cells and whose edges join orthogonal neighbours.
//
// What:
//
//   - Grid wraps a rectangular matrix of costs in [1,9] and is immutable.
//   - Parse / ParseReader build a Grid from digit text, one row per line.
//   - Neighbors enumerates the up-to-four orthogonal neighbours of a cell.
//   - Expand tiles a base grid 5×5 with cyclic cost wraparound.
//
// Why:
//
//   - Entry cost belongs to the cell being entered, not to the move, so the
//     grid itself is the weight function for node-weighted shortest paths
//     (see package dijkstra).
//
// Expansion:
//
//	For an output cell (x,y) over a w×h base, with tile indices tx = x/w,
//	ty = y/h and base coordinate (x mod w, y mod h):
//
//	    cost'(x,y) = ((base(x mod w, y mod h) - 1 + tx + ty) mod 9) + 1
//
//	The formula is evaluated once per cell from the original base cost and
//	the summed tile offset.
//
// Complexity:
//
//   - NewGrid, Parse:  O(W×H) time and memory.
//   - Neighbors:       O(1).
//   - ExpandBy(n):     O(n²×W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:      no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidDigit:   a character other than '1'..'9' in text input.
//   - ErrInvalidCost:    a numeric cost outside [1,9].
//   - ErrOutOfBounds:    a point outside the grid (MustCost panics with it).
//   - ErrBadTileFactor:  ExpandBy called with n < 1.
//
// Text-input failures are reported as *ParseError, which carries the line
// and column and unwraps to one of the sentinels above.
package gridgraph
