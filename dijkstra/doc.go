// Package dijkstra finds minimum-cost routes across a gridgraph.Grid where
// every cell carries an entry cost.
//
// Overview:
//
//   - ShortestPath runs a single-source search from Source and stops as soon
//     as Target is finalised. Moves are orthogonal only.
//   - The cost of a move is the entry cost of the cell moved into. The
//     source cell's own cost is never charged.
//   - It relies on a min-heap (container/heap) with lazy decrease-key: a
//     better cost pushes a fresh entry and stale entries are skipped on pop.
//   - Reconstruct turns the predecessor map into a Route; Route.Cost and
//     Route.Validate recompute the cost and check contiguity.
//
// When to use:
//
//   - Least-risk traversal of cost maps: terrain, congestion, hazard grids.
//   - Together with gridgraph.Expand to search a 5×5 tiled version of a map.
//
// Performance and complexity:
//
//   - Time:  O(N log N), N = W×H cells.
//   - Space: O(N) for distance, predecessor and visited maps and the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:           nil *gridgraph.Grid.
//   - ErrSourceOutOfBounds: Source outside the grid.
//   - ErrTargetOutOfBounds: Target outside the grid.
//   - ErrUnreachable:       frontier emptied before Target (only possible with WithMaxCost
//     on a rectangular grid, but always checked).
//   - ErrBrokenChain:       predecessor chain does not end at Source.
//   - ErrNotContiguous:     returned by Route.Validate.
//   - ErrBadMaxCost:        raised (via panic) by WithMaxCost on a negative cap.
//
// API reference:
//
//	func ShortestPath(g *gridgraph.Grid, opts ...Option) (*Result, error)
//
//	  - opts:
//	      • WithSource(Point):     start cell, default (0,0).
//	      • WithTarget(Point):     destination, default (W-1,H-1).
//	      • WithMaxCost(int):      explore only cells with cost ≤ given value.
//	      • WithLogger(*slog.Logger): debug records for each search.
//
// Thread safety:
//
//   - Each call owns its own search state. A *gridgraph.Grid is immutable, so
//     any number of concurrent searches may share it without locking.
package dijkstra
