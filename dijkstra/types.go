// Package dijkstra defines the options, results and sentinel errors of the
// node-weighted shortest-path search over a gridgraph.Grid.
//
// The search charges the entry cost of each cell it moves into; the cost of
// the source cell itself is never charged.
//
// Complexity:
//
//	– Time:  O(N log N)   where N = W×H cells
//	   • Each cell is finalised at most once.
//	   • Each relaxation may push one heap entry (at most 4N pushes).
//	– Space: O(N)
//	   • O(N) for distance and predecessor maps and for the heap (lazy decrease-key).
//
// Options:
//
//	– Source:  start cell (default: top-left corner).
//	– Target:  destination cell (default: bottom-right corner).
//	– MaxCost: optional cap; cells whose cumulative cost would exceed it are not explored.
//	– Logger:  *slog.Logger receiving a Debug record per search (default: discard).
//
// Errors (sentinel):
//
//	– ErrNilGrid           if the provided grid pointer is nil.
//	– ErrSourceOutOfBounds if Source lies outside the grid.
//	– ErrTargetOutOfBounds if Target lies outside the grid.
//	– ErrUnreachable       if the frontier empties before Target is finalised.
//	– ErrBrokenChain       if predecessors do not lead from Target back to Source.
//	– ErrNotContiguous     if a Route contains a non-orthogonal or non-unit step.
//	– ErrBadMaxCost        if MaxCost < 0.
package dijkstra

import (
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/chiton/gridgraph"
)

// Sentinel errors returned by the search and route reconstruction.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to ShortestPath.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceOutOfBounds indicates the source cell is not inside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source out of bounds")

	// ErrTargetOutOfBounds indicates the destination cell is not inside the grid.
	ErrTargetOutOfBounds = errors.New("dijkstra: target out of bounds")

	// ErrUnreachable indicates the frontier emptied before the target was reached.
	ErrUnreachable = errors.New("dijkstra: target unreachable")

	// ErrBrokenChain indicates the predecessor chain from the target does not
	// terminate at the source.
	ErrBrokenChain = errors.New("dijkstra: broken predecessor chain")

	// ErrNotContiguous indicates two consecutive route points are not orthogonal neighbours.
	ErrNotContiguous = errors.New("dijkstra: route is not contiguous")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Options configures a single ShortestPath call.
//
// Source  – start cell; its own entry cost is never charged.
// Target  – destination cell.
// MaxCost – cells whose cumulative cost would exceed this are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt (no cap).
//
// Logger  – receives one Debug record per search. Never nil after DefaultOptions.
type Options struct {
	Source  gridgraph.Point
	Target  gridgraph.Point
	MaxCost int
	Logger  *slog.Logger
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithSource sets the start cell. Default is the grid's top-left corner.
func WithSource(p gridgraph.Point) Option {
	return func(o *Options) {
		o.Source = p
	}
}

// WithTarget sets the destination cell. Default is the grid's bottom-right corner.
func WithTarget(p gridgraph.Point) Option {
	return func(o *Options) {
		o.Target = p
	}
}

// WithMaxCost sets a cap on cumulative cost.
// Cells whose cost from Source would exceed max are never finalised, so a
// Target beyond the cap yields ErrUnreachable.
// Panics with ErrBadMaxCost if max is negative.
func WithMaxCost(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithLogger routes the search's debug records to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the options used when none are given for g:
//
//   - Source:  (0,0)
//   - Target:  (Width-1, Height-1)
//   - MaxCost: math.MaxInt (no cap)
//   - Logger:  discards everything
func DefaultOptions(g *gridgraph.Grid) Options {
	return Options{
		Source:  g.Start(),
		Target:  g.End(),
		MaxCost: math.MaxInt,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// Result is the outcome of a successful search.
//
// Cost is the sum of entry costs along Route, excluding Source.
// Expanded counts the cells finalised before Target was reached.
type Result struct {
	Source   gridgraph.Point
	Target   gridgraph.Point
	Cost     int
	Route    Route
	Expanded int
}
