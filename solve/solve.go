// Package solve wires parsing, expansion and search together into the
// operations a caller actually needs: the cost of the cheapest route on a
// grid, and the pair of answers for a base grid and its tiled expansion.
package solve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chiton/dijkstra"
	"github.com/katalvlaran/chiton/gridgraph"
)

// ErrNoParts indicates a Config that asks for neither answer.
var ErrNoParts = errors.New("solve: nothing to compute, enable Base or Expanded")

// Config selects which answers Run computes and how.
type Config struct {
	// Base computes the route on the grid as given.
	Base bool
	// Expanded computes the route on the grid tiled TileFactor×TileFactor.
	Expanded bool
	// TileFactor is the expansion factor, gridgraph.DefaultTileFactor when 0.
	TileFactor int
	// Start and End override the corners; nil means each grid's own corner.
	Start, End *gridgraph.Point
	// Logger receives Info records per answer; discarded when nil.
	Logger *slog.Logger
}

// DefaultConfig computes both answers with the default tile factor.
func DefaultConfig() Config {
	return Config{
		Base:       true,
		Expanded:   true,
		TileFactor: gridgraph.DefaultTileFactor,
	}
}

// Answer is one solved grid.
type Answer struct {
	Width, Height int
	Result        *dijkstra.Result
	Elapsed       time.Duration
}

// Report collects the answers of one Run. Unrequested answers are nil.
type Report struct {
	RunID    string
	Base     *Answer
	Expanded *Answer
}

// ShortestPathCost returns the minimum total entry cost from start to end.
// The start cell's own cost is not included.
func ShortestPathCost(g *gridgraph.Grid, start, end gridgraph.Point) (int, error) {
	res, err := dijkstra.ShortestPath(g, dijkstra.WithSource(start), dijkstra.WithTarget(end))
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// DefaultCost is ShortestPathCost from the top-left to the bottom-right corner.
func DefaultCost(g *gridgraph.Grid) (int, error) {
	if g == nil {
		return 0, dijkstra.ErrNilGrid
	}

	return ShortestPathCost(g, g.Start(), g.End())
}

// Run computes the requested answers for g. The base and expanded searches
// run concurrently; both only read g. ctx is checked before each search
// starts, a search in progress is not interrupted.
func Run(ctx context.Context, g *gridgraph.Grid, cfg Config) (*Report, error) {
	if g == nil {
		return nil, dijkstra.ErrNilGrid
	}
	if !cfg.Base && !cfg.Expanded {
		return nil, ErrNoParts
	}
	if cfg.TileFactor == 0 {
		cfg.TileFactor = gridgraph.DefaultTileFactor
	}
	if cfg.TileFactor < 1 {
		return nil, fmt.Errorf("%w: got %d", gridgraph.ErrBadTileFactor, cfg.TileFactor)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	rep := &Report{RunID: uuid.NewString()}
	logger = logger.With(slog.String("run_id", rep.RunID))

	eg, egCtx := errgroup.WithContext(ctx)
	if cfg.Base {
		eg.Go(func() error {
			a, err := answer(egCtx, g, cfg, logger.With(slog.String("part", "base")))
			if err != nil {
				return fmt.Errorf("base grid: %w", err)
			}
			rep.Base = a
			return nil
		})
	}
	if cfg.Expanded {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			big, err := gridgraph.ExpandBy(g, cfg.TileFactor)
			if err != nil {
				return err
			}
			a, err := answer(egCtx, big, cfg, logger.With(slog.String("part", "expanded")))
			if err != nil {
				return fmt.Errorf("expanded grid: %w", err)
			}
			rep.Expanded = a
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return rep, nil
}

// answer runs one search on g with the endpoints from cfg.
func answer(ctx context.Context, g *gridgraph.Grid, cfg Config, logger *slog.Logger) (*Answer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts := []dijkstra.Option{dijkstra.WithLogger(logger)}
	if cfg.Start != nil {
		opts = append(opts, dijkstra.WithSource(*cfg.Start))
	}
	if cfg.End != nil {
		opts = append(opts, dijkstra.WithTarget(*cfg.End))
	}

	began := time.Now()
	res, err := dijkstra.ShortestPath(g, opts...)
	if err != nil {
		return nil, err
	}
	a := &Answer{Width: g.Width, Height: g.Height, Result: res, Elapsed: time.Since(began)}
	logger.Info("solved",
		slog.Int("width", a.Width),
		slog.Int("height", a.Height),
		slog.Int("cost", res.Cost),
		slog.Duration("elapsed", a.Elapsed))

	return a, nil
}

// FromReader parses a grid from input and runs cfg over it.
func FromReader(ctx context.Context, input io.Reader, cfg Config) (*Report, error) {
	g, err := gridgraph.ParseReader(input)
	if err != nil {
		return nil, err
	}

	return Run(ctx, g, cfg)
}
