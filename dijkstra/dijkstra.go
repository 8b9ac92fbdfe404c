// Package dijkstra implements Dijkstra's shortest-path algorithm on
// node-weighted grids.
//
// Every cell of a gridgraph.Grid carries an entry cost. Moving from u to an
// orthogonal neighbour v costs grid.Cost(v): the weight belongs to the
// vertex being entered, not to the edge. Relaxation therefore adds the
// neighbour's cost to dist[u].
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries for cells that are already finalised.
//   - Heap ties are broken by insertion order, so repeated runs on the same
//     input visit cells in the same order and return the same route.
//   - We stop as soon as the target is popped; its distance is final then.
//   - All search state lives in a runner owned by one call.
package dijkstra

import (
	"container/heap"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/chiton/gridgraph"
)

// ShortestPath computes the minimum-cost route from Options.Source to
// Options.Target in g, moving only between orthogonal neighbours.
//
// Returns:
//
//   - *Result with the total cost (entry costs of every route cell except
//     the source), the route itself and the number of expanded cells.
//   - err: one of the sentinel errors if inputs are invalid, the target
//     cannot be reached, or the predecessor chain is inconsistent.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Source must be inside g (ErrSourceOutOfBounds).
//  3. Target must be inside g (ErrTargetOutOfBounds).
//
// g is only read, so concurrent calls may share it.
//
// Complexity:
//
//   - Time:  O(N log N), N = W×H
//   - Space: O(N)
func ShortestPath(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	// 1) Validate grid is non-nil
	if g == nil {
		return nil, ErrNilGrid
	}

	// 2) Build Options on top of the grid's defaults
	cfg := DefaultOptions(g)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Validate endpoints
	if !g.InBounds(cfg.Source) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrSourceOutOfBounds, cfg.Source, g.Width, g.Height)
	}
	if !g.InBounds(cfg.Target) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrTargetOutOfBounds, cfg.Target, g.Width, g.Height)
	}

	// 4) Run the search on fresh state
	r := newRunner(g, cfg)
	r.init()
	if !r.process() {
		cfg.Logger.Debug("search exhausted frontier",
			slog.String("source", cfg.Source.String()),
			slog.String("target", cfg.Target.String()),
			slog.Int("expanded", r.expanded))
		return nil, fmt.Errorf("%w: %v from %v", ErrUnreachable, cfg.Target, cfg.Source)
	}

	// 5) Walk predecessors back to the source
	route, err := Reconstruct(r.prev, cfg.Source, cfg.Target)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Source:   cfg.Source,
		Target:   cfg.Target,
		Cost:     r.dist[cfg.Target],
		Route:    route,
		Expanded: r.expanded,
	}
	cfg.Logger.Debug("shortest path found",
		slog.String("source", res.Source.String()),
		slog.String("target", res.Target.String()),
		slog.Int("cost", res.Cost),
		slog.Int("route_len", len(res.Route)),
		slog.Int("expanded", res.Expanded))

	return res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g        *gridgraph.Grid                     // The input grid; read-only.
	options  Options                             // Endpoints, cap and logger.
	dist     map[gridgraph.Point]int             // Best-known cumulative cost; absent means +∞.
	prev     map[gridgraph.Point]gridgraph.Point // Predecessor on the best-known route.
	visited  map[gridgraph.Point]bool            // Cells whose cost is final.
	pq       nodePQ                              // Min-heap of *nodeItem (lazy decrease-key).
	seq      uint64                              // Insertion counter for tie-breaking.
	expanded int                                 // Number of finalised cells.
}

func newRunner(g *gridgraph.Grid, cfg Options) *runner {
	n := g.Len()

	return &runner{
		g:       g,
		options: cfg,
		dist:    make(map[gridgraph.Point]int, n),
		prev:    make(map[gridgraph.Point]gridgraph.Point, n),
		visited: make(map[gridgraph.Point]bool, n),
		pq:      make(nodePQ, 0, 4*g.Width+4*g.Height),
	}
}

// init sets dist[Source] = 0 and seeds the heap with Source.
func (r *runner) init() {
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// distance returns the best-known cost of p, math.MaxInt when unknown.
func (r *runner) distance(p gridgraph.Point) int {
	if d, ok := r.dist[p]; ok {
		return d
	}

	return math.MaxInt
}

// push adds p with priority d, stamping it with the next sequence number.
func (r *runner) push(p gridgraph.Point, d int) {
	heap.Push(&r.pq, &nodeItem{p: p, dist: d, seq: r.seq})
	r.seq++
}

// process is the core loop. It repeatedly extracts the unvisited cell with
// the smallest cost and relaxes its neighbours.
//
// Returns true once Target is extracted, false if the heap empties first.
func (r *runner) process() bool {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.p

		// 2) Skip stale entries for cells already finalised.
		if r.visited[u] {
			continue
		}

		// 3) Target extracted: its distance is final.
		if u == r.options.Target {
			r.visited[u] = true
			r.expanded++
			return true
		}

		// 4) Finalise u and relax its neighbours.
		r.visited[u] = true
		r.expanded++
		r.relax(u)
	}

	return false
}

// relax tries to improve the cost of every unvisited neighbour v of u.
// The candidate cost is dist[u] plus the entry cost of v.
//
// Assumes dist[u] is final.
func (r *runner) relax(u gridgraph.Point) {
	du := r.dist[u]
	for _, v := range r.g.Neighbors(u) {
		if r.visited[v] {
			continue
		}

		// Neighbors only yields in-bounds cells.
		nd := du + r.g.MustCost(v)

		if nd > r.options.MaxCost {
			continue
		}

		// Strict improvement only; equal costs keep the first predecessor.
		if nd >= r.distance(v) {
			continue
		}

		r.dist[v] = nd
		r.prev[v] = u
		r.push(v, nd)
	}
}

// nodeItem is a heap entry: a cell, the cost it was pushed with, and its
// insertion sequence number.
type nodeItem struct {
	p    gridgraph.Point
	dist int
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by seq.
// Outdated entries stay in the heap and are skipped on pop (checked via visited).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance ascending, earlier insertions first on ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
// Called by heap.Pop after it has moved the minimum there.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
