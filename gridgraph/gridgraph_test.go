package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/chiton/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, ragged or out-of-range inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
		{"ZeroCost", [][]int{{1, 0}}, gridgraph.ErrInvalidCost},
		{"TooExpensive", [][]int{{10}}, gridgraph.ErrInvalidCost},
		{"Negative", [][]int{{1}, {-3}}, gridgraph.ErrInvalidCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGrid_Copies checks that later changes to the input do not leak into the grid.
func TestNewGrid_Copies(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	g, err := gridgraph.NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	rows[0][0] = 9
	if c, _ := g.Cost(gridgraph.Pt(0, 0)); c != 1 {
		t.Errorf("Cost(0,0) = %d after mutating input; want 1", c)
	}
	out := g.Rows()
	out[1][1] = 9
	if c, _ := g.Cost(gridgraph.Pt(1, 1)); c != 4 {
		t.Errorf("Cost(1,1) = %d after mutating Rows(); want 4", c)
	}
}

// TestInBounds checks InBounds and Cost on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewGrid([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}

	valid := map[gridgraph.Point]int{{0, 0}: 1, {2, 1}: 6, {1, 1}: 5, {2, 0}: 3}
	for p, want := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
		if c, ok := g.Cost(p); !ok || c != want {
			t.Errorf("Cost(%v) = %d,%v; want %d,true", p, c, ok, want)
		}
	}
	invalid := []gridgraph.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
		if c, ok := g.Cost(p); ok || c != 0 {
			t.Errorf("Cost(%v) = %d,%v; want 0,false", p, c, ok)
		}
	}
}

// TestMustCost_PanicsOutOfBounds verifies the out-of-bounds panic carries ErrOutOfBounds.
func TestMustCost_PanicsOutOfBounds(t *testing.T) {
	g, _ := gridgraph.NewGrid([][]int{{7}})
	if c := g.MustCost(gridgraph.Pt(0, 0)); c != 7 {
		t.Fatalf("MustCost(0,0) = %d; want 7", c)
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, gridgraph.ErrOutOfBounds) {
			t.Errorf("recovered %v; want error wrapping ErrOutOfBounds", r)
		}
	}()
	g.MustCost(gridgraph.Pt(1, 0))
}

//----------------------------------------------------------------------------//
// Neighbors and Points Tests
//----------------------------------------------------------------------------//

// TestNeighbors checks corner, edge and interior cells of a 3×3 grid.
func TestNeighbors(t *testing.T) {
	g, _ := gridgraph.NewGrid([][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	sortPts := cmpopts.SortSlices(func(a, b gridgraph.Point) bool {
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	cases := []struct {
		name string
		p    gridgraph.Point
		want []gridgraph.Point
	}{
		{"TopLeft", gridgraph.Pt(0, 0), []gridgraph.Point{{1, 0}, {0, 1}}},
		{"BottomRight", gridgraph.Pt(2, 2), []gridgraph.Point{{2, 1}, {1, 2}}},
		{"TopEdge", gridgraph.Pt(1, 0), []gridgraph.Point{{0, 0}, {2, 0}, {1, 1}}},
		{"Center", gridgraph.Pt(1, 1), []gridgraph.Point{{1, 0}, {0, 1}, {2, 1}, {1, 2}}},
		{"Outside", gridgraph.Pt(5, 5), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := g.Neighbors(tc.p)
			if diff := cmp.Diff(tc.want, got, sortPts, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Neighbors(%v) mismatch (-want +got):\n%s", tc.p, diff)
			}
			for _, q := range got {
				dx, dy := q.X-tc.p.X, q.Y-tc.p.Y
				if dx*dx+dy*dy != 1 {
					t.Errorf("neighbor %v of %v is not an orthogonal unit step", q, tc.p)
				}
			}
		})
	}
}

// TestNeighbors_Deterministic ensures repeated calls return the same order.
func TestNeighbors_Deterministic(t *testing.T) {
	g, _ := gridgraph.NewGrid([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	first := g.Neighbors(gridgraph.Pt(1, 1))
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, g.Neighbors(gridgraph.Pt(1, 1))); diff != "" {
			t.Fatalf("Neighbors order changed on call %d:\n%s", i, diff)
		}
	}
}

// TestPoints verifies row-major enumeration and Start/End corners.
func TestPoints(t *testing.T) {
	g, _ := gridgraph.NewGrid([][]int{{1, 2}, {3, 4}, {5, 6}})
	want := []gridgraph.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}}
	if diff := cmp.Diff(want, g.Points()); diff != "" {
		t.Errorf("Points mismatch (-want +got):\n%s", diff)
	}
	if g.Len() != 6 {
		t.Errorf("Len = %d; want 6", g.Len())
	}
	if g.Start() != gridgraph.Pt(0, 0) || g.End() != gridgraph.Pt(1, 2) {
		t.Errorf("Start/End = %v/%v; want 0,0/1,2", g.Start(), g.End())
	}
	for i, p := range want {
		if got := g.Coordinate(i); got != p {
			t.Errorf("Coordinate(%d) = %v; want %v", i, got, p)
		}
	}
}
