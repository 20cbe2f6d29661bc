package grid_test

import (
	"errors"
	"testing"

	"github.com/ledomirka/seatgrid/grid"
)

//----------------------------------------------------------------------------//
// FromRows and InBounds Tests
//----------------------------------------------------------------------------//

// TestFromRows_Errors verifies that FromRows rejects empty or ragged inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]string
		err  error
	}{
		{"EmptyRows", [][]string{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]string{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]string{{"A", "B"}, {"C"}}, grid.ErrNonRectangular},
		{"NonRectangularLonger", [][]string{{"A", "B"}, {"C", "D", "E"}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRows(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromRows(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestFromRows_DeepCopy ensures mutating the source slice after construction
// does not show through the grid.
func TestFromRows_DeepCopy(t *testing.T) {
	rows := [][]string{{"A", "B"}, {"C", "D"}}
	g, err := grid.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	rows[0][0] = "Z"
	got, err := g.Cell(0, 0)
	if err != nil {
		t.Fatalf("Cell error: %v", err)
	}
	if got != "A" {
		t.Errorf("Cell(0,0) = %q after source mutation; want %q", got, "A")
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.FromRows([][]string{
		{"A", "B", "C"},
		{"D", "E", "F"},
	})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}

	valid := [][2]int{{0, 0}, {1, 2}, {0, 2}}
	for _, rc := range valid {
		if !g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {2, 0}, {0, 3}, {1, -1}}
	for _, rc := range invalid {
		if g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", rc[0], rc[1])
		}
	}
}

// TestCell_OutOfBounds verifies the checked accessor's sentinel.
func TestCell_OutOfBounds(t *testing.T) {
	g, err := grid.FromRows([][]string{{"A"}})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	if _, err = g.Cell(0, 1); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("Cell(0,1) error = %v; want ErrOutOfBounds", err)
	}
	if _, err = g.Cell(-1, 0); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("Cell(-1,0) error = %v; want ErrOutOfBounds", err)
	}
}

//----------------------------------------------------------------------------//
// Flatten and Reshape Tests
//----------------------------------------------------------------------------//

// TestFlattenReshape_RoundTrip verifies row-major order and shape preservation.
func TestFlattenReshape_RoundTrip(t *testing.T) {
	g, err := grid.FromRows([][]string{
		{"A", "B", "C"},
		{"D", "E", "F"},
	})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}

	flat := g.Flatten()
	want := []string{"A", "B", "C", "D", "E", "F"}
	if len(flat) != len(want) {
		t.Fatalf("Flatten length = %d; want %d", len(flat), len(want))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Errorf("Flatten[%d] = %q; want %q", i, flat[i], want[i])
		}
	}

	back, err := g.Reshape(flat)
	if err != nil {
		t.Fatalf("Reshape error: %v", err)
	}
	if !back.Equal(g) {
		t.Error("Reshape(Flatten()) differs from original grid")
	}
}

// TestReshape_LengthMismatch verifies the short and long sentinel cases.
func TestReshape_LengthMismatch(t *testing.T) {
	g, err := grid.FromRows([][]string{{"A", "B"}, {"C", "D"}})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	if _, err = g.Reshape([]string{"A", "B", "C"}); !errors.Is(err, grid.ErrLengthMismatch) {
		t.Errorf("Reshape(len 3) error = %v; want ErrLengthMismatch", err)
	}
	if _, err = g.Reshape(make([]string, 5)); !errors.Is(err, grid.ErrLengthMismatch) {
		t.Errorf("Reshape(len 5) error = %v; want ErrLengthMismatch", err)
	}
}

// TestReshape_NoAliasing ensures a reshaped grid owns its storage.
func TestReshape_NoAliasing(t *testing.T) {
	g, err := grid.FromRows([][]string{{"A", "B"}})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	flat := []string{"X", "Y"}
	ng, err := g.Reshape(flat)
	if err != nil {
		t.Fatalf("Reshape error: %v", err)
	}
	flat[0] = "Z"
	got, _ := ng.Cell(0, 0)
	if got != "X" {
		t.Errorf("Cell(0,0) = %q after flat mutation; want %q", got, "X")
	}
}

//----------------------------------------------------------------------------//
// Clone, Equal, RowsCopy, Occupied Tests
//----------------------------------------------------------------------------//

// TestCloneEqual verifies deep copy independence and value equality.
func TestCloneEqual(t *testing.T) {
	g, err := grid.FromRows([][]string{{"A", ""}, {"", "B"}})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	cp := g.Clone()
	if !cp.Equal(g) {
		t.Fatal("Clone() not Equal to original")
	}

	other, err := grid.FromRows([][]string{{"A", ""}, {"", "C"}})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	if g.Equal(other) {
		t.Error("grids with different labels reported Equal")
	}
	if g.Equal(nil) {
		t.Error("Equal(nil) = true; want false")
	}

	narrow, err := grid.FromRows([][]string{{"A", "", "", "B"}})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	if g.Equal(narrow) {
		t.Error("grids with different extents reported Equal")
	}
}

// TestRowsCopy_Independent verifies the exported rows are a fresh copy.
func TestRowsCopy_Independent(t *testing.T) {
	g, err := grid.FromRows([][]string{{"A", "B"}})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	out := g.RowsCopy()
	out[0][0] = "Z"
	got, _ := g.Cell(0, 0)
	if got != "A" {
		t.Errorf("Cell(0,0) = %q after RowsCopy mutation; want %q", got, "A")
	}
}

// TestOccupied verifies row-major ordering and empty-seat exclusion.
func TestOccupied(t *testing.T) {
	g, err := grid.FromRows([][]string{
		{"", "A", ""},
		{"B", "", "C"},
	})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	occ := g.Occupied()
	want := []grid.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}
	if len(occ) != len(want) {
		t.Fatalf("Occupied length = %d; want %d", len(occ), len(want))
	}
	for i := range want {
		if occ[i] != want[i] {
			t.Errorf("Occupied[%d] = %v; want %v", i, occ[i], want[i])
		}
	}
}

// TestOccupied_AllEmpty verifies a grid of empty seats has no occupied cells.
func TestOccupied_AllEmpty(t *testing.T) {
	g, err := grid.FromRows([][]string{{"", ""}, {"", ""}})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	if occ := g.Occupied(); len(occ) != 0 {
		t.Errorf("Occupied length = %d; want 0", len(occ))
	}
}
