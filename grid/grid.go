package grid

// FromRows constructs a Grid from a non-empty, rectangular 2D slice of labels.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(R×C) time and memory.
func FromRows(rows [][]string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	r, c := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != c {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]string, r)
	for i := 0; i < r; i++ {
		cells[i] = make([]string, c)
		copy(cells[i], rows[i])
	}

	return &Grid{rows: r, cols: c, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the total cell count, rows*cols.
func (g *Grid) Len() int { return g.rows * g.cols }

// InBounds reports whether (r,c) lies within the grid extents.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Cell returns the label at (r,c).
// Returns ErrOutOfBounds if the coordinate lies outside the extents.
// Complexity: O(1).
func (g *Grid) Cell(r, c int) (string, error) {
	if !g.InBounds(r, c) {
		return "", ErrOutOfBounds
	}
	return g.cells[r][c], nil
}

// At returns the label at (r,c) without a bounds check. It is the fast
// accessor for traversals that have already established InBounds; use Cell
// when the coordinate comes from a caller.
func (g *Grid) At(r, c int) string {
	return g.cells[r][c]
}

// Flatten returns the labels in row-major order as a fresh slice.
// The slice never aliases the grid's storage.
// Complexity: O(R×C) time and memory.
func (g *Grid) Flatten() []string {
	flat := make([]string, 0, g.rows*g.cols)
	for r := 0; r < g.rows; r++ {
		flat = append(flat, g.cells[r]...)
	}
	return flat
}

// Reshape builds a new Grid of the same extents from a row-major flat slice.
// Returns ErrLengthMismatch if len(flat) != rows*cols.
// The new grid copies flat; later changes to flat do not show through.
// Complexity: O(R×C) time and memory.
func (g *Grid) Reshape(flat []string) (*Grid, error) {
	if len(flat) != g.rows*g.cols {
		return nil, ErrLengthMismatch
	}
	cells := make([][]string, g.rows)
	for r := 0; r < g.rows; r++ {
		cells[r] = make([]string, g.cols)
		copy(cells[r], flat[r*g.cols:(r+1)*g.cols])
	}

	return &Grid{rows: g.rows, cols: g.cols, cells: cells}, nil
}

// Clone returns an independent deep copy of the grid.
// Complexity: O(R×C) time and memory.
func (g *Grid) Clone() *Grid {
	cells := make([][]string, g.rows)
	for r := 0; r < g.rows; r++ {
		cells[r] = make([]string, g.cols)
		copy(cells[r], g.cells[r])
	}
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal reports whether both grids have identical extents and identical
// labels at every position. Comparison is by label value.
// Complexity: O(R×C).
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// RowsCopy exports the labels as a fresh [][]string for external consumers.
// Complexity: O(R×C) time and memory.
func (g *Grid) RowsCopy() [][]string {
	rows := make([][]string, g.rows)
	for r := 0; r < g.rows; r++ {
		rows[r] = make([]string, g.cols)
		copy(rows[r], g.cells[r])
	}
	return rows
}

// Occupied returns the positions holding a non-empty label, in row-major
// order. Empty seats are pinned: rearrangement permutes labels only across
// these positions.
// Complexity: O(R×C) time, O(k) memory for k occupied cells.
func (g *Grid) Occupied() []Position {
	var occ []Position
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != "" {
				occ = append(occ, Position{Row: r, Col: c})
			}
		}
	}
	return occ
}
