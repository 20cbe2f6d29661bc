// Package grid defines the core container type, coordinates, and sentinel
// errors shared by the seatgrid module.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid extents.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrLengthMismatch indicates a reshape source whose length is not rows*cols.
	ErrLengthMismatch = errors.New("grid: flat sequence length must equal rows*cols")
)

// Position identifies a single cell by row and column, both zero-based.
type Position struct {
	Row, Col int
}

// Grid is an immutable rectangular arrangement of text labels.
// The empty string marks an unoccupied seat. Extents are fixed at
// construction; no method mutates the receiver.
type Grid struct {
	rows, cols int
	cells      [][]string
}
