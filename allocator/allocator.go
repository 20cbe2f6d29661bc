package allocator

import (
	"github.com/ledomirka/seatgrid/constraint"
	"github.com/ledomirka/seatgrid/grid"
	"github.com/ledomirka/seatgrid/shuffle"
)

// Allocate produces a new arrangement of original's occupants satisfying
// every predicate, within opts.MaxAttempts candidates. The returned grid
// is independently owned; original is never mutated.
//
// Failures propagate untouched: shuffle.ErrNilGrid,
// shuffle.ErrBadMaxAttempts, shuffle.ErrUnsatisfiable, and
// shuffle.ErrExhausted (carrying the attempt count via
// *shuffle.ExhaustedError).
//
// Complexity: O(MaxAttempts × P × R×C) worst case.
func Allocate(original *grid.Grid, preds []constraint.Predicate, opts shuffle.Options) (*grid.Grid, error) {
	s, err := shuffle.New(original, preds, opts)
	if err != nil {
		return nil, err
	}
	return s.Shuffle()
}

// AllocateRows builds a grid from raw rows and delegates to Allocate.
// Ragged or empty input fails with grid.ErrNonRectangular or
// grid.ErrEmptyGrid before any shuffling attempt.
func AllocateRows(rows [][]string, preds []constraint.Predicate, opts shuffle.Options) (*grid.Grid, error) {
	g, err := grid.FromRows(rows)
	if err != nil {
		return nil, err
	}
	return Allocate(g, preds, opts)
}
