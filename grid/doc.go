// Package grid provides an immutable rectangular container of seat labels,
// the common currency of the seatgrid module.
//
// What:
//
//   - Grid wraps a rectangular [][]string of labels with fixed extents.
//   - Labels are plain text; the empty string marks an unoccupied seat.
//   - Supports cell access, flattening to a row-major slice, reshaping a
//     flat slice back into a grid of the same extents, cloning, value
//     equality, and scanning for occupied positions.
//
// Why:
//
//   - Seating charts: hold imported occupants with their coordinates.
//   - Rearrangement: flatten/reshape is the bridge between a chart and a
//     permutation of its labels.
//   - Safety: construction deep-copies and rejects ragged input, so
//     downstream search never sees malformed data.
//
// Complexity:
//
//   - FromRows, Flatten, Reshape, Clone, Equal, Occupied: O(R×C).
//   - Cell, InBounds, Rows, Cols, Len: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a requested coordinate lies outside the extents.
//   - ErrLengthMismatch: a reshape source length differs from rows*cols.
package grid
