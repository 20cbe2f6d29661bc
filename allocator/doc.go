// Package allocator is the facade external collaborators call: hand in a
// seating chart, get back a validated rearrangement or a typed failure.
//
// What:
//
//   - Allocate: run the shuffle engine over an existing grid.Grid.
//   - AllocateRows: the same, accepting raw [][]string as produced by an
//     external tabular importer; ragged input fails with the grid
//     sentinels before any search starts.
//
// Why:
//
//   - Importers and UIs should depend on one entry point, not on the
//     engine's construction details.
//   - The input grid is never mutated; callers keep the original for
//     display, comparison, and iterative re-shuffling.
//
// Errors (all propagated unwrapped, distinguishable via errors.Is):
//
//   - grid.ErrEmptyGrid, grid.ErrNonRectangular — malformed input.
//   - shuffle.ErrUnsatisfiable — no candidate can ever pass; retrying is
//     pointless without relaxing the rules.
//   - shuffle.ErrExhausted — the budget ran out; retry with a larger
//     MaxAttempts or a relaxed rule set.
package allocator
