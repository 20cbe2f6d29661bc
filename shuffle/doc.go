// Package shuffle is the bounded randomized rearrangement engine: it
// searches for a permutation of a seating chart's occupants that satisfies
// an arbitrary conjunction of placement rules.
//
// What:
//
//   - Shuffler binds an original grid, a rule set, and Options.
//   - Shuffle draws uniformly random permutations of the occupied labels
//     (in-place Fisher–Yates), rebuilds a candidate of the same extents
//     with empty seats pinned, and evaluates the rules; the first passing
//     candidate is the result.
//   - The loop is bounded by Options.MaxAttempts; exhaustion is a typed,
//     reported outcome, never silent wrong output.
//   - Rules that can prove themselves structurally unsatisfiable fail the
//     call immediately, with zero attempts consumed.
//
// Why rejection sampling instead of a constructive solver:
//
//   - The rules are local pairwise checks, so a single evaluation is
//     O(grid size) and rejection is cheap; total failure is an explicit,
//     handled outcome, which keeps the engine an iterative loop with
//     constant stack usage regardless of grid size.
//
// Determinism:
//
//   - Options.Seed != 0 replays bit-for-bit; Seed == 0 draws a fresh seed
//     per Shuffler, so independent calls are uncorrelated.
//   - A Shuffler is not goroutine-safe (math/rand.Rand is not); distinct
//     Shufflers share nothing and may run in parallel freely.
//
// Errors:
//
//   - ErrNilGrid: no original grid was supplied.
//   - ErrBadMaxAttempts: a non-positive attempt budget.
//   - ErrUnsatisfiable: a rule proved no candidate can ever pass.
//   - ErrExhausted: the budget ran out; ExhaustedError carries the count.
package shuffle
