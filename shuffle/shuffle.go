package shuffle

import (
	"math/rand"

	"github.com/ledomirka/seatgrid/constraint"
	"github.com/ledomirka/seatgrid/grid"
)

// Shuffler searches for a rearrangement of one seating chart. It binds the
// original grid, the active rules, and an RNG stream at construction;
// occupied positions and their labels are precomputed once.
//
// A Shuffler never mutates its original grid. It is not safe for
// concurrent use; independent Shufflers share no state.
type Shuffler struct {
	original *grid.Grid
	preds    []constraint.Predicate
	opts     Options
	rng      *rand.Rand

	// occupied cells in row-major order, their flat (row-major) indices,
	// and the labels they hold in the original.
	occupied []grid.Position
	flatIdx  []int
	labels   []string

	attempts int
	result   *grid.Grid
}

// New validates the inputs and builds a Shuffler.
// Returns ErrNilGrid for a nil original and ErrBadMaxAttempts for a
// non-positive budget. A nil or empty predicate slice is allowed: every
// candidate then passes, so the first attempt wins.
// Complexity: O(R×C).
func New(original *grid.Grid, preds []constraint.Predicate, opts Options) (*Shuffler, error) {
	if original == nil {
		return nil, ErrNilGrid
	}
	if opts.MaxAttempts <= 0 {
		return nil, ErrBadMaxAttempts
	}

	occ := original.Occupied()
	idx := make([]int, len(occ))
	labels := make([]string, len(occ))
	for i, p := range occ {
		idx[i] = p.Row*original.Cols() + p.Col
		labels[i] = original.At(p.Row, p.Col)
	}

	return &Shuffler{
		original: original,
		preds:    preds,
		opts:     opts,
		rng:      rngFromSeed(opts.Seed),
		occupied: occ,
		flatIdx:  idx,
		labels:   labels,
	}, nil
}

// Shuffle runs the bounded search and returns the first candidate that
// satisfies every rule.
//
// The loop per attempt: Fisher–Yates permute the occupied labels, overlay
// them on the occupied positions (empty seats stay empty), evaluate the
// conjunction. On success the candidate (a fresh grid, never aliasing the
// original) is returned and retained for Result.
//
// Failure modes:
//   - ErrUnsatisfiable when a rule proves no candidate can pass; the
//     attempt count stays 0.
//   - *ExhaustedError (matching ErrExhausted) after MaxAttempts rejected
//     candidates.
//
// Complexity: O(MaxAttempts × P × R×C) worst case.
func (s *Shuffler) Shuffle() (*grid.Grid, error) {
	s.attempts = 0

	for _, p := range s.preds {
		if f, ok := p.(constraint.Feasibility); ok && !f.Feasible(s.original) {
			return nil, ErrUnsatisfiable
		}
	}

	flat := s.original.Flatten()
	work := make([]string, len(s.labels))

	for s.attempts < s.opts.MaxAttempts {
		copy(work, s.labels)
		shuffleStringsInPlace(work, s.rng)
		for i, fi := range s.flatIdx {
			flat[fi] = work[i]
		}

		cand, err := s.original.Reshape(flat)
		if err != nil {
			return nil, err
		}
		s.attempts++

		if constraint.EvaluateAll(s.preds, cand, s.original) {
			s.result = cand
			return cand, nil
		}
	}

	return nil, &ExhaustedError{Attempts: s.attempts}
}

// Attempts returns the number of candidates evaluated by the most recent
// Shuffle call: 0 after an unsatisfiability failure, exactly MaxAttempts
// after exhaustion, and the winning attempt's ordinal after success.
func (s *Shuffler) Attempts() int { return s.attempts }

// Result returns the last successful arrangement, or nil if no Shuffle
// call has succeeded yet.
func (s *Shuffler) Result() *grid.Grid { return s.result }

// Validate re-evaluates the bound rules against an arbitrary candidate,
// relative to the Shuffler's original grid. A nil candidate is invalid.
// Complexity: O(P×R×C).
func (s *Shuffler) Validate(candidate *grid.Grid) bool {
	if candidate == nil {
		return false
	}
	if candidate.Rows() != s.original.Rows() || candidate.Cols() != s.original.Cols() {
		return false
	}
	return constraint.EvaluateAll(s.preds, candidate, s.original)
}
