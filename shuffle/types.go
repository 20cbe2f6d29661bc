// Package shuffle defines engine options and sentinel errors.
package shuffle

import (
	"errors"
	"fmt"
)

// Sentinel errors for the rearrangement engine.
var (
	// ErrNilGrid indicates a nil original grid.
	ErrNilGrid = errors.New("shuffle: original grid must be non-nil")
	// ErrBadMaxAttempts indicates a non-positive attempt budget.
	ErrBadMaxAttempts = errors.New("shuffle: MaxAttempts must be positive")
	// ErrUnsatisfiable indicates a rule proved, from the original grid
	// alone, that no candidate can ever pass. No attempt is consumed.
	ErrUnsatisfiable = errors.New("shuffle: constraints are unsatisfiable for this grid")
	// ErrExhausted indicates the attempt budget ran out without a valid
	// candidate. Match with errors.Is; the concrete *ExhaustedError
	// carries the attempt count.
	ErrExhausted = errors.New("shuffle: attempt budget exhausted without a valid arrangement")
)

// ExhaustedError reports budget exhaustion together with the number of
// candidates evaluated. errors.Is(err, ErrExhausted) matches it.
type ExhaustedError struct {
	// Attempts is the number of candidates generated and rejected.
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%v (%d attempts)", ErrExhausted, e.Attempts)
}

// Is makes the typed error match the ErrExhausted sentinel.
func (e *ExhaustedError) Is(target error) bool { return target == ErrExhausted }

// DefaultMaxAttempts is a workable budget for charts up to a few hundred
// seats under the built-in rules; stricter rule sets or larger charts may
// need more.
const DefaultMaxAttempts = 5000

// Options configures a Shuffler.
//
// Fields:
//   - MaxAttempts — maximum number of candidate permutations generated and
//     evaluated before the engine reports ErrExhausted. Must be positive.
//   - Seed       — RNG seed. 0 (the default) draws a fresh seed per
//     Shuffler, making each call independently random; any other value
//     replays the search deterministically.
//
// Example:
//
//	opts := shuffle.DefaultOptions()
//	opts.Seed = 42 // reproducible run
//
//	s, err := shuffle.New(original, rules, opts)
type Options struct {
	MaxAttempts int
	Seed        int64
}

// DefaultOptions returns Options with DefaultMaxAttempts and a fresh
// random seed per Shuffler.
func DefaultOptions() Options {
	return Options{MaxAttempts: DefaultMaxAttempts}
}
