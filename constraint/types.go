// Package constraint defines rule types, connectivity options, and
// sentinel errors for seating-chart validation.
package constraint

import (
	"errors"

	"github.com/ledomirka/seatgrid/grid"
)

// Sentinel errors for constraint configuration.
var (
	// ErrBadRuleset indicates a ruleset document that failed to parse or
	// contained unknown keys.
	ErrBadRuleset = errors.New("constraint: invalid ruleset document")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional adjacency: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional adjacency: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the (dRow, dCol) neighbor deltas for the connectivity.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	}
	return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
}

// Predicate is a pure placement rule. Evaluate must be deterministic for
// identical inputs, free of side effects, and run in time proportional to
// the grid size. Both grids are guaranteed by the engine to share extents.
type Predicate interface {
	// Name returns the stable rule identifier, e.g. "no_identity_position".
	Name() string
	// Evaluate reports whether candidate satisfies the rule relative to
	// original.
	Evaluate(candidate, original *grid.Grid) bool
}

// Violation describes one concrete rule failure for diagnostics.
type Violation struct {
	// Rule is the Name of the violated predicate.
	Rule string
	// Pos is the candidate coordinate where the violation was observed.
	Pos grid.Position
	// Detail is a human-readable explanation.
	Detail string
}

// Explainer is an optional Predicate extension producing per-coordinate
// diagnostics. Explain performs a full scan and is not meant for the
// engine's hot path.
type Explainer interface {
	Explain(candidate, original *grid.Grid) []Violation
}

// Feasibility is an optional Predicate extension that can prove, from the
// original grid alone, that no candidate will ever satisfy the rule. The
// check is a necessary condition, not a sufficient one: a rule may report
// feasible and still reject every candidate, which the engine surfaces as
// budget exhaustion instead.
type Feasibility interface {
	Feasible(original *grid.Grid) bool
}
