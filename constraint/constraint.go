package constraint

import (
	"fmt"

	"github.com/ledomirka/seatgrid/grid"
)

// Rule name constants, stable across the configuration surface.
const (
	RuleNoIdentity        = "no_identity_position"
	RuleNoRepeatAdjacency = "no_repeated_adjacency"
)

// EvaluateAll reports whether candidate satisfies every predicate relative
// to original, short-circuiting on the first failure.
// Complexity: O(P×R×C) worst case, typically less due to short-circuiting.
func EvaluateAll(preds []Predicate, candidate, original *grid.Grid) bool {
	for _, p := range preds {
		if !p.Evaluate(candidate, original) {
			return false
		}
	}
	return true
}

// Explain collects diagnostics from every predicate. Predicates that
// implement Explainer contribute per-coordinate violations; any other
// failing predicate contributes a single unlocated violation.
// Complexity: O(P×R×C); full scan, no short-circuiting.
func Explain(preds []Predicate, candidate, original *grid.Grid) []Violation {
	var out []Violation
	for _, p := range preds {
		if ex, ok := p.(Explainer); ok {
			out = append(out, ex.Explain(candidate, original)...)
			continue
		}
		if !p.Evaluate(candidate, original) {
			out = append(out, Violation{Rule: p.Name(), Detail: "rule violated"})
		}
	}
	return out
}

//----------------------------------------------------------------------------//
// NoIdentity
//----------------------------------------------------------------------------//

// NoIdentity returns the rule forbidding any occupant from keeping their
// original seat: candidate[r][c] != original[r][c] for every occupied (r,c).
// Empty seats are exempt; they are pinned by the engine and an empty label
// trivially "stays" at its position.
func NoIdentity() Predicate {
	return noIdentity{}
}

type noIdentity struct{}

func (noIdentity) Name() string { return RuleNoIdentity }

// Evaluate checks every occupied original position for a repeated label.
// Complexity: O(R×C).
func (noIdentity) Evaluate(candidate, original *grid.Grid) bool {
	if !sameExtents(candidate, original) {
		return false
	}
	for r := 0; r < original.Rows(); r++ {
		for c := 0; c < original.Cols(); c++ {
			lbl := original.At(r, c)
			if lbl == "" {
				continue
			}
			if candidate.At(r, c) == lbl {
				return false
			}
		}
	}
	return true
}

// Explain reports every coordinate whose occupant stayed put.
func (noIdentity) Explain(candidate, original *grid.Grid) []Violation {
	if !sameExtents(candidate, original) {
		return []Violation{{Rule: RuleNoIdentity, Detail: "grid extents differ"}}
	}
	var out []Violation
	for r := 0; r < original.Rows(); r++ {
		for c := 0; c < original.Cols(); c++ {
			lbl := original.At(r, c)
			if lbl == "" || candidate.At(r, c) != lbl {
				continue
			}
			out = append(out, Violation{
				Rule:   RuleNoIdentity,
				Pos:    grid.Position{Row: r, Col: c},
				Detail: fmt.Sprintf("%q kept its original seat", lbl),
			})
		}
	}
	return out
}

// Feasible reports false when fewer than two distinct label values occupy
// the grid: a lone occupant, or several sharing one label, can never leave
// their original seat by value. One distinguishable occupant is enough to
// doom the rule; an empty chart passes vacuously.
func (noIdentity) Feasible(original *grid.Grid) bool {
	distinct := make(map[string]struct{})
	occupied := 0
	for r := 0; r < original.Rows(); r++ {
		for c := 0; c < original.Cols(); c++ {
			if lbl := original.At(r, c); lbl != "" {
				occupied++
				distinct[lbl] = struct{}{}
			}
		}
	}
	if occupied == 0 {
		return true
	}
	return len(distinct) >= 2
}

//----------------------------------------------------------------------------//
// NoRepeatAdjacency
//----------------------------------------------------------------------------//

// NoRepeatAdjacency returns the rule forbidding any occupant pair adjacent
// in the original from being adjacent again in the candidate, under the
// given connectivity. Pairs are compared by label value, so repeated labels
// behave as a single occupant identity. Empty seats form no pairs.
//
// The predicate holds no state: every Evaluate rebuilds the original's
// neighbor-pair index from scratch, so one predicate value may be shared
// across goroutines and grids without coordination.
func NoRepeatAdjacency(conn Connectivity) Predicate {
	return noRepeatAdjacency{conn: conn}
}

type noRepeatAdjacency struct {
	conn Connectivity
}

func (p noRepeatAdjacency) Name() string { return RuleNoRepeatAdjacency }

// Evaluate scans every occupied candidate cell's neighborhood against the
// original's adjacency index. The index is built per call; construction
// and scan are both O(R×C×d), so the rebuild does not change the bound.
// Complexity: O(R×C×d) with d = 4 or 8.
func (p noRepeatAdjacency) Evaluate(candidate, original *grid.Grid) bool {
	if !sameExtents(candidate, original) {
		return false
	}
	forbidden := p.pairIndex(original)
	return p.firstConflict(candidate, forbidden) == nil
}

// Explain reports every candidate coordinate holding a repeated neighbor
// pair. Each unordered pair appears twice, once per endpoint; callers that
// want unique pairs can dedupe on Pos order.
func (p noRepeatAdjacency) Explain(candidate, original *grid.Grid) []Violation {
	if !sameExtents(candidate, original) {
		return []Violation{{Rule: RuleNoRepeatAdjacency, Detail: "grid extents differ"}}
	}
	forbidden := p.pairIndex(original)

	var out []Violation
	offs := p.conn.offsets()
	for r := 0; r < candidate.Rows(); r++ {
		for c := 0; c < candidate.Cols(); c++ {
			lbl := candidate.At(r, c)
			if lbl == "" {
				continue
			}
			for _, d := range offs {
				nr, nc := r+d[0], c+d[1]
				if !candidate.InBounds(nr, nc) {
					continue
				}
				nb := candidate.At(nr, nc)
				if nb == "" {
					continue
				}
				if _, bad := forbidden[lbl][nb]; bad {
					out = append(out, Violation{
						Rule:   RuleNoRepeatAdjacency,
						Pos:    grid.Position{Row: r, Col: c},
						Detail: fmt.Sprintf("%q is next to %q again", lbl, nb),
					})
				}
			}
		}
	}
	return out
}

// pairIndex builds the forbidden-pair index for original. The index maps
// each label to the set of labels it neighbored; construction makes it
// symmetric. The map is local to the call, never retained.
func (p noRepeatAdjacency) pairIndex(original *grid.Grid) map[string]map[string]struct{} {
	idx := make(map[string]map[string]struct{})
	offs := p.conn.offsets()
	for r := 0; r < original.Rows(); r++ {
		for c := 0; c < original.Cols(); c++ {
			lbl := original.At(r, c)
			if lbl == "" {
				continue
			}
			set, ok := idx[lbl]
			if !ok {
				set = make(map[string]struct{})
				idx[lbl] = set
			}
			for _, d := range offs {
				nr, nc := r+d[0], c+d[1]
				if !original.InBounds(nr, nc) {
					continue
				}
				if nb := original.At(nr, nc); nb != "" {
					set[nb] = struct{}{}
				}
			}
		}
	}
	return idx
}

// firstConflict returns the first repeated neighbor pair in row-major scan
// order, or nil when the candidate is clean.
func (p noRepeatAdjacency) firstConflict(candidate *grid.Grid, forbidden map[string]map[string]struct{}) *grid.Position {
	offs := p.conn.offsets()
	for r := 0; r < candidate.Rows(); r++ {
		for c := 0; c < candidate.Cols(); c++ {
			lbl := candidate.At(r, c)
			if lbl == "" {
				continue
			}
			for _, d := range offs {
				nr, nc := r+d[0], c+d[1]
				if !candidate.InBounds(nr, nc) {
					continue
				}
				nb := candidate.At(nr, nc)
				if nb == "" {
					continue
				}
				if _, bad := forbidden[lbl][nb]; bad {
					return &grid.Position{Row: r, Col: c}
				}
			}
		}
	}
	return nil
}

// sameExtents reports whether both grids share rows and cols.
func sameExtents(a, b *grid.Grid) bool {
	return a != nil && b != nil && a.Rows() == b.Rows() && a.Cols() == b.Cols()
}
