package constraint

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Ruleset is the external configuration surface: which rules are active.
// The zero value activates nothing; DefaultRuleset activates both rules
// the engine's consumers are known to rely on.
type Ruleset struct {
	// NoIdentity forbids any occupant from keeping their original seat.
	NoIdentity bool `yaml:"no_identity_position"`
	// NoRepeatAdjacency forbids originally adjacent occupants from being
	// adjacent again.
	NoRepeatAdjacency bool `yaml:"no_repeated_adjacency"`
	// DiagonalAdjacency widens adjacency from Conn4 to Conn8 for the
	// NoRepeatAdjacency rule.
	DiagonalAdjacency bool `yaml:"diagonal_adjacency"`
}

// DefaultRuleset returns the standard configuration: both placement rules
// active, orthogonal adjacency only.
func DefaultRuleset() Ruleset {
	return Ruleset{
		NoIdentity:        true,
		NoRepeatAdjacency: true,
		DiagonalAdjacency: false,
	}
}

// ParseRuleset decodes a YAML ruleset document. Unknown keys are rejected
// with ErrBadRuleset so a misspelled rule name cannot silently deactivate
// a constraint. An empty document yields the zero Ruleset.
func ParseRuleset(data []byte) (Ruleset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var rs Ruleset
	if err := dec.Decode(&rs); err != nil {
		if errors.Is(err, io.EOF) {
			return Ruleset{}, nil
		}
		return Ruleset{}, fmt.Errorf("%w: %v", ErrBadRuleset, err)
	}
	return rs, nil
}

// Predicates materializes the active rules as an evaluation-ordered slice:
// the cheap identity check first, adjacency second.
func (rs Ruleset) Predicates() []Predicate {
	var preds []Predicate
	if rs.NoIdentity {
		preds = append(preds, NoIdentity())
	}
	if rs.NoRepeatAdjacency {
		conn := Conn4
		if rs.DiagonalAdjacency {
			conn = Conn8
		}
		preds = append(preds, NoRepeatAdjacency(conn))
	}
	return preds
}
