// Package constraint defines the placement rules a rearranged seating
// chart must satisfy, evaluated against the (candidate, original) pair.
//
// What:
//
//   - Predicate: a pure pass/fail rule over a candidate grid and the
//     original it was derived from.
//   - NoIdentity: no occupant may keep their original seat.
//   - NoRepeatAdjacency: no pair of occupants adjacent in the original may
//     be adjacent again in the candidate.
//   - EvaluateAll: conjunction of predicates, short-circuiting on the
//     first failure.
//   - Explain: slow-path diagnostics naming the rule and coordinate of
//     each violation.
//   - Ruleset: the external configuration surface — which rules are
//     active — loadable from YAML.
//
// Why:
//
//   - Which rules the consuming application enforces is configuration,
//     not engine logic; the engine accepts any conjunction.
//   - Empty labels mark unoccupied seats and are exempt from every rule:
//     an empty seat neither "keeps its place" nor forms a neighbor pair.
//
// Complexity:
//
//   - Every Evaluate runs in O(R×C) per call; NoRepeatAdjacency rebuilds
//     the original's neighbor-pair index per call, which costs the same
//     O(R×C×d) as the candidate scan it guards.
//
// Concurrency:
//
//   - Both built-in predicates are stateless values; one predicate slice
//     may back any number of concurrent evaluations over unrelated grids.
//
// Errors:
//
//   - ErrBadRuleset: a ruleset document failed to parse or carried
//     unknown keys.
package constraint
