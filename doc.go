// Package seatgrid rearranges rectangular seating charts under placement
// constraints — same occupants, new seats, no forbidden neighborhoods.
//
// 🚀 What is seatgrid?
//
//	A small, deterministic-when-seeded library that brings together:
//		• Grid primitives: an immutable rectangular container of seat labels
//		• Constraints: pluggable placement rules (no repeated seat, no repeated neighbors)
//		• Shuffle engine: bounded randomized search with typed, inspectable failures
//		• Allocator: a one-call facade for external importers/exporters
//
// ✨ Why choose seatgrid?
//
//   - Honest failures – exhausted budgets and unsatisfiable rules are
//     distinct sentinel errors, never silent wrong output
//   - Pure Go – no cgo, no hidden deps
//   - Reproducible – fix a seed and every run replays bit-for-bit
//
// Everything is organized under four subpackages:
//
//	grid/       — Grid, Position, flatten/reshape, shape validation
//	constraint/ — Predicate rules, conjunction, YAML ruleset loading
//	shuffle/    — the bounded randomized rearrangement engine
//	allocator/  — the entry point external collaborators call
//
// Quick ASCII example:
//
//	    A B        D C
//	    C D   ⇒    B A
//
//	every occupant moved, no original neighbor pair survives.
//
// Dive into the per-package docs for contracts, error taxonomy and
// complexity notes.
//
//	go get github.com/ledomirka/seatgrid
package seatgrid
