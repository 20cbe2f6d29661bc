// Package shuffle - RNG utilities for the rearrangement engine.
//
// This file centralizes random generation so that determinism has exactly
// one knob: Options.Seed. Seed != 0 ⇒ identical results across runs and
// platforms; Seed == 0 ⇒ a fresh crypto-derived seed per Shuffler, so
// concurrent or repeated calls stay uncorrelated.
//
// math/rand.Rand is not goroutine-safe; each Shuffler owns its own stream
// and must not be shared across goroutines.
package shuffle

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// rngFromSeed returns a deterministic *rand.Rand for seed != 0, and a
// freshly seeded one for seed == 0.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = freshSeed()
	}
	return rand.New(rand.NewSource(s))
}

// freshSeed draws 8 bytes of OS entropy. The wall clock is only a fallback
// for the (practically unreachable) case of a failing entropy source.
func freshSeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	s := int64(binary.LittleEndian.Uint64(buf[:]))
	if s == 0 {
		s = 1 // keep the "0 means fresh" convention unambiguous
	}
	return s
}

// shuffleStringsInPlace performs an in-place Fisher–Yates shuffle of a
// using rng, giving every permutation equal probability.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleStringsInPlace(a []string, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
