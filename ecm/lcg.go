package ecm

import "github.com/zeebo/blake3"

// LCGState holds the caller-owned pseudo-random sequence state threaded
// through successive ECM curve attempts (spec.md §4.6's "persistent
// state... loc_lcg"). The generator is a linear congruential generator —
// adequate for picking ECM curve parameters, and explicitly not suitable
// for any cryptographic purpose (spec.md §9).
type LCGState struct {
	state uint64
}

// NewLCGState seeds a fresh generator. Passing 0 matches the original's
// "initialize to 0" convention for the first call in a sequence.
func NewLCGState(seed uint64) *LCGState {
	return &LCGState{state: seed}
}

// lcgMultiplier and lcgIncrement are a standard 64-bit LCG pair (the
// constants used by Knuth's MMIX generator), chosen for a full period
// over 2^64 and fast computation — ECM's curve selection has no need for
// cryptographic unpredictability, only scatter.
const (
	lcgMultiplier = 6364136223846793005
	lcgIncrement  = 1442695040888963407
)

// next advances the generator and returns the new state.
func (s *LCGState) next() uint64 {
	s.state = s.state*lcgMultiplier + lcgIncrement
	return s.state
}

// Sigma draws the next candidate Suyama sigma parameter, constrained to
// [6, 2^32) per spec.md §4.5.
func (s *LCGState) Sigma() uint64 {
	const lo, span = 6, (uint64(1) << 32) - 6
	return lo + s.next()%span
}

// DeterministicSeed hashes label with BLAKE3 to produce a reproducible
// loc_lcg seed, so tests and benchmarks needing a stable curve sequence
// don't all collide on the conventional zero seed. This has no bearing
// on ECM's correctness — it only fixes which curves get tried in what
// order — and must not be read as making the LCG itself suitable for any
// security-sensitive use.
func DeterministicSeed(label string) uint64 {
	sum := blake3.Sum256([]byte(label))
	var seed uint64
	for i := 0; i < 8; i++ {
		seed = seed<<8 | uint64(sum[i])
	}
	return seed
}
