// Package pollardrho implements Pollard's rho factorization algorithm in
// Brent's cycle-detection form, with batched GCD evaluation and an
// optional dual-sequence parallel variant.
package pollardrho

import (
	"math/rand"

	"github.com/mossbach/gofactor/modular"
	"github.com/mossbach/gofactor/montgomery"
	"github.com/mossbach/gofactor/u128"
)

// Tuning mirrors the two constants the original exposes as compile-time
// overrides (HURCHALLA_POLLARD_RHO_BRENT_GCD_THRESHOLD/STARTING_LENGTH).
type Tuning struct {
	GCDThreshold   uint64
	StartingLength uint64
}

// DefaultTuning matches the upstream defaults.
var DefaultTuning = Tuning{GCDThreshold: 608, StartingLength: 19}

// MaxRetries bounds how many different additive constants Factor64/
// Factor128 will try before giving up, mirroring the bfix-gospel
// factorizer's RHO_RETRY retry loop.
const MaxRetries = 100

// Brent64 runs a single Pollard-Rho-Brent trial with additive constant c
// against modulus n, batching GCD evaluation every GCDThreshold steps and
// doubling the per-round advancement length on each failed round. Returns
// the factor found (0 if the pseudorandom sequence cycled first, in which
// case the caller should retry with a different c) and the advancement
// length reached when the trial ended — the carried expected_iterations
// state original_source/.../PollardRhoBrentTrial.h seeds a later retry's
// starting length with, instead of restarting cold at tuning.StartingLength.
//
// Precondition: n > 2, n is not prime, c < n.
func Brent64(f *montgomery.Form64, c uint64, tuning Tuning) (uint64, uint64) {
	num := f.Modulus()
	if num <= 2 {
		panic(&montgomery.PreconditionError{Msg: "pollardrho.Brent64: modulus must exceed 2"})
	}

	negC := f.Negate(f.ConvertIn(c))

	advancementLen := tuning.StartingLength
	preLength := 2*advancementLen + 2

	b := f.Add(f.GetUnityValue().AsValue(), f.GetUnityValue().AsValue()) // convertIn(2)
	for i := uint64(0); i < preLength; i++ {
		b = f.FusedSquareSub(b, negC)
	}

	product := f.GetUnityValue().AsValue()
	for {
		aFixed := b
		for i := uint64(0); i < advancementLen; i++ {
			b = f.FusedSquareSub(b, negC)
		}

		var absValDiff montgomery.Value64
		for i := uint64(0); i < advancementLen; i += tuning.GCDThreshold {
			gcdLoopLen := tuning.GCDThreshold
			if rem := advancementLen - i; rem < gcdLoopLen {
				gcdLoopLen = rem
			}
			for j := uint64(0); j < gcdLoopLen; j++ {
				b = f.FusedSquareSub(b, negC)
				absValDiff = f.Subtract(aFixed, b)
				result, isZero := f.Multiply(product, absValDiff)
				if isZero {
					break
				}
				product = result
			}
			p := f.GCDWithModulus(product, modular.GCD[uint64])
			if p > 1 {
				return p, advancementLen
			}
			if f.GetCanonicalValue(absValDiff) == 0 {
				return 0, advancementLen
			}
		}
		advancementLen *= 2
	}
}

// BrentParallel64 runs two independent Pollard-Rho-Brent sequences
// (starting at 2 and 3) per round, combining their products before the
// GCD check so a factor found by either sequence is reported. This
// mirrors the "Parallel2" variant, which trades one extra sequence's
// worth of modular multiplies for a higher chance of finding a factor
// per advancement round.
func BrentParallel64(f *montgomery.Form64, c uint64, tuning Tuning) uint64 {
	num := f.Modulus()
	if num <= 2 {
		panic(&montgomery.PreconditionError{Msg: "pollardrho.BrentParallel64: modulus must exceed 2"})
	}

	negC := f.Negate(f.ConvertIn(c))

	advancementLen := tuning.StartingLength
	preLength := 2*advancementLen + 2

	b1 := f.Add(f.GetUnityValue().AsValue(), f.GetUnityValue().AsValue())
	b2 := f.Add(b1, f.GetUnityValue().AsValue())
	for i := uint64(0); i < preLength; i++ {
		b1 = f.FusedSquareSub(b1, negC)
		b2 = f.FusedSquareSub(b2, negC)
	}

	product1 := f.GetUnityValue().AsValue()
	product2 := f.GetUnityValue().AsValue()
	for {
		aFixed1, aFixed2 := b1, b2
		for i := uint64(0); i < advancementLen; i++ {
			b1 = f.FusedSquareSub(b1, negC)
			b2 = f.FusedSquareSub(b2, negC)
		}

		var absValDiff1, absValDiff2 montgomery.Value64
		for i := uint64(0); i < advancementLen; i += tuning.GCDThreshold {
			gcdLoopLen := tuning.GCDThreshold
			if rem := advancementLen - i; rem < gcdLoopLen {
				gcdLoopLen = rem
			}
			for j := uint64(0); j < gcdLoopLen; j++ {
				b1 = f.FusedSquareSub(b1, negC)
				b2 = f.FusedSquareSub(b2, negC)
				absValDiff1 = f.Subtract(aFixed1, b1)
				absValDiff2 = f.Subtract(aFixed2, b2)
				result1, isZero1 := f.Multiply(product1, absValDiff1)
				result2, isZero2 := f.Multiply(product2, absValDiff2)
				if isZero1 {
					break
				}
				product1 = result1
				if isZero2 {
					break
				}
				product2 = result2
			}
			combined, isZero := f.Multiply(product1, product2)
			if isZero {
				combined = product1
			}
			p := f.GCDWithModulus(combined, modular.GCD[uint64])
			if p > 1 {
				return p
			}
			if f.GetCanonicalValue(absValDiff1) == 0 || f.GetCanonicalValue(absValDiff2) == 0 {
				return 0
			}
		}
		advancementLen *= 2
	}
}

// Factor64 retries Brent64 with increasing additive constants (1, 2, 3,
// ..., wrapping back to 1 before n-2) until a nontrivial factor is found,
// per spec.md §5.1's retry guidance. n must
// be odd, greater than 2, and known composite (callers run a
// primality test first). The advancement length a cycling retry reached
// carries forward as the next retry's starting length (spec.md §3's
// expected_iterations), rather than restarting cold every time.
func Factor64(n uint64, tuning Tuning) (uint64, bool) {
	f := montgomery.NewForm64(n, montgomery.Full)

	expectedIterations := tuning.StartingLength
	c := uint64(1)
	for attempt := 0; attempt < MaxRetries; attempt++ {
		t := tuning
		t.StartingLength = expectedIterations
		p, lastLen := Brent64(f, c, t)
		expectedIterations = lastLen
		if p > 0 {
			return p, true
		}
		c++
		if c >= n-2 {
			c = 1
		}
	}
	return 0, false
}

// Brent128 is the 128-bit analogue of Brent64.
func Brent128(f *montgomery.Form128, c u128.Uint128, tuning Tuning) (u128.Uint128, uint64) {
	num := f.Modulus()
	if num.Cmp(u128.From64(2)) <= 0 {
		panic(&montgomery.PreconditionError{Msg: "pollardrho.Brent128: modulus must exceed 2"})
	}

	negC := f.Negate(f.ConvertIn(c))

	advancementLen := tuning.StartingLength
	preLength := 2*advancementLen + 2

	b := f.Add(f.GetUnityValue().AsValue(), f.GetUnityValue().AsValue())
	for i := uint64(0); i < preLength; i++ {
		b = f.FusedSquareSub(b, negC)
	}

	product := f.GetUnityValue().AsValue()
	for {
		aFixed := b
		for i := uint64(0); i < advancementLen; i++ {
			b = f.FusedSquareSub(b, negC)
		}

		var absValDiff montgomery.Value128
		for i := uint64(0); i < advancementLen; i += tuning.GCDThreshold {
			gcdLoopLen := tuning.GCDThreshold
			if rem := advancementLen - i; rem < gcdLoopLen {
				gcdLoopLen = rem
			}
			for j := uint64(0); j < gcdLoopLen; j++ {
				b = f.FusedSquareSub(b, negC)
				absValDiff = f.Subtract(aFixed, b)
				result, isZero := f.Multiply(product, absValDiff)
				if isZero {
					break
				}
				product = result
			}
			p := f.GCDWithModulus(product, modular.GCD128)
			if p.Cmp(u128.One) > 0 {
				return p, advancementLen
			}
			if f.GetCanonicalValue(absValDiff) == montgomery.Canonical128(u128.Zero) {
				return u128.Zero, advancementLen
			}
		}
		advancementLen *= 2
	}
}

// Factor128 is the 128-bit analogue of Factor64, carrying the same
// expected_iterations advancement length across retries.
func Factor128(n u128.Uint128, tuning Tuning) (u128.Uint128, bool) {
	f := montgomery.NewForm128(n, montgomery.Full)
	nMinus2, _ := n.Sub(u128.From64(2))

	expectedIterations := tuning.StartingLength
	c := u128.One
	for attempt := 0; attempt < MaxRetries; attempt++ {
		t := tuning
		t.StartingLength = expectedIterations
		p, lastLen := Brent128(f, c, t)
		expectedIterations = lastLen
		if !p.IsZero() {
			return p, true
		}
		c = c.AddWrap(u128.One)
		if c.Cmp(nMinus2) >= 0 {
			c = u128.One
		}
	}
	return u128.Zero, false
}

// randomBelow returns a pseudorandom value in [0, bound).
func randomBelow(r *rand.Rand, bound u128.Uint128) u128.Uint128 {
	if bound.Fits64() {
		return u128.From64(uint64(r.Int63n(int64(bound.Lo))))
	}
	hi := uint64(r.Int63())
	lo := uint64(r.Int63())<<1 | uint64(r.Int63n(2))
	v := u128.Uint128{Hi: hi, Lo: lo}
	_, rem := v.DivMod(bound)
	return rem
}
