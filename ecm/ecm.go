// Package ecm implements Lenstra's elliptic curve factorization method,
// following the Suyama-parameterized Montgomery curve construction and
// two-stage (smooth-scalar, then baby-step/giant-step) search spec.md
// §4.5 describes.
package ecm

import (
	"github.com/mossbach/gofactor/modular"
	"github.com/mossbach/gofactor/montgomery"
	"github.com/mossbach/gofactor/u128"
)

// GetSingleFactor64 tries up to tuning.Curves independent random curves
// against modulus n, each run through stage 1 and stage 2, returning the
// first nontrivial factor found. Returns (0, false) if every curve in the
// budget failed to split n — the caller should fall back to a different
// method or grow the tuning (spec.md §4.6's factorize driver tries ECM
// before falling back to Pollard-Rho).
//
// Precondition: n is odd, greater than 2, and composite.
func GetSingleFactor64(f *montgomery.Form64, lcg *LCGState, tuning Tuning) (uint64, bool) {
	n := f.Modulus()
	if n <= 2 {
		panic(&montgomery.PreconditionError{Msg: "ecm.GetSingleFactor64: modulus must exceed 2"})
	}

	for curve := 0; curve < tuning.Curves; curve++ {
		sigma := lcg.Sigma()
		p, a24, ok := buildCurve64(f, sigma)
		if !ok {
			continue
		}

		q := stage1Multiply(f, p, a24, tuning.B1)
		if factor, found := gcdCandidate64(f, q.Z); found {
			return factor, true
		}
		if f.GetCanonicalValue(q.Z) == 0 {
			// Z degenerated to 0 without the gcd itself being nontrivial:
			// n is not prime but this curve's point collapsed entirely,
			// nothing more to extract from it.
			continue
		}

		acc := stage2(f, q, a24, tuning.B2)
		if factor, found := gcdCandidate64(f, acc); found {
			return factor, true
		}
	}
	return 0, false
}

// gcdCandidate64 reports gcd(ConvertOut(v), n) when it is a nontrivial
// (neither 1 nor n) divisor.
func gcdCandidate64(f *montgomery.Form64, v montgomery.Value64) (uint64, bool) {
	n := f.Modulus()
	g := f.GCDWithModulus(v, modular.GCD[uint64])
	if g > 1 && g < n {
		return g, true
	}
	return 0, false
}

// GetSingleFactor128 is the 128-bit analogue of GetSingleFactor64.
func GetSingleFactor128(f *montgomery.Form128, lcg *LCGState, tuning Tuning) (u128.Uint128, bool) {
	n := f.Modulus()
	if n.Cmp(u128.From64(2)) <= 0 {
		panic(&montgomery.PreconditionError{Msg: "ecm.GetSingleFactor128: modulus must exceed 2"})
	}

	for curve := 0; curve < tuning.Curves; curve++ {
		sigma := u128.From64(lcg.Sigma())
		p, a24, ok := buildCurve128(f, sigma)
		if !ok {
			continue
		}

		q := stage1Multiply128(f, p, a24, tuning.B1)
		if factor, found := gcdCandidate128(f, q.Z); found {
			return factor, true
		}
		if f.GetCanonicalValue(q.Z) == montgomery.Canonical128(u128.Zero) {
			continue
		}

		acc := stage2_128(f, q, a24, tuning.B2)
		if factor, found := gcdCandidate128(f, acc); found {
			return factor, true
		}
	}
	return u128.Zero, false
}

// gcdCandidate128 is the 128-bit analogue of gcdCandidate64.
func gcdCandidate128(f *montgomery.Form128, v montgomery.Value128) (u128.Uint128, bool) {
	n := f.Modulus()
	g := f.GCDWithModulus(v, modular.GCD128)
	if g.Cmp(u128.One) > 0 && g.Cmp(n) < 0 {
		return g, true
	}
	return u128.Zero, false
}
