package millerrabin

import (
	"math/bits"

	"github.com/mossbach/gofactor/montgomery"
	"github.com/mossbach/gofactor/u128"
)

// decompose64 writes n-1 = d * 2^r with d odd, matching
// is_prime_miller_rabin's setup step (spec.md §4.3).
func decompose64(nMinus1 uint64) (d uint64, r uint32) {
	r = uint32(bits.TrailingZeros64(nMinus1))
	d = nMinus1 >> r
	return d, r
}

// IsPrime64 decides primality for n < 2^64 using a proven-sufficient
// deterministic witness set (see bases.go), evaluated entirely inside
// one Montgomery domain built once for n.
func IsPrime64(n uint64) bool {
	switch {
	case n < 2:
		return false
	case n == 2 || n == 3:
		return true
	case n%2 == 0:
		return false
	}

	f := montgomery.NewForm64(n, montgomery.Full)
	return testMillerRabin64(f, basesFor64(n))
}

// testMillerRabin64 runs the Miller-Rabin trial for every base, batching
// the first modular exponentiation across all bases via PowBatch (spec.md
// §4.2/§4.3's batched-pow guidance).
func testMillerRabin64(f *montgomery.Form64, bases []uint64) bool {
	n := f.Modulus()
	d, r := decompose64(n - 1)

	unity := f.GetUnityValue().AsValue()
	negOne := f.GetNegativeOneValue().AsValue()

	converted := make([]montgomery.Value64, len(bases))
	for i, b := range bases {
		converted[i] = f.ConvertIn(b % n)
	}

	results := f.PowBatch(converted, d)

	for _, x := range results {
		if !millerRabinSingleWitness64(f, x, unity, negOne, r) {
			return false
		}
	}
	return true
}

// millerRabinSingleWitness64 applies the standard squaring loop to one
// already-exponentiated witness value x = base^d, returning false iff x
// proves n composite.
func millerRabinSingleWitness64(f *montgomery.Form64, x, unity, negOne montgomery.Value64, r uint32) bool {
	if f.GetCanonicalValue(x) == f.GetCanonicalValue(unity) || f.GetCanonicalValue(x) == f.GetCanonicalValue(negOne) {
		return true
	}
	for i := uint32(1); i < r; i++ {
		x = f.Square(x)
		if f.GetCanonicalValue(x) == f.GetCanonicalValue(negOne) {
			return true
		}
		if f.GetCanonicalValue(x) == f.GetCanonicalValue(unity) {
			return false
		}
	}
	return false
}

// decompose128 is the 128-bit analogue of decompose64.
func decompose128(nMinus1 u128.Uint128) (d u128.Uint128, r uint32) {
	r = uint32(nMinus1.TrailingZeros())
	d = nMinus1.Rsh(uint(r))
	return d, r
}

// IsPrime128 decides primality for n in [2^64, 2^128) using the 127-base
// probabilistic witness set (spec.md §4.3's 128-bit row). The error
// probability is at most 4^-127 per composite input, which spec.md §6
// treats as deterministic for practical purposes.
func IsPrime128(n u128.Uint128) bool {
	if n.Fits64() {
		return IsPrime64(n.Lo)
	}
	if n.Bit(0) == 0 {
		return false
	}

	f := montgomery.NewForm128(n, montgomery.Full)
	return testMillerRabin128(f, bases128For())
}

func testMillerRabin128(f *montgomery.Form128, bases []u128.Uint128) bool {
	n := f.Modulus()
	nMinus1, _ := n.Sub(u128.One)
	d, r := decompose128(nMinus1)

	unity := f.GetUnityValue().AsValue()
	negOne := f.GetNegativeOneValue().AsValue()

	converted := make([]montgomery.Value128, len(bases))
	for i, b := range bases {
		converted[i] = f.ConvertIn(b)
	}

	results := f.PowBatch(converted, d)

	for _, x := range results {
		if !millerRabinSingleWitness128(f, x, unity, negOne, r) {
			return false
		}
	}
	return true
}

func millerRabinSingleWitness128(f *montgomery.Form128, x, unity, negOne montgomery.Value128, r uint32) bool {
	if f.GetCanonicalValue(x) == f.GetCanonicalValue(unity) || f.GetCanonicalValue(x) == f.GetCanonicalValue(negOne) {
		return true
	}
	for i := uint32(1); i < r; i++ {
		x = f.Square(x)
		if f.GetCanonicalValue(x) == f.GetCanonicalValue(negOne) {
			return true
		}
		if f.GetCanonicalValue(x) == f.GetCanonicalValue(unity) {
			return false
		}
	}
	return false
}
