package montgomery

import (
	"math/bits"

	"github.com/mossbach/gofactor/modular"
	"github.com/mossbach/gofactor/u128"
)

// Value64 is an opaque residue in the Montgomery domain of a Form64. Not
// canonicalized — may have multiple representatives. Compare via
// GetCanonicalValue, never by raw equality.
type Value64 uint64

// Canonical64 is a Value64 with a unique representative in [0, n).
type Canonical64 uint64

// Form64 represents the Montgomery domain for a modulus n that fits in
// 64 bits, with R = 2^64. Immutable after construction, matching
// arithmetic-vault/montgomery.go's *Montgomery/*MontgomeryCIOS/
// *MontgomeryWords value-type precomputation pattern.
type Form64 struct {
	n          uint64
	nPrime     uint64 // -n^-1 mod 2^64, for REDC
	rSquared   uint64 // R^2 mod n, for ConvertIn
	rangeClass RangeClass
	bound      uint64 // representative bound: n for every RangeClass
}

// NewForm64 constructs a Form64 for modulus n under the given RangeClass.
// n must be odd, greater than 2, and satisfy n < R/rc.divisor(). Violating
// any of these is a precondition error (spec.md §4.2): it panics rather
// than returning an error, since it is always a caller bug.
func NewForm64(n uint64, rc RangeClass) *Form64 {
	if n <= 2 {
		fail("NewForm64", "modulus must be greater than 2")
	}
	if n&1 == 0 {
		fail("NewForm64", "modulus must be odd")
	}
	limit := (^uint64(0)) / rc.divisor()
	if n > limit {
		fail("NewForm64", "modulus too large for requested RangeClass")
	}

	nPrime := negateMod2p64(modular.InverseModPow2(n))
	rSquared := rSquaredMod64(n)

	// Every RangeClass reduces its representative fully into [0, n) — see
	// reduceToBound and DESIGN.md Open Question 1. RangeClass therefore
	// only gates the modulus bound at construction; it does not change
	// the representative bound at runtime, which keeps every operation's
	// REDC input safely under R*n regardless of which class constructed
	// the Form.
	bound := n
	return &Form64{n: n, nPrime: nPrime, rSquared: rSquared, rangeClass: rc, bound: bound}
}

// negateMod2p64 returns -x mod 2^64 for unsigned x, i.e. two's-complement
// negation.
func negateMod2p64(x uint64) uint64 {
	return ^x + 1
}

// rSquaredMod64 computes R^2 mod n = (2^64 mod n)^2 mod n. Runs once at
// construction time; not on any hot path, so the u128 division through
// big.Int (see u128.DivMod) is acceptable here.
func rSquaredMod64(n uint64) uint64 {
	rModN := (^uint64(0) % n)
	rModN = (rModN + 1) % n
	wide := u128.Mul64(rModN, rModN)
	_, r := wide.DivMod(u128.From64(n))
	return r.Lo
}

// Modulus returns n.
func (f *Form64) Modulus() uint64 { return f.n }

// Class returns the RangeClass this Form was constructed with.
func (f *Form64) Class() RangeClass { return f.rangeClass }

// redc performs single-limb Montgomery reduction of the 128-bit product
// (hi, lo): returns ((hi, lo) + m*n) / 2^64 where m = lo*nPrime mod 2^64
// is chosen so that lo + m*n ≡ 0 (mod 2^64). That quotient is below 2n
// and can exceed 64 bits when n > 2^63; a carry out of the high add is
// folded back by subtracting n. This is the REDC the original C++ source
// implements with inline assembly (spec.md §9); here it is portable code
// built on math/bits.Mul64/Add64.
func (f *Form64) redc(hi, lo uint64) uint64 {
	m := lo * f.nPrime
	mnHi, mnLo := bits.Mul64(m, f.n)
	_, carry := bits.Add64(lo, mnLo, 0)
	result, carryOut := bits.Add64(hi, mnHi, carry)
	if carryOut != 0 {
		result -= f.n
	}
	return result
}

// reduceToBound applies the conditional subtraction that keeps every
// representative in [0, n), independent of RangeClass (see
// DESIGN.md Open Question 1: this port keeps the four classes'
// observable contract identical, as spec.md §3 says it must be, rather
// than exploiting the Half/Quarter/Sixth wider-representative
// optimizations, which require per-operation input bounding this port
// does not carry through the call graph).
func (f *Form64) reduceToBound(r uint64) uint64 {
	if r >= f.n {
		r -= f.n
	}
	return r
}

// ConvertIn maps standard residue a (0<=a<n) into Montgomery form.
func (f *Form64) ConvertIn(a uint64) Value64 {
	hi, lo := bits.Mul64(a, f.rSquared)
	return Value64(f.reduceToBound(f.redc(hi, lo)))
}

// ConvertOut maps v back to its standard residue in [0, n).
func (f *Form64) ConvertOut(v Value64) uint64 {
	r := f.redc(0, uint64(v))
	for r >= f.n {
		r -= f.n
	}
	return r
}

// GetCanonicalValue fully reduces v into [0, n).
func (f *Form64) GetCanonicalValue(v Value64) Canonical64 {
	r := uint64(v)
	for r >= f.n {
		r -= f.n
	}
	return Canonical64(r)
}

// GetUnityValue returns the canonical Montgomery representative of 1.
func (f *Form64) GetUnityValue() Canonical64 {
	return f.GetCanonicalValue(f.ConvertIn(1))
}

// GetZeroValue returns the canonical Montgomery representative of 0.
func (f *Form64) GetZeroValue() Canonical64 {
	return Canonical64(0)
}

// GetNegativeOneValue returns the canonical Montgomery representative of
// n-1.
func (f *Form64) GetNegativeOneValue() Canonical64 {
	return f.GetCanonicalValue(f.ConvertIn(f.n - 1))
}

// AsValue widens a Canonical64 back to a Value64, valid since every
// CanonicalValue is already a valid representative of the domain.
func (c Canonical64) AsValue() Value64 { return Value64(c) }

// Add returns a+b in the Montgomery domain.
func (f *Form64) Add(a, b Value64) Value64 {
	sum := uint64(a) + uint64(b)
	if sum >= f.bound {
		sum -= f.bound
	}
	return Value64(sum)
}

// Subtract returns a-b in the Montgomery domain.
func (f *Form64) Subtract(a, b Value64) Value64 {
	x, y := uint64(a), uint64(b)
	if x >= y {
		return Value64(x - y)
	}
	return Value64(x + f.bound - y)
}

// Negate returns -a in the Montgomery domain.
func (f *Form64) Negate(a Value64) Value64 {
	return f.Subtract(Value64(0), a)
}

// Multiply computes a*b in Montgomery form, returning whether the
// canonical result is zero (spec.md §4.2: the Rho loop needs cheap zero
// detection without a second ConvertOut).
func (f *Form64) Multiply(a, b Value64) (Value64, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	r := f.reduceToBound(f.redc(hi, lo))
	isZero := f.GetCanonicalValue(Value64(r)) == 0
	return Value64(r), isZero
}

// Square computes a^2 in Montgomery form.
func (f *Form64) Square(a Value64) Value64 {
	v, _ := f.Multiply(a, a)
	return v
}

// FusedSquareSub computes a^2 - c in Montgomery form.
func (f *Form64) FusedSquareSub(a, c Value64) Value64 {
	return f.Subtract(f.Square(a), c)
}

// FMSub computes a*b - c in Montgomery form.
func (f *Form64) FMSub(a, b, c Value64) Value64 {
	p, _ := f.Multiply(a, b)
	return f.Subtract(p, c)
}

// FMAdd computes a*b + c in Montgomery form.
func (f *Form64) FMAdd(a, b, c Value64) Value64 {
	p, _ := f.Multiply(a, b)
	return f.Add(p, c)
}

// Pow raises base to exp using left-to-right square-and-multiply.
func (f *Form64) Pow(base Value64, exp uint64) Value64 {
	result := f.GetUnityValue().AsValue()
	for bit := bits.Len64(exp) - 1; bit >= 0; bit-- {
		result = f.Square(result)
		if (exp>>uint(bit))&1 == 1 {
			result, _ = f.Multiply(result, base)
		}
	}
	return result
}

// PowBatch raises each of bases to the same exponent, interleaving the
// per-base multiplies so independent streams can pipeline (spec.md
// §4.2's "array form" of pow, used by millerrabin's batched trials).
func (f *Form64) PowBatch(bases []Value64, exp uint64) []Value64 {
	results := make([]Value64, len(bases))
	unity := f.GetUnityValue().AsValue()
	for i := range results {
		results[i] = unity
	}
	work := make([]Value64, len(bases))
	copy(work, bases)

	for exp > 0 {
		if exp&1 == 1 {
			for i := range results {
				results[i], _ = f.Multiply(results[i], work[i])
			}
		}
		for i := range work {
			work[i], _ = f.Multiply(work[i], work[i])
		}
		exp >>= 1
	}
	return results
}

// GCDWithModulus computes gcd(ConvertOut(v), n) using gcdFn, saving the
// caller a separate ConvertOut call.
func (f *Form64) GCDWithModulus(v Value64, gcdFn func(a, b uint64) uint64) uint64 {
	return gcdFn(f.ConvertOut(v), f.n)
}
