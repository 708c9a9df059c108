package montgomery

import (
	"math/big"

	"github.com/mossbach/gofactor/modular"
	"github.com/mossbach/gofactor/u128"
)

// Value128 is an opaque residue in the Montgomery domain of a Form128.
type Value128 u128.Uint128

// Canonical128 is a Value128 with a unique representative in [0, n).
type Canonical128 u128.Uint128

// Form128 represents the Montgomery domain for a modulus n up to 128
// bits, with R = 2^128. Mirrors Form64's structure one width tier up,
// using u128.Uint128's widening multiply instead of math/bits.Mul64.
type Form128 struct {
	n          u128.Uint128
	nPrime     u128.Uint128 // -n^-1 mod 2^128
	rSquared   u128.Uint128 // R^2 mod n
	rangeClass RangeClass
}

// NewForm128 constructs a Form128 for modulus n under the given
// RangeClass, subject to the same preconditions as NewForm64, one width
// tier up.
func NewForm128(n u128.Uint128, rc RangeClass) *Form128 {
	two := u128.From64(2)
	if n.Cmp(two) <= 0 {
		fail("NewForm128", "modulus must be greater than 2")
	}
	if n.Lo&1 == 0 {
		fail("NewForm128", "modulus must be odd")
	}
	limit, _ := u128.Max.DivMod(u128.From64(rc.divisor()))
	if n.Cmp(limit) > 0 {
		fail("NewForm128", "modulus too large for requested RangeClass")
	}

	ninv := modular.InverseModPow2_128(n)
	nPrime := negateMod2p128(ninv)
	rSquared := rSquaredMod128(n)

	return &Form128{n: n, nPrime: nPrime, rSquared: rSquared, rangeClass: rc}
}

func negateMod2p128(x u128.Uint128) u128.Uint128 {
	return x.Not().AddWrap(u128.One)
}

// rSquaredMod128 computes R^2 mod n = (2^128 mod n)^2 mod n at
// construction time only.
func rSquaredMod128(n u128.Uint128) u128.Uint128 {
	_, rModN := u128.Max.DivMod(n)
	rModN = rModN.AddWrap(u128.One)
	if rModN.Cmp(n) >= 0 {
		rModN, _ = rModN.Sub(n)
	}
	hi, lo := rModN.MulWide(rModN)
	_, r := wideDivMod(hi, lo, n)
	return r
}

// wideDivMod divides the 256-bit value (hi:lo) by n, returning (quotient
// discarded as q, remainder). Implemented via big.Int since this runs
// only at Form128 construction time, never in a factoring inner loop.
func wideDivMod(hi, lo u128.Uint128, n u128.Uint128) (q, r u128.Uint128) {
	full := hi.Big()
	full.Lsh(full, 128)
	full.Or(full, lo.Big())
	nb := n.Big()
	qb, rb := new(big.Int).QuoRem(full, nb, new(big.Int))
	return u128.FromBig(qb), u128.FromBig(rb)
}

func (f *Form128) Modulus() u128.Uint128 { return f.n }
func (f *Form128) Class() RangeClass     { return f.rangeClass }

// redc performs single-limb (128-bit limb) Montgomery reduction of the
// 256-bit product (hi, lo): returns ((hi, lo) + m*n) / 2^128, where
// m = lo*nPrime mod 2^128. A carry out of the high add (possible when
// n > 2^127) is folded back by subtracting n, as in Form64.redc.
func (f *Form128) redc(hi, lo u128.Uint128) u128.Uint128 {
	m := lo.Mul(f.nPrime)
	mnHi, mnLo := m.MulWide(f.n)
	_, c1 := lo.AddC(mnLo, 0)
	result, c2 := hi.AddC(mnHi, c1)
	if c2 != 0 {
		result = result.SubWrap(f.n)
	}
	return result
}

func (f *Form128) reduceToBound(r u128.Uint128) u128.Uint128 {
	if r.Cmp(f.n) >= 0 {
		r, _ = r.Sub(f.n)
	}
	return r
}

// ConvertIn maps standard residue a (0<=a<n) into Montgomery form.
func (f *Form128) ConvertIn(a u128.Uint128) Value128 {
	hi, lo := a.MulWide(f.rSquared)
	return Value128(f.reduceToBound(f.redc(hi, lo)))
}

// ConvertOut maps v back to its standard residue in [0, n).
func (f *Form128) ConvertOut(v Value128) u128.Uint128 {
	r := f.redc(u128.Zero, u128.Uint128(v))
	for r.Cmp(f.n) >= 0 {
		r, _ = r.Sub(f.n)
	}
	return r
}

// GetCanonicalValue fully reduces v into [0, n).
func (f *Form128) GetCanonicalValue(v Value128) Canonical128 {
	r := u128.Uint128(v)
	for r.Cmp(f.n) >= 0 {
		r, _ = r.Sub(f.n)
	}
	return Canonical128(r)
}

func (f *Form128) GetUnityValue() Canonical128 {
	return f.GetCanonicalValue(f.ConvertIn(u128.One))
}

func (f *Form128) GetZeroValue() Canonical128 {
	return Canonical128(u128.Zero)
}

func (f *Form128) GetNegativeOneValue() Canonical128 {
	nMinus1, _ := f.n.Sub(u128.One)
	return f.GetCanonicalValue(f.ConvertIn(nMinus1))
}

func (c Canonical128) AsValue() Value128 { return Value128(c) }

// Add returns a+b in the Montgomery domain.
func (f *Form128) Add(a, b Value128) Value128 {
	sum, carry := u128.Uint128(a).Add(u128.Uint128(b))
	if carry != 0 || sum.Cmp(f.n) >= 0 {
		sum, _ = sum.Sub(f.n)
	}
	return Value128(sum)
}

// Subtract returns a-b in the Montgomery domain.
func (f *Form128) Subtract(a, b Value128) Value128 {
	x, y := u128.Uint128(a), u128.Uint128(b)
	if x.Cmp(y) >= 0 {
		d, _ := x.Sub(y)
		return Value128(d)
	}
	sum, _ := x.Add(f.n)
	d, _ := sum.Sub(y)
	return Value128(d)
}

// Negate returns -a in the Montgomery domain.
func (f *Form128) Negate(a Value128) Value128 {
	return f.Subtract(Value128(u128.Zero), a)
}

// Multiply computes a*b in Montgomery form, returning whether the
// canonical result is zero.
func (f *Form128) Multiply(a, b Value128) (Value128, bool) {
	hi, lo := u128.Uint128(a).MulWide(u128.Uint128(b))
	r := f.reduceToBound(f.redc(hi, lo))
	isZero := u128.Uint128(f.GetCanonicalValue(Value128(r))).IsZero()
	return Value128(r), isZero
}

// Square computes a^2 in Montgomery form.
func (f *Form128) Square(a Value128) Value128 {
	v, _ := f.Multiply(a, a)
	return v
}

// FusedSquareSub computes a^2 - c in Montgomery form.
func (f *Form128) FusedSquareSub(a, c Value128) Value128 {
	return f.Subtract(f.Square(a), c)
}

// FMSub computes a*b - c in Montgomery form.
func (f *Form128) FMSub(a, b, c Value128) Value128 {
	p, _ := f.Multiply(a, b)
	return f.Subtract(p, c)
}

// FMAdd computes a*b + c in Montgomery form.
func (f *Form128) FMAdd(a, b, c Value128) Value128 {
	p, _ := f.Multiply(a, b)
	return f.Add(p, c)
}

// Pow raises base to exp using left-to-right square-and-multiply.
func (f *Form128) Pow(base Value128, exp u128.Uint128) Value128 {
	result := f.GetUnityValue().AsValue()
	for bit := exp.BitLen() - 1; bit >= 0; bit-- {
		result = f.Square(result)
		if exp.Bit(uint(bit)) == 1 {
			result, _ = f.Multiply(result, base)
		}
	}
	return result
}

// PowBatch raises each of bases to the same exponent, batched the same
// way Form64.PowBatch is.
func (f *Form128) PowBatch(bases []Value128, exp u128.Uint128) []Value128 {
	results := make([]Value128, len(bases))
	unity := f.GetUnityValue().AsValue()
	for i := range results {
		results[i] = unity
	}
	work := make([]Value128, len(bases))
	copy(work, bases)

	for !exp.IsZero() {
		if exp.Lo&1 == 1 {
			for i := range results {
				results[i], _ = f.Multiply(results[i], work[i])
			}
		}
		for i := range work {
			work[i], _ = f.Multiply(work[i], work[i])
		}
		exp = exp.Rsh(1)
	}
	return results
}

// GCDWithModulus computes gcd(ConvertOut(v), n) using gcdFn.
func (f *Form128) GCDWithModulus(v Value128, gcdFn func(a, b u128.Uint128) u128.Uint128) u128.Uint128 {
	return gcdFn(f.ConvertOut(v), f.n)
}
