// Package u128 implements the 128-bit unsigned integer substrate that the
// rest of this module builds on. Go has no native 128-bit integer type, so
// this plays the role the original C++ source gives to __uint128_t: a
// value type with widening multiply, used by every package that handles
// values wider than 64 bits (montgomery, modular, millerrabin,
// pollardrho, ecm, factor and the CLI).
package u128

import (
	"math/big"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer, Hi*2^64 + Lo.
type Uint128 struct {
	Hi, Lo uint64
}

// Zero is the additive identity.
var Zero = Uint128{}

// One is the multiplicative identity.
var One = Uint128{Lo: 1}

// Max is the largest representable value.
var Max = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

// From64 widens a uint64 into Uint128.
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// IsZero reports whether v is zero.
func (v Uint128) IsZero() bool {
	return v.Hi == 0 && v.Lo == 0
}

// Fits64 reports whether v fits in 64 bits.
func (v Uint128) Fits64() bool {
	return v.Hi == 0
}

// Cmp returns -1, 0, or 1 as v is less than, equal to, or greater than w.
func (v Uint128) Cmp(w Uint128) int {
	if v.Hi != w.Hi {
		if v.Hi < w.Hi {
			return -1
		}
		return 1
	}
	switch {
	case v.Lo < w.Lo:
		return -1
	case v.Lo > w.Lo:
		return 1
	default:
		return 0
	}
}

// Add returns v+w and the carry out of bit 127.
func (v Uint128) Add(w Uint128) (sum Uint128, carry uint64) {
	lo, c0 := bits.Add64(v.Lo, w.Lo, 0)
	hi, c1 := bits.Add64(v.Hi, w.Hi, c0)
	return Uint128{Hi: hi, Lo: lo}, c1
}

// Sub returns v-w and the borrow out of bit 127.
func (v Uint128) Sub(w Uint128) (diff Uint128, borrow uint64) {
	lo, b0 := bits.Sub64(v.Lo, w.Lo, 0)
	hi, b1 := bits.Sub64(v.Hi, w.Hi, b0)
	return Uint128{Hi: hi, Lo: lo}, b1
}

// AddC returns v+w+carryIn (carryIn must be 0 or 1) and the carry out of
// bit 127. Used by 256-bit REDC to chain the low-limb and high-limb adds.
func (v Uint128) AddC(w Uint128, carryIn uint64) (sum Uint128, carryOut uint64) {
	lo, c0 := bits.Add64(v.Lo, w.Lo, carryIn)
	hi, c1 := bits.Add64(v.Hi, w.Hi, c0)
	return Uint128{Hi: hi, Lo: lo}, c1
}

// AddWrap returns v+w mod 2^128, discarding the carry.
func (v Uint128) AddWrap(w Uint128) Uint128 {
	s, _ := v.Add(w)
	return s
}

// SubWrap returns v-w mod 2^128, discarding the borrow.
func (v Uint128) SubWrap(w Uint128) Uint128 {
	d, _ := v.Sub(w)
	return d
}

// Mul64 returns the full 128-bit product of two uint64 operands.
func Mul64(a, b uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	return Uint128{Hi: hi, Lo: lo}
}

// Mul returns the low 128 bits of v*w (the high 128 bits are discarded,
// mirroring native fixed-width multiplication).
func (v Uint128) Mul(w Uint128) Uint128 {
	hi, lo := bits.Mul64(v.Lo, w.Lo)
	hi += v.Hi*w.Lo + v.Lo*w.Hi
	return Uint128{Hi: hi, Lo: lo}
}

// MulWide returns the full 256-bit product of v*w as (hi, lo Uint128).
func (v Uint128) MulWide(w Uint128) (hi, lo Uint128) {
	// Schoolbook 2x2-limb multiply using 64-bit limbs:
	//   v*w = hi11*2^192 + (hi01+hi10+lo11)*2^128 + (hi00+lo01+lo10)*2^64 + lo00,
	// with the carries of each column folded into the next below.
	hi00, lo00 := bits.Mul64(v.Lo, w.Lo)
	hi01, lo01 := bits.Mul64(v.Lo, w.Hi)
	hi10, lo10 := bits.Mul64(v.Hi, w.Lo)
	hi11, lo11 := bits.Mul64(v.Hi, w.Hi)

	mid, c1 := bits.Add64(hi00, lo01, 0)
	mid, c2 := bits.Add64(mid, lo10, 0)
	carryMid := c1 + c2

	upper, c3 := bits.Add64(hi01, hi10, 0)
	upper, c4 := bits.Add64(upper, lo11, 0)
	upper, c5 := bits.Add64(upper, carryMid, 0)
	carryUpper := c3 + c4 + c5

	top, _ := bits.Add64(hi11, carryUpper, 0)

	return Uint128{Hi: top, Lo: upper}, Uint128{Hi: mid, Lo: lo00}
}

// Lsh returns v<<n for 0<=n<128.
func (v Uint128) Lsh(n uint) Uint128 {
	switch {
	case n == 0:
		return v
	case n >= 128:
		return Zero
	case n >= 64:
		return Uint128{Hi: v.Lo << (n - 64)}
	default:
		return Uint128{Hi: v.Hi<<n | v.Lo>>(64-n), Lo: v.Lo << n}
	}
}

// Rsh returns v>>n for 0<=n<128.
func (v Uint128) Rsh(n uint) Uint128 {
	switch {
	case n == 0:
		return v
	case n >= 128:
		return Zero
	case n >= 64:
		return Uint128{Lo: v.Hi >> (n - 64)}
	default:
		return Uint128{Hi: v.Hi >> n, Lo: v.Lo>>n | v.Hi<<(64-n)}
	}
}

// And, Or, Xor, Not are the usual bitwise operations.
func (v Uint128) And(w Uint128) Uint128 { return Uint128{v.Hi & w.Hi, v.Lo & w.Lo} }
func (v Uint128) Or(w Uint128) Uint128  { return Uint128{v.Hi | w.Hi, v.Lo | w.Lo} }
func (v Uint128) Xor(w Uint128) Uint128 { return Uint128{v.Hi ^ w.Hi, v.Lo ^ w.Lo} }
func (v Uint128) Not() Uint128          { return Uint128{^v.Hi, ^v.Lo} }

// Bit returns the value of bit i (0 = least significant).
func (v Uint128) Bit(i uint) uint {
	if i >= 128 {
		return 0
	}
	if i < 64 {
		return uint(v.Lo>>i) & 1
	}
	return uint(v.Hi>>(i-64)) & 1
}

// BitLen returns the number of bits required to represent v (0 for v==0).
func (v Uint128) BitLen() int {
	if v.Hi != 0 {
		return 64 + bits.Len64(v.Hi)
	}
	return bits.Len64(v.Lo)
}

// TrailingZeros returns the number of trailing zero bits (128 if v==0).
func (v Uint128) TrailingZeros() int {
	if v.Lo != 0 {
		return bits.TrailingZeros64(v.Lo)
	}
	if v.Hi != 0 {
		return 64 + bits.TrailingZeros64(v.Hi)
	}
	return 128
}

// Big converts v to a *big.Int. Used by tests, diagnostics and the
// big.Int-based divisions (DivMod, Form128's construction-time
// reduction) — never on the arithmetic hot path.
func (v Uint128) Big() *big.Int {
	z := new(big.Int).SetUint64(v.Hi)
	z.Lsh(z, 64)
	z.Or(z, new(big.Int).SetUint64(v.Lo))
	return z
}

// FromBig converts a non-negative *big.Int fitting in 128 bits to a
// Uint128. Used by tests, the CLI's argument parser and the big.Int-based
// divisions (DivMod, Form128's construction-time reduction).
func FromBig(z *big.Int) Uint128 {
	mask := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(z, mask).Uint64()
	hi := new(big.Int).Rsh(z, 64)
	hi.And(hi, mask)
	return Uint128{Hi: hi.Uint64(), Lo: lo}
}

// String renders v in decimal, for diagnostics.
func (v Uint128) String() string {
	return v.Big().String()
}

// DivMod returns (v/w, v%w) using big.Int; a correctness fallback used
// only where the driver needs an occasional 128-bit division (never in
// the Montgomery/Rho/ECM inner loops, which avoid division entirely).
func (v Uint128) DivMod(w Uint128) (q, r Uint128) {
	qi, ri := new(big.Int).QuoRem(v.Big(), w.Big(), new(big.Int))
	return FromBig(qi), FromBig(ri)
}
