// Package modular implements the width-generic modular primitives the rest
// of this module is built on: binary GCD, modular inverse, inverse mod a
// power of two, and branchless add/sub mod n.
//
// Native widths (uint8..uint64) share one generic implementation via
// golang.org/x/exp/constraints; the 128-bit path is a parallel,
// hand-written set of functions over u128.Uint128, the same split
// arithmetic-vault/montgomery.go makes between its big.Int-based and
// []uint64-based REDC variants rather than forcing one abstraction over
// incompatible representations.
package modular

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/mossbach/gofactor/u128"
)

// PreconditionError reports a violated caller contract — e.g. GCD(0, 0).
type PreconditionError struct {
	Op  string
	Msg string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("modular: %s: %s", e.Op, e.Msg)
}

// GCD returns the greatest common divisor of a and b using the binary
// (Stein's) algorithm. Panics with a *PreconditionError if both a and b
// are zero.
func GCD[T constraints.Unsigned](a, b T) T {
	if a == 0 && b == 0 {
		panic(&PreconditionError{Op: "GCD", Msg: "both operands are zero"})
	}
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}

	shift := trailingZeros(a | b)
	a >>= trailingZeros(a)

	for b != 0 {
		b >>= trailingZeros(b)
		if a > b {
			a, b = b, a
		}
		b -= a
	}
	return a << shift
}

func trailingZeros[T constraints.Unsigned](v T) uint {
	if v == 0 {
		return 0
	}
	var n uint
	for v&1 == 0 {
		v >>= 1
		n++
	}
	return n
}

// ModInverse computes inv such that a*inv ≡ 1 (mod n), returning (inv, gcd).
// When gcd != 1, inv is undefined (the caller's contract is that it only
// uses the result when gcd == 1, per spec).
func ModInverse[T constraints.Unsigned](a, n T) (inv T, gcd T) {
	if n == 0 {
		panic(&PreconditionError{Op: "ModInverse", Msg: "modulus is zero"})
	}
	// The gcd comes from the binary GCD above; the inverse comes from the
	// standard extended Euclidean algorithm (not a binary variant), with
	// the Bezout coefficients kept reduced mod n so the loop runs entirely
	// in unsigned T arithmetic.
	origA, origN := a, n
	var x0, x1 T = 1, 0
	if a == 0 {
		return 0, n
	}

	g := GCD(a, n)
	if g != 1 {
		return 0, g
	}

	// Invariant: x0*origA ≡ aa and x1*origA ≡ nn (mod origN); when nn
	// reaches 0, aa is the gcd and x0 is the inverse.
	aa, nn := origA, origN
	for nn != 0 {
		q := aa / nn
		aa, nn = nn, aa-q*nn
		x0, x1 = x1, SubMod(x0, mulModSmall(q, x1, origN), origN)
	}
	return x0, g
}

// mulModSmall computes (a*b) mod n for T where a*b might not fit in T;
// used only inside ModInverse's coefficient bookkeeping where a,b,n are
// already < n, so the product is computed via repeated doubling to avoid
// overflow on constrained widths.
func mulModSmall[T constraints.Unsigned](a, b, n T) T {
	var result T
	a %= n
	for b > 0 {
		if b&1 == 1 {
			result = addMod(result, a, n)
		}
		a = addMod(a, a, n)
		b >>= 1
	}
	return result
}

// AddMod returns (a+b) mod n assuming 0<=a,b<n, using the branchless form
// from spec.md §4.1: t = a - (n-b); if that underflows, a+b is already
// the reduced sum.
func AddMod[T constraints.Unsigned](a, b, n T) T {
	t := a - (n - b)
	if a >= n-b {
		return t
	}
	return a + b
}

func addMod[T constraints.Unsigned](a, b, n T) T { return AddMod(a, b, n) }

// SubMod returns (a-b) mod n assuming 0<=a,b<n.
func SubMod[T constraints.Unsigned](a, b, n T) T {
	if a >= b {
		return a - b
	}
	return n - (b - a)
}

// InverseModPow2 computes x such that a*x ≡ 1 (mod 2^bits(T)), for odd a,
// via Newton's iteration: starting from the 1-bit-correct guess x=1,
// each step x = x*(2-a*x) doubles the number of correct low bits. This
// generalizes arithmetic-vault/montgomery.go's newtonRaphsonInverse
// (fixed at 6 doublings for uint64) to any unsigned width.
func InverseModPow2[T constraints.Unsigned](a T) T {
	if a&1 == 0 {
		panic(&PreconditionError{Op: "InverseModPow2", Msg: "operand must be odd"})
	}
	x := T(1)
	bitsWidth := widthOf(a)
	for correct := 1; correct < bitsWidth; correct *= 2 {
		x = x * (2 - a*x)
	}
	return x
}

func widthOf[T constraints.Unsigned](_ T) int {
	var v T
	switch any(v).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	case uint64:
		return 64
	case uint:
		return 64
	default:
		return 64
	}
}

// --- 128-bit path ---

// GCD128 is GCD for u128.Uint128, using the binary algorithm.
func GCD128(a, b u128.Uint128) u128.Uint128 {
	if a.IsZero() && b.IsZero() {
		panic(&PreconditionError{Op: "GCD128", Msg: "both operands are zero"})
	}
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	shift := min(a.TrailingZeros(), b.TrailingZeros())
	a = a.Rsh(uint(a.TrailingZeros()))

	for !b.IsZero() {
		b = b.Rsh(uint(b.TrailingZeros()))
		if a.Cmp(b) > 0 {
			a, b = b, a
		}
		b, _ = b.Sub(a)
	}
	return a.Lsh(uint(shift))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ModInverse128 is ModInverse for u128.Uint128.
func ModInverse128(a, n u128.Uint128) (inv u128.Uint128, gcd u128.Uint128) {
	if n.IsZero() {
		panic(&PreconditionError{Op: "ModInverse128", Msg: "modulus is zero"})
	}
	g := GCD128(a, n)
	if g.Cmp(u128.One) != 0 {
		return u128.Zero, g
	}

	aa, nn := a, n
	x0, x1 := u128.One, u128.Zero
	for !nn.IsZero() {
		q, r := aa.DivMod(nn)
		aa, nn = nn, r
		t := mulMod128(q, x1, n)
		x0, x1 = x1, subMod128(x0, t, n)
	}
	return x0, g
}

// mulMod128 computes (a*b) mod n via double-and-add, reducing a mod n
// first; used only by ModInverse128's coefficient bookkeeping, never on
// the Montgomery hot path (which uses REDC, not this).
func mulMod128(a, b, n u128.Uint128) u128.Uint128 {
	am := reduce128(a, n)
	var result u128.Uint128
	for !b.IsZero() {
		if b.Lo&1 == 1 {
			result = addMod128(result, am, n)
		}
		am = addMod128(am, am, n)
		b = b.Rsh(1)
	}
	return result
}

func reduce128(a, n u128.Uint128) u128.Uint128 {
	_, r := a.DivMod(n)
	return r
}

func addMod128(a, b, n u128.Uint128) u128.Uint128 {
	sum, carry := a.Add(b)
	if carry != 0 || sum.Cmp(n) >= 0 {
		sum, _ = sum.Sub(n)
	}
	return sum
}

func subMod128(a, b, n u128.Uint128) u128.Uint128 {
	if a.Cmp(b) >= 0 {
		d, _ := a.Sub(b)
		return d
	}
	sum, _ := a.Add(n)
	d, _ := sum.Sub(b)
	return d
}

// InverseModPow2_128 computes x such that a*x ≡ 1 (mod 2^128) for odd a,
// via one further Newton doubling step beyond the 64-bit case.
func InverseModPow2_128(a u128.Uint128) u128.Uint128 {
	if a.Lo&1 == 0 {
		panic(&PreconditionError{Op: "InverseModPow2_128", Msg: "operand must be odd"})
	}
	// Solve the low 64 bits first with the native iteration, then lift to
	// 128 bits with one more Newton step: x = x*(2 - a*x) in 128-bit math.
	x := u128.From64(modular64InverseModPow2(a.Lo))
	two := u128.From64(2)
	ax := a.Mul(x)
	x = x.Mul(two.SubWrap(ax))
	return x
}

func modular64InverseModPow2(a uint64) uint64 {
	return InverseModPow2(a)
}
