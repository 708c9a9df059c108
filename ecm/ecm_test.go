package ecm

import (
	"math/bits"
	"testing"

	"github.com/mossbach/gofactor/montgomery"
	"github.com/mossbach/gofactor/u128"
)

func TestGetSingleFactor64FindsFactor(t *testing.T) {
	cases := []struct {
		n       uint64
		wantOne uint64
		wantTwo uint64
	}{
		{n: 8051, wantOne: 83, wantTwo: 97},
		{n: 1000000007 * 1009, wantOne: 1000000007, wantTwo: 1009},
	}

	for _, tc := range cases {
		f := montgomery.NewForm64(tc.n, montgomery.Full)
		lcg := NewLCGState(DeterministicSeed("TestGetSingleFactor64FindsFactor"))
		tuning := ForBitLength(bits.Len64(tc.n))

		factor, found := GetSingleFactor64(f, lcg, tuning)
		if !found {
			t.Fatalf("n=%d: no factor found", tc.n)
		}
		if factor != tc.wantOne && factor != tc.wantTwo {
			t.Fatalf("n=%d: factor = %d, want %d or %d", tc.n, factor, tc.wantOne, tc.wantTwo)
		}
		if tc.n%factor != 0 {
			t.Fatalf("n=%d: %d does not divide n", tc.n, factor)
		}
	}
}

func TestGetSingleFactor128FindsFactor(t *testing.T) {
	// n = (2^64 - 59) * 97, a 64-bit prime times a tiny prime, comfortably
	// within a single curve's B1-smooth stage-1 scalar for small B1.
	p := u128.From64(18446744073709551557) // 2^64 - 59
	n := p.Mul(u128.From64(97))

	f := montgomery.NewForm128(n, montgomery.Full)
	lcg := NewLCGState(DeterministicSeed("TestGetSingleFactor128FindsFactor"))
	tuning := ForBitLength(n.BitLen())

	factor, found := GetSingleFactor128(f, lcg, tuning)
	if !found {
		t.Fatalf("no factor found for n=%s", n)
	}
	if factor.Cmp(u128.From64(97)) != 0 && factor.Cmp(p) != 0 {
		t.Fatalf("factor = %s, want 97 or %s", factor, p)
	}
	_, rem := n.DivMod(factor)
	if !rem.IsZero() {
		t.Fatalf("%s does not divide n=%s", factor, n)
	}
}

func TestForBitLengthMonotonic(t *testing.T) {
	prev := ForBitLength(10)
	for _, bitLen := range []int{20, 30, 40, 60, 80, 128, 200} {
		cur := ForBitLength(bitLen)
		if cur.Curves < prev.Curves || cur.B1 < prev.B1 {
			t.Fatalf("tuning not monotonic at %d bits: %+v after %+v", bitLen, cur, prev)
		}
		prev = cur
	}
}
