package u128

import (
	"math/big"
	"math/rand"
	"testing"
)

func randBig(r *rand.Rand, bits int) *big.Int {
	z := new(big.Int)
	for z.BitLen() == 0 || z.BitLen() > bits {
		buf := make([]byte, bits/8)
		r.Read(buf)
		z.SetBytes(buf)
	}
	return z
}

func TestMulWideAgainstBigInt(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		a := FromBig(randBig(r, 128))
		b := FromBig(randBig(r, 128))

		hi, lo := a.MulWide(b)

		want := new(big.Int).Mul(a.Big(), b.Big())
		got := new(big.Int).Lsh(hi.Big(), 128)
		got.Or(got, lo.Big())

		if got.Cmp(want) != 0 {
			t.Fatalf("MulWide(%s,%s) = %s; want %s", a, b, got, want)
		}
	}
}

func TestMulTruncates(t *testing.T) {
	a := Uint128{Hi: 1, Lo: 0}
	b := Uint128{Hi: 1, Lo: 0}
	got := a.Mul(b) // (2^64)^2 = 2^128 truncates to 0
	if !got.IsZero() {
		t.Errorf("Mul truncation: got %s, want 0", got)
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 2000; i++ {
		a := FromBig(randBig(r, 128))
		b := FromBig(randBig(r, 128))

		sum := a.AddWrap(b)
		back := sum.SubWrap(b)
		if back.Cmp(a) != 0 {
			t.Fatalf("a+b-b != a: a=%s b=%s got=%s", a, b, back)
		}
	}
}

func TestShifts(t *testing.T) {
	v := Uint128{Hi: 0x1, Lo: 0x8000000000000000}
	if got := v.Lsh(1); got.Hi != 3 || got.Lo != 0 {
		t.Errorf("Lsh(1) = %+v", got)
	}
	if got := v.Rsh(65); got.Hi != 0 || got.Lo != 0 {
		t.Errorf("Rsh(65) = %+v", got)
	}
}

func TestCmp(t *testing.T) {
	a := Uint128{Hi: 1, Lo: 0}
	b := Uint128{Hi: 0, Lo: ^uint64(0)}
	if a.Cmp(b) <= 0 {
		t.Errorf("expected a > b")
	}
	if b.Cmp(a) >= 0 {
		t.Errorf("expected b < a")
	}
	if a.Cmp(a) != 0 {
		t.Errorf("expected a == a")
	}
}

func TestBitLenAndTrailingZeros(t *testing.T) {
	v := Uint128{Hi: 0, Lo: 0b1010000}
	if v.BitLen() != 7 {
		t.Errorf("BitLen() = %d, want 7", v.BitLen())
	}
	if v.TrailingZeros() != 4 {
		t.Errorf("TrailingZeros() = %d, want 4", v.TrailingZeros())
	}
	if Zero.TrailingZeros() != 128 {
		t.Errorf("TrailingZeros(0) = %d, want 128", Zero.TrailingZeros())
	}
}

func TestDivMod(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		a := FromBig(randBig(r, 128))
		b := FromBig(randBig(r, 64))
		if b.IsZero() {
			continue
		}
		q, rem := a.DivMod(b)

		wantQ, wantR := new(big.Int).QuoRem(a.Big(), b.Big(), new(big.Int))
		if q.Big().Cmp(wantQ) != 0 || rem.Big().Cmp(wantR) != 0 {
			t.Fatalf("DivMod(%s,%s) = (%s,%s); want (%s,%s)", a, b, q, rem, wantQ, wantR)
		}
	}
}
