package montgomery

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/mossbach/gofactor/u128"
)

func randU128(r *rand.Rand, bits int) u128.Uint128 {
	z := new(big.Int)
	for z.BitLen() == 0 || z.BitLen() > bits {
		buf := make([]byte, bits/8)
		r.Read(buf)
		z.SetBytes(buf)
	}
	return u128.FromBig(z)
}

func TestForm128ConvertRoundTrip(t *testing.T) {
	t.Parallel()
	// 2^64 - 59, the largest prime below 2^64, widened to 128 bits so the
	// Form128 path is exercised with a modulus that still fits easily.
	n := u128.FromBig(mustBig("18446744073709551557"))
	f := NewForm128(n, Full)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		a := randU128(r, 63)
		v := f.ConvertIn(a)
		got := f.ConvertOut(v)
		if got.Cmp(a) != 0 {
			t.Fatalf("round trip failed: a=%s got=%s", a, got)
		}
	}
}

func TestForm128MultiplyAgainstBigInt(t *testing.T) {
	t.Parallel()
	n := u128.FromBig(mustBig("340282366920938463463374607431768211297")) // a 128-bit prime
	f := NewForm128(n, Full)
	nBig := n.Big()

	r := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		a := randU128(r, 127)
		b := randU128(r, 127)
		a = u128.FromBig(new(big.Int).Mod(a.Big(), nBig))
		b = u128.FromBig(new(big.Int).Mod(b.Big(), nBig))

		va, vb := f.ConvertIn(a), f.ConvertIn(b)
		vc, _ := f.Multiply(va, vb)
		got := f.ConvertOut(vc)

		want := new(big.Int).Mul(a.Big(), b.Big())
		want.Mod(want, nBig)

		if got.Big().Cmp(want) != 0 {
			t.Fatalf("Multiply(%s,%s) = %s; want %s", a, b, got, want)
		}
	}
}

func TestForm128UnityZeroNegativeOne(t *testing.T) {
	t.Parallel()
	f := NewForm128(u128.From64(97), Full)

	if got := f.ConvertOut(f.GetUnityValue().AsValue()); got.Cmp(u128.One) != 0 {
		t.Errorf("GetUnityValue -> %s, want 1", got)
	}
	if got := f.ConvertOut(f.GetZeroValue().AsValue()); !got.IsZero() {
		t.Errorf("GetZeroValue -> %s, want 0", got)
	}
	if got := f.ConvertOut(f.GetNegativeOneValue().AsValue()); got.Cmp(u128.From64(96)) != 0 {
		t.Errorf("GetNegativeOneValue -> %s, want 96", got)
	}
}

func TestForm128PowAgainstBigInt(t *testing.T) {
	t.Parallel()
	n := u128.From64(1000000007)
	f := NewForm128(n, Full)
	nBig := n.Big()

	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		a := randU128(r, 29)
		a = u128.FromBig(new(big.Int).Mod(a.Big(), nBig))
		e := u128.From64(uint64(r.Intn(1000)))

		v := f.ConvertIn(a)
		got := f.ConvertOut(f.Pow(v, e))

		want := new(big.Int).Exp(a.Big(), e.Big(), nBig)
		if got.Big().Cmp(want) != 0 {
			t.Fatalf("Pow(%s,%s) = %s; want %s", a, e, got, want)
		}
	}
}

func mustBig(s string) *big.Int {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad literal: " + s)
	}
	return z
}
