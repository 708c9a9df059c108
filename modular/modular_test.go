package modular

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/mossbach/gofactor/u128"
)

func TestGCDBasic(t *testing.T) {
	cases := []struct{ a, b, want uint64 }{
		{12, 18, 6},
		{17, 5, 1},
		{0, 7, 7},
		{7, 0, 7},
		{100, 75, 25},
	}
	for _, c := range cases {
		if got := GCD(c.a, c.b); got != c.want {
			t.Errorf("GCD(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestGCDBothZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	GCD(uint64(0), uint64(0))
}

func TestGCDDividesBoth(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a := uint64(r.Int63n(1<<40)) + 1
		b := uint64(r.Int63n(1<<40)) + 1
		g := GCD(a, b)
		if a%g != 0 || b%g != 0 {
			t.Fatalf("GCD(%d,%d)=%d does not divide both", a, b, g)
		}
	}
}

func TestModInverse(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		n := uint64(r.Int63n(1<<32))*2 + 3 // odd, >2
		a := uint64(r.Int63n(int64(n)))
		if a == 0 {
			continue
		}
		inv, g := ModInverse(a, n)
		if g != 1 {
			continue
		}
		prod := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(inv))
		prod.Mod(prod, new(big.Int).SetUint64(n))
		if prod.Uint64() != 1 {
			t.Fatalf("ModInverse(%d,%d): a*inv mod n = %s, want 1", a, n, prod)
		}
	}
}

func TestInverseModPow2(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		a := uint64(r.Int63()) | 1 // force odd
		x := InverseModPow2(a)
		if a*x != 1 {
			t.Fatalf("InverseModPow2(%d) = %d; a*x = %d, want 1", a, x, a*x)
		}
	}
}

func TestInverseModPow2MaxUint64(t *testing.T) {
	n := uint64(0xffffffffffffffff)
	if x := InverseModPow2(n); x != 0xffffffffffffffff {
		t.Errorf("InverseModPow2(max) = %#x, want 0xffffffffffffffff", x)
	}
}

func TestAddModSubModRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		n := uint64(r.Int63n(1<<40)) + 3
		a := uint64(r.Int63n(int64(n)))
		b := uint64(r.Int63n(int64(n)))

		sum := AddMod(a, b, n)
		want := (a + b) % n
		if sum != want {
			t.Fatalf("AddMod(%d,%d,%d) = %d, want %d", a, b, n, sum, want)
		}

		back := SubMod(sum, b, n)
		if back != a {
			t.Fatalf("SubMod(AddMod(a,b),b) = %d, want %d", back, a)
		}
	}
}

func TestGCD128(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 500; i++ {
		a := u128.FromBig(new(big.Int).Rand(r, new(big.Int).Lsh(big.NewInt(1), 100)))
		b := u128.FromBig(new(big.Int).Rand(r, new(big.Int).Lsh(big.NewInt(1), 100)))
		if a.IsZero() || b.IsZero() {
			continue
		}
		g := GCD128(a, b)

		want := new(big.Int).GCD(nil, nil, a.Big(), b.Big())
		if g.Big().Cmp(want) != 0 {
			t.Fatalf("GCD128(%s,%s) = %s, want %s", a, b, g, want)
		}
	}
}

func TestModInverse128(t *testing.T) {
	n := u128.FromBig(mustBig("340282366920938463463374607431768211297")) // 128-bit prime
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 300; i++ {
		a := u128.FromBig(new(big.Int).Rand(r, n.Big()))
		if a.IsZero() {
			continue
		}
		inv, g := ModInverse128(a, n)
		if g.Cmp(u128.One) != 0 {
			continue
		}
		prod := new(big.Int).Mul(a.Big(), inv.Big())
		prod.Mod(prod, n.Big())
		if prod.Cmp(big.NewInt(1)) != 0 {
			t.Fatalf("ModInverse128(%s,%s): a*inv mod n = %s, want 1", a, n, prod)
		}
	}
}

func TestInverseModPow2_128(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		a := u128.FromBig(new(big.Int).Rand(r, new(big.Int).Lsh(big.NewInt(1), 128)))
		a = u128.Uint128{Hi: a.Hi, Lo: a.Lo | 1}
		x := InverseModPow2_128(a)
		prod := a.Mul(x)
		if prod.Cmp(u128.One) != 0 {
			t.Fatalf("InverseModPow2_128(%s) * a = %s, want 1", a, prod)
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
