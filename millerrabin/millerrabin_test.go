package millerrabin

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/mossbach/gofactor/u128"
)

func TestIsPrime64KnownValues(t *testing.T) {
	primes := []uint64{2, 3, 5, 7, 11, 13, 97, 1000000007, 0xfffffffffffffffb, 18446744073709551557}
	for _, p := range primes {
		if !IsPrime64(p) {
			t.Errorf("IsPrime64(%d) = false, want true", p)
		}
	}

	composites := []uint64{0, 1, 4, 6, 8, 9, 100, 1000000009 * 3, 18446744073709551615}
	for _, c := range composites {
		if IsPrime64(c) {
			t.Errorf("IsPrime64(%d) = true, want false", c)
		}
	}
}

func TestIsPrime64AgainstBigIntProbablyPrime(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		n := uint64(r.Int63())<<1 | 1 // odd
		if n < 3 {
			continue
		}
		got := IsPrime64(n)
		want := new(big.Int).SetUint64(n).ProbablyPrime(30)
		if got != want {
			t.Fatalf("IsPrime64(%d) = %v, want %v (big.Int.ProbablyPrime)", n, got, want)
		}
	}
}

func TestIsPrime64StrongPseudoprimes(t *testing.T) {
	// Known strong pseudoprimes to small individual bases, each of which
	// must still be correctly rejected by the full table-selected set.
	cases := []uint64{
		2047,      // spsp to base 2, = 23*89
		1373653,   // spsp to bases 2,3, = 829*1657
		25326001,  // spsp to bases 2,3,5, = 2251*11251
	}
	for _, c := range cases {
		if IsPrime64(c) {
			t.Errorf("IsPrime64(%d) = true, want false (known pseudoprime)", c)
		}
	}
}

func TestIsPrime128DelegatesTo64ForSmallValues(t *testing.T) {
	n := u128.From64(1000000007)
	if !IsPrime128(n) {
		t.Errorf("IsPrime128(%s) = false, want true", n)
	}
	n2 := u128.From64(100)
	if IsPrime128(n2) {
		t.Errorf("IsPrime128(%s) = true, want false", n2)
	}
}

func TestIsPrime128KnownPrime(t *testing.T) {
	n := u128.FromBig(mustBig("340282366920938463463374607431768211297"))
	if !IsPrime128(n) {
		t.Errorf("IsPrime128(%s) = false, want true", n)
	}
}

func TestIsPrime128AgainstBigIntProbablyPrime(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		z := new(big.Int).Rand(r, new(big.Int).Lsh(big.NewInt(1), 100))
		z.SetBit(z, 70, 1) // push above 2^64 so the 128-bit path is exercised
		z.SetBit(z, 0, 1)  // force odd
		n := u128.FromBig(z)

		got := IsPrime128(n)
		want := z.ProbablyPrime(30)
		if got != want {
			t.Fatalf("IsPrime128(%s) = %v, want %v", n, got, want)
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
