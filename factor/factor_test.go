package factor

import (
	"sort"
	"testing"

	"github.com/mossbach/gofactor/config"
	"github.com/mossbach/gofactor/u128"
)

func collect(n Prime) []Prime {
	c := NewCollector(200)
	FactorizeWithConfig(n, config.Default(), c.Sink())
	return c.Factors()
}

func assertProductAndPrimality(t *testing.T, n Prime, factors []Prime) {
	t.Helper()
	product := u128.One
	for _, f := range factors {
		if !IsPrime(f) {
			t.Fatalf("n=%s: emitted factor %s is not prime", n, f)
		}
		product = product.Mul(f)
	}
	if product.Cmp(n) != 0 {
		t.Fatalf("n=%s: product of factors = %s, want %s", n, product, n)
	}
}

func TestFactorizeSeedScenarios(t *testing.T) {
	cases := []struct {
		n    uint64
		want []uint64
	}{
		{n: 40000000025, want: []uint64{5, 5, 1600000001}},
		{n: 141, want: []uint64{3, 47}},
	}

	for _, tc := range cases {
		n := u128.From64(tc.n)
		factors := collect(n)
		assertProductAndPrimality(t, n, factors)

		got := make([]uint64, len(factors))
		for i, f := range factors {
			got[i] = f.Lo
		}
		sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
		want := append([]uint64(nil), tc.want...)
		sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

		if len(got) != len(want) {
			t.Fatalf("n=%d: factors = %v, want %v", tc.n, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("n=%d: factors = %v, want %v", tc.n, got, want)
			}
		}
	}
}

func TestIsPrimeSeedScenarios(t *testing.T) {
	cases := []struct {
		n     uint64
		prime bool
	}{
		{n: 67967, prime: true},
		{n: 40000000003, prime: true},
		{n: 18446744073709551557, prime: true}, // 2^64 - 59
		{n: 8589934592, prime: false},          // 2^33
	}
	for _, tc := range cases {
		got := IsPrime(u128.From64(tc.n))
		if got != tc.prime {
			t.Fatalf("IsPrime(%d) = %v, want %v", tc.n, got, tc.prime)
		}
	}
}

func TestFactorizeLargeEvenValue(t *testing.T) {
	// n = 2^64 - 160, even: exercises the leading factor-of-2 strip
	// before the odd cofactor reaches Miller-Rabin/the factor-finders.
	n64 := ^uint64(0) - 159
	n := u128.From64(n64)
	if n64%2 != 0 {
		t.Fatalf("test setup: %d is not even", n64)
	}

	factors := collect(n)
	assertProductAndPrimality(t, n, factors)

	if IsPrime(n) {
		t.Fatalf("n=%d: expected composite (even), got prime", n64)
	}
}
