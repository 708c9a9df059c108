package pollardrho

import (
	"testing"

	"github.com/mossbach/gofactor/u128"
)

func TestFactor64FindsFactor(t *testing.T) {
	cases := []struct {
		n        uint64
		divisors []uint64
	}{
		{n: 8051, divisors: []uint64{83, 97}},
		{n: 1000000007 * 3, divisors: []uint64{3, 1000000007}},
		{n: 141, divisors: []uint64{3, 47}},
		{n: 40000000025, divisors: []uint64{5, 1600000001}}, // = 5^2 * 1600000001
	}
	for _, c := range cases {
		p, ok := Factor64(c.n, DefaultTuning)
		if !ok {
			t.Fatalf("Factor64(%d): no factor found", c.n)
		}
		if c.n%p != 0 || p == 1 || p == c.n {
			t.Fatalf("Factor64(%d) = %d, not a nontrivial divisor", c.n, p)
		}
	}
}

func TestBrentParallel64FindsFactor(t *testing.T) {
	n := uint64(8051) // 83 * 97
	f := newTestForm(n)
	p := BrentParallel64(f, 1, DefaultTuning)
	if p == 0 {
		// a single c value may legitimately cycle; retry with a few others
		found := false
		for c := uint64(2); c < 10 && !found; c++ {
			if q := BrentParallel64(f, c, DefaultTuning); q > 1 {
				found = true
				p = q
			}
		}
		if !found {
			t.Fatalf("BrentParallel64(%d): no factor found across several c values", n)
		}
	}
	if n%p != 0 || p == 1 || p == n {
		t.Fatalf("BrentParallel64(%d) = %d, not a nontrivial divisor", n, p)
	}
}

func TestFactor128FindsFactor(t *testing.T) {
	// 2^64 - 59 (prime) times a small prime, kept under 2^80 so retries stay fast.
	n := u128.FromBig(mustBig("18446744073709551557")).Mul(u128.From64(97))
	p, ok := Factor128(n, DefaultTuning)
	if !ok {
		t.Fatalf("Factor128(%s): no factor found", n)
	}
	_, rem := n.DivMod(p)
	if !rem.IsZero() || p.Cmp(u128.One) == 0 || p.Cmp(n) == 0 {
		t.Fatalf("Factor128(%s) = %s, not a nontrivial divisor", n, p)
	}
}
