package trialdiv

import (
	"sort"
	"testing"
)

func TestDivideFullyComposite(t *testing.T) {
	x := uint64(2 * 2 * 3 * 3 * 3 * 5 * 11)
	remaining, factors := Divide(x, nil)
	if remaining != 1 {
		t.Fatalf("remaining = %d, want 1", remaining)
	}
	product := uint64(1)
	for _, f := range factors {
		product *= f
	}
	if product != x {
		t.Fatalf("product of factors = %d, want %d", product, x)
	}
	want := []uint64{2, 2, 3, 3, 3, 5, 11}
	sort.Slice(factors, func(i, j int) bool { return factors[i] < factors[j] })
	if len(factors) != len(want) {
		t.Fatalf("factors = %v, want %v", factors, want)
	}
	for i := range want {
		if factors[i] != want[i] {
			t.Fatalf("factors = %v, want %v", factors, want)
		}
	}
}

func TestDivideLeavesLargeCofactor(t *testing.T) {
	x := uint64(1000000007) // prime, larger than every tabulated small prime squared
	remaining, factors := Divide(x, nil)
	if len(factors) != 0 {
		t.Fatalf("expected no small-prime factors, got %v", factors)
	}
	if remaining != x {
		t.Fatalf("remaining = %d, want %d", remaining, x)
	}
}

func TestDivideSmallInputs(t *testing.T) {
	for _, x := range []uint64{0, 1} {
		remaining, factors := Divide(x, nil)
		if remaining != 1 || len(factors) != 0 {
			t.Fatalf("Divide(%d) = (%d, %v), want (1, [])", x, remaining, factors)
		}
	}

	// x == 2 or x == 3 is prime and must come back as the cofactor, not
	// be silently dropped.
	for _, x := range []uint64{2, 3} {
		remaining, factors := Divide(x, nil)
		if remaining != x || len(factors) != 0 {
			t.Fatalf("Divide(%d) = (%d, %v), want (%d, [])", x, remaining, factors, x)
		}
	}

	remaining, factors := Divide(4, nil)
	if remaining != 1 || len(factors) != 2 || factors[0] != 2 || factors[1] != 2 {
		t.Fatalf("Divide(4) = (%d, %v), want (1, [2 2])", remaining, factors)
	}
}
