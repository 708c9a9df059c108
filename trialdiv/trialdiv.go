// Package trialdiv implements the small-prime trial-division front end
// that the factorization driver runs before handing a remainder off to
// Miller-Rabin and the heavier factor-finding engines.
package trialdiv

import (
	"github.com/mossbach/gofactor/modular"
	"github.com/mossbach/gofactor/smallprimes"
)

// primeInfo precomputes, for one odd prime p, the data needed for the
// "test for zero remainder after division by a constant" trick (Hacker's
// Delight, as cited by original_source/.../small_trial_division.h):
// invModR is p's multiplicative inverse mod 2^64, and maxDivPrime is
// MaxUint64/p. For x a multiple of p, x*invModR (mod 2^64) equals x/p
// exactly; for x not a multiple of p, x*invModR (mod 2^64) always
// exceeds maxDivPrime. This turns a divisibility test plus a division
// into a single multiply and compare.
type primeInfo struct {
	prime       uint64
	invModR     uint64
	maxDivPrime uint64
}

var infos []primeInfo

func init() {
	infos = make([]primeInfo, len(smallprimes.OddPrimes))
	for i, p := range smallprimes.OddPrimes {
		pp := uint64(p)
		infos[i] = primeInfo{
			prime:       pp,
			invModR:     modular.InverseModPow2(pp),
			maxDivPrime: ^uint64(0) / pp,
		}
	}
}

// Divide repeatedly divides out every tabulated prime below 256 from x,
// appending each one (with multiplicity) to factors, and returns the
// remaining cofactor. The cofactor is 1 if x was completely factored by
// the small-prime sweep, otherwise it is either prime or a product of
// primes all >= 257 (the next stage's job to resolve).
func Divide(x uint64, factors []uint64) (remaining uint64, out []uint64) {
	if x <= 1 {
		return 1, factors
	}
	if x < 4 {
		return x, factors
	}

	for x%2 == 0 {
		factors = append(factors, 2)
		x /= 2
	}
	if x == 1 {
		return 1, factors
	}

	for _, info := range infos {
		if info.prime*info.prime > x {
			// x has no prime factor below info.prime and x < info.prime^2,
			// so x is prime; a tabulated prime is emitted as a factor.
			if x <= uint64(smallprimes.Last) {
				factors = append(factors, x)
				return 1, factors
			}
			break
		}
		tmp := x * info.invModR
		for tmp <= info.maxDivPrime {
			factors = append(factors, info.prime)
			x = tmp
			if x == 1 {
				return 1, factors
			}
			tmp = x * info.invModR
		}
	}
	return x, factors
}
