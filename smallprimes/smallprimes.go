// Package smallprimes supplies a compile-time table of the primes below
// 256, shared by the trial-division front end and ECM's stage-1
// smooth-scalar construction.
package smallprimes

// Primes lists every prime below 256, starting at 2. This is the same
// table original_source/.../small_trial_division.h embeds for its
// trial-division sweep.
var Primes = []uint32{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
	71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139,
	149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223,
	227, 229, 233, 239, 241, 251,
}

// OddPrimes is Primes with the leading 2 dropped, matching
// perform_trial_divisions's convention of handling the factor-of-2 loop
// separately from the odd-prime sweep.
var OddPrimes = Primes[1:]

// Last is the largest tabulated prime, used by config.Default to compute
// always_prime_limit = Last^2 (spec.md §9 Open Questions).
var Last = Primes[len(Primes)-1]

// UpTo returns every tabulated prime <= limit. Used by ecm's stage-1
// smooth-scalar construction to select primes up to B1.
func UpTo(limit uint32) []uint32 {
	out := make([]uint32, 0, len(Primes))
	for _, p := range Primes {
		if p > limit {
			break
		}
		out = append(out, p)
	}
	return out
}
