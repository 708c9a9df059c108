// Package config holds the tunables spec.md §6 lists as construction-time
// constants — never environment variables, never config files, threaded
// explicitly through the call chain like everything else in this module.
package config

import (
	"github.com/mossbach/gofactor/ecm"
	"github.com/mossbach/gofactor/pollardrho"
	"github.com/mossbach/gofactor/smallprimes"
)

// Config collects every tunable the factorization driver and its
// factor-finders consult.
type Config struct {
	// PollardRho is passed straight through to pollardrho.Brent64/128.
	PollardRho pollardrho.Tuning

	// TrialDivisionSize records how many small primes the compiled-in
	// table holds. Neither the trialdiv package nor the driver reads this
	// field: trial division always sieves the full compiled-in table, and
	// changing the value has no effect on factorization.
	TrialDivisionSize int

	// ECMCrossoverBits is the bit length of x at or above which the
	// driver tries ECM before falling back to Pollard-Rho-Brent
	// (spec.md §4.6's ecm_threshold).
	ECMCrossoverBits int

	// AlwaysPrimeLimit is the bound below which trial division's result
	// is taken as proof of primality, skipping Miller-Rabin entirely
	// (see DESIGN.md Open Question 2 for the default's derivation).
	AlwaysPrimeLimit uint64
}

// Default returns the tunables this port ships with: Pollard-Rho's
// upstream defaults, the full compiled-in small-prime table, an
// ECM crossover tuned to where ECM's curve overhead starts paying for
// itself against Rho-Brent's simplicity, and always_prime_limit set to
// (p_k)^2 for the largest compiled-in prime p_k, per spec.md §9's
// suggested default.
func Default() Config {
	lastPrime := uint64(smallprimes.Last)
	return Config{
		PollardRho:       pollardrho.DefaultTuning,
		TrialDivisionSize: len(smallprimes.Primes),
		ECMCrossoverBits:  48,
		AlwaysPrimeLimit:  lastPrime * lastPrime,
	}
}

// ECMTuning derives the ecm.Tuning to use for an x of the given bit
// length, delegating to ecm.ForBitLength's piecewise-linear schedule
// (spec.md §4.5's "exact schedule is implementation-defined but must be
// monotonic in bit size").
func (c Config) ECMTuning(bitLen int) ecm.Tuning {
	return ecm.ForBitLength(bitLen)
}
