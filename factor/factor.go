// Package factor implements the recursive factorization driver: trial
// division, then Miller-Rabin, then Pollard-Rho-Brent or ECM by
// magnitude, recursing on whatever non-trivial divisor is found.
package factor

import (
	"github.com/mossbach/gofactor/config"
	"github.com/mossbach/gofactor/ecm"
	"github.com/mossbach/gofactor/millerrabin"
	"github.com/mossbach/gofactor/modular"
	"github.com/mossbach/gofactor/u128"
)

// Prime is this module's integer domain: unsigned values up to 128 bits
// (spec.md §1/§3). It doubles as the type for any intermediate value
// the driver operates on, not only genuinely prime ones.
type Prime = u128.Uint128

// Sink receives each prime factor as it is discovered, with
// multiplicity, in discovery order — not guaranteed sorted (spec.md §5's
// "Ordering").
type Sink func(p Prime)

// PreconditionError reports a caller contract violation: factorizing a
// value below 2, or exhausting a Collector's declared capacity. Like
// montgomery.PreconditionError and modular.PreconditionError, this is a
// concrete error type signaling a programmer bug, not a runtime
// condition — panic, don't return an error (spec.md §7).
type PreconditionError struct {
	Op  string
	Msg string
}

func (e *PreconditionError) Error() string {
	return "factor: " + e.Op + ": " + e.Msg
}

// Collector is a capacity-checked Sink target: its Sink panics once more
// factors arrive than the capacity declared to NewCollector. NewCollector
// does not check the capacity against any bit width; a capacity of at
// least w holds every factorization of a w-bit number, whose longest
// factor sequence is w twos (spec.md §6).
type Collector struct {
	factors  []Prime
	capacity int
}

// NewCollector allocates a Collector with room for capacity factors.
func NewCollector(capacity int) *Collector {
	return &Collector{factors: make([]Prime, 0, capacity), capacity: capacity}
}

// Sink returns a Sink writing into this Collector, panicking with a
// *PreconditionError if the declared capacity is exceeded.
func (c *Collector) Sink() Sink {
	return func(p Prime) {
		if len(c.factors) >= c.capacity {
			panic(&PreconditionError{Op: "Collector.Sink", Msg: "capacity exceeded"})
		}
		c.factors = append(c.factors, p)
	}
}

// Factors returns every factor collected so far, in discovery order.
func (c *Collector) Factors() []Prime { return c.factors }

// IsPrime decides primality for any value in this module's domain,
// deterministically below 2^64 and probabilistically (error <= 4^-127)
// from 2^64 up to 2^128 (spec.md §6).
func IsPrime(n Prime) bool {
	if n.Fits64() {
		return millerrabin.IsPrime64(n.Lo)
	}
	return millerrabin.IsPrime128(n)
}

// GreatestCommonDivisor returns gcd(a, b), panicking with a
// *modular.PreconditionError if both are zero (spec.md §6).
func GreatestCommonDivisor(a, b Prime) Prime {
	return modular.GCD128(a, b)
}

// Factorize emits every prime factor of n, with multiplicity, into sink,
// using config.Default() and a fresh loc_lcg seeded at 0.
//
// Precondition: n >= 2.
func Factorize(n Prime, sink Sink) {
	FactorizeWithConfig(n, config.Default(), sink)
}

// FactorizeWithConfig is Factorize with an explicit tunable set and a
// fresh loc_lcg seeded at 0.
func FactorizeWithConfig(n Prime, cfg config.Config, sink Sink) {
	FactorizeWithState(n, cfg, ecm.NewLCGState(0), sink)
}

// FactorizeWithState is Factorize with both an explicit tunable set and
// an explicit, caller-owned loc_lcg — the form to use when threading the
// same curve-selection sequence across many calls (spec.md §5's
// "Persistent state").
func FactorizeWithState(n Prime, cfg config.Config, lcg *ecm.LCGState, sink Sink) {
	if n.Cmp(u128.From64(2)) < 0 {
		panic(&PreconditionError{Op: "Factorize", Msg: "n must be >= 2"})
	}
	dispatch(n, cfg, lcg, sink)
}

// GetSingleFactorECM requires n composite and returns a non-trivial
// divisor found by ECM, or (0, false) if every curve in the tuning
// budget failed.
func GetSingleFactorECM(n Prime, cfg config.Config, lcg *ecm.LCGState) (Prime, bool) {
	if n.Cmp(u128.From64(2)) <= 0 {
		panic(&PreconditionError{Op: "GetSingleFactorECM", Msg: "n must exceed 2"})
	}
	return ecmSingleFactor(n, cfg, lcg)
}

// GetSingleFactorPollardRho requires n composite and returns a
// non-trivial divisor found by Pollard-Rho-Brent, or (0, false) if every
// retry in the budget cycled without finding one.
func GetSingleFactorPollardRho(n Prime, cfg config.Config) (Prime, bool) {
	if n.Cmp(u128.From64(2)) <= 0 {
		panic(&PreconditionError{Op: "GetSingleFactorPollardRho", Msg: "n must exceed 2"})
	}
	return pollardRhoSingleFactor(n, cfg)
}
