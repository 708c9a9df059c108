package factor

import (
	"math/bits"

	"github.com/mossbach/gofactor/config"
	"github.com/mossbach/gofactor/ecm"
	"github.com/mossbach/gofactor/internal/obslog"
	"github.com/mossbach/gofactor/millerrabin"
	"github.com/mossbach/gofactor/montgomery"
	"github.com/mossbach/gofactor/pollardrho"
	"github.com/mossbach/gofactor/smallprimes"
	"github.com/mossbach/gofactor/trialdiv"
	"github.com/mossbach/gofactor/u128"
)

// dispatch strips every factor of 2 (the Montgomery domain requires an
// odd modulus, spec.md §3), then hands the odd remainder to the 64-bit
// trial-division front end when it fits 64 bits; a wider remainder has
// the tabulated odd primes divided out here before it reaches the core.
func dispatch(x Prime, cfg config.Config, lcg *ecm.LCGState, sink Sink) {
	two := u128.From64(2)
	for x.Cmp(u128.One) != 0 && x.Bit(0) == 0 {
		sink(two)
		x = x.Rsh(1)
	}
	if x.Cmp(u128.One) == 0 {
		return
	}

	if x.Fits64() {
		dispatchTrialDivide64(x.Lo, cfg, lcg, sink)
		return
	}
	for _, p := range smallprimes.OddPrimes {
		pp := u128.From64(uint64(p))
		for {
			q, r := x.DivMod(pp)
			if !r.IsZero() {
				break
			}
			sink(pp)
			x = q
		}
	}
	dispatchAny(x, cfg, lcg, sink)
}

// dispatchTrialDivide64 runs the small-prime sieve once on x, emitting
// every small factor found, then hands the (odd, small-prime-free)
// cofactor to the recursive core. This is the driver's trial-division
// front end (spec.md's control-flow summary); unlike dispatchCore64/128,
// it runs only once per top-level Factorize call, never from recursion,
// since a non-trivial divisor recursion discovers has already passed
// through a sieved cofactor (see dispatchAny).
func dispatchTrialDivide64(x uint64, cfg config.Config, lcg *ecm.LCGState, sink Sink) {
	if x == 1 {
		return
	}
	remaining, factors := trialdiv.Divide(x, nil)
	for _, p := range factors {
		sink(u128.From64(p))
	}
	obslog.TrialDivisionExhausted(remaining, len(factors))
	if remaining == 1 {
		return
	}
	dispatchCore64(remaining, cfg, lcg, sink)
}

// dispatchAny routes a value recursion produced (already odd, already
// known not to need a fresh trial-division pass) to the narrowest core
// that fits it, per spec.md §4.6's "smallest of {32, 64, 128} that holds
// x" (see DESIGN.md Open Question 4 for why there is no separate Form32).
func dispatchAny(x Prime, cfg config.Config, lcg *ecm.LCGState, sink Sink) {
	if x.Fits64() {
		dispatchCore64(x.Lo, cfg, lcg, sink)
		return
	}
	dispatchCore128(x, cfg, lcg, sink)
}

// dispatchCore64 is spec.md §4.6's factorize(iter, mf, x) for a 64-bit-
// or-narrower odd x > 1: emit x directly if it is below the
// always-prime bound, otherwise run Miller-Rabin, otherwise pick ECM or
// Pollard-Rho-Brent by bit length and recurse on the divisor it finds.
func dispatchCore64(x uint64, cfg config.Config, lcg *ecm.LCGState, sink Sink) {
	if x == 1 {
		return
	}
	if x < cfg.AlwaysPrimeLimit {
		obslog.PrimalityVerdict(x, true, true)
		sink(u128.From64(x))
		return
	}
	if millerrabin.IsPrime64(x) {
		obslog.PrimalityVerdict(x, true, false)
		sink(u128.From64(x))
		return
	}
	obslog.PrimalityVerdict(x, false, false)

	factor := findFactor64(x, cfg, lcg)
	quotient := x / factor
	obslog.FactorFound(x, factor, quotient)
	dispatchAny(u128.From64(factor), cfg, lcg, sink)
	dispatchAny(u128.From64(quotient), cfg, lcg, sink)
}

// findFactor64 tries ECM first when x is large enough to justify its
// per-curve overhead, falling back to Pollard-Rho-Brent otherwise or
// when every ECM curve in budget missed (spec.md §4.6's dispatch
// diagram).
func findFactor64(x uint64, cfg config.Config, lcg *ecm.LCGState) uint64 {
	bitLen := bits.Len64(x)
	if bitLen >= cfg.ECMCrossoverBits {
		obslog.AlgorithmSelected(x, bitLen, "ecm", cfg.ECMCrossoverBits)
		f := montgomery.NewForm64(x, tightestClass64(x))
		tuning := cfg.ECMTuning(bitLen)
		if factor, ok := ecm.GetSingleFactor64(f, lcg, tuning); ok {
			return factor
		}
		obslog.CurveRetry(tuning.Curves, tuning.Curves)
	}

	obslog.AlgorithmSelected(x, bitLen, "pollard-rho", cfg.ECMCrossoverBits)
	factor, ok := pollardrho.Factor64(x, cfg.PollardRho)
	if !ok {
		panic(&PreconditionError{Op: "dispatchCore64", Msg: "pollard-rho exhausted its retry budget without finding a factor"})
	}
	return factor
}

// dispatchCore128 is dispatchCore64's analogue for x wider than 64 bits.
func dispatchCore128(x Prime, cfg config.Config, lcg *ecm.LCGState, sink Sink) {
	if x.Cmp(u128.One) == 0 {
		return
	}
	if x.Cmp(u128.From64(cfg.AlwaysPrimeLimit)) < 0 {
		obslog.PrimalityVerdict(x.Lo, true, true)
		sink(x)
		return
	}
	if millerrabin.IsPrime128(x) {
		obslog.PrimalityVerdict(x.Lo, true, false)
		sink(x)
		return
	}
	obslog.PrimalityVerdict(x.Lo, false, false)

	factor := findFactor128(x, cfg, lcg)
	quotient, _ := x.DivMod(factor)
	obslog.FactorFound(x.Lo, factor.Lo, quotient.Lo)
	dispatchAny(factor, cfg, lcg, sink)
	dispatchAny(quotient, cfg, lcg, sink)
}

// findFactor128 is findFactor64's analogue for x wider than 64 bits.
func findFactor128(x Prime, cfg config.Config, lcg *ecm.LCGState) Prime {
	bitLen := x.BitLen()
	if bitLen >= cfg.ECMCrossoverBits {
		f := montgomery.NewForm128(x, tightestClass128(x))
		if factor, ok := ecm.GetSingleFactor128(f, lcg, cfg.ECMTuning(bitLen)); ok {
			return factor
		}
	}

	factor, ok := pollardrho.Factor128(x, cfg.PollardRho)
	if !ok {
		panic(&PreconditionError{Op: "dispatchCore128", Msg: "pollard-rho exhausted its retry budget without finding a factor"})
	}
	return factor
}

// tightestClass64 picks the narrowest RangeClass whose modulus bound
// admits x, per spec.md §4.6's "Build a Montgomery object of the
// tightest variant admitting x".
func tightestClass64(n uint64) montgomery.RangeClass {
	const maxU64 = ^uint64(0)
	switch {
	case n < maxU64/6:
		return montgomery.Sixth
	case n < maxU64/4:
		return montgomery.Quarter
	case n < maxU64/2:
		return montgomery.Half
	default:
		return montgomery.Full
	}
}

// tightestClass128 is tightestClass64's analogue for u128.Uint128.
func tightestClass128(n u128.Uint128) montgomery.RangeClass {
	sixth, _ := u128.Max.DivMod(u128.From64(6))
	quarter, _ := u128.Max.DivMod(u128.From64(4))
	half, _ := u128.Max.DivMod(u128.From64(2))
	switch {
	case n.Cmp(sixth) < 0:
		return montgomery.Sixth
	case n.Cmp(quarter) < 0:
		return montgomery.Quarter
	case n.Cmp(half) < 0:
		return montgomery.Half
	default:
		return montgomery.Full
	}
}

// ecmSingleFactor and pollardRhoSingleFactor back GetSingleFactorECM/
// GetSingleFactorPollardRho, dispatching on width the same way the
// recursive core does.
func ecmSingleFactor(n Prime, cfg config.Config, lcg *ecm.LCGState) (Prime, bool) {
	if n.Fits64() {
		f := montgomery.NewForm64(n.Lo, tightestClass64(n.Lo))
		factor, ok := ecm.GetSingleFactor64(f, lcg, cfg.ECMTuning(bits.Len64(n.Lo)))
		return u128.From64(factor), ok
	}
	f := montgomery.NewForm128(n, tightestClass128(n))
	return ecm.GetSingleFactor128(f, lcg, cfg.ECMTuning(n.BitLen()))
}

func pollardRhoSingleFactor(n Prime, cfg config.Config) (Prime, bool) {
	if n.Fits64() {
		factor, ok := pollardrho.Factor64(n.Lo, cfg.PollardRho)
		return u128.From64(factor), ok
	}
	return pollardrho.Factor128(n, cfg.PollardRho)
}
