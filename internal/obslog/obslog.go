// Package obslog is the structured-logging edge for the factorization
// driver and CLI. Core packages (modular, montgomery, millerrabin,
// pollardrho, ecm) stay free of logging entirely, the same way
// arithmetic-vault keeps its Montgomery core free of anything but
// arithmetic — this package is where dispatch decisions become visible.
package obslog

import log "github.com/sirupsen/logrus"

// TrialDivisionExhausted records that the small-prime sweep left a
// cofactor behind for Miller-Rabin to examine.
func TrialDivisionExhausted(remaining uint64, smallFactors int) {
	log.WithFields(log.Fields{
		"remaining":    remaining,
		"smallFactors": smallFactors,
	}).Debug("trial division exhausted")
}

// PrimalityVerdict records a Miller-Rabin (or always_prime_limit)
// verdict for x.
func PrimalityVerdict(x uint64, prime bool, byTrialLimit bool) {
	log.WithFields(log.Fields{
		"x":            x,
		"prime":        prime,
		"byTrialLimit": byTrialLimit,
	}).Debug("primality verdict")
}

// AlgorithmSelected records which factor-finder the driver chose for a
// composite cofactor and why.
func AlgorithmSelected(x uint64, bitLen int, algorithm string, crossoverBits int) {
	log.WithFields(log.Fields{
		"x":             x,
		"bitLen":        bitLen,
		"algorithm":     algorithm,
		"crossoverBits": crossoverBits,
	}).Infof("selected %s for %d-bit cofactor", algorithm, bitLen)
}

// CurveRetry records that the ECM curves tried (curveIndex of
// curvesBudget) found no factor. The driver calls it once, after the
// whole curve budget is spent, before falling back to Pollard-Rho-Brent.
func CurveRetry(curveIndex int, curvesBudget int) {
	log.WithFields(log.Fields{
		"curve":  curveIndex,
		"budget": curvesBudget,
	}).Debug("ecm curve found no factor")
}

// CycleRetry records a Pollard-Rho-Brent trial that cycled without
// finding a factor, before the driver retries with a new constant.
func CycleRetry(attempt int, maxRetries int) {
	log.WithFields(log.Fields{
		"attempt": attempt,
		"max":     maxRetries,
	}).Debug("pollard-rho trial cycled")
}

// FactorFound records a non-trivial divisor the driver is about to
// recurse on.
func FactorFound(x uint64, factor uint64, quotient uint64) {
	log.WithFields(log.Fields{
		"x":        x,
		"factor":   factor,
		"quotient": quotient,
	}).Debugf("factor found: %d = %d * %d", x, factor, quotient)
}
