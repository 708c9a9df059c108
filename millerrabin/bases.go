// Package millerrabin implements the Miller-Rabin primality test and its
// witness-base selection tables (spec.md §4.3).
package millerrabin

import "github.com/mossbach/gofactor/u128"

// threshold is one row of a deterministic witness-base table: bases is
// provably sufficient to decide primality for every n < limit.
//
// The original C++ source (hurchalla/factoring) selects a base set via a
// cheap hash of n's low bits indexing a compile-time-constant table, with
// table sizes up to 448KB for the 64-bit/2-base case (spec.md §4.3, §9).
// This port instead dispatches on an ordered threshold table using the
// independently published and exhaustively verified deterministic
// witness sets (Pomerance/Selfridge/Wagstaff and Jaeschke's results, as
// tabulated on the deterministic-variant lists used throughout the
// primality-testing literature). The linear threshold scan is O(table
// size) instead of O(1), but table sizes here are small (at most a dozen rows)
// so the difference is immaterial; it sidesteps needing to reproduce
// hurchalla's exact hash function and its megabyte-scale verified data,
// which original_source/ does not ship in a form this port could
// losslessly re-embed. See DESIGN.md.
type threshold struct {
	limit uint64
	bases []uint64
}

// thresholds64 covers every n < 2^64, named by the spec.md §4.3 bit-range
// rows they correspond to.
var thresholds64 = []threshold{
	{limit: 2047, bases: []uint64{2}},                                // MillerRabinBases16_1-equivalent
	{limit: 1373653, bases: []uint64{2, 3}},                          // MillerRabinBases30_1-equivalent
	{limit: 9080191, bases: []uint64{31, 73}},                        // MillerRabinBases30_2-equivalent
	{limit: 25326001, bases: []uint64{2, 3, 5}},                      // MillerRabinBases31_1-equivalent
	{limit: 3215031751, bases: []uint64{2, 3, 5, 7}},                 // MillerRabinBases31_2-equivalent
	{limit: 4759123141, bases: []uint64{2, 7, 61}},                   // MillerRabinBases32_3: constant {2,7,61}
	{limit: 1122004669633, bases: []uint64{2, 13, 23, 1662803}},      // MillerRabinBases44_3-equivalent
	{limit: 2152302898747, bases: []uint64{2, 3, 5, 7, 11}},          // MillerRabinBases62_5-equivalent
	{limit: 3474749660383, bases: []uint64{2, 3, 5, 7, 11, 13}},      // MillerRabinBases63_5-equivalent
	{limit: 341550071728321, bases: []uint64{2, 3, 5, 7, 11, 13, 17}}, // MillerRabinBases62_6-equivalent (not a bit-range match, wide margin)
	{limit: 3825123056546413051, bases: []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23}}, // MillerRabinBases64_6-equivalent
}

// bases64Full7 is the constant 7-base witness set deterministic for all
// n < 2^64 — the entire uint64 range — matching spec.md §4.3's "7-base is
// constant (no hash)" row.
var bases64Full7 = []uint64{2, 325, 9375, 28178, 450775, 9780504, 1795265022}

// basesConstant323 is the 3-base constant {2,7,61}, kept as a named
// (unexported) variable since spec.md calls it out explicitly as
// hash-free; the thresholds64 row for it carries its own copy.
var basesConstant323 = []uint64{2, 7, 61}

// basesFor64 returns the smallest proven-sufficient witness set for n,
// deterministic for every n < 2^64.
func basesFor64(n uint64) []uint64 {
	for _, row := range thresholds64 {
		if n < row.limit {
			return row.bases
		}
	}
	return bases64Full7
}

// bases128 is the 127-odd-primes probabilistic witness set for n in
// [2^64, 2^128) (spec.md §4.3's 128-bit row). Error probability per
// composite is <= 4^-127, per spec.md §4.3/§6.
var bases128 = [127]uint64{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139, 149,
	151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223, 227,
	229, 233, 239, 241, 251, 257, 263, 269, 271, 277, 281, 283, 293, 307,
	311, 313, 317, 331, 337, 347, 349, 353, 359, 367, 373, 379, 383, 389,
	397, 401, 409, 419, 421, 431, 433, 439, 443, 449, 457, 461, 463, 467,
	479, 487, 491, 499, 503, 509, 521, 523, 541, 547, 557, 563, 569, 571,
	577, 587, 593, 599, 601, 607, 613, 617, 619, 631, 641, 643, 647, 653,
	659, 661, 673, 677, 683, 691, 701, 709, 719,
}

// bases128For returns the 127-base probabilistic witness set, widened to
// u128.Uint128 for use against a Form128 modulus.
func bases128For() []u128.Uint128 {
	out := make([]u128.Uint128, len(bases128))
	for i, b := range bases128 {
		out[i] = u128.From64(b)
	}
	return out
}
