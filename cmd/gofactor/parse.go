package main

import (
	"fmt"
	"math/big"

	"github.com/mossbach/gofactor/u128"
)

// parseUint128 parses a base-10 string into a u128.Uint128, rejecting
// anything that doesn't fit in 128 bits — the CLI's only numeric input
// format, since spec.md's domain tops out there.
func parseUint128(s string) (u128.Uint128, error) {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return u128.Uint128{}, fmt.Errorf("%q is not a valid unsigned integer", s)
	}
	if z.Sign() < 0 {
		return u128.Uint128{}, fmt.Errorf("%q must not be negative", s)
	}
	if z.BitLen() > 128 {
		return u128.Uint128{}, fmt.Errorf("%q exceeds this module's 128-bit domain", s)
	}
	return u128.FromBig(z), nil
}
