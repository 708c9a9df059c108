package ecm

import (
	"github.com/mossbach/gofactor/montgomery"
	"github.com/mossbach/gofactor/smallprimes"
)

// ladderMul64 computes k*P via the standard Montgomery ladder, which
// needs only xDbl/xAdd and is constant-time in the number of bits of k
// (irrelevant here, but it is also the simplest correct way to multiply
// an x-only point by a scalar, which is why it's used for every
// prime-power step in stage 1 below).
func ladderMul64(f *montgomery.Form64, p point64, k uint64, a24 montgomery.Value64) point64 {
	if k == 0 {
		return point64{X: f.GetUnityValue().AsValue(), Z: f.GetZeroValue().AsValue()}
	}
	r0 := p
	r1 := xDbl(f, p, a24)

	for bit := bitLen(k) - 2; bit >= 0; bit-- {
		if (k>>uint(bit))&1 == 0 {
			r1 = xAdd(f, r0, r1, p)
			r0 = xDbl(f, r0, a24)
		} else {
			r0 = xAdd(f, r0, r1, p)
			r1 = xDbl(f, r1, a24)
		}
	}
	return r0
}

func bitLen(k uint64) int {
	n := 0
	for k > 0 {
		n++
		k >>= 1
	}
	return n
}

// stage1Multiply runs ECM stage 1: multiply the starting point by a
// smooth scalar, one prime power at a time, rather than building the
// full product (which would overflow 64 bits long before B1 reaches the
// schedule's larger anchors). The primes come from smallprimes.UpTo(B1),
// so only the tabulated primes (those below 256) are used: for B1 above
// 251 the scalar is not fully B1-smooth, since primes between 251 and B1
// are left out. Each ladder computes p^e*(running point) for the largest
// e with p^e <= B1 — algebraically identical to one ladder over the
// product, since scalar multiplication of the point group is associative
// and commutative.
func stage1Multiply(f *montgomery.Form64, p point64, a24 montgomery.Value64, b1 uint32) point64 {
	cur := p
	for _, prime := range smallprimes.UpTo(b1) {
		pk := uint64(prime)
		for pk*uint64(prime) <= uint64(b1) {
			pk *= uint64(prime)
		}
		cur = ladderMul64(f, cur, pk, a24)
	}
	return cur
}
