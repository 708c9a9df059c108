package ecm

import (
	"github.com/mossbach/gofactor/montgomery"
	"github.com/mossbach/gofactor/smallprimes"
	"github.com/mossbach/gofactor/u128"
)

// stage1Multiply128 is the 128-bit analogue of stage1Multiply.
func stage1Multiply128(f *montgomery.Form128, p point128, a24 montgomery.Value128, b1 uint32) point128 {
	cur := p
	for _, prime := range smallprimes.UpTo(b1) {
		pk := uint64(prime)
		for pk*uint64(prime) <= uint64(b1) {
			pk *= uint64(prime)
		}
		cur = ladderMul128(f, cur, u128.From64(pk), a24)
	}
	return cur
}
