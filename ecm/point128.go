package ecm

import (
	"github.com/mossbach/gofactor/montgomery"
	"github.com/mossbach/gofactor/u128"
)

// point128 is the 128-bit analogue of point64.
type point128 struct {
	X, Z montgomery.Value128
}

func mul128(f *montgomery.Form128, a, b montgomery.Value128) montgomery.Value128 {
	v, _ := f.Multiply(a, b)
	return v
}

func xDbl128(f *montgomery.Form128, p point128, a24 montgomery.Value128) point128 {
	t1 := f.Square(f.Add(p.X, p.Z))
	t2 := f.Square(f.Subtract(p.X, p.Z))
	x2 := mul128(f, t1, t2)
	c := f.Subtract(t1, t2)
	z2 := f.FMAdd(a24, c, t2)
	z2 = mul128(f, c, z2)
	return point128{X: x2, Z: z2}
}

func xAdd128(f *montgomery.Form128, p, q, diff point128) point128 {
	t1 := f.Add(p.X, p.Z)
	t2 := f.Subtract(p.X, p.Z)
	t3 := f.Add(q.X, q.Z)
	t4 := f.Subtract(q.X, q.Z)
	da := mul128(f, t1, t4)
	cb := mul128(f, t2, t3)
	sum := f.Add(da, cb)
	diffTerm := f.Subtract(da, cb)
	x5 := mul128(f, diff.Z, f.Square(sum))
	z5 := mul128(f, diff.X, f.Square(diffTerm))
	return point128{X: x5, Z: z5}
}

// ladderMul128 is the 128-bit analogue of ladderMul64.
func ladderMul128(f *montgomery.Form128, p point128, k u128.Uint128, a24 montgomery.Value128) point128 {
	if k.IsZero() {
		return point128{X: f.GetUnityValue().AsValue(), Z: f.GetZeroValue().AsValue()}
	}
	r0 := p
	r1 := xDbl128(f, p, a24)

	for bit := k.BitLen() - 2; bit >= 0; bit-- {
		if k.Bit(uint(bit)) == 0 {
			r1 = xAdd128(f, r0, r1, p)
			r0 = xDbl128(f, r0, a24)
		} else {
			r0 = xAdd128(f, r0, r1, p)
			r1 = xDbl128(f, r1, a24)
		}
	}
	return r0
}
