package ecm

import (
	"github.com/mossbach/gofactor/modular"
	"github.com/mossbach/gofactor/montgomery"
	"github.com/mossbach/gofactor/u128"
)

// buildCurve128 is the 128-bit analogue of buildCurve64.
func buildCurve128(f *montgomery.Form128, sigma u128.Uint128) (p point128, a24 montgomery.Value128, ok bool) {
	n := f.Modulus()
	_, sigmaMod := sigma.DivMod(n)
	sigmaV := f.ConvertIn(sigmaMod)

	_, fiveMod := u128.From64(5).DivMod(n)
	five := f.ConvertIn(fiveMod)
	u := f.Subtract(f.Square(sigmaV), five)
	doubled := f.Add(sigmaV, sigmaV)
	v := f.Add(doubled, doubled)

	u2 := f.Square(u)
	u3 := mul128(f, u2, u)
	v2 := f.Square(v)
	v3 := mul128(f, v2, v)

	denom := mul128(f, u3, v)
	denom = f.Add(denom, denom)
	denom = f.Add(denom, denom)
	denom = f.Add(denom, denom)
	denom = f.Add(denom, denom)

	denomCanonical := f.ConvertOut(denom)
	if denomCanonical.IsZero() {
		return point128{}, montgomery.Value128{}, false
	}
	denomInv, gcd := modular.ModInverse128(denomCanonical, n)
	if gcd.Cmp(u128.One) != 0 {
		return point128{}, montgomery.Value128{}, false
	}
	denomInvV := f.ConvertIn(denomInv)

	vMinusU := f.Subtract(v, u)
	vmu2 := f.Square(vMinusU)
	vmu3 := mul128(f, vmu2, vMinusU)
	threeUplusV := f.Add(f.Add(u, f.Add(u, u)), v)

	s := mul128(f, vmu3, threeUplusV)
	s = mul128(f, s, denomInvV)

	one := f.GetUnityValue().AsValue()
	sPlus1 := f.Add(s, one)

	fourInv, _ := modular.ModInverse128(u128.From64(4), n)
	fourInvV := f.ConvertIn(fourInv)
	a24 = mul128(f, sPlus1, fourInvV)

	return point128{X: u3, Z: v3}, a24, true
}
