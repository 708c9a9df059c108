package ecm

import (
	"github.com/mossbach/gofactor/modular"
	"github.com/mossbach/gofactor/montgomery"
)

// buildCurve64 generates a Suyama-parameterized Montgomery curve and its
// starting point from a sigma value, following spec.md §4.5's formulas:
//
//	u = sigma^2 - 5 (mod n)
//	v = 4*sigma (mod n)
//	P.X = u^3, P.Z = v^3
//	s = (v-u)^3 * (3u+v) * inverse(16*u^3*v)  (mod n)
//	a24 = (s+1)/4  (the curve's (a+2)/4 coefficient, held pre-divided)
//
// ok is false when sigma produces a degenerate curve (u, v, or the
// denominator 16*u^3*v is not invertible mod n) — the caller is expected
// to draw a fresh sigma and retry, exactly like a failed curve attempt in
// stage1/stage2 yields no factor rather than an error.
func buildCurve64(f *montgomery.Form64, sigma uint64) (p point64, a24 montgomery.Value64, ok bool) {
	n := f.Modulus()
	sigmaV := f.ConvertIn(sigma % n)

	five := f.ConvertIn(5 % n)
	u := f.Subtract(f.Square(sigmaV), five)
	doubled := f.Add(sigmaV, sigmaV)
	v := f.Add(doubled, doubled) // v = 4*sigma

	u2 := f.Square(u)
	u3 := mul(f, u2, u)
	v2 := f.Square(v)
	v3 := mul(f, v2, v)

	// denominator = 16*u^3*v
	denom := mul(f, u3, v)
	denom = f.Add(denom, denom)
	denom = f.Add(denom, denom)
	denom = f.Add(denom, denom)
	denom = f.Add(denom, denom) // *16 via four doublings

	denomCanonical := f.ConvertOut(denom)
	if denomCanonical == 0 {
		return point64{}, 0, false
	}
	denomInv, gcd := modular.ModInverse(denomCanonical, n)
	if gcd != 1 {
		return point64{}, 0, false
	}
	denomInvV := f.ConvertIn(denomInv)

	vMinusU := f.Subtract(v, u)
	vmu2 := f.Square(vMinusU)
	vmu3 := mul(f, vmu2, vMinusU)
	threeUplusV := f.Add(f.Add(u, f.Add(u, u)), v)

	s := mul(f, vmu3, threeUplusV)
	s = mul(f, s, denomInvV)

	one := f.GetUnityValue().AsValue()
	sPlus1 := f.Add(s, one)

	// a24 = (s+1)/4 = (s+1) * inverse(4). Computing inverse(4) mod n is
	// cheap and exact since n is odd, so no separate degeneracy check is
	// needed here (4 is always invertible mod an odd n).
	fourInv, _ := modular.ModInverse(uint64(4), n)
	fourInvV := f.ConvertIn(fourInv)
	a24 = mul(f, sPlus1, fourInvV)

	return point64{X: u3, Z: v3}, a24, true
}
