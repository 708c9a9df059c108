package ecm

import "github.com/mossbach/gofactor/montgomery"

// point64 is a projective x-only point (X:Z) on a Montgomery curve,
// values held in Montgomery form throughout (spec.md §3's "ECM state...
// Projective point P=(X:Z)").
type point64 struct {
	X, Z montgomery.Value64
}

// mul discards the isZero flag montgomery.Form64.Multiply returns; the
// point-arithmetic formulas below never need it (stage1/stage2's zero
// detection instead happens on the accumulated gcd-candidate values, see
// stage2.go).
func mul(f *montgomery.Form64, a, b montgomery.Value64) montgomery.Value64 {
	v, _ := f.Multiply(a, b)
	return v
}

// xDbl computes 2*P using the standard Montgomery-curve differential
// doubling formulas (Montgomery, "Speeding the Pollard and Elliptic
// Curve Methods of Factorization", 1987), expressed with the form's
// fused operations where they collapse two steps into one reduction.
func xDbl(f *montgomery.Form64, p point64, a24 montgomery.Value64) point64 {
	t1 := f.Square(f.Add(p.X, p.Z))      // (X+Z)^2
	t2 := f.Square(f.Subtract(p.X, p.Z)) // (X-Z)^2
	x2 := mul(f, t1, t2)
	c := f.Subtract(t1, t2) // 4*X*Z
	z2 := f.FMAdd(a24, c, t2)
	z2 = mul(f, c, z2)
	return point64{X: x2, Z: z2}
}

// xAdd computes P+Q given their difference P-Q=diff, using the general
// differential addition formula that does not require diff to be a
// normalized (Z=1) base point. This makes it usable for the
// repeated-small-prime ladder in stage1.go, where the "base" changes
// after every prime's ladder pass.
func xAdd(f *montgomery.Form64, p, q, diff point64) point64 {
	t1 := f.Add(p.X, p.Z)
	t2 := f.Subtract(p.X, p.Z)
	t3 := f.Add(q.X, q.Z)
	t4 := f.Subtract(q.X, q.Z)
	da := mul(f, t1, t4)
	cb := mul(f, t2, t3)
	sum := f.Add(da, cb)
	diffTerm := f.Subtract(da, cb)
	x5 := mul(f, diff.Z, f.Square(sum))
	z5 := mul(f, diff.X, f.Square(diffTerm))
	return point64{X: x5, Z: z5}
}
