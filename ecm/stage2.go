package ecm

import "github.com/mossbach/gofactor/montgomery"

// stage2Residues are the residues mod 60 coprime to 2, 3 and 5 — the
// standard baby-step table (spec.md §4.5's "odd residues mod 60"), which
// lets stage 2 skip every prime that trial division against 2, 3, 5
// would already have eliminated.
var stage2Residues = [16]uint64{1, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 49, 53, 59}

// stage2 runs the baby-step/giant-step continuation described in spec.md
// §4.5: having multiplied the curve's starting point through every
// B1-smooth scalar in stage 1 to get q, it looks for a prime factor p of
// n in the range (B1, B2] by testing whether q's order modulo p divides
// some 60*j + r for the tabulated residues r and giant steps j. Points
// that agree on their x-coordinate modulo a nontrivial factor of n make
// the cross-multiplication term Pa.X*Pb.Z - Pb.X*Pa.Z divisible by that
// factor; gcd-ing the accumulated product of all such terms against n at
// the end recovers it in one gcd call instead of one per candidate.
func stage2(f *montgomery.Form64, q point64, a24 montgomery.Value64, b2 uint32) montgomery.Value64 {
	babySteps := make([]point64, len(stage2Residues))
	for i, r := range stage2Residues {
		babySteps[i] = ladderMul64(f, q, r, a24)
	}

	step := ladderMul64(f, q, 60, a24)
	giantPrev2 := step
	giantPrev1 := xDbl(f, step, a24)

	acc := f.GetUnityValue().AsValue()
	jMax := uint64(b2)/60 + 1

	accumulate := func(giant point64) {
		for _, baby := range babySteps {
			cross1 := mul(f, giant.X, baby.Z)
			cross2 := mul(f, baby.X, giant.Z)
			term := f.Subtract(cross1, cross2)
			acc = mul(f, acc, term)
		}
	}

	accumulate(giantPrev2)
	if jMax >= 2 {
		accumulate(giantPrev1)
	}
	for j := uint64(3); j <= jMax; j++ {
		giant := xAdd(f, giantPrev1, step, giantPrev2)
		accumulate(giant)
		giantPrev2, giantPrev1 = giantPrev1, giant
	}

	return acc
}
