package ecm

import (
	"github.com/mossbach/gofactor/montgomery"
	"github.com/mossbach/gofactor/u128"
)

// stage2_128 is the 128-bit analogue of stage2.
func stage2_128(f *montgomery.Form128, q point128, a24 montgomery.Value128, b2 uint32) montgomery.Value128 {
	babySteps := make([]point128, len(stage2Residues))
	for i, r := range stage2Residues {
		babySteps[i] = ladderMul128(f, q, u128.From64(r), a24)
	}

	step := ladderMul128(f, q, u128.From64(60), a24)
	giantPrev2 := step
	giantPrev1 := xDbl128(f, step, a24)

	acc := f.GetUnityValue().AsValue()
	jMax := uint64(b2)/60 + 1

	accumulate := func(giant point128) {
		for _, baby := range babySteps {
			cross1 := mul128(f, giant.X, baby.Z)
			cross2 := mul128(f, baby.X, giant.Z)
			term := f.Subtract(cross1, cross2)
			acc = mul128(f, acc, term)
		}
	}

	accumulate(giantPrev2)
	if jMax >= 2 {
		accumulate(giantPrev1)
	}
	for j := uint64(3); j <= jMax; j++ {
		giant := xAdd128(f, giantPrev1, step, giantPrev2)
		accumulate(giant)
		giantPrev2, giantPrev1 = giantPrev1, giant
	}

	return acc
}
