package ecm

// Tuning is the piecewise-linear schedule spec.md §4.5 requires: curve
// count, B1/B2 smoothness bounds, and the giant-step range all vary
// (monotonically) with the bit length of the number being factored. The
// exact schedule is implementation-defined; this one is a simple two-point
// linear interpolation per field, which keeps small inputs cheap and lets
// larger inputs spend more curves and a higher B1 before giving up.
type Tuning struct {
	Curves int
	B1     uint32
	B2     uint32
}

// point is one (bitLength, Tuning) anchor of the schedule; ForBitLength
// interpolates linearly between the two bracketing anchors.
type point struct {
	bits   int
	tuning Tuning
}

var schedule = []point{
	{bits: 20, tuning: Tuning{Curves: 4, B1: 200, B2: 2000}},
	{bits: 30, tuning: Tuning{Curves: 8, B1: 500, B2: 10000}},
	{bits: 40, tuning: Tuning{Curves: 16, B1: 2000, B2: 50000}},
	{bits: 50, tuning: Tuning{Curves: 24, B1: 11000, B2: 500000}},
	{bits: 60, tuning: Tuning{Curves: 32, B1: 50000, B2: 3000000}},
	{bits: 80, tuning: Tuning{Curves: 48, B1: 250000, B2: 15000000}},
	{bits: 128, tuning: Tuning{Curves: 64, B1: 1000000, B2: 50000000}},
}

// ForBitLength returns the tuning for a number of the given bit length,
// clamping to the schedule's endpoints and linearly interpolating
// between the two bracketing anchor points otherwise.
func ForBitLength(bitLen int) Tuning {
	if bitLen <= schedule[0].bits {
		return schedule[0].tuning
	}
	last := schedule[len(schedule)-1]
	if bitLen >= last.bits {
		return last.tuning
	}
	for i := 1; i < len(schedule); i++ {
		lo, hi := schedule[i-1], schedule[i]
		if bitLen <= hi.bits {
			frac := float64(bitLen-lo.bits) / float64(hi.bits-lo.bits)
			return Tuning{
				Curves: lerpInt(lo.tuning.Curves, hi.tuning.Curves, frac),
				B1:     uint32(lerpInt(int(lo.tuning.B1), int(hi.tuning.B1), frac)),
				B2:     uint32(lerpInt(int(lo.tuning.B2), int(hi.tuning.B2), frac)),
			}
		}
	}
	return last.tuning
}

func lerpInt(a, b int, frac float64) int {
	return a + int(float64(b-a)*frac)
}
