package montgomery

import "github.com/klauspost/cpuid/v2"

// HardwareMulInfo reports whether the host CPU exposes a fast widening
// multiply instruction (BMI2's MULX) that the Go compiler can lower
// math/bits.Mul64 to. This is informational only — Go always emits the
// same math/bits.Mul64 call regardless of this flag — and is surfaced
// through the CLI's --info flag and benchmark labeling per spec.md §9's
// guidance to gate target-specific optimizations behind measured
// conditions rather than hand-written assembly.
func HardwareMulInfo() string {
	if cpuid.CPU.Supports(cpuid.BMI2) {
		return "bmi2-mulx"
	}
	return "portable"
}
