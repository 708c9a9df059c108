// Package ecmstats summarizes curve-count and success-rate distributions
// observed while running ECM across a benchmark corpus. It sits outside
// the factoring hot path entirely — nothing in package ecm imports it —
// and exists only to support a benchmark harness's reporting, per
// SPEC_FULL.md §4.5.
package ecmstats

import "github.com/montanaflynn/stats"

// Trial records how many curves GetSingleFactor64 tried before either
// succeeding or exhausting its budget on one input.
type Trial struct {
	CurvesTried int
	Found       bool
}

// Summary aggregates a batch of Trial observations.
type Summary struct {
	Count        int
	SuccessRate  float64
	MeanCurves   float64
	MedianCurves float64
	StdDevCurves float64
}

// Summarize computes aggregate statistics over trials. Returns the zero
// Summary if trials is empty.
func Summarize(trials []Trial) (Summary, error) {
	if len(trials) == 0 {
		return Summary{}, nil
	}

	curveCounts := make(stats.Float64Data, len(trials))
	successes := 0
	for i, t := range trials {
		curveCounts[i] = float64(t.CurvesTried)
		if t.Found {
			successes++
		}
	}

	mean, err := curveCounts.Mean()
	if err != nil {
		return Summary{}, err
	}
	median, err := curveCounts.Median()
	if err != nil {
		return Summary{}, err
	}
	stdDev, err := curveCounts.StandardDeviation()
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Count:        len(trials),
		SuccessRate:  float64(successes) / float64(len(trials)),
		MeanCurves:   mean,
		MedianCurves: median,
		StdDevCurves: stdDev,
	}, nil
}
