package engine

import "math"

// ScavengerOutcome is the ethylene series after scavenging plus capacity bookkeeping.
type ScavengerOutcome struct {
	Ethylene []float64
	// ExhaustedIndex is the first state at which cumulative uptake exceeds capacity, or -1.
	ExhaustedIndex int
	RemainingPPM   float64
}

// ScavengedSeries returns the ethylene concentration left in the headspace if the
// scavenger had unlimited capacity. removed[i] decays the per-step increase at rate kryan.
func ScavengedSeries(ethylene []float64, kryan, stepHours float64) []float64 {
	removed := make([]float64, len(ethylene))
	decay := math.Exp(-kryan * stepHours)
	for i := 1; i < len(ethylene); i++ {
		removed[i] = (ethylene[i] - (ethylene[i-1] - removed[i-1])) * decay
	}
	return removed
}

// ApplyScavenger splits the unscavenged ethylene series at the point where the
// scavenger's capacity (ppm) is used up. Without a scavenger the series is copied as is.
func ApplyScavenger(ethylene []float64, hasScavenger bool, kryan, capacityPPM, stepHours float64) ScavengerOutcome {
	if !hasScavenger || len(ethylene) == 0 {
		final := make([]float64, len(ethylene))
		copy(final, ethylene)
		clampSeries(final)
		return ScavengerOutcome{Ethylene: final, ExhaustedIndex: -1, RemainingPPM: capacityPPM}
	}

	removed := ScavengedSeries(ethylene, kryan, stepHours)
	last := len(ethylene) - 1

	if ethylene[last]-removed[last] <= capacityPPM {
		clampSeries(removed)
		return ScavengerOutcome{
			Ethylene:       removed,
			ExhaustedIndex: -1,
			RemainingPPM:   capacityPPM - (ethylene[last] - removed[last]),
		}
	}

	idx := 0
	for i := range ethylene {
		if ethylene[i]-removed[i] > capacityPPM {
			idx = i
			break
		}
	}

	// cumulative uptake at index 0 is always zero, so idx >= 1 for any positive capacity
	base := 0.0
	if idx > 0 {
		base = removed[idx-1]
	}

	final := make([]float64, len(ethylene))
	copy(final[:idx], removed[:idx])
	for i := idx; i < len(ethylene); i++ {
		final[i] = base + ((ethylene[i] - removed[i]) - capacityPPM)
	}
	clampSeries(final)

	return ScavengerOutcome{Ethylene: final, ExhaustedIndex: idx, RemainingPPM: 0}
}

func clampSeries(s []float64) {
	for i, v := range s {
		if v < 0 {
			s[i] = 0
		}
	}
}
