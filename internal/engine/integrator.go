package engine

import (
	"math"

	"github.com/guttosm/mapsim/internal/domain/model"
)

const (
	// StepHours is the fixed integration step: one second expressed in hours.
	StepHours = 1.0 / 3600

	// InitialOxygen is the ambient O2 mole fraction the package is sealed with.
	InitialOxygen = 0.209
	// RespiratoryQuotient is the CO2 produced per O2 consumed.
	RespiratoryQuotient = 0.85
)

// Series holds the raw integrator state over time.
// Oxygen and CarbonDioxide are mole fractions; Ethylene is in ppm.
type Series struct {
	Oxygen        []float64
	CarbonDioxide []float64
	Ethylene      []float64
}

// StepCount returns the number of integration steps for a duration in days.
// It is negative for negative durations; callers must reject that.
func StepCount(days float64) int {
	return int(days * 24 / StepHours)
}

// TimeAxis returns the time of every state in days. The first state is stamped
// one step in, matching the cumulative-step convention of the model.
func TimeAxis(steps int) []float64 {
	times := make([]float64, steps+1)
	elapsed := 0.0
	for i := range times {
		elapsed += StepHours
		times[i] = elapsed / 24
	}
	return times
}

// Integrate advances the three gas states with explicit forward recurrences.
// Each step reads only the state at i, so the three updates are simultaneous.
func Integrate(in model.SimulationInput, rc model.RateConstants) Series {
	n := rc.Steps + 1
	yo2 := make([]float64, n)
	yco2 := make([]float64, n)
	yc2h4 := make([]float64, n)

	yo2[0] = InitialOxygen

	var (
		v      = rc.HeadspaceVolumeML
		t      = rc.StepHours
		mass   = in.ProduceMassKg
		sealed = in.Sealed()
	)

	for i := 0; i < rc.Steps; i++ {
		o2 := yo2[i]

		respiration := -(rc.OxygenRateConstant * math.Pow(o2, rc.OxygenOrder) * mass * t / v)
		production := rc.EthyleneRateConstant * math.Pow(o2, rc.EthyleneOrder) * mass * t / (v / 1000)

		var o2Trans, co2Trans, c2h4Trans float64
		if !sealed {
			o2Trans = rc.OxygenTransmission * t * (yo2[0] - o2) / v
			co2Trans = rc.CarbonDioxideTransmission * t * (0 - yco2[i]) / v
			c2h4Trans = -(rc.EthyleneTransmission * t * (yc2h4[i] - yc2h4[0])) / v
		}

		yo2[i+1] = clampNonNegative(o2 + (respiration + o2Trans))
		yco2[i+1] = clampNonNegative(yco2[i] + (-respiration*RespiratoryQuotient + co2Trans))
		yc2h4[i+1] = clampNonNegative(yc2h4[i] + (production + c2h4Trans))
	}

	return Series{Oxygen: yo2, CarbonDioxide: yco2, Ethylene: yc2h4}
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
