// Package engine implements the modified-atmosphere package model.
//
// A run validates the input, derives rate constants, integrates O2, CO2 and
// ethylene with a fixed one-second explicit step, and finally passes the ethylene
// series through the scavenger capacity model. Run is a pure function: every call
// allocates its own working arrays and nothing is shared between calls.
//
// Inputs are only bounded from above (plus the headspace minimum). Negative masses,
// volumes or durations are not rejected as violations; the ones the physics cannot
// evaluate surface as ErrComputationFault instead.
package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/guttosm/mapsim/internal/domain/model"
)

// ErrComputationFault is returned when a valid input still cannot be simulated.
var ErrComputationFault = errors.New("simulation computation fault")

// Outcome is the result of a run. Exactly one of Violations (non-empty) or
// Result (non-nil) is set when the run returns no error.
type Outcome struct {
	Violations []model.Violation
	Result     *model.SimulationResult
}

// Valid reports whether the input passed validation.
func (o Outcome) Valid() bool {
	return len(o.Violations) == 0
}

// Run validates and simulates a single package.
func Run(in model.SimulationInput) (out Outcome, err error) {
	out.Violations = Validate(in)
	if len(out.Violations) > 0 {
		return out, nil
	}

	defer func() {
		if r := recover(); r != nil {
			out = Outcome{Violations: []model.Violation{}}
			err = fmt.Errorf("%w: %v", ErrComputationFault, r)
		}
	}()

	result, err := simulate(in)
	if err != nil {
		return Outcome{Violations: out.Violations}, err
	}
	out.Result = result
	return out, nil
}

func simulate(in model.SimulationInput) (*model.SimulationResult, error) {
	if err := checkFinite("input", in.ProduceMassKg, in.StorageTemperatureC, in.PerforationDiameterMicron,
		in.PerforationCount, in.ScavengerMassG, in.PackageVolumeL, in.TestDurationDays); err != nil {
		return nil, err
	}

	rc := ComputeRates(in)
	if rc.HeadspaceVolumeML == 0 {
		return nil, fmt.Errorf("%w: zero headspace volume", ErrComputationFault)
	}
	if rc.Steps < 0 {
		return nil, fmt.Errorf("%w: negative step count %d", ErrComputationFault, rc.Steps)
	}
	if err := checkFinite("rate constants", rc.OxygenRateConstant, rc.EthyleneRateConstant, rc.ScavengerRateConstant,
		rc.ScavengerCapacityPPM, rc.OxygenTransmission, rc.CarbonDioxideTransmission, rc.EthyleneTransmission); err != nil {
		return nil, err
	}

	series := Integrate(in, rc)
	scavenged := ApplyScavenger(series.Ethylene, in.HasScavenger(), rc.ScavengerRateConstant, rc.ScavengerCapacityPPM, rc.StepHours)
	times := TimeAxis(rc.Steps)

	result := &model.SimulationResult{
		TimesInDays:                   times,
		OxygenPct:                     percent(series.Oxygen),
		CarbonDioxidePct:              percent(series.CarbonDioxide),
		EthylenePPM:                   scavenged.Ethylene,
		UnscavengedEthylenePPM:        series.Ethylene,
		RemainingScavengerCapacityPPM: scavenged.RemainingPPM,
		MaxScavengerCapacityPPM:       rc.ScavengerCapacityPPM,
		XLimitDays:                    in.TestDurationDays,
		Rates:                         rc,
	}
	if scavenged.ExhaustedIndex >= 0 && scavenged.ExhaustedIndex < len(times) {
		day := times[scavenged.ExhaustedIndex]
		result.ScavengerExhaustedDay = &day
	}

	for name, s := range map[string][]float64{
		"oxygen":         result.OxygenPct,
		"carbon dioxide": result.CarbonDioxidePct,
		"ethylene":       result.EthylenePPM,
	} {
		if err := checkFinite(name+" series", s...); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func percent(fractions []float64) []float64 {
	out := make([]float64, len(fractions))
	for i, f := range fractions {
		out[i] = f * 100
	}
	return out
}

func checkFinite(what string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite %s", ErrComputationFault, what)
		}
	}
	return nil
}
