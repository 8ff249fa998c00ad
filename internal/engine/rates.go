package engine

import (
	"math"

	"github.com/guttosm/mapsim/internal/domain/model"
)

// Physical constants of the respiration, transmission and scavenger models.
const (
	GasConstant  = 8.314472 // J mol^-1 K^-1
	KelvinOffset = 273.15

	oxygenRateRef      = 5.96e8 // mL kg^-1 h^-1
	oxygenActivation   = 36275.0
	oxygenOrder        = 0.75
	ethyleneRateRef    = 1.19e12 // µL kg^-1 h^-1
	ethyleneActivation = 63836.0
	ethyleneOrder      = 0.93

	scavengerRateRef     = 0.695197
	scavengerActivation  = 22871.97195
	scavengerRefTempK    = 294.81
	scavengerCapacityRef = 2.842475151 // L kg^-1 of scavenger

	// AirVelocity is the assumed air velocity over the film, cm s^-1.
	AirVelocity = 7.2
	// FilmThickness is the package wall thickness, cm.
	FilmThickness = 0.003

	// perforationScale converts the diameter in microns to the correlation's length unit.
	perforationScale = 10000.0
	// co2ToO2Transmission is the fixed CO2/O2 transmission ratio.
	co2ToO2Transmission = 3.0
)

// ComputeRates derives the kinetic constants, scavenger capacity and perforation
// transmission rates for a validated input.
func ComputeRates(in model.SimulationInput) model.RateConstants {
	temp := in.StorageTemperatureC + KelvinOffset
	headspace := in.HeadspaceVolumeML()
	diameter := in.PerforationDiameterMicron / perforationScale

	rc := model.RateConstants{
		TemperatureK:          temp,
		HeadspaceVolumeML:     headspace,
		OxygenRateConstant:    arrhenius(oxygenRateRef, oxygenActivation, temp),
		OxygenOrder:           oxygenOrder,
		EthyleneRateConstant:  arrhenius(ethyleneRateRef, ethyleneActivation, temp),
		EthyleneOrder:         ethyleneOrder,
		ScavengerRateConstant: scavengerRateRef * math.Exp(-(scavengerActivation/GasConstant)*(1/temp-1/scavengerRefTempK)),
		ScavengerCapacityPPM:  scavengerCapacityRef * (in.ScavengerMassG / 1000) * 1e6 / (headspace / 1000),
		PerforationDiameter:   diameter,
		StepHours:             StepHours,
		Steps:                 StepCount(in.TestDurationDays),
	}

	if in.Sealed() {
		return rc
	}

	ethylene := ethyleneTransmission(temp, diameter)
	oxygen := oxygenTransmission(temp, diameter)
	rc.EthyleneTransmission = in.PerforationCount * ethylene
	rc.OxygenTransmission = in.PerforationCount * oxygen
	rc.CarbonDioxideTransmission = co2ToO2Transmission * rc.OxygenTransmission
	return rc
}

func arrhenius(ref, activation, temp float64) float64 {
	return ref * math.Exp(-(activation / (GasConstant * temp)))
}

// perforationArea is the cross-section of one perforation.
func perforationArea(diameter float64) float64 {
	return math.Pi / 4 * diameter * diameter
}

// ethyleneTransmission is the per-perforation ethylene exchange rate per hour.
func ethyleneTransmission(temp, diameter float64) float64 {
	diffusive := (2.4382e-6 * math.Pow(temp, 1.81)) /
		(math.Pow(AirVelocity, 0.05) * math.Pow(FilmThickness, 0.25) * math.Pow(diameter, 0.8))
	return (0.04*AirVelocity + diffusive) * perforationArea(diameter) * 3600
}

// oxygenTransmission is the per-perforation oxygen exchange rate per hour.
func oxygenTransmission(temp, diameter float64) float64 {
	return (math.Pow(temp, 1.724) * 1.00909e-5 / diameter) * perforationArea(diameter) * 3600
}
