// Package model defines the core domain entities for the atmosphere simulator.
package model

// ProduceDensityKgPerML converts produce mass to the volume it occupies in the package.
const ProduceDensityKgPerML = 0.001

// SimulationInput is the parameter record of a single package simulation.
// It is a comparable value type, so it can key result caches directly.
//
// @Description Package, produce and storage parameters for one simulation run
type SimulationInput struct {
	// ProduceMassKg is the mass of stored produce (Wp), kg.
	ProduceMassKg float64 `json:"produce_mass_kg" bson:"produce_mass_kg" yaml:"produce_mass_kg" example:"2"`
	// StorageTemperatureC is the ambient storage temperature, °C.
	StorageTemperatureC float64 `json:"storage_temperature_c" bson:"storage_temperature_c" yaml:"storage_temperature_c" example:"5"`
	// PerforationDiameterMicron is the diameter of each perforation, µm. 0 means a sealed package.
	PerforationDiameterMicron float64 `json:"perforation_diameter_micron" bson:"perforation_diameter_micron" yaml:"perforation_diameter_micron" example:"300"`
	// PerforationCount is the number of perforations.
	PerforationCount float64 `json:"perforation_count" bson:"perforation_count" yaml:"perforation_count" example:"4"`
	// ScavengerMassG is the mass of ethylene scavenger, g. 0 means no scavenger.
	ScavengerMassG float64 `json:"scavenger_mass_g" bson:"scavenger_mass_g" yaml:"scavenger_mass_g" example:"1"`
	// PackageVolumeL is the total package volume (Vl), L.
	PackageVolumeL float64 `json:"package_volume_l" bson:"package_volume_l" yaml:"package_volume_l" example:"3"`
	// TestDurationDays is the simulated duration, days.
	TestDurationDays float64 `json:"test_duration_days" bson:"test_duration_days" yaml:"test_duration_days" example:"10"`
} // @name SimulationInput

// HeadspaceVolumeML returns the gas-filled volume not occupied by produce, mL.
func (in SimulationInput) HeadspaceVolumeML() float64 {
	return in.PackageVolumeL*1000 - in.ProduceMassKg/ProduceDensityKgPerML
}

// Sealed reports whether the package has no effective perforations.
func (in SimulationInput) Sealed() bool {
	return in.PerforationDiameterMicron <= 0
}

// HasScavenger reports whether an ethylene scavenger is present.
func (in SimulationInput) HasScavenger() bool {
	return in.ScavengerMassG > 0
}

// Violation is a single failed input rule.
//
// @Description Input rule violation
type Violation struct {
	// Code is a stable machine-readable rule identifier.
	Code string `json:"code" example:"storage_temperature"`
	// Field is the input field the rule applies to.
	Field string `json:"field" example:"storage_temperature_c"`
	// Message is the human-readable English description.
	Message string `json:"message" example:"Storage temperature must be ≤ 30°C."`
} // @name Violation

// RateConstants bundles the constants derived from an input before integration.
//
// @Description Derived kinetic and transmission constants
type RateConstants struct {
	TemperatureK              float64 `json:"temperature_k"`
	HeadspaceVolumeML         float64 `json:"headspace_volume_ml"`
	OxygenRateConstant        float64 `json:"ko2"`
	OxygenOrder               float64 `json:"ao2"`
	EthyleneRateConstant      float64 `json:"kc2h4"`
	EthyleneOrder             float64 `json:"ac2h4"`
	ScavengerRateConstant     float64 `json:"kryan"`
	ScavengerCapacityPPM      float64 `json:"qryanmax_ppm"`
	PerforationDiameter       float64 `json:"perforation_diameter"`
	OxygenTransmission        float64 `json:"total_o2_transmission"`
	CarbonDioxideTransmission float64 `json:"total_co2_transmission"`
	EthyleneTransmission      float64 `json:"total_c2h4_transmission"`
	StepHours                 float64 `json:"step_hours"`
	Steps                     int     `json:"steps"`
} // @name RateConstants

// SimulationResult is the complete output of a successful simulation.
// All series share the same length (steps + 1).
type SimulationResult struct {
	TimesInDays            []float64 `json:"times_in_days"`
	OxygenPct              []float64 `json:"oxygen_pct"`
	CarbonDioxidePct       []float64 `json:"carbon_dioxide_pct"`
	EthylenePPM            []float64 `json:"ethylene_ppm"`
	UnscavengedEthylenePPM []float64 `json:"unscavenged_ethylene_ppm"`

	// ScavengerExhaustedDay is nil when the scavenger never runs out or is absent.
	ScavengerExhaustedDay         *float64 `json:"scavenger_exhausted_day"`
	RemainingScavengerCapacityPPM float64  `json:"remaining_scavenger_capacity_ppm"`
	MaxScavengerCapacityPPM       float64  `json:"max_scavenger_capacity_ppm"`
	XLimitDays                    float64  `json:"x_limit_days"`

	Rates RateConstants `json:"rates"`
}

// Len returns the number of time points.
func (r *SimulationResult) Len() int {
	return len(r.TimesInDays)
}
