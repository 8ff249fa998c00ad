package engine

import "github.com/guttosm/mapsim/internal/domain/model"

// Violation codes, in evaluation order.
const (
	CodeHeadspaceVolume     = "headspace_volume"
	CodePerforationCount    = "perforation_count"
	CodePerforationDiameter = "perforation_diameter"
	CodeProduceMass         = "produce_mass"
	CodeStorageTemperature  = "storage_temperature"
	CodeTestDuration        = "test_duration"
	CodeScavengerMass       = "scavenger_mass"
)

// Limits are the upper bounds enforced by Validate.
// There are deliberately no lower bounds besides the headspace minimum.
type Limits struct {
	MinHeadspaceML         float64 `json:"min_headspace_ml"`
	MaxPerforationCount    float64 `json:"max_perforation_count"`
	MaxPerforationDiameter float64 `json:"max_perforation_diameter_micron"`
	MaxProduceMassKg       float64 `json:"max_produce_mass_kg"`
	MaxStorageTemperatureC float64 `json:"max_storage_temperature_c"`
	MaxTestDurationDays    float64 `json:"max_test_duration_days"`
	MaxScavengerMassG      float64 `json:"max_scavenger_mass_g"`
}

// DefaultLimits returns the bounds the model was calibrated for.
func DefaultLimits() Limits {
	return Limits{
		MinHeadspaceML:         100,
		MaxPerforationCount:    200,
		MaxPerforationDiameter: 900,
		MaxProduceMassKg:       6,
		MaxStorageTemperatureC: 30,
		MaxTestDurationDays:    15,
		MaxScavengerMassG:      5,
	}
}

type rule struct {
	code    string
	field   string
	message string
	failed  func(in model.SimulationInput, l Limits) bool
}

var rules = []rule{
	{
		code:    CodeHeadspaceVolume,
		field:   "package_volume_l",
		message: "Headspace volume (V) must be at least 100 mL.",
		failed: func(in model.SimulationInput, l Limits) bool {
			return in.HeadspaceVolumeML() < l.MinHeadspaceML
		},
	},
	{
		code:    CodePerforationCount,
		field:   "perforation_count",
		message: "Number of perforations must be ≤ 200.",
		failed: func(in model.SimulationInput, l Limits) bool {
			return in.PerforationCount > l.MaxPerforationCount
		},
	},
	{
		code:    CodePerforationDiameter,
		field:   "perforation_diameter_micron",
		message: "Perforation diameter must be ≤ 900 microns.",
		failed: func(in model.SimulationInput, l Limits) bool {
			return in.PerforationDiameterMicron > l.MaxPerforationDiameter
		},
	},
	{
		code:    CodeProduceMass,
		field:   "produce_mass_kg",
		message: "Weight of produce must be ≤ 6 kg.",
		failed: func(in model.SimulationInput, l Limits) bool {
			return in.ProduceMassKg > l.MaxProduceMassKg
		},
	},
	{
		code:    CodeStorageTemperature,
		field:   "storage_temperature_c",
		message: "Storage temperature must be ≤ 30°C.",
		failed: func(in model.SimulationInput, l Limits) bool {
			return in.StorageTemperatureC > l.MaxStorageTemperatureC
		},
	},
	{
		code:    CodeTestDuration,
		field:   "test_duration_days",
		message: "Time must be ≤ 15 days.",
		failed: func(in model.SimulationInput, l Limits) bool {
			return in.TestDurationDays > l.MaxTestDurationDays
		},
	},
	{
		code:    CodeScavengerMass,
		field:   "scavenger_mass_g",
		message: "Scavenger mass must be ≤ 5 g.",
		failed: func(in model.SimulationInput, l Limits) bool {
			return in.ScavengerMassG > l.MaxScavengerMassG
		},
	},
}

// Validate checks every rule against the input and returns all violations in rule order.
// The returned slice is never nil; an empty slice means the input is valid.
func Validate(in model.SimulationInput) []model.Violation {
	limits := DefaultLimits()
	violations := make([]model.Violation, 0, len(rules))
	for _, r := range rules {
		if r.failed(in, limits) {
			violations = append(violations, model.Violation{
				Code:    r.code,
				Field:   r.field,
				Message: r.message,
			})
		}
	}
	return violations
}
