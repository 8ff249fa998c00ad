// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/i18n"
)

// SimulateRequest is the JSON body of the simulate endpoints.
//
// All seven parameters are required. Pointers distinguish a missing field
// from an explicit zero (zero diameter means a sealed package, zero scavenger
// mass means no scavenger).
//
// @Description Package, produce and storage parameters for one simulation run
// @Example {"produce_mass_kg": 2, "storage_temperature_c": 5, "perforation_diameter_micron": 300, "perforation_count": 4, "scavenger_mass_g": 1, "package_volume_l": 3, "test_duration_days": 10}
type SimulateRequest struct {
	ProduceMassKg             *float64 `json:"produce_mass_kg" binding:"required" example:"2"`
	StorageTemperatureC       *float64 `json:"storage_temperature_c" binding:"required" example:"5"`
	PerforationDiameterMicron *float64 `json:"perforation_diameter_micron" binding:"required" example:"300"`
	PerforationCount          *float64 `json:"perforation_count" binding:"required" example:"4"`
	ScavengerMassG            *float64 `json:"scavenger_mass_g" binding:"required" example:"1"`
	PackageVolumeL            *float64 `json:"package_volume_l" binding:"required" example:"3"`
	TestDurationDays          *float64 `json:"test_duration_days" binding:"required" example:"10"`
} // @name SimulateRequest

// Input converts the request to the engine's input record.
// Missing fields read as zero; callers bind with validation first.
func (r *SimulateRequest) Input() model.SimulationInput {
	return model.SimulationInput{
		ProduceMassKg:             deref(r.ProduceMassKg),
		StorageTemperatureC:       deref(r.StorageTemperatureC),
		PerforationDiameterMicron: deref(r.PerforationDiameterMicron),
		PerforationCount:          deref(r.PerforationCount),
		ScavengerMassG:            deref(r.ScavengerMassG),
		PackageVolumeL:            deref(r.PackageVolumeL),
		TestDurationDays:          deref(r.TestDurationDays),
	}
}

// NewSimulateRequest builds a request from an input record.
func NewSimulateRequest(in model.SimulationInput) SimulateRequest {
	return SimulateRequest{
		ProduceMassKg:             &in.ProduceMassKg,
		StorageTemperatureC:       &in.StorageTemperatureC,
		PerforationDiameterMicron: &in.PerforationDiameterMicron,
		PerforationCount:          &in.PerforationCount,
		ScavengerMassG:            &in.ScavengerMassG,
		PackageVolumeL:            &in.PackageVolumeL,
		TestDurationDays:          &in.TestDurationDays,
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// SimulateFormRequest is the form-encoded variant of SimulateRequest.
// Field names follow the calculator's HTML form; values arrive as text.
type SimulateFormRequest struct {
	Wp                   string `form:"Wp"`
	StorageTemperature   string `form:"StorageTemperature"`
	Perforationdiamicron string `form:"Perforationdiamicron"`
	NumberofPerfo        string `form:"NumberofPerfo"`
	Mryan                string `form:"mryan"`
	Vl                   string `form:"Vl"`
	TestDays             string `form:"Test_days"`
}

// Parse converts every form field to a number. All unparseable fields are
// reported at once, keyed by form field name, and are kept apart from the
// physical range checks done by the engine.
func (f *SimulateFormRequest) Parse() (model.SimulationInput, []ValidationError) {
	var (
		in   model.SimulationInput
		errs []ValidationError
	)

	fields := []struct {
		name  string
		raw   string
		value *float64
	}{
		{"Wp", f.Wp, &in.ProduceMassKg},
		{"StorageTemperature", f.StorageTemperature, &in.StorageTemperatureC},
		{"Perforationdiamicron", f.Perforationdiamicron, &in.PerforationDiameterMicron},
		{"NumberofPerfo", f.NumberofPerfo, &in.PerforationCount},
		{"mryan", f.Mryan, &in.ScavengerMassG},
		{"Vl", f.Vl, &in.PackageVolumeL},
		{"Test_days", f.TestDays, &in.TestDurationDays},
	}

	for _, fld := range fields {
		v, err := parseNumber(fld.raw)
		if err != nil {
			ve := *err
			ve.Field = fld.name
			errs = append(errs, ve)
			continue
		}
		*fld.value = v
	}
	return in, errs
}

func parseNumber(raw string) (float64, *ValidationError) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrMissingNumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidNumber
	}
	return v, nil
}

// SavePresetRequest is the body of PUT /api/presets/{name}.
//
// @Description Stores a named package design
type SavePresetRequest struct {
	Description string          `json:"description" binding:"max=256" example:"500 g clamshell, 4 laser perforations"`
	Input       SimulateRequest `json:"input"`
} // @name SavePresetRequest

// ValidationError represents a request-shape error on a single field.
// Key is the translation key of the message.
type ValidationError struct {
	Field   string
	Message string
	Key     string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

var (
	// ErrMissingNumber is returned for an empty numeric form field.
	ErrMissingNumber = &ValidationError{Message: "is required", Key: i18n.ErrKeyMissingField}
	// ErrInvalidNumber is returned for text that is not a finite number.
	ErrInvalidNumber = &ValidationError{Message: "must be a valid number", Key: i18n.ErrKeyInvalidNumber}
	// ErrInvalidPoints is returned when the points query parameter is not a positive integer.
	ErrInvalidPoints = &ValidationError{Field: "points", Message: "must be a positive integer", Key: i18n.ErrKeyInvalidPoints}
)

// ParsePoints reads the downsampling target from a query value.
// Empty means def; values above limit are capped at limit.
func ParsePoints(raw string, def, limit int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, ErrInvalidPoints
	}
	if limit > 0 && n > limit {
		return limit, nil
	}
	return n, nil
}

// AuditQuery holds the filters of GET /api/audit.
type AuditQuery struct {
	RequestID string     `form:"request_id" json:"request_id"`
	Action    string     `form:"action" json:"action" binding:"omitempty,oneof=simulate save_preset delete_preset"`
	Level     string     `form:"level" json:"level" binding:"omitempty,oneof=debug info warn error"`
	Since     *time.Time `form:"since" json:"since" time_format:"2006-01-02T15:04:05Z07:00"`
	Until     *time.Time `form:"until" json:"until" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit     int        `form:"limit" json:"limit" binding:"omitempty,min=1,max=500"`
	Skip      int        `form:"skip" json:"skip" binding:"omitempty,min=0"`
}

// DefaultAuditLimit is the page size used when AuditQuery.Limit is zero.
const DefaultAuditLimit = 50

// Options converts the query to repository search options.
func (q *AuditQuery) Options() model.LogQueryOptions {
	limit := q.Limit
	if limit == 0 {
		limit = DefaultAuditLimit
	}
	return model.LogQueryOptions{
		RequestID:  q.RequestID,
		Level:      q.Level,
		ActionType: q.Action,
		StartTime:  q.Since,
		EndTime:    q.Until,
		Limit:      limit,
		Skip:       q.Skip,
	}
}
