package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/mapsim/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeValidation indicates package parameters outside the supported range.
	ErrCodeValidation = "validation_failed"
	// ErrCodeSimulation indicates a computation fault on otherwise valid parameters.
	ErrCodeSimulation = "simulation_failed"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeUnavailable indicates a dependency such as preset storage is down.
	ErrCodeUnavailable = "service_unavailable"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	Data      interface{} `json:"data" swaggertype:"object"`
	RequestID string      `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time   `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// Violations is set only for validation_failed errors, in rule order.
// @Description Standardized error response
type ErrorResponse struct {
	Error      string            `json:"error" example:"validation_failed"`
	Message    string            `json:"message,omitempty" example:"The package parameters are outside the supported range"`
	Details    map[string]string `json:"details,omitempty"`
	Violations []model.Violation `json:"violations,omitempty"`
	RequestID  string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp  time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnprocessableEntity:
		return ErrCodeValidation
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// SeriesResponse holds the parallel time series of a run.
// @Description Gas concentration time series
type SeriesResponse struct {
	TimesInDays            []float64 `json:"times_in_days"`
	OxygenPct              []float64 `json:"oxygen_pct"`
	CarbonDioxidePct       []float64 `json:"carbon_dioxide_pct"`
	EthylenePPM            []float64 `json:"ethylene_ppm"`
	UnscavengedEthylenePPM []float64 `json:"unscavenged_ethylene_ppm"`
} // @name SeriesResponse

// SummaryResponse holds the scalar outputs of a run.
// @Description Scalar results of a simulation
type SummaryResponse struct {
	Steps                         int      `json:"steps" example:"864000"`
	XLimitDays                    float64  `json:"x_limit_days" example:"10"`
	FinalOxygenPct                float64  `json:"final_oxygen_pct" example:"2.1"`
	FinalCarbonDioxidePct         float64  `json:"final_carbon_dioxide_pct" example:"5.6"`
	FinalEthylenePPM              float64  `json:"final_ethylene_ppm" example:"0.01"`
	ScavengerExhaustedDay         *float64 `json:"scavenger_exhausted_day"`
	RemainingScavengerCapacityPPM float64  `json:"remaining_scavenger_capacity_ppm" example:"2830.2"`
	MaxScavengerCapacityPPM       float64  `json:"max_scavenger_capacity_ppm" example:"2842.475151"`
} // @name SummaryResponse

// SimulationResponse is the body of a successful simulate call.
// Series are downsampled to Points entries out of TotalPoints.
// @Description Simulation result
type SimulationResponse struct {
	RunID       string                `json:"run_id" example:"0b6f1c1e-8a4f-4b1a-9a57-4f7f0f1f2a3b"`
	Input       model.SimulationInput `json:"input"`
	Points      int                   `json:"points" example:"500"`
	TotalPoints int                   `json:"total_points" example:"864001"`
	Series      SeriesResponse        `json:"series"`
	Summary     SummaryResponse       `json:"summary"`
	Rates       model.RateConstants   `json:"rates"`
} // @name SimulationResponse

// NewSummary extracts the scalar outputs of a full-resolution result.
func NewSummary(r *model.SimulationResult) SummaryResponse {
	s := SummaryResponse{
		Steps:                         r.Rates.Steps,
		XLimitDays:                    r.XLimitDays,
		ScavengerExhaustedDay:         r.ScavengerExhaustedDay,
		RemainingScavengerCapacityPPM: r.RemainingScavengerCapacityPPM,
		MaxScavengerCapacityPPM:       r.MaxScavengerCapacityPPM,
	}
	if n := r.Len(); n > 0 {
		s.FinalOxygenPct = r.OxygenPct[n-1]
		s.FinalCarbonDioxidePct = r.CarbonDioxidePct[n-1]
		s.FinalEthylenePPM = r.EthylenePPM[n-1]
	}
	return s
}

// NewSimulationResponse builds the response for a run, keeping at most points samples.
func NewSimulationResponse(runID string, in model.SimulationInput, r *model.SimulationResult, points int) SimulationResponse {
	sampled := r.Downsample(points)
	return SimulationResponse{
		RunID:       runID,
		Input:       in,
		Points:      sampled.Len(),
		TotalPoints: r.Len(),
		Series: SeriesResponse{
			TimesInDays:            sampled.TimesInDays,
			OxygenPct:              sampled.OxygenPct,
			CarbonDioxidePct:       sampled.CarbonDioxidePct,
			EthylenePPM:            sampled.EthylenePPM,
			UnscavengedEthylenePPM: sampled.UnscavengedEthylenePPM,
		},
		Summary: NewSummary(r),
		Rates:   r.Rates,
	}
}

// ChartsResponse carries the two rendered charts as base64 PNG.
// @Description Rendered charts for a simulation
type ChartsResponse struct {
	RunID         string          `json:"run_id" example:"0b6f1c1e-8a4f-4b1a-9a57-4f7f0f1f2a3b"`
	AtmospherePNG string          `json:"atmosphere_png" format:"base64"`
	EthylenePNG   string          `json:"ethylene_png" format:"base64"`
	Summary       SummaryResponse `json:"summary"`
} // @name ChartsResponse

// LimitsResponse lists the validator bounds.
// @Description Supported parameter ranges
type LimitsResponse struct {
	MinHeadspaceML         float64 `json:"min_headspace_ml" example:"100"`
	MaxPerforationCount    float64 `json:"max_perforation_count" example:"200"`
	MaxPerforationDiameter float64 `json:"max_perforation_diameter_micron" example:"900"`
	MaxProduceMassKg       float64 `json:"max_produce_mass_kg" example:"6"`
	MaxStorageTemperatureC float64 `json:"max_storage_temperature_c" example:"30"`
	MaxTestDurationDays    float64 `json:"max_test_duration_days" example:"15"`
	MaxScavengerMassG      float64 `json:"max_scavenger_mass_g" example:"5"`
	MaxPoints              int     `json:"max_points" example:"5000"`
} // @name LimitsResponse

// PresetListResponse is the body of GET /api/presets.
// @Description Stored presets
type PresetListResponse struct {
	Presets []model.Preset `json:"presets"`
	Count   int            `json:"count" example:"1"`
} // @name PresetListResponse

// AuditLogResponse is the body of GET /api/audit.
// @Description One page of audit entries, newest first
type AuditLogResponse struct {
	Entries []model.LogEntry `json:"entries"`
	Total   int64            `json:"total" example:"42"`
	Limit   int              `json:"limit" example:"50"`
	Skip    int              `json:"skip" example:"0"`
} // @name AuditLogResponse
