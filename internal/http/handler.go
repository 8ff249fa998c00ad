// Package http exposes the simulator over a gin HTTP API.
package http

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/guttosm/mapsim/internal/chart"
	"github.com/guttosm/mapsim/internal/domain/dto"
	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/engine"
	"github.com/guttosm/mapsim/internal/i18n"
	"github.com/guttosm/mapsim/internal/logger"
	"github.com/guttosm/mapsim/internal/middleware"
	"github.com/guttosm/mapsim/internal/service"
)

// statusClientClosedRequest is logged when the caller went away mid-run.
const statusClientClosedRequest = 499

// PointsConfig bounds how many samples of each series a response carries.
type PointsConfig struct {
	Default int
	Max     int
}

// SimulationHandler serves the simulate, charts and limits endpoints.
type SimulationHandler struct {
	simulator service.SimulatorService
	audit     *middleware.AsyncLogger
	points    PointsConfig
	chartOpts chart.Options
}

// HandlerOption configures a SimulationHandler.
type HandlerOption func(*SimulationHandler)

// WithPoints sets the default and maximum number of returned samples.
func WithPoints(def, limit int) HandlerOption {
	return func(h *SimulationHandler) {
		if def > 0 {
			h.points.Default = def
		}
		if limit > 0 {
			h.points.Max = limit
		}
	}
}

// WithAuditLogger records every simulation in the audit log.
func WithAuditLogger(al *middleware.AsyncLogger) HandlerOption {
	return func(h *SimulationHandler) {
		h.audit = al
	}
}

// WithChartOptions overrides the chart rendering options.
func WithChartOptions(opts chart.Options) HandlerOption {
	return func(h *SimulationHandler) {
		h.chartOpts = opts
	}
}

// NewSimulationHandler creates a new SimulationHandler.
func NewSimulationHandler(simulator service.SimulatorService, opts ...HandlerOption) *SimulationHandler {
	registerJSONFieldNames()

	h := &SimulationHandler{
		simulator: simulator,
		points:    PointsConfig{Default: 500, Max: 5000},
		chartOpts: chart.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Simulate handles POST /api/simulate.
//
// @Summary      Simulate a package
// @Description  Validates the package parameters and simulates O2, CO2 and ethylene in the headspace with a one-second step. Series are downsampled to `points` samples; the summary is computed at full resolution.
// @Tags         Simulation
// @Accept       json
// @Produce      json
// @Param        request body dto.SimulateRequest true "Package parameters"
// @Param        points query int false "Samples per series (default 500, capped at the configured maximum)"
// @Param        Accept-Language header string false "Locale for messages (en, pt, nl)"
// @Success      200 {object} dto.SuccessResponse{data=dto.SimulationResponse} "Simulation result"
// @Failure      400 {object} dto.ErrorResponse "Malformed body or missing field"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      422 {object} dto.ErrorResponse "Parameters outside the supported range"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Failure      500 {object} dto.ErrorResponse "Computation fault"
// @Failure      504 {object} dto.ErrorResponse "Simulation timed out"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/simulate [post]
func (h *SimulationHandler) Simulate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	points, ok := h.parsePoints(c)
	if !ok {
		return
	}

	req, err := BuildRequest[dto.SimulateRequest](c)
	if err != nil {
		bindError(builder, c, err)
		return
	}

	h.respond(c, req.Input(), points)
}

// SimulateForm handles POST /api/simulate/form.
//
// @Summary      Simulate from form fields
// @Description  Same as /api/simulate but takes the calculator's form fields as text. Fields that are not numbers are reported together, before any range check.
// @Tags         Simulation
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        Wp formData string true "Weight of produce (kg)"
// @Param        StorageTemperature formData string true "Storage temperature (°C)"
// @Param        Perforationdiamicron formData string true "Perforation diameter (µm)"
// @Param        NumberofPerfo formData string true "Number of perforations"
// @Param        mryan formData string true "Scavenger mass (g)"
// @Param        Vl formData string true "Package volume (L)"
// @Param        Test_days formData string true "Test duration (days)"
// @Param        points query int false "Samples per series"
// @Success      200 {object} dto.SuccessResponse{data=dto.SimulationResponse} "Simulation result"
// @Failure      400 {object} dto.ErrorResponse "Fields that are not numbers"
// @Failure      422 {object} dto.ErrorResponse "Parameters outside the supported range"
// @Failure      500 {object} dto.ErrorResponse "Computation fault"
// @Failure      504 {object} dto.ErrorResponse "Simulation timed out"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/simulate/form [post]
func (h *SimulationHandler) SimulateForm(c *gin.Context) {
	builder := NewResponseBuilder(c)

	points, ok := h.parsePoints(c)
	if !ok {
		return
	}

	form, err := BuildForm[dto.SimulateFormRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	in, errs := form.Parse()
	if len(errs) > 0 {
		locale := i18n.GetLocale(c)
		details := make(map[string]string, len(errs))
		for _, ve := range errs {
			details[ve.Field] = i18n.GetTranslator().Translate(ve.Key, locale)
		}
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidNumber, details, nil)
		return
	}

	h.respond(c, in, points)
}

// SimulateCharts handles POST /api/simulate/charts.
//
// @Summary      Render charts for a package
// @Description  Runs the simulation and returns the O2/CO2 (0-24 %) and ethylene (0-5 ppm) charts as base64 PNG.
// @Tags         Simulation
// @Accept       json
// @Produce      json
// @Param        request body dto.SimulateRequest true "Package parameters"
// @Success      200 {object} dto.SuccessResponse{data=dto.ChartsResponse} "Rendered charts"
// @Failure      400 {object} dto.ErrorResponse "Malformed body or missing field"
// @Failure      422 {object} dto.ErrorResponse "Parameters outside the supported range"
// @Failure      500 {object} dto.ErrorResponse "Computation or rendering fault"
// @Failure      504 {object} dto.ErrorResponse "Simulation timed out"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/simulate/charts [post]
func (h *SimulationHandler) SimulateCharts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.SimulateRequest](c)
	if err != nil {
		bindError(builder, c, err)
		return
	}

	in := req.Input()
	out, ok := h.run(c, in)
	if !ok {
		return
	}

	atmosphere, err := chart.RenderAtmosphere(out.Result, h.chartOpts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyChartFailed, err)
		return
	}
	ethylene, err := chart.RenderEthylene(out.Result, h.chartOpts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyChartFailed, err)
		return
	}

	runID := uuid.NewString()
	h.auditRun(c, runID, in, out)
	builder.SuccessOK(dto.ChartsResponse{
		RunID:         runID,
		AtmospherePNG: base64.StdEncoding.EncodeToString(atmosphere),
		EthylenePNG:   base64.StdEncoding.EncodeToString(ethylene),
		Summary:       dto.NewSummary(out.Result),
	})
}

// Limits handles GET /api/limits.
//
// @Summary      Supported parameter ranges
// @Description  Returns the bounds package parameters are validated against.
// @Tags         Simulation
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.LimitsResponse} "Validator bounds"
// @Router       /api/limits [get]
func (h *SimulationHandler) Limits(c *gin.Context) {
	l := h.simulator.Limits()
	NewResponseBuilder(c).SuccessOK(dto.LimitsResponse{
		MinHeadspaceML:         l.MinHeadspaceML,
		MaxPerforationCount:    l.MaxPerforationCount,
		MaxPerforationDiameter: l.MaxPerforationDiameter,
		MaxProduceMassKg:       l.MaxProduceMassKg,
		MaxStorageTemperatureC: l.MaxStorageTemperatureC,
		MaxTestDurationDays:    l.MaxTestDurationDays,
		MaxScavengerMassG:      l.MaxScavengerMassG,
		MaxPoints:              h.points.Max,
	})
}

func (h *SimulationHandler) parsePoints(c *gin.Context) (int, bool) {
	points, err := dto.ParsePoints(c.Query("points"), h.points.Default, h.points.Max)
	if err != nil {
		NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidPoints,
			map[string]string{"points": i18n.GetTranslator().Translate(i18n.ErrKeyInvalidPoints, i18n.GetLocale(c))}, err)
		return 0, false
	}
	return points, true
}

// respond runs in and writes the downsampled SimulationResponse.
func (h *SimulationHandler) respond(c *gin.Context, in model.SimulationInput, points int) {
	out, ok := h.run(c, in)
	if !ok {
		return
	}

	runID := uuid.NewString()
	h.auditRun(c, runID, in, out)
	NewResponseBuilder(c).SuccessOK(dto.NewSimulationResponse(runID, in, out.Result, points))
}

// run simulates in and writes the error response for every outcome that is
// not a result. It reports whether out.Result can be used.
func (h *SimulationHandler) run(c *gin.Context, in model.SimulationInput) (engine.Outcome, bool) {
	builder := NewResponseBuilder(c)

	out, err := h.simulator.Simulate(c.Request.Context(), in)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		_ = c.Error(err)
		middleware.AbortWithTimeout(c)
		return out, false
	case errors.Is(err, context.Canceled):
		_ = c.Error(err)
		c.AbortWithStatus(statusClientClosedRequest)
		return out, false
	case errors.Is(err, engine.ErrComputationFault):
		middleware.AuditLogError(h.audit, c, model.ActionSimulate, "Simulation failed", err, map[string]interface{}{"input": in})
		builder.ErrorWithCode(http.StatusInternalServerError, dto.ErrCodeSimulation, i18n.ErrKeySimulationFailed, err)
		return out, false
	case err != nil:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return out, false
	}

	if !out.Valid() {
		builder.Violations(out.Violations)
		return out, false
	}
	if out.Result == nil {
		builder.ErrorWithCode(http.StatusInternalServerError, dto.ErrCodeSimulation, i18n.ErrKeySimulationFailed, engine.ErrComputationFault)
		return out, false
	}
	return out, true
}

func (h *SimulationHandler) auditRun(c *gin.Context, runID string, in model.SimulationInput, out engine.Outcome) {
	log := logger.FromContext(c.Request.Context())
	log.Info().Str("run_id", runID).Int("steps", out.Result.Rates.Steps).Msg("simulation served")

	middleware.AuditLog(h.audit, c, model.ActionSimulate, "Simulation completed", map[string]interface{}{
		"run_id":                  runID,
		"input":                   in,
		"steps":                   out.Result.Rates.Steps,
		"scavenger_exhausted_day": out.Result.ScavengerExhaustedDay,
	})
}

// bindError turns a JSON binding failure into a 400. Missing required fields
// are listed by JSON name in Details.
func bindError(builder *ResponseBuilder, c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	locale := i18n.GetLocale(c)
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := i18n.ErrKeyInvalidRequest
		if fe.Tag() == "required" {
			key = i18n.ErrKeyMissingField
		}
		details[fieldPath(fe)] = i18n.GetTranslator().Translate(key, locale)
	}
	builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, details, err)
}

// fieldPath drops the top-level struct name from the namespace,
// e.g. "SavePresetRequest.input.produce_mass_kg" becomes "input.produce_mass_kg".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

var jsonNamesOnce sync.Once

// registerJSONFieldNames makes validation errors report JSON field names
// instead of Go struct field names.
func registerJSONFieldNames() {
	jsonNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
}
