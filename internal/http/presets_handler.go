package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mapsim/internal/circuitbreaker"
	"github.com/guttosm/mapsim/internal/domain/dto"
	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/i18n"
	"github.com/guttosm/mapsim/internal/middleware"
	"github.com/guttosm/mapsim/internal/repository"
	"github.com/guttosm/mapsim/internal/service"
)

const (
	defaultPresetLimit = 100
	maxPresetLimit     = 1000
)

// PresetsHandler serves the named package designs.
type PresetsHandler struct {
	presets    service.PresetsService
	simulation *SimulationHandler
	audit      *middleware.AsyncLogger
}

// NewPresetsHandler creates a new PresetsHandler. Preset simulations go
// through simulation so they share its points limits and audit logging.
func NewPresetsHandler(presets service.PresetsService, simulation *SimulationHandler) *PresetsHandler {
	h := &PresetsHandler{presets: presets, simulation: simulation}
	if simulation != nil {
		h.audit = simulation.audit
	}
	return h
}

// List handles GET /api/presets.
//
// @Summary      List presets
// @Description  Returns stored package designs ordered by name.
// @Tags         Presets
// @Produce      json
// @Param        limit query int false "Maximum number of presets (default 100, max 1000)"
// @Success      200 {object} dto.SuccessResponse{data=dto.PresetListResponse} "Stored presets"
// @Failure      503 {object} dto.ErrorResponse "Preset storage unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/presets [get]
func (h *PresetsHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := defaultPresetLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		limit = min(n, maxPresetLimit)
	}

	presets, err := h.presets.List(c.Request.Context(), limit)
	if err != nil {
		presetError(builder, err)
		return
	}
	builder.SuccessOK(dto.PresetListResponse{Presets: presets, Count: len(presets)})
}

// Get handles GET /api/presets/{name}.
//
// @Summary      Get a preset
// @Tags         Presets
// @Produce      json
// @Param        name path string true "Preset name"
// @Success      200 {object} dto.SuccessResponse{data=model.Preset} "Preset"
// @Failure      400 {object} dto.ErrorResponse "Invalid preset name"
// @Failure      404 {object} dto.ErrorResponse "Preset not found"
// @Failure      503 {object} dto.ErrorResponse "Preset storage unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/presets/{name} [get]
func (h *PresetsHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	preset, err := h.presets.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		presetError(builder, err)
		return
	}
	builder.SuccessOK(preset)
}

// Save handles PUT /api/presets/{name}.
//
// @Summary      Create or replace a preset
// @Description  Stores a package design under name. The input must pass validation; results are never stored.
// @Tags         Presets
// @Accept       json
// @Produce      json
// @Param        name path string true "Preset name"
// @Param        request body dto.SavePresetRequest true "Preset"
// @Success      200 {object} dto.SuccessResponse{data=model.Preset} "Stored preset"
// @Failure      400 {object} dto.ErrorResponse "Malformed body or invalid name"
// @Failure      422 {object} dto.ErrorResponse "Input outside the supported range"
// @Failure      503 {object} dto.ErrorResponse "Preset storage unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/presets/{name} [put]
func (h *PresetsHandler) Save(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.SavePresetRequest](c)
	if err != nil {
		bindError(builder, c, err)
		return
	}

	name := c.Param("name")
	stored, err := h.presets.Save(c.Request.Context(), &model.Preset{
		Name:        name,
		Description: req.Description,
		Input:       req.Input.Input(),
	})
	if err != nil {
		middleware.AuditLogError(h.audit, c, model.ActionSavePreset, "Preset save failed", err,
			map[string]interface{}{"name": name})
		presetError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionSavePreset, "Preset saved", map[string]interface{}{"name": name})
	builder.SuccessOK(stored)
}

// Delete handles DELETE /api/presets/{name}.
//
// @Summary      Delete a preset
// @Tags         Presets
// @Param        name path string true "Preset name"
// @Success      204 "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Preset not found"
// @Failure      503 {object} dto.ErrorResponse "Preset storage unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/presets/{name} [delete]
func (h *PresetsHandler) Delete(c *gin.Context) {
	name := c.Param("name")
	if err := h.presets.Delete(c.Request.Context(), name); err != nil {
		presetError(NewResponseBuilder(c), err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionDeletePreset, "Preset deleted", map[string]interface{}{"name": name})
	c.Status(http.StatusNoContent)
}

// Simulate handles POST /api/presets/{name}/simulate.
//
// @Summary      Simulate a preset
// @Description  Loads the preset and simulates its input. The result is recomputed on every call.
// @Tags         Presets
// @Produce      json
// @Param        name path string true "Preset name"
// @Param        points query int false "Samples per series"
// @Success      200 {object} dto.SuccessResponse{data=dto.SimulationResponse} "Simulation result"
// @Failure      404 {object} dto.ErrorResponse "Preset not found"
// @Failure      500 {object} dto.ErrorResponse "Computation fault"
// @Failure      503 {object} dto.ErrorResponse "Preset storage unavailable"
// @Failure      504 {object} dto.ErrorResponse "Simulation timed out"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/presets/{name}/simulate [post]
func (h *PresetsHandler) Simulate(c *gin.Context) {
	points, ok := h.simulation.parsePoints(c)
	if !ok {
		return
	}

	preset, err := h.presets.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		presetError(NewResponseBuilder(c), err)
		return
	}

	h.simulation.respond(c, preset.Input, points)
}

// presetError maps service and storage errors to HTTP responses.
func presetError(builder *ResponseBuilder, err error) {
	var invalid *service.InvalidPresetError
	switch {
	case errors.As(err, &invalid):
		builder.Violations(invalid.Violations)
	case errors.Is(err, service.ErrInvalidPresetName):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidPresetName, err)
	case errors.Is(err, repository.ErrPresetNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyPresetNotFound, err)
	case errors.Is(err, service.ErrRepositoryNotConfigured), errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyStorageUnavailable, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
