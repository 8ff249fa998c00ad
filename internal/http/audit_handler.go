package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mapsim/internal/circuitbreaker"
	"github.com/guttosm/mapsim/internal/domain/dto"
	"github.com/guttosm/mapsim/internal/i18n"
	"github.com/guttosm/mapsim/internal/service"
)

// AuditHandler exposes the stored audit trail.
type AuditHandler struct {
	logs service.LoggingService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(logs service.LoggingService) *AuditHandler {
	registerJSONFieldNames()
	return &AuditHandler{logs: logs}
}

// Search handles GET /api/audit.
//
// @Summary      Search the audit trail
// @Description  Returns stored request and audit entries, newest first, with the total number of matches.
// @Tags         Audit
// @Produce      json
// @Param        request_id query string false "Exact request ID"
// @Param        action     query string false "Audit action" Enums(simulate, save_preset, delete_preset)
// @Param        level      query string false "Log level" Enums(debug, info, warn, error)
// @Param        since      query string false "Earliest timestamp (RFC 3339)"
// @Param        until      query string false "Latest timestamp (RFC 3339)"
// @Param        limit      query int    false "Page size (default 50, max 500)"
// @Param        skip       query int    false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.AuditLogResponse} "Audit entries"
// @Failure      400 {object} dto.ErrorResponse "Invalid filter"
// @Failure      503 {object} dto.ErrorResponse "Audit storage unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/audit [get]
func (h *AuditHandler) Search(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var q dto.AuditQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(builder, c, err)
		return
	}
	if q.Since != nil && q.Until != nil && q.Until.Before(*q.Since) {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest,
			map[string]string{"until": "must not be before since"}, errors.New("until before since"))
		return
	}

	opts := q.Options()
	page, err := h.logs.Search(c.Request.Context(), opts)
	if err != nil {
		status := http.StatusInternalServerError
		key := i18n.ErrKeyInternalError
		if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
			status, key = http.StatusServiceUnavailable, i18n.ErrKeyAuditUnavailable
		}
		builder.Error(status, key, err)
		return
	}

	builder.SuccessOK(dto.AuditLogResponse{
		Entries: page.Entries,
		Total:   page.Total,
		Limit:   opts.Limit,
		Skip:    opts.Skip,
	})
}
