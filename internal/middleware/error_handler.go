package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mapsim/internal/circuitbreaker"
	"github.com/guttosm/mapsim/internal/domain/dto"
	"github.com/guttosm/mapsim/internal/engine"
	"github.com/guttosm/mapsim/internal/i18n"
	"github.com/guttosm/mapsim/internal/logger"
)

// ErrorHandler logs errors attached with c.Error. When the handler has not
// responded it renders the last one, mapping known failures to their status.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		log := logger.Logger()
		log.Error().
			Str("request_id", GetRequestID(c)).
			Str("principal", GetPrincipal(c)).
			Str("method", c.Request.Method).
			Str("route", c.FullPath()).
			Strs("errors", c.Errors.Errors()).
			Msg("Request failed")

		if c.Writer.Written() {
			return
		}
		status, code, key := classify(last.Err)
		msg := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
		c.JSON(status, dto.NewError(code, msg).WithRequestID(GetRequestID(c)))
	}
}

func classify(err error) (status int, code, messageKey string) {
	switch {
	case errors.Is(err, engine.ErrComputationFault):
		return http.StatusInternalServerError, dto.ErrCodeSimulation, i18n.ErrKeySimulationFailed
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, dto.ErrCodeUnavailable, i18n.ErrKeyStorageUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, dto.ErrCodeTimeout, i18n.ErrKeyTimeout
	default:
		return http.StatusInternalServerError, dto.ErrCodeInternal, i18n.ErrKeyInternalError
	}
}
