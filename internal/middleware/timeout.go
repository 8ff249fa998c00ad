package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mapsim/internal/domain/dto"
	"github.com/guttosm/mapsim/internal/i18n"
)

// Timeout attaches a deadline to the request context. Handlers are expected to
// pass the context down and return when it ends; if the handler wrote nothing
// and the deadline has passed, a 504 is sent.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			AbortWithTimeout(c)
		}
	}
}

// AbortWithTimeout writes the translated 504 response.
func AbortWithTimeout(c *gin.Context) {
	message := i18n.GetTranslator().Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
	c.AbortWithStatusJSON(http.StatusGatewayTimeout, dto.NewError(dto.ErrCodeTimeout, message).
		WithRequestID(GetRequestID(c)))
}
