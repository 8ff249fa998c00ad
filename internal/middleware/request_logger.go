package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/logger"
	"github.com/rs/zerolog"
)

// probePaths are polled by orchestrators and scrapers. They are logged at debug
// and never persisted.
var probePaths = map[string]bool{
	"/healthz": true,
	"/readyz":  true,
	"/metrics": true,
}

// RequestLogger logs every request once it has been served. Entries for
// non-probe requests are also queued on al when it is not nil.
func RequestLogger(al *AsyncLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		status := c.Writer.Status()
		path := c.Request.URL.Path
		probe := probePaths[path]

		level := statusLevel(status)
		if probe && level == zerolog.InfoLevel {
			level = zerolog.DebugLevel
		}

		log := logger.Logger()
		event := log.WithLevel(level).
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("route", c.FullPath()).
			Int("status_code", status).
			Int64("duration_ms", elapsed.Milliseconds()).
			Str("ip", c.ClientIP())
		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			event = event.Str("error", errs.String())
		}
		event.Msg("HTTP request")

		if al == nil || probe {
			return
		}
		entry := &model.LogEntry{
			Timestamp:  start.Add(elapsed),
			Level:      level.String(),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       path,
			StatusCode: status,
			Duration:   elapsed.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			Principal:  GetPrincipal(c),
		}
		if last := c.Errors.Last(); last != nil {
			entry.Error = last.Error()
		}
		al.Log(entry)
	}
}

// statusLevel maps a response status class to a log level.
func statusLevel(status int) zerolog.Level {
	switch {
	case status >= 500:
		return zerolog.ErrorLevel
	case status >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
