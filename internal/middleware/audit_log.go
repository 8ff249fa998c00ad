package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mapsim/internal/domain/model"
)

// AuditLog queues an audit entry for a completed action such as a simulation
// or a preset change.
func AuditLog(al *AsyncLogger, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if al == nil {
		return
	}
	al.Log(auditEntry(c, "info", actionType, message, fields))
}

// AuditLogError queues an audit entry for an action that failed.
func AuditLogError(al *AsyncLogger, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if al == nil {
		return
	}
	entry := auditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	al.Log(entry)
}

func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Principal:  GetPrincipal(c),
		ActionType: actionType,
		Fields:     fields,
	}
}
