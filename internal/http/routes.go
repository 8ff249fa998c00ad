package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/mapsim/internal/middleware"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// SimulationRoutes registers the simulate and limits endpoints.
type SimulationRoutes struct {
	handler *SimulationHandler
}

// NewSimulationRoutes creates a new SimulationRoutes instance.
func NewSimulationRoutes(handler *SimulationHandler) *SimulationRoutes {
	return &SimulationRoutes{handler: handler}
}

// RegisterRoutes implements RouteGroup. Runs can take seconds, so only the
// simulate endpoints carry the request timeout.
func (r *SimulationRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/limits", r.handler.Limits)

	simulate := rg.Group("/simulate", middleware.Timeout(cfg.RequestTimeout))
	simulate.POST("", r.handler.Simulate)
	simulate.POST("/form", r.handler.SimulateForm)
	simulate.POST("/charts", r.handler.SimulateCharts)
}

// PresetRoutes registers the preset endpoints.
type PresetRoutes struct {
	handler *PresetsHandler
}

// NewPresetRoutes creates a new PresetRoutes instance.
func NewPresetRoutes(handler *PresetsHandler) *PresetRoutes {
	return &PresetRoutes{handler: handler}
}

// RegisterRoutes implements RouteGroup.
func (r *PresetRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	presets := rg.Group("/presets")
	presets.GET("", r.handler.List)
	presets.GET("/:name", r.handler.Get)
	presets.PUT("/:name", r.handler.Save)
	presets.DELETE("/:name", r.handler.Delete)
	presets.POST("/:name/simulate", middleware.Timeout(cfg.RequestTimeout), r.handler.Simulate)
}

// AuditRoutes registers the audit trail endpoint.
type AuditRoutes struct {
	handler *AuditHandler
}

// NewAuditRoutes creates a new AuditRoutes instance.
func NewAuditRoutes(handler *AuditHandler) *AuditRoutes {
	return &AuditRoutes{handler: handler}
}

// RegisterRoutes implements RouteGroup.
func (r *AuditRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.GET("/audit", r.handler.Search)
}
