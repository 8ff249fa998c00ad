// Package app provides router configuration.
package app

import (
	"github.com/guttosm/mapsim/config"
	"github.com/guttosm/mapsim/internal/http"
	"github.com/guttosm/mapsim/internal/middleware"
	"github.com/guttosm/mapsim/internal/service"
	"github.com/rs/zerolog/log"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Simulation *http.SimulationHandler
	Presets    *http.PresetsHandler
	Audit      *http.AuditHandler
	Health     *http.HealthHandler
	Config     http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
// Preset and audit routes are only mounted when a database is available.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	var (
		audit     *middleware.AsyncLogger
		presets   *http.PresetsHandler
		auditLogs *http.AuditHandler
	)

	health := http.NewHealthHandler()

	handlerOpts := []http.HandlerOption{
		http.WithPoints(cfg.Simulation.DefaultPoints, cfg.Simulation.MaxPoints),
	}

	if db != nil {
		audit = middleware.NewAsyncLogger(db.LoggingService, middleware.DefaultAsyncLoggerConfig())
		handlerOpts = append(handlerOpts, http.WithAuditLogger(audit))

		if db.DB != nil {
			health.RegisterChecker("mongodb", http.HealthCheckFunc(db.DB.HealthCheck))
		}
		health.RegisterCircuitBreaker("mongodb_presets", db.PresetsCircuitBreaker)
		health.RegisterCircuitBreaker("mongodb_logs", db.LogsCircuitBreaker)
	}

	simulation := http.NewSimulationHandler(services.Simulator, handlerOpts...)

	if db != nil && db.PresetsRepo != nil {
		presets = http.NewPresetsHandler(service.NewPresetsService(db.PresetsRepo), simulation)
	}
	if db != nil && db.LoggingService != nil {
		auditLogs = http.NewAuditHandler(db.LoggingService)
	}

	auth := InitializeAuth(cfg.Auth)

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		RequestTimeout: cfg.Server.RequestTimeout,
		EnableAuth:     cfg.Auth.Enabled,
		Auth:           auth,
		AuditLogger:    audit,
	}

	return &RouterComponents{
		Simulation: simulation,
		Presets:    presets,
		Audit:      auditLogs,
		Health:     health,
		Config:     routerCfg,
	}
}

// InitializeAuth maps the auth configuration onto the middleware options.
func InitializeAuth(cfg config.AuthConfig) middleware.AuthOptions {
	opts := middleware.AuthOptions{
		APIKeys:      cfg.APIKeys,
		APIKeyHashes: cfg.APIKeyHashes,
		JWTSecret:    cfg.JWTSecretKey,
		JWTIssuer:    cfg.JWTIssuer,
	}

	if cfg.Enabled && len(opts.APIKeys) == 0 && len(opts.APIKeyHashes) == 0 && opts.JWTSecret == "" {
		log.Warn().Msg("Authentication enabled but no API keys or JWT secret configured - API is open")
	}
	return opts
}

// Routes returns the optional route groups mounted next to the simulation routes.
func (rc *RouterComponents) Routes() []http.RouteGroup {
	var groups []http.RouteGroup
	if rc.Audit != nil {
		groups = append(groups, http.NewAuditRoutes(rc.Audit))
	}
	return groups
}
