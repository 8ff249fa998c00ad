// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mapsim/config"
	"github.com/guttosm/mapsim/internal/http"
	"github.com/guttosm/mapsim/internal/middleware"
)

// App is the wired HTTP application together with the resources it owns.
type App struct {
	Router *gin.Engine

	database *DatabaseComponents
	audit    *middleware.AsyncLogger
}

// InitializeApp creates and wires all application dependencies.
// A database that cannot be reached is logged and the app runs without presets
// and persisted audit logs.
func InitializeApp(cfg config.Config) *App {
	// Logger first, everything below logs through it
	InitializeLogger(cfg.Log)

	services := InitializeServices(cfg.Simulation)
	database := InitializeDatabase(cfg.Database)
	components := InitializeRouter(services, database, cfg)

	return &App{
		Router:   http.NewRouter(components.Simulation, components.Presets, components.Health, components.Config, components.Routes()...),
		database: database,
		audit:    components.Config.AuditLogger,
	}
}

// Close flushes queued audit entries and disconnects from MongoDB.
func (a *App) Close(ctx context.Context) error {
	if a == nil {
		return nil
	}
	a.audit.Stop()
	return a.database.Close(ctx)
}
