// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/guttosm/mapsim/config"
	"github.com/guttosm/mapsim/internal/circuitbreaker"
	"github.com/guttosm/mapsim/internal/repository"
	"github.com/guttosm/mapsim/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	PresetsRepo           repository.PresetsRepositoryInterface
	LoggingService        service.LoggingService
	PresetsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the repositories and services
// backed by it. Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	if cfg.LogsTTL > 0 {
		if err := db.SetLogsTTL(context.Background(), cfg.LogsTTL); err != nil {
			log.Warn().Err(err).Msg("Failed to set logs TTL index")
		}
	}

	presetsCB := newBreaker(cfg, "mongodb-presets")
	logsCB := newBreaker(cfg, "mongodb-logs")

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	presetsRepo := repository.NewPresetsRepositoryWithCircuitBreaker(repository.NewPresetsRepository(db), presetsCB)

	return &DatabaseComponents{
		DB:                    db,
		PresetsRepo:           presetsRepo,
		LoggingService:        service.NewLoggingService(logsRepo),
		PresetsCircuitBreaker: presetsCB,
		LogsCircuitBreaker:    logsCB,
	}
}

// newBreaker trips only on infrastructure errors, so a missing preset never opens it.
func newBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		IsFailure:        repository.IsInfrastructureError,
	})
}

// Close disconnects from MongoDB. It is safe on a nil receiver.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
