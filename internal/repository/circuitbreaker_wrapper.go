package repository

import (
	"context"
	"errors"

	"github.com/guttosm/mapsim/internal/circuitbreaker"
	"github.com/guttosm/mapsim/internal/domain/model"
	"go.mongodb.org/mongo-driver/mongo"
)

// IsInfrastructureError reports whether err indicates a database problem, as
// opposed to an expected outcome such as a missing preset. Only infrastructure
// errors count against a circuit breaker.
func IsInfrastructureError(err error) bool {
	switch {
	case err == nil,
		errors.Is(err, ErrPresetNotFound),
		errors.Is(err, mongo.ErrNoDocuments),
		errors.Is(err, context.Canceled),
		mongo.IsDuplicateKeyError(err):
		return false
	}
	return true
}

// PresetsRepositoryWithCircuitBreaker wraps a presets repository with circuit breaker protection.
type PresetsRepositoryWithCircuitBreaker struct {
	repo           PresetsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPresetsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewPresetsRepositoryWithCircuitBreaker(repo PresetsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *PresetsRepositoryWithCircuitBreaker {
	return &PresetsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// List returns presets with circuit breaker protection.
func (r *PresetsRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]model.Preset, error) {
	var result []model.Preset
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// Get returns a preset with circuit breaker protection.
func (r *PresetsRepositoryWithCircuitBreaker) Get(ctx context.Context, name string) (*model.Preset, error) {
	var result *model.Preset
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Get(ctx, name)
		return cbErr
	})
	return result, err
}

// Upsert stores a preset with circuit breaker protection.
func (r *PresetsRepositoryWithCircuitBreaker) Upsert(ctx context.Context, preset *model.Preset) (*model.Preset, error) {
	var result *model.Preset
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Upsert(ctx, preset)
		return cbErr
	})
	return result, err
}

// Delete removes a preset with circuit breaker protection.
func (r *PresetsRepositoryWithCircuitBreaker) Delete(ctx context.Context, name string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, name)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *PresetsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps a logs repository with circuit breaker protection.
// Writes are dropped silently while the circuit is open since logging is non-critical.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
