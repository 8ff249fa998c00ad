//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/mapsim/config"
	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func integrationDatabaseConfig(t *testing.T) config.DatabaseConfig {
	return config.DatabaseConfig{
		URI:                            getSharedContainerURI(),
		DatabaseName:                   sanitizeDBNameForApp(t.Name()),
		LogsTTL:                        24 * time.Hour,
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}
}

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("connects and wires repositories", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(integrationDatabaseConfig(t))
		require.NotNil(t, components)
		defer func() { assert.NoError(t, components.Close(ctx)) }()

		assert.NotNil(t, components.DB)
		assert.NotNil(t, components.PresetsRepo)
		assert.NotNil(t, components.LoggingService)
		assert.NotNil(t, components.PresetsCircuitBreaker)
		assert.NotNil(t, components.LogsCircuitBreaker)
		assert.NoError(t, components.DB.HealthCheck(ctx))
	})

	t.Run("missing preset does not open the breaker", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(integrationDatabaseConfig(t))
		require.NotNil(t, components)
		defer func() { assert.NoError(t, components.Close(ctx)) }()

		for i := 0; i < 10; i++ {
			_, err := components.PresetsRepo.Get(ctx, "missing")
			assert.ErrorIs(t, err, repository.ErrPresetNotFound)
		}
		assert.False(t, components.PresetsCircuitBreaker.IsOpen())
	})

	t.Run("stores presets through the breaker", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(integrationDatabaseConfig(t))
		require.NotNil(t, components)
		defer func() { assert.NoError(t, components.Close(ctx)) }()

		saved, err := components.PresetsRepo.Upsert(ctx, &model.Preset{
			Name:  "apples",
			Input: model.SimulationInput{ProduceMassKg: 1, PackageVolumeL: 2, TestDurationDays: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, "apples", saved.Name)

		got, err := components.PresetsRepo.Get(ctx, "apples")
		require.NoError(t, err)
		assert.Equal(t, 1.0, got.Input.ProduceMassKg)
	})

	t.Run("unreachable database returns nil", func(t *testing.T) {
		t.Parallel()
		cfg := integrationDatabaseConfig(t)
		cfg.URI = "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200"
		assert.Nil(t, InitializeDatabase(cfg))
	})
}
