//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/guttosm/mapsim/config"
	"github.com/guttosm/mapsim/internal/circuitbreaker"
	"github.com/guttosm/mapsim/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeRouter(t *testing.T) {
	services := InitializeServices(config.SimulationConfig{})

	tests := []struct {
		name     string
		db       *DatabaseComponents
		cfg      config.Config
		validate func(*testing.T, *RouterComponents)
	}{
		{
			name: "simulation only without database",
			cfg: config.Config{
				Server: config.ServerConfig{RateLimit: 100, RateWindow: time.Minute, RequestTimeout: 30 * time.Second},
			},
			validate: func(t *testing.T, c *RouterComponents) {
				assert.NotNil(t, c.Simulation)
				assert.NotNil(t, c.Health)
				assert.Nil(t, c.Presets)
				assert.Nil(t, c.Audit)
				assert.Empty(t, c.Routes())
				assert.Nil(t, c.Config.AuditLogger)
				assert.False(t, c.Config.EnableAuth)
				assert.Equal(t, 100, c.Config.RateLimit)
				assert.Equal(t, time.Minute, c.Config.RateWindow)
				assert.Equal(t, 30*time.Second, c.Config.RequestTimeout)
			},
		},
		{
			name: "database enables presets and audit logging",
			db: &DatabaseComponents{
				PresetsRepo:           new(mocks.MockPresetsRepositoryInterface),
				LoggingService:        new(mocks.MockLoggingService),
				PresetsCircuitBreaker: circuitbreaker.New(circuitbreaker.DefaultConfig()),
				LogsCircuitBreaker:    circuitbreaker.New(circuitbreaker.DefaultConfig()),
			},
			validate: func(t *testing.T, c *RouterComponents) {
				assert.NotNil(t, c.Presets)
				assert.NotNil(t, c.Audit)
				assert.Len(t, c.Routes(), 1)
				require.NotNil(t, c.Config.AuditLogger)
				c.Config.AuditLogger.Stop()
			},
		},
		{
			name: "auth settings are forwarded",
			cfg: config.Config{
				Auth: config.AuthConfig{
					Enabled:      true,
					APIKeys:      map[string]bool{"k": true},
					JWTSecretKey: "secret",
					JWTIssuer:    "mapsim",
				},
			},
			validate: func(t *testing.T, c *RouterComponents) {
				assert.True(t, c.Config.EnableAuth)
				assert.True(t, c.Config.Auth.APIKeys["k"])
				assert.Equal(t, "secret", c.Config.Auth.JWTSecret)
				assert.Equal(t, "mapsim", c.Config.Auth.JWTIssuer)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeRouter(services, tt.db, tt.cfg)
			require.NotNil(t, components)
			tt.validate(t, components)
		})
	}
}

func TestInitializeAuth(t *testing.T) {
	hashes := []string{"$2a$10$abcdefghijklmnopqrstuu1234567890ABCDEFGHIJKLMNOPQRSTU"}

	opts := InitializeAuth(config.AuthConfig{
		Enabled:      true,
		APIKeyHashes: hashes,
		JWTSecretKey: "s3cret",
		JWTIssuer:    "issuer",
	})

	assert.Nil(t, opts.APIKeys)
	assert.Equal(t, hashes, opts.APIKeyHashes)
	assert.Equal(t, "s3cret", opts.JWTSecret)
	assert.Equal(t, "issuer", opts.JWTIssuer)
}
