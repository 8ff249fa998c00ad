// Package app provides service initialization.
package app

import (
	"github.com/guttosm/mapsim/config"
	"github.com/guttosm/mapsim/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Simulator service.SimulatorService
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.SimulationConfig) *ServiceComponents {
	var opts []service.Option

	if cfg.CacheSize > 0 {
		opts = append(opts, service.WithCache(cfg.CacheSize, cfg.CacheTTL))
	}
	if cfg.MaxConcurrent > 0 {
		opts = append(opts, service.WithMaxConcurrent(cfg.MaxConcurrent))
	}

	return &ServiceComponents{
		Simulator: service.NewSimulatorService(opts...),
	}
}
