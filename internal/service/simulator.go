// Package service contains the business logic of the atmosphere simulator.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/engine"
	"github.com/guttosm/mapsim/internal/logger"
	"github.com/guttosm/mapsim/internal/metrics"
	"github.com/guttosm/mapsim/internal/service/cache"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

// SimulatorService runs package simulations.
type SimulatorService interface {
	// Simulate validates and simulates in. Violations are returned in the
	// Outcome, computation faults as an error wrapping engine.ErrComputationFault.
	// If ctx ends first its error is returned and the run finishes in the background.
	// Outcomes may be served from a cache: the result's series slices are
	// shared between callers and must be treated as read-only.
	Simulate(ctx context.Context, in model.SimulationInput) (engine.Outcome, error)

	// Limits returns the bounds inputs are validated against.
	Limits() engine.Limits
}

// Runner executes one simulation. engine.Run is the production runner.
type Runner func(in model.SimulationInput) (engine.Outcome, error)

// Option configures a SimulatorServiceImpl.
type Option func(*SimulatorServiceImpl)

// SimulatorServiceImpl implements SimulatorService.
type SimulatorServiceImpl struct {
	run   Runner
	cache cache.Cache[model.SimulationInput, engine.Outcome]
	sem   *semaphore.Weighted
}

// NewSimulatorService creates a simulator service with the given options.
func NewSimulatorService(opts ...Option) *SimulatorServiceImpl {
	s := &SimulatorServiceImpl{run: engine.Run}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCache caches outcomes keyed by input. Runs are deterministic, so a cached
// outcome is identical to a fresh one.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *SimulatorServiceImpl) {
		if capacity > 0 {
			s.cache = newTTLCache[model.SimulationInput, engine.Outcome](capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache[model.SimulationInput, engine.Outcome]) Option {
	return func(s *SimulatorServiceImpl) {
		s.cache = c
	}
}

// WithMaxConcurrent bounds the number of engine runs executing at once.
func WithMaxConcurrent(n int) Option {
	return func(s *SimulatorServiceImpl) {
		if n > 0 {
			s.sem = semaphore.NewWeighted(int64(n))
		}
	}
}

// WithRunner replaces the engine entry point.
func WithRunner(r Runner) Option {
	return func(s *SimulatorServiceImpl) {
		if r != nil {
			s.run = r
		}
	}
}

// Limits returns the engine's validation bounds.
func (s *SimulatorServiceImpl) Limits() engine.Limits {
	return engine.DefaultLimits()
}

type runResult struct {
	out engine.Outcome
	err error
}

// Simulate implements SimulatorService.
func (s *SimulatorServiceImpl) Simulate(ctx context.Context, in model.SimulationInput) (engine.Outcome, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		metrics.RecordSimulation(0, metrics.OutcomeCanceled, 0)
		return engine.Outcome{}, err
	}

	if s.cache != nil {
		if out, ok := s.cache.Get(in); ok {
			log.Debug().Bool("cached", true).Msg("simulation served from cache")
			if out.Result != nil {
				r := *out.Result
				out.Result = &r
			}
			return out, nil
		}
	}

	if s.sem != nil {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			metrics.RecordSimulation(0, metrics.OutcomeCanceled, 0)
			return engine.Outcome{}, err
		}
	}

	done := make(chan runResult, 1)
	go func() {
		if s.sem != nil {
			defer s.sem.Release(1)
		}
		out, err := s.execute(in)
		s.finish(log, in, out, err)
		done <- runResult{out: out, err: err}
	}()

	select {
	case r := <-done:
		return r.out, r.err
	case <-ctx.Done():
		log.Warn().Err(ctx.Err()).Msg("simulation abandoned by caller")
		return engine.Outcome{}, ctx.Err()
	}
}

// execute runs the engine, converting a runner panic into a computation fault.
func (s *SimulatorServiceImpl) execute(in model.SimulationInput) (out engine.Outcome, err error) {
	metrics.SimulationsInFlight.Inc()
	defer metrics.SimulationsInFlight.Dec()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			out = engine.Outcome{}
			err = fmt.Errorf("%w: %v", engine.ErrComputationFault, r)
		}
		steps := 0
		outcome := metrics.OutcomeSuccess
		switch {
		case err != nil:
			outcome = metrics.OutcomeComputationError
		case !out.Valid():
			outcome = metrics.OutcomeValidationError
		case out.Result != nil:
			steps = out.Result.Rates.Steps
		}
		metrics.RecordSimulation(time.Since(start), outcome, steps)
	}()

	return s.run(in)
}

// finish logs the run and caches deterministic outcomes. Faults are not cached.
func (s *SimulatorServiceImpl) finish(log *zerolog.Logger, in model.SimulationInput, out engine.Outcome, err error) {
	if err != nil {
		log.Error().Err(err).Interface("input", in).Msg("simulation failed")
		return
	}

	if !out.Valid() {
		log.Debug().Int("violations", len(out.Violations)).Msg("simulation input rejected")
	} else if out.Result != nil && out.Result.Len() > 0 {
		ev := log.Debug().
			Int("steps", out.Result.Rates.Steps).
			Float64("final_o2_pct", out.Result.OxygenPct[out.Result.Len()-1]).
			Float64("final_c2h4_ppm", out.Result.EthylenePPM[out.Result.Len()-1])
		if out.Result.ScavengerExhaustedDay != nil {
			ev = ev.Float64("scavenger_exhausted_day", *out.Result.ScavengerExhaustedDay)
		}
		ev.Msg("simulation completed")
	}

	if s.cache != nil {
		s.cache.Set(in, out)
	}
}
