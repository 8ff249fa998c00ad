// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/engine"
	"github.com/stretchr/testify/mock"
)

type MockSimulatorService struct {
	mock.Mock
}

func (m *MockSimulatorService) Simulate(ctx context.Context, in model.SimulationInput) (engine.Outcome, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(engine.Outcome), args.Error(1)
}

func (m *MockSimulatorService) Limits() engine.Limits {
	args := m.Called()
	return args.Get(0).(engine.Limits)
}
