// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/engine"
	"github.com/stretchr/testify/mock"
)

// MockOutcomeCache mocks cache.Cache[model.SimulationInput, engine.Outcome].
type MockOutcomeCache struct {
	mock.Mock
}

func (m *MockOutcomeCache) Get(key model.SimulationInput) (engine.Outcome, bool) {
	args := m.Called(key)
	return args.Get(0).(engine.Outcome), args.Bool(1)
}

func (m *MockOutcomeCache) Set(key model.SimulationInput, value engine.Outcome) {
	m.Called(key, value)
}

func (m *MockOutcomeCache) Invalidate(key model.SimulationInput) {
	m.Called(key)
}

func (m *MockOutcomeCache) Clear() {
	m.Called()
}

func (m *MockOutcomeCache) Stop() {
	m.Called()
}
