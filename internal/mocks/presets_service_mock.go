// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockPresetsService struct {
	mock.Mock
}

func (m *MockPresetsService) List(ctx context.Context, limit int) ([]model.Preset, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Preset), args.Error(1)
}

func (m *MockPresetsService) Get(ctx context.Context, name string) (*model.Preset, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Preset), args.Error(1)
}

func (m *MockPresetsService) Save(ctx context.Context, preset *model.Preset) (*model.Preset, error) {
	args := m.Called(ctx, preset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Preset), args.Error(1)
}

func (m *MockPresetsService) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
