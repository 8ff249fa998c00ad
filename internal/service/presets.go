package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/engine"
	"github.com/guttosm/mapsim/internal/repository"
)

var (
	// ErrRepositoryNotConfigured is returned when the repository is not configured.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrInvalidPresetName is returned for names that cannot be used in URLs.
	ErrInvalidPresetName = errors.New("invalid preset name")
)

// InvalidPresetError is returned when a preset's input fails validation.
type InvalidPresetError struct {
	Violations []model.Violation
}

func (e *InvalidPresetError) Error() string {
	return fmt.Sprintf("preset input has %d violation(s)", len(e.Violations))
}

// PresetsService manages named package designs.
type PresetsService interface {
	List(ctx context.Context, limit int) ([]model.Preset, error)
	Get(ctx context.Context, name string) (*model.Preset, error)
	Save(ctx context.Context, preset *model.Preset) (*model.Preset, error)
	Delete(ctx context.Context, name string) error
}

// PresetsServiceImpl implements PresetsService.
type PresetsServiceImpl struct {
	presetsRepo repository.PresetsRepositoryInterface
}

// NewPresetsService creates a new presets service. A nil repository makes every
// call return ErrRepositoryNotConfigured.
func NewPresetsService(presetsRepo repository.PresetsRepositoryInterface) PresetsService {
	return &PresetsServiceImpl{presetsRepo: presetsRepo}
}

func (s *PresetsServiceImpl) List(ctx context.Context, limit int) ([]model.Preset, error) {
	if s.presetsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.presetsRepo.List(ctx, limit)
}

func (s *PresetsServiceImpl) Get(ctx context.Context, name string) (*model.Preset, error) {
	if s.presetsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if !model.ValidPresetName(name) {
		return nil, ErrInvalidPresetName
	}
	return s.presetsRepo.Get(ctx, name)
}

// Save validates the preset's input and stores it under preset.Name.
// Inputs with violations are rejected with an *InvalidPresetError.
func (s *PresetsServiceImpl) Save(ctx context.Context, preset *model.Preset) (*model.Preset, error) {
	if s.presetsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if !model.ValidPresetName(preset.Name) {
		return nil, ErrInvalidPresetName
	}
	if violations := engine.Validate(preset.Input); len(violations) > 0 {
		return nil, &InvalidPresetError{Violations: violations}
	}
	return s.presetsRepo.Upsert(ctx, preset)
}

func (s *PresetsServiceImpl) Delete(ctx context.Context, name string) error {
	if s.presetsRepo == nil {
		return ErrRepositoryNotConfigured
	}
	if !model.ValidPresetName(name) {
		return ErrInvalidPresetName
	}
	return s.presetsRepo.Delete(ctx, name)
}
