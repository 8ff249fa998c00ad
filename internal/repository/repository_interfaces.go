package repository

import (
	"context"

	"github.com/guttosm/mapsim/internal/domain/model"
)

// PresetsRepositoryInterface defines preset storage operations.
type PresetsRepositoryInterface interface {
	List(ctx context.Context, limit int) ([]model.Preset, error)
	Get(ctx context.Context, name string) (*model.Preset, error)
	Upsert(ctx context.Context, preset *model.Preset) (*model.Preset, error)
	Delete(ctx context.Context, name string) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
