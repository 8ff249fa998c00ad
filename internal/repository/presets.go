package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/mapsim/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrPresetNotFound is returned when no preset has the requested name.
var ErrPresetNotFound = errors.New("preset not found")

// PresetsRepository stores named package designs.
type PresetsRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewPresetsRepository creates a new presets repository.
func NewPresetsRepository(db *MongoDB) *PresetsRepository {
	return &PresetsRepository{
		collection: db.Presets,
		now:        time.Now,
	}
}

// List returns presets ordered by name. limit <= 0 means no limit.
func (r *PresetsRepository) List(ctx context.Context, limit int) ([]model.Preset, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	presets := []model.Preset{}
	if err := cursor.All(ctx, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}

// Get returns the preset with the given name.
func (r *PresetsRepository) Get(ctx context.Context, name string) (*model.Preset, error) {
	var preset model.Preset
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&preset)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPresetNotFound
	}
	if err != nil {
		return nil, err
	}
	return &preset, nil
}

// Upsert creates or replaces the preset named preset.Name and returns the stored document.
// CreatedAt is kept from the first write.
func (r *PresetsRepository) Upsert(ctx context.Context, preset *model.Preset) (*model.Preset, error) {
	now := r.now().UTC().Truncate(time.Millisecond)
	update := bson.M{
		"$set": bson.M{
			"description": preset.Description,
			"input":       preset.Input,
			"updated_at":  now,
		},
		"$setOnInsert": bson.M{
			"name":       preset.Name,
			"created_at": now,
		},
	}

	var stored model.Preset
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"name": preset.Name},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&stored)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// Delete removes the preset with the given name.
func (r *PresetsRepository) Delete(ctx context.Context, name string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrPresetNotFound
	}
	return nil
}

// Count returns the number of stored presets.
func (r *PresetsRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
