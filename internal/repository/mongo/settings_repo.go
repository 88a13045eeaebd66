package mongo

import (
	"context"
	"errors"
	"time"

	"plannerhq/planner-app/internal/domain"
	"plannerhq/planner-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsCollectionName = "settings"

// mongoSettingsRepository implements repository.SettingsRepository.
type mongoSettingsRepository struct {
	collection *mongo.Collection
}

// NewMongoSettingsRepository creates a new settings repository backed by MongoDB.
func NewMongoSettingsRepository(db *mongo.Database) repository.SettingsRepository {
	return &mongoSettingsRepository{
		collection: db.Collection(settingsCollectionName),
	}
}

// Get retrieves the settings document for one user.
func (r *mongoSettingsRepository) Get(ctx context.Context, userID primitive.ObjectID) (*domain.Settings, error) {
	var settings domain.Settings
	filter := bson.M{"userId": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// Upsert stores the settings document for a user, replacing any existing one.
func (r *mongoSettingsRepository) Upsert(ctx context.Context, settings *domain.Settings) error {
	if settings.UserID == primitive.NilObjectID {
		return errors.New("settings user ID is required")
	}

	settings.UpdatedAt = time.Now().UTC()

	// The equality filter seeds userId on the upsert insert.
	filter := bson.M{"userId": settings.UserID}
	update := bson.M{
		"$set": bson.M{
			"timeBudgets":         settings.TimeBudgets,
			"preferredCategories": settings.PreferredCategories,
			"hiddenSections":      settings.HiddenSections,
			"updatedAt":           settings.UpdatedAt,
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// EnsureSettingsIndexes creates necessary indexes for the settings collection.
func EnsureSettingsIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
