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

const pointsCollectionName = "points"

// mongoPointsRepository implements repository.PointsRepository.
type mongoPointsRepository struct {
	collection *mongo.Collection
}

// NewMongoPointsRepository creates a new daily points repository backed by MongoDB.
func NewMongoPointsRepository(db *mongo.Database) repository.PointsRepository {
	return &mongoPointsRepository{
		collection: db.Collection(pointsCollectionName),
	}
}

// Get retrieves the points record for one user. The returned Days map is
// never nil.
func (r *mongoPointsRepository) Get(ctx context.Context, userID primitive.ObjectID) (*domain.PointsRecord, error) {
	var record domain.PointsRecord
	filter := bson.M{"userId": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if record.Days == nil {
		record.Days = map[string]int{}
	}
	return &record, nil
}

// IncrementDay adds delta to the counter for one day, creating the record
// when absent and clamping the result at zero. Uncompleting more tasks than
// were completed can therefore never drive a day negative.
func (r *mongoPointsRepository) IncrementDay(ctx context.Context, userID primitive.ObjectID, date string, delta int) error {
	if userID == primitive.NilObjectID || date == "" {
		return errors.New("user ID and date are required")
	}

	dayKey := "days." + date
	now := time.Now().UTC()
	filter := bson.M{"userId": userID}
	opts := options.Update().SetUpsert(true)

	// The equality filter seeds userId on the upsert insert.
	update := bson.M{
		"$inc": bson.M{dayKey: delta},
		"$set": bson.M{"updatedAt": now},
	}
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return err
	}

	// Clamp: $max raises the counter back to zero if the increment drove it
	// below.
	clamp := bson.M{"$max": bson.M{dayKey: 0}}
	_, err := r.collection.UpdateOne(ctx, filter, clamp)
	return err
}

// EnsurePointsIndexes creates necessary indexes for the points collection.
func EnsurePointsIndexes(ctx context.Context, collection *mongo.Collection) {
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
