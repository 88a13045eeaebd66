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

const eventCollectionName = "events"

// mongoEventRepository implements repository.EventRepository.
type mongoEventRepository struct {
	collection *mongo.Collection
}

// NewMongoEventRepository creates a new event log repository backed by MongoDB.
func NewMongoEventRepository(db *mongo.Database) repository.EventRepository {
	return &mongoEventRepository{
		collection: db.Collection(eventCollectionName),
	}
}

// Append inserts a new activity log entry. Entries are immutable once written.
func (r *mongoEventRepository) Append(ctx context.Context, event *domain.Event) (primitive.ObjectID, error) {
	if event.UserID == primitive.NilObjectID || event.EventType == "" || event.Date == "" {
		return primitive.NilObjectID, errors.New("event user ID, type, and date are required")
	}

	event.ID = primitive.NewObjectID()
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByDate retrieves all events logged for one planner day, oldest first.
func (r *mongoEventRepository) GetByDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.Event, error) {
	filter := bson.M{"userId": userID, "date": date}
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []domain.Event
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// EnsureEventIndexes creates necessary indexes for the events collection.
func EnsureEventIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
