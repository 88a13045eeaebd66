package mongo

import (
	"context"
	"errors"
	"time"

	"plannerhq/planner-app/internal/domain"
	"plannerhq/planner-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dayCollectionName = "days"

// Persisted day documents are flat: each checklist section is stored under
// "<section>Checklist" and each time field under "<field>Time", next to the
// scalar metadata. The schema drives flattening both ways; no code infers
// meaning from key names.
const (
	checklistKeySuffix = "Checklist"
	timeKeySuffix      = "Time"
)

// mongoDayRepository implements repository.DayRepository.
type mongoDayRepository struct {
	collection *mongo.Collection
}

// NewMongoDayRepository creates a new day record repository backed by MongoDB.
func NewMongoDayRepository(db *mongo.Database) repository.DayRepository {
	return &mongoDayRepository{
		collection: db.Collection(dayCollectionName),
	}
}

// Upsert replaces the whole document for (user, date), creating it when
// absent. Last writer wins; there is no merging.
func (r *mongoDayRepository) Upsert(ctx context.Context, rec *domain.DayRecord, schema domain.DaySchema) error {
	if rec.UserID == primitive.NilObjectID || rec.Date == "" {
		return errors.New("day record user ID and date are required")
	}

	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	filter := bson.M{"userId": rec.UserID, "date": rec.Date}
	opts := options.Replace().SetUpsert(true)

	_, err := r.collection.ReplaceOne(ctx, filter, dayToDoc(rec, schema), opts)
	return err
}

// GetByDate retrieves one user's record for a single date.
func (r *mongoDayRepository) GetByDate(ctx context.Context, userID primitive.ObjectID, date string, schema domain.DaySchema) (*domain.DayRecord, error) {
	filter := bson.M{"userId": userID, "date": date}

	raw, err := r.collection.FindOne(ctx, filter).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return dayFromRaw(raw, schema)
}

// GetRange retrieves all records for dates in [from, to], sorted ascending.
// ISO date strings sort lexicographically, so a plain string range works.
func (r *mongoDayRepository) GetRange(ctx context.Context, userID primitive.ObjectID, from, to string, schema domain.DaySchema) ([]domain.DayRecord, error) {
	filter := bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": from, "$lte": to},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []domain.DayRecord
	for cursor.Next(ctx) {
		rec, err := dayFromRaw(cursor.Current, schema)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// dayToDoc flattens a day record into the persisted document shape. The _id
// is left out so ReplaceOne keeps the existing one (or mongo generates one
// on upsert).
func dayToDoc(rec *domain.DayRecord, schema domain.DaySchema) bson.M {
	doc := bson.M{
		"userId":    rec.UserID,
		"date":      rec.Date,
		"createdAt": rec.CreatedAt,
		"updatedAt": rec.UpdatedAt,
	}
	for _, section := range schema.ChecklistSections {
		items := rec.Checklists[section]
		if items == nil {
			items = []domain.ChecklistItem{}
		}
		doc[section+checklistKeySuffix] = items
	}
	for _, field := range schema.TimeFields {
		doc[field+timeKeySuffix] = rec.TimeSpent[field]
	}
	return doc
}

// dayFromRaw rebuilds a day record from the flat document. Sections or time
// fields missing from the document come back empty rather than nil.
func dayFromRaw(raw bson.Raw, schema domain.DaySchema) (*domain.DayRecord, error) {
	var base struct {
		ID        primitive.ObjectID `bson:"_id,omitempty"`
		UserID    primitive.ObjectID `bson:"userId"`
		Date      string             `bson:"date"`
		CreatedAt time.Time          `bson:"createdAt"`
		UpdatedAt time.Time          `bson:"updatedAt"`
	}
	if err := bson.Unmarshal(raw, &base); err != nil {
		return nil, err
	}

	rec := domain.NewDayRecord(base.UserID, base.Date, schema)
	rec.ID = base.ID
	rec.CreatedAt = base.CreatedAt
	rec.UpdatedAt = base.UpdatedAt

	for _, section := range schema.ChecklistSections {
		val := raw.Lookup(section + checklistKeySuffix)
		if val.Type != bsontype.Array {
			continue
		}
		var items []domain.ChecklistItem
		if err := val.Unmarshal(&items); err != nil {
			return nil, err
		}
		if items != nil {
			rec.Checklists[section] = items
		}
	}

	for _, field := range schema.TimeFields {
		val := raw.Lookup(field + timeKeySuffix)
		if minutes, ok := val.AsInt64OK(); ok {
			rec.TimeSpent[field] = int(minutes)
		}
	}

	return rec, nil
}

// EnsureDayIndexes creates necessary indexes for the days collection.
func EnsureDayIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// One document per user per date.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
