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

const templateCollectionName = "templates"

// mongoTemplateRepository implements repository.TemplateRepository.
type mongoTemplateRepository struct {
	collection *mongo.Collection
}

// NewMongoTemplateRepository creates a new checklist template repository
// backed by MongoDB.
func NewMongoTemplateRepository(db *mongo.Database) repository.TemplateRepository {
	return &mongoTemplateRepository{
		collection: db.Collection(templateCollectionName),
	}
}

// Upsert stores the template for (user, section), replacing any existing one.
func (r *mongoTemplateRepository) Upsert(ctx context.Context, template *domain.Template) error {
	if template.UserID == primitive.NilObjectID || template.Section == "" {
		return errors.New("template user ID and section are required")
	}

	now := time.Now().UTC()
	template.UpdatedAt = now

	filter := bson.M{"userId": template.UserID, "section": template.Section}
	items := template.Items
	if items == nil {
		items = []domain.ChecklistItem{}
	}
	// userId and section are seeded from the equality filter on insert.
	update := bson.M{
		"$set": bson.M{
			"items":     items,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// GetBySection retrieves one user's template for a section.
func (r *mongoTemplateRepository) GetBySection(ctx context.Context, userID primitive.ObjectID, section string) (*domain.Template, error) {
	var template domain.Template
	filter := bson.M{"userId": userID, "section": section}

	err := r.collection.FindOne(ctx, filter).Decode(&template)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}

// GetByUserID retrieves all templates belonging to a user, sorted by section.
func (r *mongoTemplateRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Template, error) {
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "section", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []domain.Template
	if err = cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

// Delete removes one user's template for a section.
func (r *mongoTemplateRepository) Delete(ctx context.Context, userID primitive.ObjectID, section string) error {
	filter := bson.M{"userId": userID, "section": section}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// ReplaceAll swaps a user's entire template set, used by import. Delete and
// insert are not transactional; an import landing between the two would be
// lost, which matches the product's last-writer-wins stance.
func (r *mongoTemplateRepository) ReplaceAll(ctx context.Context, userID primitive.ObjectID, templates []domain.Template) error {
	if userID == primitive.NilObjectID {
		return errors.New("user ID is required")
	}

	if _, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return err
	}
	if len(templates) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, len(templates))
	for i := range templates {
		templates[i].ID = primitive.NewObjectID()
		templates[i].UserID = userID
		templates[i].CreatedAt = now
		templates[i].UpdatedAt = now
		docs[i] = templates[i]
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// EnsureTemplateIndexes creates necessary indexes for the templates collection.
func EnsureTemplateIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "section", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
