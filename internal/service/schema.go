package service

import (
	"context"

	"plannerhq/planner-app/internal/domain"
	"plannerhq/planner-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// schemaForUser builds the user's effective day schema: the built-in
// sections and time fields, plus any custom template sections appended in
// repository order.
func schemaForUser(ctx context.Context, templateRepo repository.TemplateRepository, userID primitive.ObjectID) (domain.DaySchema, error) {
	schema := domain.DefaultSchema()

	templates, err := templateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return schema, err
	}
	for _, tpl := range templates {
		if !schema.HasSection(tpl.Section) {
			schema.ChecklistSections = append(schema.ChecklistSections, tpl.Section)
		}
	}
	return schema, nil
}
