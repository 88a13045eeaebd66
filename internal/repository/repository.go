package repository

import (
	"context"

	"plannerhq/planner-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// DayRepository persists per-user day records. Upsert replaces the whole
// document for (user, date); last writer wins by design.
type DayRepository interface {
	Upsert(ctx context.Context, rec *domain.DayRecord, schema domain.DaySchema) error
	GetByDate(ctx context.Context, userID primitive.ObjectID, date string, schema domain.DaySchema) (*domain.DayRecord, error)
	GetRange(ctx context.Context, userID primitive.ObjectID, from, to string, schema domain.DaySchema) ([]domain.DayRecord, error)
}

// EventRepository appends and reads activity log entries. Events are never
// updated or deleted.
type EventRepository interface {
	Append(ctx context.Context, event *domain.Event) (primitive.ObjectID, error)
	GetByDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.Event, error)
}

// SettingsRepository persists per-user planner preferences.
type SettingsRepository interface {
	Get(ctx context.Context, userID primitive.ObjectID) (*domain.Settings, error)
	Upsert(ctx context.Context, settings *domain.Settings) error
}

// TemplateRepository persists user-authored checklist templates, one
// document per (user, section).
type TemplateRepository interface {
	Upsert(ctx context.Context, template *domain.Template) error
	GetBySection(ctx context.Context, userID primitive.ObjectID, section string) (*domain.Template, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Template, error)
	Delete(ctx context.Context, userID primitive.ObjectID, section string) error
	ReplaceAll(ctx context.Context, userID primitive.ObjectID, templates []domain.Template) error
}

// PointsRepository persists the per-user daily points map.
type PointsRepository interface {
	Get(ctx context.Context, userID primitive.ObjectID) (*domain.PointsRecord, error)
	// IncrementDay adds delta to the given day's counter, creating the record
	// when absent. Implementations clamp the result at zero.
	IncrementDay(ctx context.Context, userID primitive.ObjectID, date string, delta int) error
}
