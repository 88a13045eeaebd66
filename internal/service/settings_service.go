package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"plannerhq/planner-app/internal/domain"
	"plannerhq/planner-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrValidationFailed = errors.New("settings validation failed")
)

var weekdayKeys = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// --- Service Interface ---
type SettingsService interface {
	// Get returns the user's settings, or defaults when none are stored.
	Get(ctx context.Context, userID primitive.ObjectID) (*domain.Settings, error)
	// Update validates and stores the full settings document.
	Update(ctx context.Context, userID primitive.ObjectID, budgets map[string]int, categories map[string]string, hiddenSections []string) (*domain.Settings, error)
}

// --- Service Implementation ---

// settingsService implements the SettingsService interface.
type settingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new instance of settingsService.
func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) Get(ctx context.Context, userID primitive.ObjectID) (*domain.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DefaultSettings(userID), nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, userID primitive.ObjectID, budgets map[string]int, categories map[string]string, hiddenSections []string) (*domain.Settings, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}
	for key, minutes := range budgets {
		if !weekdayKeys[key] {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrValidationFailed, key)
		}
		if minutes <= 0 || minutes > 24*60 {
			return nil, fmt.Errorf("%w: budget for %s must be between 1 and 1440 minutes", ErrValidationFailed, key)
		}
	}
	for key := range categories {
		if !weekdayKeys[key] {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrValidationFailed, key)
		}
	}

	settings := &domain.Settings{
		UserID:              userID,
		TimeBudgets:         budgets,
		PreferredCategories: categories,
		HiddenSections:      hiddenSections,
		UpdatedAt:           time.Now().UTC(),
	}
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
