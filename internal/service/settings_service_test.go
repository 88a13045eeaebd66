package service

import (
	"context"
	"testing"
	"time"

	"plannerhq/planner-app/internal/domain"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSettingsGet_DefaultsWhenUnset(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})
	userID := primitive.NewObjectID()

	settings, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	require.Empty(t, settings.TimeBudgets)
	require.Equal(t, domain.DefaultWeekdayBudget, settings.BudgetFor(time.Monday))
	require.Equal(t, domain.DefaultWeekendBudget, settings.BudgetFor(time.Saturday))
}

func TestSettingsUpdate_RoundTrip(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})
	userID := primitive.NewObjectID()
	ctx := context.Background()

	_, err := svc.Update(ctx, userID,
		map[string]int{"monday": 45, "saturday": 120},
		map[string]string{"monday": "legs"},
		[]string{"goals"},
	)
	require.NoError(t, err)

	settings, err := svc.Get(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 45, settings.TimeBudgets["monday"])
	require.Equal(t, 120, settings.TimeBudgets["saturday"])
	require.Equal(t, "legs", settings.PreferredCategories["monday"])
	require.Equal(t, []string{"goals"}, settings.HiddenSections)
}

func TestSettingsUpdate_Validation(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})
	userID := primitive.NewObjectID()
	ctx := context.Background()

	_, err := svc.Update(ctx, userID, map[string]int{"mondayy": 45}, nil, nil)
	require.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.Update(ctx, userID, map[string]int{"monday": 0}, nil, nil)
	require.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.Update(ctx, userID, map[string]int{"monday": 2000}, nil, nil)
	require.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.Update(ctx, userID, nil, map[string]string{"someday": "legs"}, nil)
	require.ErrorIs(t, err, ErrValidationFailed)
}
