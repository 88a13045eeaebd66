package service

import (
	"context"
	"testing"
	"time"

	"plannerhq/planner-app/internal/domain"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newStatsServiceForTest(now time.Time) (*statsService, *fakePointsRepo, *fakeDayRepo) {
	pointsRepo := newFakePointsRepo()
	dayRepo := newFakeDayRepo()
	svc := &statsService{
		pointsRepo:   pointsRepo,
		dayRepo:      dayRepo,
		templateRepo: newFakeTemplateRepo(),
		now:          func() time.Time { return now },
	}
	return svc, pointsRepo, dayRepo
}

func TestStatsPoints_EmptyWithoutRecord(t *testing.T) {
	svc, _, _ := newStatsServiceForTest(time.Now())

	points, err := svc.Points(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	require.Empty(t, points)
}

func TestStatsStreaks(t *testing.T) {
	today := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	svc, pointsRepo, _ := newStatsServiceForTest(today)
	userID := primitive.NewObjectID()

	ctx := context.Background()
	require.NoError(t, pointsRepo.IncrementDay(ctx, userID, "2026-08-29", 2))
	require.NoError(t, pointsRepo.IncrementDay(ctx, userID, "2026-08-30", 1))
	require.NoError(t, pointsRepo.IncrementDay(ctx, userID, "2026-08-31", 3))

	streaks, err := svc.Streaks(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 3, streaks.Current)
	require.Equal(t, 3, streaks.Longest)
}

func TestStatsWeekSummary(t *testing.T) {
	svc, _, dayRepo := newStatsServiceForTest(time.Now())
	userID := primitive.NewObjectID()
	ctx := context.Background()
	schema := domain.DefaultSchema()

	monday := domain.NewDayRecord(userID, "2026-08-31", schema)
	monday.Checklists[domain.SectionMorning] = []domain.ChecklistItem{
		{ID: "a", Name: "A", Completed: true, Category: "mobility"},
		{ID: "b", Name: "B"},
	}
	monday.TimeSpent[domain.TimeFieldWork] = 120
	require.NoError(t, dayRepo.Upsert(ctx, monday, schema))

	wednesday := domain.NewDayRecord(userID, "2026-09-02", schema)
	wednesday.Checklists[domain.SectionGoals] = []domain.ChecklistItem{
		{ID: "c", Name: "C", Completed: true},
	}
	wednesday.TimeSpent[domain.TimeFieldExercise] = 30
	require.NoError(t, dayRepo.Upsert(ctx, wednesday, schema))

	week, err := svc.WeekSummary(ctx, userID, "2026-08-31")
	require.NoError(t, err)

	require.Equal(t, "2026-08-31", week.StartDate)
	require.Len(t, week.Days, 7)
	require.Equal(t, 3, week.TotalTasks)
	require.Equal(t, 2, week.CompletedTasks)
	require.InDelta(t, 66.7, week.CompletionRate, 0.01)
	require.Equal(t, 150, week.TotalTime)
	require.Equal(t, 1, week.CategoryTotals["mobility"].Completed)

	// Days without a record still appear, dated and empty.
	require.Equal(t, "2026-09-01", week.Days[1].Date)
	require.Zero(t, week.Days[1].TotalTasks)
}

func TestStatsWeekSummary_InvalidDate(t *testing.T) {
	svc, _, _ := newStatsServiceForTest(time.Now())

	_, err := svc.WeekSummary(context.Background(), primitive.NewObjectID(), "next week")
	require.ErrorIs(t, err, ErrInvalidDate)
}
