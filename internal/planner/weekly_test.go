package planner

import (
	"testing"

	"plannerhq/planner-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stretchr/testify/require"
)

func TestSummarizeDay(t *testing.T) {
	schema := domain.DefaultSchema()
	rec := domain.NewDayRecord(primitive.NilObjectID, "2025-03-10", schema)
	rec.Checklists[domain.SectionMorning] = []domain.ChecklistItem{
		{ID: "1", Name: "Make bed", Completed: true},
		{ID: "2", Name: "Meditate", Completed: false},
	}
	rec.Checklists[domain.SectionWorkout] = []domain.ChecklistItem{
		{ID: "3", Name: "Squats", Category: "legs", Completed: true},
		{ID: "4", Name: "Lunges", Category: "legs", Completed: false},
		{ID: "5", Name: "Warm up jog", Category: "cardio", Completed: true},
	}
	rec.TimeSpent[domain.TimeFieldWork] = 120
	rec.TimeSpent[domain.TimeFieldExercise] = 45

	summary := SummarizeDay(rec, schema)
	require.Equal(t, "2025-03-10", summary.Date)
	require.Equal(t, 5, summary.TotalTasks)
	require.Equal(t, 3, summary.CompletedTasks)
	require.Equal(t, 60.0, summary.CompletionRate)
	require.Equal(t, 165, summary.TimeSpent)
	require.Equal(t, CategoryCount{Total: 2, Completed: 1}, summary.Categories["legs"])
	require.Equal(t, CategoryCount{Total: 1, Completed: 1}, summary.Categories["cardio"])
}

func TestSummarizeDay_IgnoresSectionsOutsideSchema(t *testing.T) {
	schema := domain.DaySchema{
		ChecklistSections: []string{domain.SectionMorning},
		TimeFields:        []string{domain.TimeFieldWork},
	}
	rec := domain.NewDayRecord(primitive.NilObjectID, "2025-03-10", domain.DefaultSchema())
	rec.Checklists[domain.SectionWorkout] = []domain.ChecklistItem{
		{ID: "1", Name: "Squats", Completed: true},
	}
	rec.TimeSpent[domain.TimeFieldExercise] = 30

	summary := SummarizeDay(rec, schema)
	require.Equal(t, 0, summary.TotalTasks)
	require.Equal(t, 0, summary.TimeSpent)
}

func TestSummarizeDay_Nil(t *testing.T) {
	summary := SummarizeDay(nil, domain.DefaultSchema())
	require.Equal(t, 0, summary.TotalTasks)
	require.Equal(t, 0.0, summary.CompletionRate)
	require.NotNil(t, summary.Categories)
}

func TestSummarizeWeek_EmptyDaysNoDivideByZero(t *testing.T) {
	days := make([]DaySummary, 7)
	week := SummarizeWeek(days)
	require.Equal(t, 0, week.TotalTasks)
	require.Equal(t, 0.0, week.CompletionRate)
	require.Empty(t, week.CategoryTotals)
}

func TestSummarizeWeek_MergesCategoriesAndTotals(t *testing.T) {
	days := []DaySummary{
		{
			Date:           "2025-03-10",
			TotalTasks:     4,
			CompletedTasks: 3,
			TimeSpent:      60,
			Categories:     map[string]CategoryCount{"legs": {Total: 2, Completed: 1}},
		},
		{
			Date:           "2025-03-11",
			TotalTasks:     2,
			CompletedTasks: 1,
			TimeSpent:      30,
			Categories: map[string]CategoryCount{
				"legs":   {Total: 1, Completed: 1},
				"cardio": {Total: 1, Completed: 0},
			},
		},
	}
	week := SummarizeWeek(days)
	require.Equal(t, "2025-03-10", week.StartDate)
	require.Equal(t, 6, week.TotalTasks)
	require.Equal(t, 4, week.CompletedTasks)
	require.Equal(t, 66.7, week.CompletionRate)
	require.Equal(t, 90, week.TotalTime)
	require.Equal(t, CategoryCount{Total: 3, Completed: 2}, week.CategoryTotals["legs"])
	require.Equal(t, CategoryCount{Total: 1, Completed: 0}, week.CategoryTotals["cardio"])
}
