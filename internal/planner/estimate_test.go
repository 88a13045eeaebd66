package planner

import (
	"testing"

	"plannerhq/planner-app/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestEstimateMinutes_DurationWins(t *testing.T) {
	item := domain.ChecklistItem{
		Name:     "Rowing",
		Duration: "15 min",
		Reps:     "100",
		Sets:     "5",
		Category: "cardio",
	}
	// An explicit duration overrides any reps/sets derivation.
	require.Equal(t, 15.0, EstimateMinutes(item))
}

func TestEstimateMinutes_RepsAndSets(t *testing.T) {
	item := domain.ChecklistItem{
		Name:     "Squats",
		Reps:     "10",
		Sets:     "3",
		Category: "legs",
	}
	// 10 reps * 4s = 40s per set, 3 sets = 2 min, plus 1.25 min rest twice.
	require.Equal(t, 4.5, EstimateMinutes(item))
}

func TestEstimateMinutes_CategoryRates(t *testing.T) {
	cases := []struct {
		category string
		want     float64
	}{
		{"cardio", 10},    // 10 reps * 60s
		{"stretch", 0.8},  // 10 reps * 5s = 50s
		{"mobility", 0.8},
		{"legs", 0.7}, // 10 reps * 4s = 40s
		{"back", 0.7},
		{"arms", 0.5}, // default 3s/rep
		{"", 0.5},
	}
	for _, tc := range cases {
		item := domain.ChecklistItem{Name: "x", Reps: "10", Category: tc.category}
		require.Equal(t, tc.want, EstimateMinutes(item), "category %q", tc.category)
	}
}

func TestEstimateMinutes_TimedReps(t *testing.T) {
	item := domain.ChecklistItem{
		Name:     "Plank",
		Reps:     "30 sec",
		Sets:     "2",
		Category: "core",
	}
	// 0.5 min per set * 2 + 1.25 min rest.
	require.Equal(t, 2.3, EstimateMinutes(item))
}

func TestEstimateMinutes_MalformedInputDefaults(t *testing.T) {
	item := domain.ChecklistItem{Name: "Mystery", Reps: "some", Sets: "???"}
	// Falls back to 10 reps, 1 set, default 3s/rep.
	require.Equal(t, 0.5, EstimateMinutes(item))
	require.GreaterOrEqual(t, EstimateMinutes(domain.ChecklistItem{}), 0.0)
}

func TestEstimateTotalMinutes(t *testing.T) {
	items := []domain.ChecklistItem{
		{Name: "a", Duration: "10 min"},
		{Name: "b", Duration: "5-10 min"},
	}
	require.Equal(t, 17.5, EstimateTotalMinutes(items))
	require.Equal(t, 0.0, EstimateTotalMinutes(nil))
}
