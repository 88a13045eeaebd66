package planner

import (
	"math/rand"
	"testing"

	"plannerhq/planner-app/internal/domain"

	"github.com/stretchr/testify/require"
)

func testPool() []domain.ChecklistItem {
	return []domain.ChecklistItem{
		{ID: "w1", Name: "Warm up jog", Category: "cardio", Duration: "5 min"},
		{ID: "m1", Name: "Squats", Category: "legs", Duration: "7 min"},
		{ID: "m2", Name: "Push ups", Category: "chest", Duration: "4 min"},
		{ID: "m3", Name: "Deadlifts", Category: "back", Duration: "9 min"},
		{ID: "m4", Name: "Lunges", Category: "legs", Duration: "6 min"},
		{ID: "c1", Name: "Full body stretch", Category: "mobility", Duration: "5 min"},
	}
}

func TestSelectWithinBudget_NeverExceedsBudget(t *testing.T) {
	pool := testPool()
	for _, budget := range []int{0, 5, 10, 15, 25, 40, 60} {
		for seed := int64(0); seed < 20; seed++ {
			rng := rand.New(rand.NewSource(seed))
			sel := SelectWithinBudget(pool, budget, "", rng)
			require.LessOrEqual(t, sel.TotalTimeMinutes, float64(budget),
				"budget %d seed %d", budget, seed)
			require.Len(t, sel.Exercises, sel.SelectedCount)
		}
	}
}

func TestSelectWithinBudget_GenerousBudgetTakesEverything(t *testing.T) {
	pool := testPool()
	sel := SelectWithinBudget(pool, 120, "", rand.New(rand.NewSource(7)))

	require.Equal(t, len(pool), sel.SelectedCount)
	seen := map[string]int{}
	for _, item := range sel.Exercises {
		seen[item.ID]++
	}
	for _, item := range pool {
		require.Equal(t, 1, seen[item.ID], "item %s picked exactly once", item.ID)
	}
	require.Equal(t, 36.0, sel.TotalTimeMinutes)
	require.Equal(t, 84.0, sel.RemainingTimeMinutes)
}

func TestSelectWithinBudget_EmptyPool(t *testing.T) {
	sel := SelectWithinBudget(nil, 45, "", nil)
	require.Empty(t, sel.Exercises)
	require.Equal(t, 0, sel.TotalAvailable)
	require.Equal(t, 45.0, sel.RemainingTimeMinutes)
}

func TestSelectWithinBudget_ZeroBudget(t *testing.T) {
	sel := SelectWithinBudget(testPool(), 0, "", nil)
	require.Empty(t, sel.Exercises)
	require.Equal(t, 0.0, sel.TotalTimeMinutes)
}

func TestSelectWithinBudget_CategoryFilter(t *testing.T) {
	sel := SelectWithinBudget(testPool(), 120, "LEGS", nil)
	require.Equal(t, 2, sel.TotalAvailable)
	for _, item := range sel.Exercises {
		require.Equal(t, "legs", item.Category)
	}
	require.Equal(t, "LEGS", sel.CategoryFilter)
}

func TestSelectWithinBudget_UnknownCategoryFallsBack(t *testing.T) {
	// A category matching nothing silently falls back to the full pool
	// instead of returning an empty selection.
	sel := SelectWithinBudget(testPool(), 120, "tpyo", nil)
	require.Equal(t, len(testPool()), sel.TotalAvailable)
	require.NotEmpty(t, sel.Exercises)
	require.Equal(t, "tpyo", sel.CategoryFilter)
}

func TestSelectWithinBudget_DeterministicForSeed(t *testing.T) {
	pool := testPool()
	a := SelectWithinBudget(pool, 20, "", rand.New(rand.NewSource(42)))
	b := SelectWithinBudget(pool, 20, "", rand.New(rand.NewSource(42)))
	require.Equal(t, a, b)
}

func TestSelectWithinBudget_OrderPreservedWithoutRng(t *testing.T) {
	pool := testPool()
	sel := SelectWithinBudget(pool, 120, "", nil)
	// warmup first, mains in pool order, cooldown last
	require.Equal(t, "w1", sel.Exercises[0].ID)
	require.Equal(t, "c1", sel.Exercises[len(sel.Exercises)-1].ID)
	require.Equal(t, []string{"m1", "m2", "m3", "m4"}, ids(sel.Exercises[1:5]))
}

func TestSelectWithinBudget_TightBudgetPrefersWarmup(t *testing.T) {
	sel := SelectWithinBudget(testPool(), 5, "", nil)
	require.Equal(t, []string{"w1"}, ids(sel.Exercises))
}

func ids(items []domain.ChecklistItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
