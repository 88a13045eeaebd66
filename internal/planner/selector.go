package planner

import (
	"math/rand"
	"strings"

	"plannerhq/planner-app/internal/domain"
)

// ExerciseSelection is the derived result of fitting a pool of exercises
// under a time budget. It is recomputed whenever the budget or category
// preference changes and is never persisted itself; only the chosen exercise
// list is written back into the day record.
type ExerciseSelection struct {
	Exercises            []domain.ChecklistItem `json:"exercises"`
	TotalTimeMinutes     float64                `json:"totalTimeMinutes"`
	TimeLimitMinutes     int                    `json:"timeLimitMinutes"`
	RemainingTimeMinutes float64                `json:"remainingTimeMinutes"`
	CategoryFilter       string                 `json:"categoryFilter,omitempty"`
	TotalAvailable       int                    `json:"totalAvailable"`
	SelectedCount        int                    `json:"selectedCount"`
}

// SelectWithinBudget picks a subset of pool whose estimated total time stays
// within budgetMinutes.
//
// When preferredCategory is set the pool is filtered by exact
// case-insensitive category match first; a filter that matches nothing falls
// back to the full pool so the user is never left without a workout (a
// typo'd category is silently ignored). The working pool is shuffled with
// rng when given, so a fixed seed yields a reproducible selection and a nil
// rng keeps the input order.
//
// The pool is split into warmup, main and cooldown buckets, then filled
// greedily first-fit: one warmup if it fits, the main bucket in order, one
// cooldown last. This is deliberately not a knapsack optimization; the
// result depends on shuffle order, and no item is ever partially included.
func SelectWithinBudget(pool []domain.ChecklistItem, budgetMinutes int, preferredCategory string, rng *rand.Rand) ExerciseSelection {
	working := pool
	if preferredCategory != "" {
		if filtered := filterByCategory(pool, preferredCategory); len(filtered) > 0 {
			working = filtered
		}
	}

	working = append([]domain.ChecklistItem(nil), working...)
	if rng != nil {
		rng.Shuffle(len(working), func(i, j int) {
			working[i], working[j] = working[j], working[i]
		})
	}

	var warmups, mains, cooldowns []domain.ChecklistItem
	for _, item := range working {
		switch {
		case isWarmup(item):
			warmups = append(warmups, item)
		case isCooldown(item):
			cooldowns = append(cooldowns, item)
		default:
			mains = append(mains, item)
		}
	}

	selection := ExerciseSelection{
		Exercises:        []domain.ChecklistItem{},
		TimeLimitMinutes: budgetMinutes,
		CategoryFilter:   preferredCategory,
		TotalAvailable:   len(working),
	}

	budget := float64(budgetMinutes)
	var total float64
	take := func(item domain.ChecklistItem) {
		estimate := EstimateMinutes(item)
		if total+estimate > budget {
			return
		}
		selection.Exercises = append(selection.Exercises, item)
		total += estimate
	}

	if len(warmups) > 0 {
		take(warmups[0])
	}
	for _, item := range mains {
		take(item)
	}
	if len(cooldowns) > 0 {
		take(cooldowns[0])
	}

	selection.TotalTimeMinutes = round1(total)
	selection.RemainingTimeMinutes = round1(budget - total)
	selection.SelectedCount = len(selection.Exercises)
	return selection
}

func filterByCategory(pool []domain.ChecklistItem, category string) []domain.ChecklistItem {
	var filtered []domain.ChecklistItem
	for _, item := range pool {
		if strings.EqualFold(item.Category, category) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// A warmup is a cardio exercise whose name mentions warming up; a cooldown
// is a mobility exercise whose name mentions stretching.
func isWarmup(item domain.ChecklistItem) bool {
	return strings.EqualFold(item.Category, "cardio") &&
		strings.Contains(strings.ToLower(item.Name), "warm")
}

func isCooldown(item domain.ChecklistItem) bool {
	return strings.EqualFold(item.Category, "mobility") &&
		strings.Contains(strings.ToLower(item.Name), "stretch")
}
