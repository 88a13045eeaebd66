package planner

import (
	"sort"
	"time"

	"plannerhq/planner-app/internal/domain"
)

// StreakState holds the derived streak counters. It is always recomputed
// from the daily points map and never stored.
type StreakState struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// ComputeStreaks derives the current and longest streaks from a map of ISO
// date -> points.
//
// Current walks backward day by day from today and counts days with a
// positive value; a zero or missing entry for today yields 0.
//
// Longest is the longest run of positive values over the keys in sorted
// order. It intentionally does not check that neighbouring keys are
// consecutive calendar days, so a sparse map with gaps between positive
// entries counts as one unbroken run. Longest is never reported below
// Current.
func ComputeStreaks(days map[string]int, today time.Time) StreakState {
	var state StreakState

	for day := today; days[day.Format(domain.DateLayout)] > 0; day = day.AddDate(0, 0, -1) {
		state.Current++
	}

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	run := 0
	for _, k := range keys {
		if days[k] > 0 {
			run++
			if run > state.Longest {
				state.Longest = run
			}
		} else {
			run = 0
		}
	}

	if state.Current > state.Longest {
		state.Longest = state.Current
	}
	return state
}
