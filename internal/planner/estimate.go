package planner

import (
	"regexp"
	"strconv"
	"strings"

	"plannerhq/planner-app/internal/domain"
)

// Per-repetition second estimates by exercise category, plus the rest pause
// inserted between sets.
const (
	secondsPerRepDefault = 3.0
	secondsPerRepCardio  = 60.0
	secondsPerRepStretch = 5.0
	secondsPerRepHeavy   = 4.0 // legs, back

	restMinutesBetweenSets = 1.25
	defaultRepsPerSet      = 10
)

var intPattern = regexp.MustCompile(`\d+`)

// EstimateMinutes estimates how long a single exercise takes, in minutes.
//
// An explicit duration field always wins over rep/set derivation. When reps
// itself carries a time unit ("30 sec", "5-10 min" holds) it is parsed as a
// duration per set. Otherwise the rep count (default 10 when unparseable) is
// multiplied by a per-repetition second estimate that varies by category.
// Rest between sets is added once at the end. The result is rounded to one
// decimal and never negative; malformed input falls back to defaults rather
// than failing.
func EstimateMinutes(item domain.ChecklistItem) float64 {
	if strings.TrimSpace(item.Duration) != "" {
		return clampRound(ParseDuration(item.Duration))
	}

	sets := parseCount(item.Sets, 1)
	if sets < 1 {
		sets = 1
	}

	var perSetMinutes float64
	if containsTimeUnit(item.Reps) {
		perSetMinutes = ParseDuration(item.Reps)
	} else {
		reps := parseCount(item.Reps, defaultRepsPerSet)
		perSetMinutes = float64(reps) * secondsPerRep(item.Category) / 60
	}

	total := perSetMinutes*float64(sets) + restMinutesBetweenSets*float64(sets-1)
	return clampRound(total)
}

// EstimateTotalMinutes sums the estimates for a list of exercises.
func EstimateTotalMinutes(items []domain.ChecklistItem) float64 {
	var total float64
	for _, item := range items {
		total += EstimateMinutes(item)
	}
	return round1(total)
}

func secondsPerRep(category string) float64 {
	switch strings.ToLower(category) {
	case "cardio":
		return secondsPerRepCardio
	case "stretch", "mobility":
		return secondsPerRepStretch
	case "legs", "back":
		return secondsPerRepHeavy
	default:
		return secondsPerRepDefault
	}
}

// parseCount extracts the first integer from free text, falling back when
// nothing parseable is found.
func parseCount(text string, fallback int) int {
	m := intPattern.FindString(text)
	if m == "" {
		return fallback
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func clampRound(v float64) float64 {
	if v < 0 {
		return 0
	}
	return round1(v)
}
