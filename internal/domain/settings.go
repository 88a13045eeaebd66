package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Default workout time budgets in minutes.
const (
	DefaultWeekdayBudget = 60
	DefaultWeekendBudget = 90
)

// Settings holds a user's planner preferences. Maps are keyed by lowercase
// English weekday name ("monday" .. "sunday"); missing keys fall back to
// defaults.
type Settings struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID              primitive.ObjectID `bson:"userId" json:"userId"`
	TimeBudgets         map[string]int     `bson:"timeBudgets,omitempty" json:"timeBudgets,omitempty"`                 // minutes per weekday
	PreferredCategories map[string]string  `bson:"preferredCategories,omitempty" json:"preferredCategories,omitempty"` // category per weekday
	HiddenSections      []string           `bson:"hiddenSections,omitempty" json:"hiddenSections,omitempty"`           // sections the UI should not render
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DefaultSettings returns settings with no overrides; lookups resolve to the
// weekday/weekend budget defaults and no preferred category.
func DefaultSettings(userID primitive.ObjectID) *Settings {
	return &Settings{
		UserID:              userID,
		TimeBudgets:         map[string]int{},
		PreferredCategories: map[string]string{},
	}
}

// WeekdayKey maps a time.Weekday to the settings map key.
func WeekdayKey(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// BudgetFor returns the workout time budget in minutes for the given
// weekday: the user override when one is set and positive, otherwise 60 for
// Monday-Friday and 90 for the weekend.
func (s *Settings) BudgetFor(d time.Weekday) int {
	if s != nil {
		if b, ok := s.TimeBudgets[WeekdayKey(d)]; ok && b > 0 {
			return b
		}
	}
	if d == time.Saturday || d == time.Sunday {
		return DefaultWeekendBudget
	}
	return DefaultWeekdayBudget
}

// CategoryFor returns the preferred exercise category for the given weekday,
// or "" when none is configured.
func (s *Settings) CategoryFor(d time.Weekday) string {
	if s == nil {
		return ""
	}
	return s.PreferredCategories[WeekdayKey(d)]
}
