package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the canonical ISO date format used for day keys everywhere
// (day records, events, points).
const DateLayout = "2006-01-02"

// DaySchema is the explicit list of checklist sections and time fields a day
// record carries. All aggregation walks this schema; nothing in the codebase
// infers meaning from field names at runtime. The persisted document still
// uses the "<section>Checklist" / "<field>Time" key convention so older data
// remains readable.
type DaySchema struct {
	ChecklistSections []string `bson:"checklistSections" json:"checklistSections"`
	TimeFields        []string `bson:"timeFields" json:"timeFields"`
}

// DefaultSchema returns the built-in day layout: four checklist sections and
// two tracked time fields. Custom templates may add sections on top.
func DefaultSchema() DaySchema {
	return DaySchema{
		ChecklistSections: []string{SectionMorning, SectionEvening, SectionWorkout, SectionGoals},
		TimeFields:        []string{TimeFieldWork, TimeFieldExercise},
	}
}

// Built-in section and time field names.
const (
	SectionMorning = "morning"
	SectionEvening = "evening"
	SectionWorkout = "workout"
	SectionGoals   = "goals"

	TimeFieldWork     = "work"
	TimeFieldExercise = "exercise"
)

// HasSection reports whether name is one of the schema's checklist sections.
func (s DaySchema) HasSection(name string) bool {
	for _, sec := range s.ChecklistSections {
		if sec == name {
			return true
		}
	}
	return false
}

// HasTimeField reports whether name is one of the schema's time fields.
func (s DaySchema) HasTimeField(name string) bool {
	for _, f := range s.TimeFields {
		if f == name {
			return true
		}
	}
	return false
}

// DayRecord is one user's planner state for a single calendar day: each
// schema section's checklist plus minutes spent per time field.
type DayRecord struct {
	ID         primitive.ObjectID         `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID         `bson:"userId" json:"userId"`
	Date       string                     `bson:"date" json:"date"` // DateLayout
	Checklists map[string][]ChecklistItem `bson:"checklists" json:"checklists"`
	TimeSpent  map[string]int             `bson:"timeSpent" json:"timeSpent"` // minutes per time field
	CreatedAt  time.Time                  `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time                  `bson:"updatedAt" json:"updatedAt"`
}

// NewDayRecord builds an empty record for the given date with every schema
// section present (empty, not nil) so handlers never see missing keys.
func NewDayRecord(userID primitive.ObjectID, date string, schema DaySchema) *DayRecord {
	checklists := make(map[string][]ChecklistItem, len(schema.ChecklistSections))
	for _, sec := range schema.ChecklistSections {
		checklists[sec] = []ChecklistItem{}
	}
	timeSpent := make(map[string]int, len(schema.TimeFields))
	for _, f := range schema.TimeFields {
		timeSpent[f] = 0
	}
	return &DayRecord{
		UserID:     userID,
		Date:       date,
		Checklists: checklists,
		TimeSpent:  timeSpent,
	}
}

// Item returns a pointer to the item with the given id inside a section, or
// nil when the section or item does not exist.
func (d *DayRecord) Item(section, itemID string) *ChecklistItem {
	items, ok := d.Checklists[section]
	if !ok {
		return nil
	}
	for i := range items {
		if items[i].ID == itemID {
			return &items[i]
		}
	}
	return nil
}
