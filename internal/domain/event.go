package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventType classifies an activity log entry.
type EventType string

const (
	EventItemCompleted   EventType = "item_completed"
	EventItemUncompleted EventType = "item_uncompleted"
	EventItemAdded       EventType = "item_added"
	EventItemRemoved     EventType = "item_removed"
	EventWeightSet       EventType = "weight_set"
	EventSelectionBuilt  EventType = "selection_built"
)

// Event is an append-only activity log entry. Events are written on user
// actions and read back for display only; they are never replayed to
// reconstruct checklist state.
type Event struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	EventType     EventType          `bson:"eventType" json:"eventType"`
	ChecklistType string             `bson:"checklistType,omitempty" json:"checklistType,omitempty"` // section name
	ItemID        string             `bson:"itemId,omitempty" json:"itemId,omitempty"`
	ItemName      string             `bson:"itemName,omitempty" json:"itemName,omitempty"`
	ItemData      map[string]string  `bson:"itemData,omitempty" json:"itemData,omitempty"` // extra payload, e.g. {"weight": "40kg"}
	Date          string             `bson:"date" json:"date"`                             // DateLayout, the planner day the event belongs to
	Timestamp     time.Time          `bson:"timestamp" json:"timestamp"`
}
