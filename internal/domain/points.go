package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PointsRecord tracks one user's daily points: one point per completed task,
// keyed by ISO date (DateLayout). Values never go below zero. Streaks are
// derived from this map on demand and never stored.
type PointsRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Days      map[string]int     `bson:"days" json:"days"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
