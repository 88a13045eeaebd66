package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Template is a user-authored checklist definition for one section. New day
// records are seeded from the user's templates; the built-in defaults apply
// for sections without one.
type Template struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Section   string             `bson:"section" json:"section"`
	Items     []ChecklistItem    `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// TemplateExport is the serialized form of a user's custom checklists. The
// round-trip guarantee is that exporting and re-importing reproduces the same
// section -> items mapping field for field.
type TemplateExport struct {
	Version    int                        `json:"version"`
	ExportedAt time.Time                  `json:"exportedAt"`
	Sections   map[string][]ChecklistItem `json:"sections"`
}

// TemplateExportVersion is the current export document version.
const TemplateExportVersion = 1
