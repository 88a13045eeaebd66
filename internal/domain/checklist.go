package domain

// ChecklistItem is a single completable entry in a day's checklist section.
// For workout sections the optional exercise fields (category, reps, sets,
// duration, weight) drive time estimation and selection; routine sections
// usually carry only id/name/completed.
type ChecklistItem struct {
	ID             string `bson:"id" json:"id"`
	Name           string `bson:"name" json:"name"`
	Completed      bool   `bson:"completed" json:"completed"`
	Category       string `bson:"category,omitempty" json:"category,omitempty"`             // e.g. "legs", "cardio", "mobility"
	Reps           string `bson:"reps,omitempty" json:"reps,omitempty"`                     // free text: "10", "8-12", "30 sec"
	Sets           string `bson:"sets,omitempty" json:"sets,omitempty"`                     // free text: "3"
	Duration       string `bson:"duration,omitempty" json:"duration,omitempty"`             // free text: "5-10 min", "1 hour"
	Weight         string `bson:"weight,omitempty" json:"weight,omitempty"`                 // last used weight, set by the user
	Link           string `bson:"link,omitempty" json:"link,omitempty"`                     // optional how-to URL
	NeedsEquipment bool   `bson:"needsEquipment,omitempty" json:"needsEquipment,omitempty"`
}
