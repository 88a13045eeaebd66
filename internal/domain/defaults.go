package domain

// DefaultChecklist returns the built-in items a new day record starts with
// for a section when the user has no custom template for it. The workout
// section starts empty; it is filled by the exercise selector.
func DefaultChecklist(section string) []ChecklistItem {
	switch section {
	case SectionMorning:
		return []ChecklistItem{
			{ID: "make-bed", Name: "Make bed"},
			{ID: "drink-water", Name: "Drink a glass of water"},
			{ID: "morning-stretch", Name: "Quick stretch", Category: "mobility"},
			{ID: "plan-day", Name: "Review today's plan"},
		}
	case SectionEvening:
		return []ChecklistItem{
			{ID: "tidy-desk", Name: "Tidy desk"},
			{ID: "prep-tomorrow", Name: "Prep tomorrow's list"},
			{ID: "no-screens", Name: "Screens off 30 min before bed"},
		}
	case SectionGoals:
		return []ChecklistItem{
			{ID: "deep-work", Name: "One deep work block"},
			{ID: "read", Name: "Read 20 pages"},
		}
	default:
		return []ChecklistItem{}
	}
}

// DefaultWorkoutPool is the built-in exercise library used for workout
// selection when the user has no custom workout template. Durations and
// rep/set fields are free text on purpose; the estimator parses them.
func DefaultWorkoutPool() []ChecklistItem {
	return []ChecklistItem{
		{ID: "warmup-jacks", Name: "Warm up: jumping jacks", Category: "cardio", Duration: "5 min"},
		{ID: "squats", Name: "Squats", Category: "legs", Reps: "10", Sets: "3"},
		{ID: "lunges", Name: "Lunges", Category: "legs", Reps: "12", Sets: "3"},
		{ID: "pushups", Name: "Push ups", Category: "chest", Reps: "10", Sets: "3"},
		{ID: "rows", Name: "Dumbbell rows", Category: "back", Reps: "10", Sets: "3", NeedsEquipment: true},
		{ID: "plank", Name: "Plank hold", Category: "core", Reps: "30-60 sec", Sets: "3"},
		{ID: "burpees", Name: "Burpees", Category: "cardio", Reps: "8", Sets: "2"},
		{ID: "glute-bridge", Name: "Glute bridges", Category: "legs", Reps: "15", Sets: "3"},
		{ID: "shoulder-press", Name: "Shoulder press", Category: "arms", Reps: "10", Sets: "3", NeedsEquipment: true},
		{ID: "cooldown-stretch", Name: "Full body stretch", Category: "mobility", Duration: "5-10 min"},
	}
}
