package service

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"time"

	"plannerhq/planner-app/internal/domain"
	"plannerhq/planner-app/internal/planner"
	"plannerhq/planner-app/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Service Interface ---
type WorkoutService interface {
	// BuildSelection picks exercises for a date under that weekday's time
	// budget and preferred category, writes them into the day's workout
	// section and returns the selection. A nil seed means a time-seeded
	// shuffle; passing a seed makes the selection reproducible.
	BuildSelection(ctx context.Context, userID primitive.ObjectID, date string, seed *int64) (*planner.ExerciseSelection, error)
	// Pool returns the exercise pool the selection draws from.
	Pool(ctx context.Context, userID primitive.ObjectID) ([]domain.ChecklistItem, error)
}

// --- Service Implementation ---

// workoutService implements the WorkoutService interface.
type workoutService struct {
	dayService   DayService
	dayRepo      repository.DayRepository
	templateRepo repository.TemplateRepository
	settingsRepo repository.SettingsRepository
	eventRepo    repository.EventRepository
	log          *logrus.Entry
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(
	dayService DayService,
	dayRepo repository.DayRepository,
	templateRepo repository.TemplateRepository,
	settingsRepo repository.SettingsRepository,
	eventRepo repository.EventRepository,
) WorkoutService {
	return &workoutService{
		dayService:   dayService,
		dayRepo:      dayRepo,
		templateRepo: templateRepo,
		settingsRepo: settingsRepo,
		eventRepo:    eventRepo,
		log:          logrus.WithField("component", "workout-service"),
	}
}

func (s *workoutService) Pool(ctx context.Context, userID primitive.ObjectID) ([]domain.ChecklistItem, error) {
	tpl, err := s.templateRepo.GetBySection(ctx, userID, domain.SectionWorkout)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DefaultWorkoutPool(), nil
		}
		return nil, err
	}
	if len(tpl.Items) == 0 {
		return domain.DefaultWorkoutPool(), nil
	}
	return tpl.Items, nil
}

func (s *workoutService) BuildSelection(ctx context.Context, userID primitive.ObjectID, date string, seed *int64) (*planner.ExerciseSelection, error) {
	parsed, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	weekday := parsed.Weekday()

	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		settings = domain.DefaultSettings(userID)
	}
	budget := settings.BudgetFor(weekday)
	category := settings.CategoryFor(weekday)

	pool, err := s.Pool(ctx, userID)
	if err != nil {
		return nil, err
	}

	seedValue := time.Now().UnixNano()
	if seed != nil {
		seedValue = *seed
	}
	rng := rand.New(rand.NewSource(seedValue))

	selection := planner.SelectWithinBudget(pool, budget, category, rng)

	// Write the picked exercises into the day's workout checklist, all
	// unticked. This replaces any earlier selection for the date.
	rec, err := s.dayService.GetDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	exercises := make([]domain.ChecklistItem, len(selection.Exercises))
	copy(exercises, selection.Exercises)
	for i := range exercises {
		exercises[i].Completed = false
	}
	rec.Checklists[domain.SectionWorkout] = exercises

	schema, err := s.dayService.Schema(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.dayRepo.Upsert(ctx, rec, schema); err != nil {
		return nil, err
	}

	if _, err := s.eventRepo.Append(ctx, &domain.Event{
		UserID:        userID,
		EventType:     domain.EventSelectionBuilt,
		ChecklistType: domain.SectionWorkout,
		ItemData: map[string]string{
			"seed":     strconv.FormatInt(seedValue, 10),
			"budget":   strconv.Itoa(budget),
			"category": category,
			"selected": strconv.Itoa(selection.SelectedCount),
		},
		Date: date,
	}); err != nil {
		s.log.WithError(err).WithField("date", date).Warn("failed to append selection event")
	}

	return &selection, nil
}
