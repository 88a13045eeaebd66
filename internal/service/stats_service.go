package service

import (
	"context"
	"errors"
	"time"

	"plannerhq/planner-app/internal/domain"
	"plannerhq/planner-app/internal/planner"
	"plannerhq/planner-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Service Interface ---
type StatsService interface {
	// Streaks derives the current and longest streaks from the user's daily
	// points.
	Streaks(ctx context.Context, userID primitive.ObjectID) (planner.StreakState, error)
	// Points returns the raw date -> points map for display.
	Points(ctx context.Context, userID primitive.ObjectID) (map[string]int, error)
	// WeekSummary aggregates the seven days starting at startDate.
	WeekSummary(ctx context.Context, userID primitive.ObjectID, startDate string) (*planner.WeekSummary, error)
}

// --- Service Implementation ---

// statsService implements the StatsService interface.
type statsService struct {
	pointsRepo   repository.PointsRepository
	dayRepo      repository.DayRepository
	templateRepo repository.TemplateRepository
	now          func() time.Time
}

// NewStatsService creates a new instance of statsService.
func NewStatsService(
	pointsRepo repository.PointsRepository,
	dayRepo repository.DayRepository,
	templateRepo repository.TemplateRepository,
) StatsService {
	return &statsService{
		pointsRepo:   pointsRepo,
		dayRepo:      dayRepo,
		templateRepo: templateRepo,
		now:          time.Now,
	}
}

func (s *statsService) Streaks(ctx context.Context, userID primitive.ObjectID) (planner.StreakState, error) {
	points, err := s.Points(ctx, userID)
	if err != nil {
		return planner.StreakState{}, err
	}
	return planner.ComputeStreaks(points, s.now()), nil
}

func (s *statsService) Points(ctx context.Context, userID primitive.ObjectID) (map[string]int, error) {
	record, err := s.pointsRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return map[string]int{}, nil
		}
		return nil, err
	}
	return record.Days, nil
}

func (s *statsService) WeekSummary(ctx context.Context, userID primitive.ObjectID, startDate string) (*planner.WeekSummary, error) {
	start, err := time.Parse(domain.DateLayout, startDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end := start.AddDate(0, 0, 6)

	schema, err := schemaForUser(ctx, s.templateRepo, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.dayRepo.GetRange(ctx, userID, startDate, end.Format(domain.DateLayout), schema)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]*domain.DayRecord, len(records))
	for i := range records {
		byDate[records[i].Date] = &records[i]
	}

	// One summary per calendar day, empty for days without a record, so the
	// week always has seven entries in order.
	days := make([]planner.DaySummary, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i).Format(domain.DateLayout)
		summary := planner.SummarizeDay(byDate[date], schema)
		summary.Date = date
		days[i] = summary
	}

	week := planner.SummarizeWeek(days)
	return &week, nil
}
