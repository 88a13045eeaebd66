package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"plannerhq/planner-app/internal/domain"
	"plannerhq/planner-app/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrInvalidDate    = errors.New("date must be in YYYY-MM-DD format")
	ErrUnknownSection = errors.New("unknown checklist section")
	ErrItemNotFound   = errors.New("checklist item not found")
)

// saveDebounceWindow is how long full-day saves are coalesced before being
// written. A superseding save within the window simply wins.
const saveDebounceWindow = 2 * time.Second

const flushTimeout = 10 * time.Second

// --- Service Interface ---
type DayService interface {
	// Schema returns the user's effective day layout (built-ins plus custom
	// template sections).
	Schema(ctx context.Context, userID primitive.ObjectID) (domain.DaySchema, error)
	// GetDay returns the stored record for a date, or a fresh one seeded
	// from the user's templates and the built-in defaults. Reading never
	// writes.
	GetDay(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DayRecord, error)
	// SaveDay schedules a debounced write of the whole day record.
	// Returning nil means accepted, not persisted; a save failing later is
	// logged and dropped, never retried.
	SaveDay(ctx context.Context, userID primitive.ObjectID, rec *domain.DayRecord) error
	// ToggleItem flips an item's completed flag, writes through immediately,
	// logs an event and adjusts the day's points by one.
	ToggleItem(ctx context.Context, userID primitive.ObjectID, date, section, itemID string) (*domain.ChecklistItem, error)
	// SetItemWeight records the weight used for an exercise.
	SetItemWeight(ctx context.Context, userID primitive.ObjectID, date, section, itemID, weight string) (*domain.ChecklistItem, error)
	// Events returns the activity log for one day, oldest first.
	Events(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.Event, error)
}

// --- Service Implementation ---

type pendingSave struct {
	timer  *time.Timer
	rec    *domain.DayRecord
	schema domain.DaySchema
}

// dayService implements the DayService interface.
type dayService struct {
	dayRepo      repository.DayRepository
	eventRepo    repository.EventRepository
	templateRepo repository.TemplateRepository
	pointsRepo   repository.PointsRepository
	log          *logrus.Entry

	mu      sync.Mutex
	pending map[string]*pendingSave // keyed by userID|date
}

// NewDayService creates a new instance of dayService.
func NewDayService(
	dayRepo repository.DayRepository,
	eventRepo repository.EventRepository,
	templateRepo repository.TemplateRepository,
	pointsRepo repository.PointsRepository,
) DayService {
	return &dayService{
		dayRepo:      dayRepo,
		eventRepo:    eventRepo,
		templateRepo: templateRepo,
		pointsRepo:   pointsRepo,
		log:          logrus.WithField("component", "day-service"),
		pending:      make(map[string]*pendingSave),
	}
}

func (s *dayService) Schema(ctx context.Context, userID primitive.ObjectID) (domain.DaySchema, error) {
	return schemaForUser(ctx, s.templateRepo, userID)
}

func (s *dayService) GetDay(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DayRecord, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	schema, err := s.Schema(ctx, userID)
	if err != nil {
		return nil, err
	}

	rec, err := s.dayRepo.GetByDate(ctx, userID, date, schema)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return s.seedDay(ctx, userID, date, schema)
}

// seedDay builds a fresh record for a date: custom template items where the
// user has one, built-in defaults otherwise. The workout section stays empty
// until a selection is built.
func (s *dayService) seedDay(ctx context.Context, userID primitive.ObjectID, date string, schema domain.DaySchema) (*domain.DayRecord, error) {
	rec := domain.NewDayRecord(userID, date, schema)

	templates, err := s.templateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	templated := map[string]bool{}
	for _, tpl := range templates {
		items := make([]domain.ChecklistItem, len(tpl.Items))
		copy(items, tpl.Items)
		for i := range items {
			items[i].Completed = false
		}
		rec.Checklists[tpl.Section] = items
		templated[tpl.Section] = true
	}

	for _, section := range schema.ChecklistSections {
		if !templated[section] && section != domain.SectionWorkout {
			rec.Checklists[section] = domain.DefaultChecklist(section)
		}
	}
	return rec, nil
}

func (s *dayService) SaveDay(ctx context.Context, userID primitive.ObjectID, rec *domain.DayRecord) error {
	if rec == nil {
		return errors.New("day record is required")
	}
	if _, err := time.Parse(domain.DateLayout, rec.Date); err != nil {
		return ErrInvalidDate
	}

	schema, err := s.Schema(ctx, userID)
	if err != nil {
		return err
	}
	rec.UserID = userID

	key := userID.Hex() + "|" + rec.Date
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.pending[key]; ok {
		// Coalesce: the newer record supersedes the queued one.
		p.rec = rec
		p.schema = schema
		p.timer.Reset(saveDebounceWindow)
		return nil
	}
	p := &pendingSave{rec: rec, schema: schema}
	p.timer = time.AfterFunc(saveDebounceWindow, func() { s.flush(key) })
	s.pending[key] = p
	return nil
}

// flush writes one coalesced save. Failures are logged and dropped; the next
// state change will schedule a fresh save.
func (s *dayService) flush(key string) {
	s.mu.Lock()
	p, ok := s.pending[key]
	delete(s.pending, key)
	s.mu.Unlock()
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := s.dayRepo.Upsert(ctx, p.rec, p.schema); err != nil {
		s.log.WithError(err).WithField("day", key).Error("debounced day save failed")
	}
}

func (s *dayService) ToggleItem(ctx context.Context, userID primitive.ObjectID, date, section, itemID string) (*domain.ChecklistItem, error) {
	rec, schema, item, err := s.loadItem(ctx, userID, date, section, itemID)
	if err != nil {
		return nil, err
	}

	item.Completed = !item.Completed
	if err := s.dayRepo.Upsert(ctx, rec, schema); err != nil {
		return nil, err
	}

	eventType := domain.EventItemCompleted
	pointsDelta := 1
	if !item.Completed {
		eventType = domain.EventItemUncompleted
		pointsDelta = -1
	}
	s.logEvent(ctx, &domain.Event{
		UserID:        userID,
		EventType:     eventType,
		ChecklistType: section,
		ItemID:        item.ID,
		ItemName:      item.Name,
		Date:          date,
	})
	if err := s.pointsRepo.IncrementDay(ctx, userID, date, pointsDelta); err != nil {
		s.log.WithError(err).WithField("date", date).Warn("failed to adjust daily points")
	}

	return item, nil
}

func (s *dayService) SetItemWeight(ctx context.Context, userID primitive.ObjectID, date, section, itemID, weight string) (*domain.ChecklistItem, error) {
	rec, schema, item, err := s.loadItem(ctx, userID, date, section, itemID)
	if err != nil {
		return nil, err
	}

	item.Weight = weight
	if err := s.dayRepo.Upsert(ctx, rec, schema); err != nil {
		return nil, err
	}

	s.logEvent(ctx, &domain.Event{
		UserID:        userID,
		EventType:     domain.EventWeightSet,
		ChecklistType: section,
		ItemID:        item.ID,
		ItemName:      item.Name,
		ItemData:      map[string]string{"weight": weight},
		Date:          date,
	})

	return item, nil
}

func (s *dayService) Events(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.Event, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	return s.eventRepo.GetByDate(ctx, userID, date)
}

// loadItem fetches (or seeds) the day record and locates one item in it.
func (s *dayService) loadItem(ctx context.Context, userID primitive.ObjectID, date, section, itemID string) (*domain.DayRecord, domain.DaySchema, *domain.ChecklistItem, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, domain.DaySchema{}, nil, ErrInvalidDate
	}

	schema, err := s.Schema(ctx, userID)
	if err != nil {
		return nil, domain.DaySchema{}, nil, err
	}
	if !schema.HasSection(section) {
		return nil, domain.DaySchema{}, nil, ErrUnknownSection
	}

	rec, err := s.dayRepo.GetByDate(ctx, userID, date, schema)
	if errors.Is(err, repository.ErrNotFound) {
		rec, err = s.seedDay(ctx, userID, date, schema)
	}
	if err != nil {
		return nil, domain.DaySchema{}, nil, err
	}

	item := rec.Item(section, itemID)
	if item == nil {
		return nil, domain.DaySchema{}, nil, ErrItemNotFound
	}
	return rec, schema, item, nil
}

// logEvent appends to the activity log. The log is display-only, so a failed
// append is logged and swallowed rather than failing the user action.
func (s *dayService) logEvent(ctx context.Context, event *domain.Event) {
	if _, err := s.eventRepo.Append(ctx, event); err != nil {
		s.log.WithError(err).WithField("eventType", event.EventType).Warn("failed to append event")
	}
}
