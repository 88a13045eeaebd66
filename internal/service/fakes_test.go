package service

import (
	"context"
	"sync"
	"time"

	"plannerhq/planner-app/internal/domain"
	"plannerhq/planner-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes shared by the service tests.

type fakeDayRepo struct {
	mu      sync.Mutex
	records map[string]*domain.DayRecord // userHex|date
	upserts int
	err     error
}

func newFakeDayRepo() *fakeDayRepo {
	return &fakeDayRepo{records: make(map[string]*domain.DayRecord)}
}

func dayKey(userID primitive.ObjectID, date string) string {
	return userID.Hex() + "|" + date
}

func (f *fakeDayRepo) Upsert(_ context.Context, rec *domain.DayRecord, _ domain.DaySchema) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	stored := *rec
	f.records[dayKey(rec.UserID, rec.Date)] = &stored
	f.upserts++
	return nil
}

func (f *fakeDayRepo) GetByDate(_ context.Context, userID primitive.ObjectID, date string, _ domain.DaySchema) (*domain.DayRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[dayKey(userID, date)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *rec
	return &copied, nil
}

func (f *fakeDayRepo) GetRange(_ context.Context, userID primitive.ObjectID, from, to string, _ domain.DaySchema) ([]domain.DayRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.DayRecord
	for _, rec := range f.records {
		if rec.UserID == userID && rec.Date >= from && rec.Date <= to {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeDayRepo) upsertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.upserts
}

func (f *fakeDayRepo) stored(userID primitive.ObjectID, date string) *domain.DayRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.records[dayKey(userID, date)]
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events []domain.Event
}

func (f *fakeEventRepo) Append(_ context.Context, event *domain.Event) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *event
	stored.ID = primitive.NewObjectID()
	stored.Timestamp = time.Now().UTC()
	f.events = append(f.events, stored)
	return stored.ID, nil
}

func (f *fakeEventRepo) GetByDate(_ context.Context, userID primitive.ObjectID, date string) ([]domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Event
	for _, ev := range f.events {
		if ev.UserID == userID && ev.Date == date {
			out = append(out, ev)
		}
	}
	return out, nil
}

type fakeTemplateRepo struct {
	mu        sync.Mutex
	templates map[string]domain.Template // userHex|section
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: make(map[string]domain.Template)}
}

func (f *fakeTemplateRepo) Upsert(_ context.Context, template *domain.Template) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tpl := *template
	tpl.UpdatedAt = time.Now().UTC()
	f.templates[template.UserID.Hex()+"|"+template.Section] = tpl
	return nil
}

func (f *fakeTemplateRepo) GetBySection(_ context.Context, userID primitive.ObjectID, section string) (*domain.Template, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tpl, ok := f.templates[userID.Hex()+"|"+section]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := tpl
	return &copied, nil
}

func (f *fakeTemplateRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.Template, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Template
	for _, tpl := range f.templates {
		if tpl.UserID == userID {
			out = append(out, tpl)
		}
	}
	return out, nil
}

func (f *fakeTemplateRepo) Delete(_ context.Context, userID primitive.ObjectID, section string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := userID.Hex() + "|" + section
	if _, ok := f.templates[key]; !ok {
		return repository.ErrNotFound
	}
	delete(f.templates, key)
	return nil
}

func (f *fakeTemplateRepo) ReplaceAll(_ context.Context, userID primitive.ObjectID, templates []domain.Template) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, tpl := range f.templates {
		if tpl.UserID == userID {
			delete(f.templates, key)
		}
	}
	for _, tpl := range templates {
		f.templates[userID.Hex()+"|"+tpl.Section] = tpl
	}
	return nil
}

type fakePointsRepo struct {
	mu   sync.Mutex
	days map[string]int
}

func newFakePointsRepo() *fakePointsRepo {
	return &fakePointsRepo{days: make(map[string]int)}
}

func (f *fakePointsRepo) Get(_ context.Context, userID primitive.ObjectID) (*domain.PointsRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.days) == 0 {
		return nil, repository.ErrNotFound
	}
	days := make(map[string]int, len(f.days))
	for k, v := range f.days {
		days[k] = v
	}
	return &domain.PointsRecord{UserID: userID, Days: days}, nil
}

func (f *fakePointsRepo) IncrementDay(_ context.Context, _ primitive.ObjectID, date string, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.days[date] += delta
	if f.days[date] < 0 {
		f.days[date] = 0
	}
	return nil
}

func (f *fakePointsRepo) pointsFor(date string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.days[date]
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings *domain.Settings
}

func (f *fakeSettingsRepo) Get(_ context.Context, _ primitive.ObjectID) (*domain.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.settings == nil {
		return nil, repository.ErrNotFound
	}
	copied := *f.settings
	return &copied, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, settings *domain.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *settings
	f.settings = &copied
	return nil
}
