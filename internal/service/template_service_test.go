package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"plannerhq/planner-app/internal/domain"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeFileStorage struct {
	objects map[string][]byte
}

func (f *fakeFileStorage) UploadObject(_ context.Context, objectKey, _ string, body []byte) error {
	if f.objects == nil {
		f.objects = make(map[string][]byte)
	}
	f.objects[objectKey] = body
	return nil
}

func (f *fakeFileStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://storage.example.com/" + objectKey + "?signed=1", nil
}

func (f *fakeFileStorage) DeleteObject(_ context.Context, objectKey string) error {
	delete(f.objects, objectKey)
	return nil
}

func TestTemplateSave_AssignsMissingIDs(t *testing.T) {
	svc := NewTemplateService(newFakeTemplateRepo(), nil)
	userID := primitive.NewObjectID()

	tpl, err := svc.Save(context.Background(), userID, domain.SectionMorning, []domain.ChecklistItem{
		{Name: "Journal"},
		{ID: "make-bed", Name: "Make bed"},
	})
	require.NoError(t, err)
	require.Len(t, tpl.Items, 2)
	require.NotEmpty(t, tpl.Items[0].ID)
	require.Equal(t, "make-bed", tpl.Items[1].ID)
}

func TestTemplateSave_RejectsUnnamedItems(t *testing.T) {
	svc := NewTemplateService(newFakeTemplateRepo(), nil)

	_, err := svc.Save(context.Background(), primitive.NewObjectID(), domain.SectionMorning, []domain.ChecklistItem{{ID: "x"}})
	require.ErrorIs(t, err, ErrImportInvalid)
}

func TestTemplateDelete_NotFound(t *testing.T) {
	svc := NewTemplateService(newFakeTemplateRepo(), nil)

	err := svc.Delete(context.Background(), primitive.NewObjectID(), domain.SectionMorning)
	require.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestTemplateExportImport_RoundTrip(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := NewTemplateService(repo, nil)
	userID := primitive.NewObjectID()

	_, err := svc.Save(context.Background(), userID, domain.SectionMorning, []domain.ChecklistItem{
		{ID: "journal", Name: "Journal", Category: "mindset"},
	})
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), userID, domain.SectionWorkout, []domain.ChecklistItem{
		{ID: "squats", Name: "Squats", Category: "legs", Reps: "10", Sets: "3", Weight: "40kg"},
	})
	require.NoError(t, err)

	export, err := svc.Export(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, domain.TemplateExportVersion, export.Version)
	require.Len(t, export.Sections, 2)

	// Import into a fresh account reproduces the same templates field for
	// field, surviving a JSON round trip on the way.
	body, err := json.Marshal(export)
	require.NoError(t, err)
	var parsed domain.TemplateExport
	require.NoError(t, json.Unmarshal(body, &parsed))

	otherUser := primitive.NewObjectID()
	otherSvc := NewTemplateService(newFakeTemplateRepo(), nil)
	require.NoError(t, otherSvc.Import(context.Background(), otherUser, &parsed))

	reExport, err := otherSvc.Export(context.Background(), otherUser)
	require.NoError(t, err)
	require.Equal(t, export.Sections, reExport.Sections)
}

func TestTemplateImport_ReplacesExistingSet(t *testing.T) {
	svc := NewTemplateService(newFakeTemplateRepo(), nil)
	userID := primitive.NewObjectID()

	_, err := svc.Save(context.Background(), userID, domain.SectionEvening, []domain.ChecklistItem{
		{ID: "tidy", Name: "Tidy desk"},
	})
	require.NoError(t, err)

	err = svc.Import(context.Background(), userID, &domain.TemplateExport{
		Version: domain.TemplateExportVersion,
		Sections: map[string][]domain.ChecklistItem{
			domain.SectionGoals: {{ID: "read", Name: "Read 20 pages"}},
		},
	})
	require.NoError(t, err)

	templates, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	require.Equal(t, domain.SectionGoals, templates[0].Section)
}

func TestTemplateImport_Validation(t *testing.T) {
	svc := NewTemplateService(newFakeTemplateRepo(), nil)
	userID := primitive.NewObjectID()

	err := svc.Import(context.Background(), userID, nil)
	require.ErrorIs(t, err, ErrImportInvalid)

	err = svc.Import(context.Background(), userID, &domain.TemplateExport{
		Version:  99,
		Sections: map[string][]domain.ChecklistItem{},
	})
	require.ErrorIs(t, err, ErrImportInvalid)

	err = svc.Import(context.Background(), userID, &domain.TemplateExport{
		Version: domain.TemplateExportVersion,
		Sections: map[string][]domain.ChecklistItem{
			domain.SectionGoals: {{Name: "missing id"}},
		},
	})
	require.ErrorIs(t, err, ErrImportInvalid)
}

func TestExportSnapshot_DisabledWithoutStorage(t *testing.T) {
	svc := NewTemplateService(newFakeTemplateRepo(), nil)

	_, err := svc.ExportSnapshot(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, ErrSnapshotsDisabled)
}

func TestExportSnapshot_UploadsAndSignsURL(t *testing.T) {
	store := &fakeFileStorage{}
	svc := NewTemplateService(newFakeTemplateRepo(), store)
	userID := primitive.NewObjectID()

	url, err := svc.ExportSnapshot(context.Background(), userID)
	require.NoError(t, err)
	require.Contains(t, url, "exports/"+userID.Hex()+"/")
	require.Len(t, store.objects, 1)

	for key, body := range store.objects {
		require.True(t, strings.HasSuffix(key, ".json"))
		var export domain.TemplateExport
		require.NoError(t, json.Unmarshal(body, &export))
		require.Equal(t, domain.TemplateExportVersion, export.Version)
	}
}
