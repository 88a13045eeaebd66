package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"plannerhq/planner-app/internal/domain"
	"plannerhq/planner-app/internal/repository"
	"plannerhq/planner-app/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrTemplateNotFound  = errors.New("checklist template not found")
	ErrImportInvalid     = errors.New("import document is invalid")
	ErrSnapshotsDisabled = errors.New("export snapshots are not configured")
)

// --- Service Interface ---
type TemplateService interface {
	List(ctx context.Context, userID primitive.ObjectID) ([]domain.Template, error)
	// Save stores the template for a section; items without an id get one
	// assigned.
	Save(ctx context.Context, userID primitive.ObjectID, section string, items []domain.ChecklistItem) (*domain.Template, error)
	Delete(ctx context.Context, userID primitive.ObjectID, section string) error
	// Export serializes all templates. Importing the result reproduces the
	// same section -> items mapping field for field.
	Export(ctx context.Context, userID primitive.ObjectID) (*domain.TemplateExport, error)
	// Import validates the document and replaces the user's template set.
	Import(ctx context.Context, userID primitive.ObjectID, export *domain.TemplateExport) error
	// ExportSnapshot uploads the export JSON to object storage and returns a
	// short-lived download URL.
	ExportSnapshot(ctx context.Context, userID primitive.ObjectID) (string, error)
}

// --- Service Implementation ---

// templateService implements the TemplateService interface.
type templateService struct {
	templateRepo repository.TemplateRepository
	fileStorage  storage.FileStorage // nil when snapshots are not configured
	log          *logrus.Entry
}

// NewTemplateService creates a new instance of templateService. fileStorage
// may be nil; ExportSnapshot then reports ErrSnapshotsDisabled.
func NewTemplateService(templateRepo repository.TemplateRepository, fileStorage storage.FileStorage) TemplateService {
	return &templateService{
		templateRepo: templateRepo,
		fileStorage:  fileStorage,
		log:          logrus.WithField("component", "template-service"),
	}
}

func (s *templateService) List(ctx context.Context, userID primitive.ObjectID) ([]domain.Template, error) {
	templates, err := s.templateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if templates == nil {
		templates = []domain.Template{}
	}
	return templates, nil
}

func (s *templateService) Save(ctx context.Context, userID primitive.ObjectID, section string, items []domain.ChecklistItem) (*domain.Template, error) {
	if section == "" {
		return nil, fmt.Errorf("%w: section is required", ErrImportInvalid)
	}
	if items == nil {
		items = []domain.ChecklistItem{}
	}
	for i := range items {
		if items[i].Name == "" {
			return nil, fmt.Errorf("%w: item %d has no name", ErrImportInvalid, i)
		}
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
	}

	template := &domain.Template{
		UserID:  userID,
		Section: section,
		Items:   items,
	}
	if err := s.templateRepo.Upsert(ctx, template); err != nil {
		return nil, err
	}
	return s.templateRepo.GetBySection(ctx, userID, section)
}

func (s *templateService) Delete(ctx context.Context, userID primitive.ObjectID, section string) error {
	err := s.templateRepo.Delete(ctx, userID, section)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTemplateNotFound
	}
	return err
}

func (s *templateService) Export(ctx context.Context, userID primitive.ObjectID) (*domain.TemplateExport, error) {
	templates, err := s.templateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	sections := make(map[string][]domain.ChecklistItem, len(templates))
	for _, tpl := range templates {
		items := make([]domain.ChecklistItem, len(tpl.Items))
		copy(items, tpl.Items)
		sections[tpl.Section] = items
	}

	return &domain.TemplateExport{
		Version:    domain.TemplateExportVersion,
		ExportedAt: time.Now().UTC(),
		Sections:   sections,
	}, nil
}

func (s *templateService) Import(ctx context.Context, userID primitive.ObjectID, export *domain.TemplateExport) error {
	if export == nil || export.Sections == nil {
		return fmt.Errorf("%w: missing sections", ErrImportInvalid)
	}
	if export.Version != domain.TemplateExportVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrImportInvalid, export.Version)
	}

	templates := make([]domain.Template, 0, len(export.Sections))
	for section, items := range export.Sections {
		if section == "" {
			return fmt.Errorf("%w: empty section name", ErrImportInvalid)
		}
		for i, item := range items {
			if item.ID == "" || item.Name == "" {
				return fmt.Errorf("%w: section %q item %d is missing id or name", ErrImportInvalid, section, i)
			}
		}
		if items == nil {
			items = []domain.ChecklistItem{}
		}
		templates = append(templates, domain.Template{
			UserID:  userID,
			Section: section,
			Items:   items,
		})
	}

	return s.templateRepo.ReplaceAll(ctx, userID, templates)
}

func (s *templateService) ExportSnapshot(ctx context.Context, userID primitive.ObjectID) (string, error) {
	if s.fileStorage == nil {
		return "", ErrSnapshotsDisabled
	}

	export, err := s.Export(ctx, userID)
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(export)
	if err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("exports/%s/%s.json", userID.Hex(), uuid.NewString())
	if err := s.fileStorage.UploadObject(ctx, objectKey, "application/json", body); err != nil {
		return "", err
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", err
	}

	s.log.WithFields(logrus.Fields{
		"key":      objectKey,
		"sections": len(export.Sections),
	}).Info("export snapshot uploaded")
	return url, nil
}
