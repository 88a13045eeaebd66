package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"plannerhq/planner-app/internal/domain"
	"plannerhq/planner-app/internal/service"

	"github.com/gin-gonic/gin"
)

// TemplateHandler holds the template service dependency.
type TemplateHandler struct {
	templateService service.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// --- DTOs ---

type SaveTemplateRequest struct {
	Items []domain.ChecklistItem `json:"items" binding:"required"`
}

// TemplateResponse is the DTO for one section's checklist template.
type TemplateResponse struct {
	Section   string                 `json:"section"`
	Items     []domain.ChecklistItem `json:"items"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

type ExportSnapshotResponse struct {
	DownloadURL string `json:"downloadUrl"`
}

// MapTemplateToResponse converts a domain.Template to its DTO.
func MapTemplateToResponse(tpl *domain.Template) TemplateResponse {
	if tpl == nil {
		return TemplateResponse{}
	}
	items := tpl.Items
	if items == nil {
		items = []domain.ChecklistItem{}
	}
	return TemplateResponse{
		Section:   tpl.Section,
		Items:     items,
		UpdatedAt: tpl.UpdatedAt,
	}
}

// --- Handler Methods ---

// ListTemplates godoc
// @Summary List all checklist templates
// @Tags Templates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} TemplateResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	templates, err := h.templateService.List(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list templates.")
		return
	}

	responses := make([]TemplateResponse, len(templates))
	for i := range templates {
		responses[i] = MapTemplateToResponse(&templates[i])
	}
	c.JSON(http.StatusOK, responses)
}

// SaveTemplate godoc
// @Summary Save a section's checklist template
// @Description Replaces the template for the section. Items without an id get one assigned.
// @Tags Templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param section path string true "Checklist section"
// @Param template body SaveTemplateRequest true "Template items"
// @Success 200 {object} TemplateResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /templates/{section} [put]
func (h *TemplateHandler) SaveTemplate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	tpl, err := h.templateService.Save(c.Request.Context(), userID, c.Param("section"), req.Items)
	if err != nil {
		if errors.Is(err, service.ErrImportInvalid) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to save template.")
		return
	}

	c.JSON(http.StatusOK, MapTemplateToResponse(tpl))
}

// DeleteTemplate godoc
// @Summary Delete a section's checklist template
// @Tags Templates
// @Produce json
// @Security BearerAuth
// @Param section path string true "Checklist section"
// @Success 204 "Deleted"
// @Failure 404 {object} gin.H "Template not found"
// @Router /templates/{section} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.templateService.Delete(c.Request.Context(), userID, c.Param("section")); err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete template.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportTemplates godoc
// @Summary Export all templates as a JSON document
// @Description The result can be re-imported to reproduce the same templates field for field.
// @Tags Templates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.TemplateExport
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /templates/export [get]
func (h *TemplateHandler) ExportTemplates(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	export, err := h.templateService.Export(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to export templates.")
		return
	}

	c.JSON(http.StatusOK, export)
}

// ImportTemplates godoc
// @Summary Import a template export document
// @Description Validates the document and replaces the user's entire template set.
// @Tags Templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param export body domain.TemplateExport true "Export document"
// @Success 204 "Imported"
// @Failure 400 {object} gin.H "Invalid document"
// @Router /templates/import [post]
func (h *TemplateHandler) ImportTemplates(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var export domain.TemplateExport
	if err := c.ShouldBindJSON(&export); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.templateService.Import(c.Request.Context(), userID, &export); err != nil {
		if errors.Is(err, service.ErrImportInvalid) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to import templates.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportSnapshot godoc
// @Summary Upload a template export to object storage
// @Description Stores the export JSON in the configured bucket and returns a short-lived download URL.
// @Tags Templates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ExportSnapshotResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 503 {object} gin.H "Snapshots not configured"
// @Router /templates/export/snapshot [post]
func (h *TemplateHandler) ExportSnapshot(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	url, err := h.templateService.ExportSnapshot(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrSnapshotsDisabled) {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to create export snapshot.")
		return
	}

	c.JSON(http.StatusOK, ExportSnapshotResponse{DownloadURL: url})
}
