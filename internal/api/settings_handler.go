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

// SettingsHandler holds the settings service dependency.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// --- DTOs ---

// UpdateSettingsRequest carries the full settings document. Maps are keyed by
// lowercase weekday names ("monday" .. "sunday").
type UpdateSettingsRequest struct {
	TimeBudgets         map[string]int    `json:"timeBudgets"`
	PreferredCategories map[string]string `json:"preferredCategories"`
	HiddenSections      []string          `json:"hiddenSections"`
}

type SettingsResponse struct {
	TimeBudgets         map[string]int    `json:"timeBudgets"`
	PreferredCategories map[string]string `json:"preferredCategories"`
	HiddenSections      []string          `json:"hiddenSections"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

// MapSettingsToResponse converts domain.Settings to the response DTO.
func MapSettingsToResponse(settings *domain.Settings) SettingsResponse {
	if settings == nil {
		return SettingsResponse{}
	}
	resp := SettingsResponse{
		TimeBudgets:         settings.TimeBudgets,
		PreferredCategories: settings.PreferredCategories,
		HiddenSections:      settings.HiddenSections,
		UpdatedAt:           settings.UpdatedAt,
	}
	if resp.TimeBudgets == nil {
		resp.TimeBudgets = map[string]int{}
	}
	if resp.PreferredCategories == nil {
		resp.PreferredCategories = map[string]string{}
	}
	if resp.HiddenSections == nil {
		resp.HiddenSections = []string{}
	}
	return resp
}

// --- Handler Methods ---

// GetSettings godoc
// @Summary Get user settings
// @Description Returns the stored settings, or defaults (60 min weekday / 90 min weekend budgets) when none exist.
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SettingsResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.Get(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load settings.")
		return
	}

	c.JSON(http.StatusOK, MapSettingsToResponse(settings))
}

// UpdateSettings godoc
// @Summary Update user settings
// @Description Validates and replaces the full settings document.
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body UpdateSettingsRequest true "Settings"
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	settings, err := h.settingsService.Update(
		c.Request.Context(),
		userID,
		req.TimeBudgets,
		req.PreferredCategories,
		req.HiddenSections,
	)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update settings.")
		return
	}

	c.JSON(http.StatusOK, MapSettingsToResponse(settings))
}
