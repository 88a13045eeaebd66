package api

import (
	"errors"
	"net/http"
	"time"

	"plannerhq/planner-app/internal/domain"
	"plannerhq/planner-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DayHandler holds the day service dependency.
type DayHandler struct {
	dayService service.DayService
}

// NewDayHandler creates a new DayHandler.
func NewDayHandler(dayService service.DayService) *DayHandler {
	return &DayHandler{dayService: dayService}
}

// --- DTOs for API (Data Transfer Objects) ---

// DayResponse is the DTO for returning a full day record.
type DayResponse struct {
	ID         string                            `json:"id,omitempty"`
	Date       string                            `json:"date"`
	Checklists map[string][]domain.ChecklistItem `json:"checklists"`
	TimeSpent  map[string]int                    `json:"timeSpent"`
	UpdatedAt  time.Time                         `json:"updatedAt"`
}

// SaveDayRequest carries the full day state for a debounced save.
type SaveDayRequest struct {
	Checklists map[string][]domain.ChecklistItem `json:"checklists" binding:"required"`
	TimeSpent  map[string]int                    `json:"timeSpent"`
}

// SaveDayResponse mirrors the status-object contract of the persistence
// layer: accepted saves report success even though the write itself is
// deferred and coalesced.
type SaveDayResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type SetWeightRequest struct {
	Weight string `json:"weight" binding:"required"`
}

// EventResponse is the DTO for one activity log entry.
type EventResponse struct {
	ID            string            `json:"id"`
	EventType     domain.EventType  `json:"eventType"`
	ChecklistType string            `json:"checklistType,omitempty"`
	ItemID        string            `json:"itemId,omitempty"`
	ItemName      string            `json:"itemName,omitempty"`
	ItemData      map[string]string `json:"itemData,omitempty"`
	Date          string            `json:"date"`
	Timestamp     time.Time         `json:"timestamp"`
}

// MapDayToResponse converts a domain.DayRecord to DayResponse DTO.
func MapDayToResponse(rec *domain.DayRecord) DayResponse {
	if rec == nil {
		return DayResponse{}
	}
	resp := DayResponse{
		Date:       rec.Date,
		Checklists: rec.Checklists,
		TimeSpent:  rec.TimeSpent,
		UpdatedAt:  rec.UpdatedAt,
	}
	if !rec.ID.IsZero() {
		resp.ID = rec.ID.Hex()
	}
	return resp
}

// MapEventsToResponse converts a slice of domain.Event to DTOs.
func MapEventsToResponse(events []domain.Event) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i, ev := range events {
		responses[i] = EventResponse{
			ID:            ev.ID.Hex(),
			EventType:     ev.EventType,
			ChecklistType: ev.ChecklistType,
			ItemID:        ev.ItemID,
			ItemName:      ev.ItemName,
			ItemData:      ev.ItemData,
			Date:          ev.Date,
			Timestamp:     ev.Timestamp,
		}
	}
	return responses
}

// currentUserID extracts and parses the authenticated user's ID, aborting
// the request on failure.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format in token.")
		return primitive.NilObjectID, false
	}
	return userID, true
}

// mapDayServiceError translates day service sentinel errors to HTTP codes.
func mapDayServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnknownSection):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrItemNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}

// --- Handler Methods ---

// GetDay godoc
// @Summary Get a day record
// @Description Returns the planner state for one date, seeded from templates and defaults when no record exists yet.
// @Tags Days
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} DayResponse
// @Failure 400 {object} gin.H "Invalid date"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /days/{date} [get]
func (h *DayHandler) GetDay(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rec, err := h.dayService.GetDay(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		mapDayServiceError(c, err, "Failed to load day record.")
		return
	}

	c.JSON(http.StatusOK, MapDayToResponse(rec))
}

// SaveDay godoc
// @Summary Save a day record
// @Description Accepts the full day state. Writes are coalesced over a short window; the latest accepted save wins.
// @Tags Days
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param day body SaveDayRequest true "Day state"
// @Success 202 {object} SaveDayResponse "Save accepted"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /days/{date} [put]
func (h *DayHandler) SaveDay(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SaveDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	rec := &domain.DayRecord{
		UserID:     userID,
		Date:       c.Param("date"),
		Checklists: req.Checklists,
		TimeSpent:  req.TimeSpent,
	}
	if rec.TimeSpent == nil {
		rec.TimeSpent = map[string]int{}
	}

	if err := h.dayService.SaveDay(c.Request.Context(), userID, rec); err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		// Still a status object, not an HTTP failure, per the save contract.
		c.JSON(http.StatusInternalServerError, SaveDayResponse{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, SaveDayResponse{Success: true})
}

// ToggleItem godoc
// @Summary Toggle a checklist item
// @Description Flips an item's completed flag, logs an event and adjusts the day's points.
// @Tags Days
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param section path string true "Checklist section"
// @Param itemId path string true "Item ID"
// @Success 200 {object} domain.ChecklistItem
// @Failure 400 {object} gin.H "Invalid date"
// @Failure 404 {object} gin.H "Unknown section or item"
// @Router /days/{date}/items/{section}/{itemId}/toggle [post]
func (h *DayHandler) ToggleItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	item, err := h.dayService.ToggleItem(
		c.Request.Context(),
		userID,
		c.Param("date"),
		c.Param("section"),
		c.Param("itemId"),
	)
	if err != nil {
		mapDayServiceError(c, err, "Failed to toggle item.")
		return
	}

	c.JSON(http.StatusOK, item)
}

// SetItemWeight godoc
// @Summary Set the weight used for an exercise
// @Tags Days
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param section path string true "Checklist section"
// @Param itemId path string true "Item ID"
// @Param weight body SetWeightRequest true "Weight"
// @Success 200 {object} domain.ChecklistItem
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Unknown section or item"
// @Router /days/{date}/items/{section}/{itemId}/weight [put]
func (h *DayHandler) SetItemWeight(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SetWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	item, err := h.dayService.SetItemWeight(
		c.Request.Context(),
		userID,
		c.Param("date"),
		c.Param("section"),
		c.Param("itemId"),
		req.Weight,
	)
	if err != nil {
		mapDayServiceError(c, err, "Failed to set item weight.")
		return
	}

	c.JSON(http.StatusOK, item)
}

// GetEvents godoc
// @Summary Get the activity log for a day
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} EventResponse
// @Failure 400 {object} gin.H "Invalid date"
// @Router /events/{date} [get]
func (h *DayHandler) GetEvents(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	events, err := h.dayService.Events(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		mapDayServiceError(c, err, "Failed to load events.")
		return
	}

	c.JSON(http.StatusOK, MapEventsToResponse(events))
}
