package api

import (
	"errors"
	"net/http"
	"strconv"

	"plannerhq/planner-app/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// BuildSelection godoc
// @Summary Build a workout selection for a date
// @Description Picks exercises from the pool under the weekday's time budget and preferred category, and writes them into the day's workout checklist unticked.
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param seed query int false "Shuffle seed for a reproducible selection"
// @Success 200 {object} planner.ExerciseSelection
// @Failure 400 {object} gin.H "Invalid date or seed"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /days/{date}/workout/selection [post]
func (h *WorkoutHandler) BuildSelection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var seed *int64
	if raw := c.Query("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid seed: must be an integer.")
			return
		}
		seed = &parsed
	}

	selection, err := h.workoutService.BuildSelection(c.Request.Context(), userID, c.Param("date"), seed)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to build workout selection.")
		return
	}

	c.JSON(http.StatusOK, selection)
}

// GetPool godoc
// @Summary Get the exercise pool
// @Description Returns the exercises the selection draws from: the user's workout template, or the built-in pool when none is saved.
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.ChecklistItem
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /workout/pool [get]
func (h *WorkoutHandler) GetPool(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	pool, err := h.workoutService.Pool(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load exercise pool.")
		return
	}

	c.JSON(http.StatusOK, pool)
}
