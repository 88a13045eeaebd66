package api

import (
	"errors"
	"net/http"

	"plannerhq/planner-app/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler holds the stats service dependency.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStreaks godoc
// @Summary Get current and longest completion streaks
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} planner.StreakState
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /stats/streaks [get]
func (h *StatsHandler) GetStreaks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	streaks, err := h.statsService.Streaks(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute streaks.")
		return
	}

	c.JSON(http.StatusOK, streaks)
}

// GetPoints godoc
// @Summary Get daily points
// @Description Returns the raw date -> points map used for streaks and history.
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /stats/points [get]
func (h *StatsHandler) GetPoints(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	points, err := h.statsService.Points(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load points.")
		return
	}

	c.JSON(http.StatusOK, points)
}

// GetWeekSummary godoc
// @Summary Get a weekly summary
// @Description Aggregates the seven days starting at the given date: task counts, completion rate, time spent and category breakdowns.
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Param start path string true "Week start date (YYYY-MM-DD)"
// @Success 200 {object} planner.WeekSummary
// @Failure 400 {object} gin.H "Invalid date"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /stats/week/{start} [get]
func (h *StatsHandler) GetWeekSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	week, err := h.statsService.WeekSummary(c.Request.Context(), userID, c.Param("start"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to build weekly summary.")
		return
	}

	c.JSON(http.StatusOK, week)
}
