package api

import (
	"net/http"

	"plannerhq/planner-app/internal/domain"
	"plannerhq/planner-app/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	dayService service.DayService,
	workoutService service.WorkoutService,
	statsService service.StatsService,
	settingsService service.SettingsService,
	templateService service.TemplateService,
) {
	authHandler := NewAuthHandler(authService)
	dayHandler := NewDayHandler(dayService)
	workoutHandler := NewWorkoutHandler(workoutService)
	statsHandler := NewStatsHandler(statsService)
	settingsHandler := NewSettingsHandler(settingsService)
	templateHandler := NewTemplateHandler(templateService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware, RoleMiddleware(domain.RoleUser))
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr, "role": role})
		})

		// --- Day Routes ---
		dayGroup := protected.Group("/days")
		{
			dayGroup.GET("/:date", dayHandler.GetDay)
			dayGroup.PUT("/:date", dayHandler.SaveDay)
			dayGroup.POST("/:date/items/:section/:itemId/toggle", dayHandler.ToggleItem)
			dayGroup.PUT("/:date/items/:section/:itemId/weight", dayHandler.SetItemWeight)
			dayGroup.POST("/:date/workout/selection", workoutHandler.BuildSelection)
		}

		protected.GET("/events/:date", dayHandler.GetEvents)
		protected.GET("/workout/pool", workoutHandler.GetPool)

		// --- Stats Routes ---
		statsGroup := protected.Group("/stats")
		{
			statsGroup.GET("/streaks", statsHandler.GetStreaks)
			statsGroup.GET("/points", statsHandler.GetPoints)
			statsGroup.GET("/week/:start", statsHandler.GetWeekSummary)
		}

		// --- Settings Routes ---
		protected.GET("/settings", settingsHandler.GetSettings)
		protected.PUT("/settings", settingsHandler.UpdateSettings)

		// --- Template Routes ---
		templateGroup := protected.Group("/templates")
		{
			templateGroup.GET("", templateHandler.ListTemplates)
			templateGroup.GET("/export", templateHandler.ExportTemplates)
			templateGroup.POST("/export/snapshot", templateHandler.ExportSnapshot)
			templateGroup.POST("/import", templateHandler.ImportTemplates)
			templateGroup.PUT("/:section", templateHandler.SaveTemplate)
			templateGroup.DELETE("/:section", templateHandler.DeleteTemplate)
		}
	}
}
