package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"plannerhq/planner-app/internal/api"
	"plannerhq/planner-app/internal/config"
	"plannerhq/planner-app/internal/repository/mongo"
	"plannerhq/planner-app/internal/service"
	"plannerhq/planner-app/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title Daily Planner API
// @version 1.0
// @description API for daily checklists, time budgets, workout selections, streaks and weekly analytics.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	log := logrus.WithField("component", "server")
	log.Info("starting planner app server")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.WithError(err).Fatal("could not load config")
	}

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.WithError(err).Fatal("could not connect to MongoDB")
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.WithError(err).Error("failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.WithField("database", cfg.Database.Name).Info("database connection established")

	// --- Ensure Indexes ---
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureDayIndexes(ctx, appDB.Collection("days"))
		mongo.EnsureEventIndexes(ctx, appDB.Collection("events"))
		mongo.EnsureSettingsIndexes(ctx, appDB.Collection("settings"))
		mongo.EnsureTemplateIndexes(ctx, appDB.Collection("templates"))
		mongo.EnsurePointsIndexes(ctx, appDB.Collection("points"))
		log.Info("index creation process completed")
	}()

	// --- Initialize Storage ---
	// Snapshots are optional; without a bucket the export endpoint reports
	// the feature as disabled.
	var fileStorage storage.FileStorage
	if cfg.S3.BucketName != "" {
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.WithError(err).Fatal("failed to initialize S3 storage")
		}
	} else {
		log.Info("no S3 bucket configured, export snapshots disabled")
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	dayRepo := mongo.NewMongoDayRepository(appDB)
	eventRepo := mongo.NewMongoEventRepository(appDB)
	settingsRepo := mongo.NewMongoSettingsRepository(appDB)
	templateRepo := mongo.NewMongoTemplateRepository(appDB)
	pointsRepo := mongo.NewMongoPointsRepository(appDB)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	dayService := service.NewDayService(dayRepo, eventRepo, templateRepo, pointsRepo)
	workoutService := service.NewWorkoutService(dayService, dayRepo, templateRepo, settingsRepo, eventRepo)
	statsService := service.NewStatsService(pointsRepo, dayRepo, templateRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	templateService := service.NewTemplateService(templateRepo, fileStorage)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	api.SetupRoutes(
		router,
		cfg.JWT.Secret,
		authService,
		dayService,
		workoutService,
		statsService,
		settingsService,
		templateService,
	)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.WithField("address", cfg.Server.Address).Info("server starting")

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("ListenAndServe error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exiting")
}
