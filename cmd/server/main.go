package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myfitness/server/internal/ai"
	"myfitness/server/internal/api"
	"myfitness/server/internal/catalog"
	"myfitness/server/internal/config"
	"myfitness/server/internal/repository/mongo"
	"myfitness/server/internal/service"
	"myfitness/server/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.WithField("component", "server")
	log.Info("starting myfitness server")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.WithError(err).Fatal("could not load config")
	}
	log.Info("configuration loaded")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.WithError(err).Fatal("could not connect to MongoDB")
	}
	defer func() {
		log.Info("disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.WithError(err).Error("failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Info("database connection established")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsurePlanIndexes(ctx, appDB.Collection("workout_plans"))
		mongo.EnsureStatsIndexes(ctx, appDB.Collection("workout_stats"))
		log.Info("index creation process completed")
	}()

	// --- Exercise Catalog ---
	// Created here, loaded lazily on first use; a broken catalog file fails
	// the plan and exercise endpoints, not the whole server.
	exerciseCatalog := catalog.New(cfg.Catalog.Path)

	// --- Media Storage ---
	var mediaStorage storage.MediaStorage
	if cfg.S3.BucketName != "" {
		mediaStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.WithError(err).Fatal("failed to initialize media storage")
		}
	} else {
		log.Warn("no media bucket configured; exercise gif URLs disabled")
	}

	// --- AI Plan Generation ---
	if cfg.Gemini.APIKey == "" {
		log.Warn("no Gemini API key configured; plan generation disabled")
	}
	geminiClient := ai.NewClient(cfg.Gemini)
	planGenerator := ai.NewGenerator(exerciseCatalog, geminiClient)

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	planRepo := mongo.NewMongoPlanRepository(appDB)
	statsRepo := mongo.NewMongoStatsRepository(appDB)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	userService := service.NewUserService(userRepo)
	planService := service.NewPlanService(userRepo, planRepo, planGenerator)
	statsService := service.NewStatsService(statsRepo)
	exerciseService := service.NewExerciseService(exerciseCatalog, mediaStorage)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	api.SetupRoutes(router, cfg.JWT.Secret, authService, userService, planService, statsService, exerciseService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second, // Plan generation waits on the provider
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
