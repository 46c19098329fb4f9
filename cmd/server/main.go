package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gymzen/gymlog-app/internal/api"
	"gymzen/gymlog-app/internal/config"
	"gymzen/gymlog-app/internal/repository/mongo"
	"gymzen/gymlog-app/internal/service"
	"gymzen/gymlog-app/internal/storage"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.WithError(err).Fatal("could not load config")
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	logger.Info("configuration loaded")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logger.WithError(err).Fatal("could not connect to MongoDB")
	}
	defer func() {
		logger.Info("disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logger.WithError(err).Error("failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logger.WithField("database", cfg.Database.Name).Info("database connection established")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
		mongo.EnsureTemplateIndexes(ctx, appDB.Collection("templates"))
		logger.Info("index creation completed")
	}()

	// --- Initialize Storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.BucketName != "" {
		fileStorage, err = storage.NewS3Storage(cfg.S3, logger)
		if err != nil {
			logger.WithError(err).Fatal("failed to initialize S3 storage")
		}
	} else {
		logger.Info("S3 bucket not configured, photo uploads disabled")
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	profileRepo := mongo.NewMongoProfileRepository(appDB)
	templateRepo := mongo.NewMongoTemplateRepository(appDB)
	catalogRepo := mongo.NewMongoCatalogRepository(appDB)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	templateService := service.NewTemplateService(templateRepo)
	workoutService := service.NewWorkoutService(workoutRepo, profileRepo, templateService)
	profileService := service.NewProfileService(profileRepo, fileStorage)
	catalogService := service.NewCatalogService(catalogRepo, logger)

	// --- Initialize Gin Engine ---
	router := gin.Default()

	// --- Setup Routes ---
	api.SetupRoutes(router, cfg.JWT.Secret, logger,
		authService, workoutService, templateService, profileService, catalogService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logger.WithField("address", cfg.Server.Address).Info("server starting")

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("listen and serve error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.WithError(err).Fatal("server forced to shutdown")
	}

	logger.Info("server exiting")
}
