package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/studyaid/studyaid-api/internal/config"
	"github.com/studyaid/studyaid-api/internal/db"
	"github.com/studyaid/studyaid-api/internal/handlers"
	"github.com/studyaid/studyaid-api/internal/provider"
	"github.com/studyaid/studyaid-api/internal/repository"
	"github.com/studyaid/studyaid-api/internal/router"
	"github.com/studyaid/studyaid-api/internal/services"
	"github.com/studyaid/studyaid-api/internal/storage"
	"github.com/studyaid/studyaid-api/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := utils.NewLogger(cfg.LogLevel)

	database, err := db.NewSQLiteDB(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to open database", "error", err)
	}
	defer database.Close()

	if err := db.RunMigrations(cfg.DatabasePath); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	store, err := storage.New(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	// Provider mode (live vs mock) is decided once here, by credential
	// presence.
	aiProvider := provider.New(cfg.GeminiAPIKey, cfg.GeminiModel, logger)

	extractionRepo := repository.NewExtractionRepository(database)
	sessionRepo := repository.NewSessionRepository(database)

	extractionService := services.NewExtractionService(extractionRepo, store, cfg, logger)
	aiService := services.NewAIService(aiProvider, cfg, logger)
	sessionService := services.NewSessionService(sessionRepo, store, cfg, logger)

	handler := router.NewRouter(
		cfg,
		handlers.NewExtractionHandler(extractionService, cfg, logger),
		handlers.NewAIHandler(aiService, logger),
		handlers.NewSessionHandler(sessionService, cfg, logger),
		logger,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
