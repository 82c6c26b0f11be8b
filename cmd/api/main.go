package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-forex-backend/config"
	_ "go-forex-backend/docs" // Important for Swagger
	v1 "go-forex-backend/internal/delivery/http/v1"
	"go-forex-backend/internal/usecase"
	"go-forex-backend/pkg/email"
	"go-forex-backend/pkg/logger"
	"go-forex-backend/pkg/validation"
)

// @title           Vallabh Forex API
// @version         1.0
// @description     Backend for the Vallabh Forex marketing site: form submissions and static catalogs.
// @host            localhost:3000
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting forex backend", "port", cfg.Port, "frontend_url", cfg.FrontendURL)

	// 3. Setup Email Dispatcher
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - form submissions will fail to send")
	}

	// 4. Setup UseCases
	validate := validation.New()
	submissionUC := usecase.NewSubmissionUsecase(emailService, validate, cfg)
	catalogUC := usecase.NewCatalogUsecase()

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SubmissionUC: submissionUC,
		CatalogUC:    catalogUC,
		Config:       cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
