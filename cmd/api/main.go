package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-service/internal/config"
	"github.com/Dan9191/finance-service/internal/digest"
	"github.com/Dan9191/finance-service/internal/handler"
	"github.com/Dan9191/finance-service/internal/repository"
	"github.com/Dan9191/finance-service/internal/service"
	"github.com/Dan9191/finance-service/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	repo := repository.NewRepository(db)
	if err := repo.Ping(ctx); err != nil {
		cancel()
		logger.Fatalf("Failed to ping database: %v", err)
	}
	if err := repo.Migrate(ctx); err != nil {
		cancel()
		logger.Fatalf("Failed to apply schema: %v", err)
	}
	cancel()

	// Initialize layers
	svc := service.NewService(repo, logger, cfg)
	h := handler.NewHandler(svc, logger)
	r := handler.NewRouter(h, cfg)

	// Forecast digest
	if cfg.DigestEnabled() {
		job := digest.NewJob(repo, svc, email.NewSender(cfg, logger), cfg.DigestMonths, logger)
		scheduler, err := job.Schedule(cfg.DigestSchedule)
		if err != nil {
			logger.Fatalf("Failed to schedule digest: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
		logger.WithField("schedule", cfg.DigestSchedule).Info("Forecast digest scheduled")
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
}
