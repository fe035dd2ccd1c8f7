package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "toolrent-backend/internal/api/http"
	"toolrent-backend/internal/config"
	"toolrent-backend/internal/events"
	"toolrent-backend/internal/jobs"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/repository/postgres"
	"toolrent-backend/internal/scheduler"
	"toolrent-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Toolrent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Repositories
	store := postgres.NewStore(db)

	// Event bus
	bus := events.NewBus()

	// Email notifications are optional
	var emailSvc service.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailSvc = service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
		logger.Info("Email notifications enabled", "from", cfg.SendGrid.FromEmail)
	} else {
		logger.Warn("SendGrid api_key not set; email notifications disabled")
	}

	// Services
	calendarSvc := service.NewCalendarService(store.HolidayRepository)
	chargeSvc := service.NewChargeService(store.ChargeRepository, calendarSvc)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.ToolRepository,
		store.CustomerRepository,
		chargeSvc,
		bus,
	)
	agreementSvc := service.NewRentalAgreementService(
		store.RentalAgreementRepository,
		store.RentalRepository,
		store.ToolRepository,
		store.CustomerRepository,
		service.NewDocumentGenerator(),
		emailSvc,
		bus,
	)
	inventorySvc := service.NewInventoryService(store.ToolInventoryRepository, store.ToolRepository)

	service.RegisterEventHandlers(bus, rentalSvc, agreementSvc, inventorySvc)

	// Load the initial holiday snapshot before serving traffic
	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := calendarSvc.Refresh(startupCtx); err != nil {
		cancel()
		log.Fatalf("Failed to load holiday calendar: %v", err)
	}
	cancel()
	logger.Info("Holiday calendar loaded", "rules", len(calendarSvc.Holidays()))

	// Scheduler keeps the holiday snapshot fresh
	jobRunner := jobs.NewJobRunner(cfg, calendarSvc)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	handler := httpapi.NewHandler(rentalSvc, agreementSvc, chargeSvc, calendarSvc)
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      handler.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
