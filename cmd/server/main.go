package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jkoster/portfolio-performance-backend/internal/api"
	"github.com/jkoster/portfolio-performance-backend/internal/config"
	"github.com/jkoster/portfolio-performance-backend/internal/database"
	"github.com/jkoster/portfolio-performance-backend/internal/quotes"
	"github.com/jkoster/portfolio-performance-backend/internal/refdata"
	"github.com/jkoster/portfolio-performance-backend/internal/repository"
	"github.com/jkoster/portfolio-performance-backend/internal/scheduler"
	"github.com/jkoster/portfolio-performance-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	positionRepo := repository.NewPositionRepository(db)
	settingsRepo, err := repository.NewSettingsRepository(db, cfg.Security.FernetKey)
	if err != nil {
		log.Fatalf("Failed to create settings repository: %v", err)
	}

	// Create services
	systemService := service.NewSystemService(db)
	positionService := service.NewPositionService(positionRepo, refdata.Inflation())
	chartService := service.NewChartService(positionRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	importService := service.NewImportService(positionService)
	quoteService := service.NewQuoteService(
		quotes.NewFinanceClient(),
		positionService,
		settingsService,
	)

	// Background price refresh
	jobs, err := scheduler.New(cfg.Quotes.RefreshSchedule, quoteService.RunScheduledRefresh)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	jobs.Start()
	defer jobs.Stop()

	// Create router
	router := api.NewRouter(systemService, positionService, chartService, quoteService, importService, settingsService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
