package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prolist/prolist/internal/api"
	"github.com/prolist/prolist/internal/config"
	"github.com/prolist/prolist/internal/repository"
	"github.com/prolist/prolist/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize repositories
	shipmentRepo, err := repository.NewShipmentRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer shipmentRepo.Close()

	// Get shared database connection for other repositories
	db := shipmentRepo.GetDB()

	productRepo := repository.NewProductRepository(db)
	packRepo := repository.NewPackRepository(db)
	certRepo := repository.NewCertificateRepository(db)
	issueRepo := repository.NewIssueRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	// Document number counters live in Redis
	counterStore, err := repository.NewRedisCounterStore(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer counterStore.Close()

	// Initialize services
	authService := service.NewAuthService(accountRepo, cfg.JWTSecret)
	requirementService := service.NewRequirementService()
	numberingService := service.NewNumberingService(counterStore)
	packService := service.NewPackService(
		shipmentRepo,
		productRepo,
		certRepo,
		packRepo,
		requirementService,
		numberingService,
		cfg.BaseURL,
	)

	// Set up router
	router := api.NewRouter(
		authService,
		requirementService,
		numberingService,
		packService,
		shipmentRepo,
		productRepo,
		certRepo,
		issueRepo,
		accountRepo,
	)

	// Create server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting ProList server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
