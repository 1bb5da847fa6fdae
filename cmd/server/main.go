// Package main is the entry point for the roomstock API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"roomstock/internal/domain/availability"
	"roomstock/internal/domain/contract"
	"roomstock/internal/domain/inventory"
	"roomstock/internal/domain/pricing"
	"roomstock/internal/domain/summary"
	"roomstock/internal/domain/warning"
	"roomstock/internal/infrastructure/cache"
	"roomstock/internal/infrastructure/config"
	v1 "roomstock/internal/infrastructure/http/v1"
	"roomstock/internal/infrastructure/mail"
	"roomstock/internal/infrastructure/storage/postgres"
	"roomstock/internal/infrastructure/storage/postgres/catalog_repo"
	"roomstock/internal/infrastructure/storage/postgres/contract_repo"
	"roomstock/internal/infrastructure/storage/postgres/inventory_repo"
	"roomstock/internal/infrastructure/storage/postgres/summary_repo"
	"roomstock/pkg/logger"
	"roomstock/pkg/numerator"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := logger.WithLogger(context.Background(), log)
	log.Info("starting roomstock server")

	// --- Database ---
	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(mustEnv("DATABASE_URL")))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txm := postgres.NewTxManager(pool)

	// --- Redis warning cache ---
	cacheCfg := cache.DefaultConfig()
	cacheCfg.Addr = getEnv("REDIS_ADDRESS", cacheCfg.Addr)
	cacheCfg.Password = getEnv("REDIS_PASSWORD", "")
	warningCache, err := cache.NewWarningCache(ctx, cacheCfg)
	if err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}
	defer warningCache.Close()
	log.Info("redis connection established")

	// --- Repositories ---
	contractRepo := contract_repo.NewContractRepo(txm)
	unitRepo := inventory_repo.NewUnitRepo(txm)
	summaryRepo := summary_repo.NewSummaryRepo(txm)
	catalogRepo := catalog_repo.NewCatalogRepo(txm)

	// --- Services ---
	numeratorService := numerator.New(pool)
	settingsProvider := config.NewEnvSettingsProvider()
	mailer := mail.NewSender(mail.Config{
		Host:     getEnv("SMTP_HOST", "localhost"),
		Port:     getEnvInt("SMTP_PORT", 587),
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "noreply@roomstock.local"),
	})

	contractService := contract.NewService(contractRepo, numeratorService, txm)
	inventoryService := inventory.NewService(unitRepo, contractRepo, catalogRepo, txm)
	pricingService := pricing.NewService(unitRepo, txm)
	summaryService := summary.NewService(summaryRepo, unitRepo, catalogRepo, txm)
	warningDispatcher := warning.NewDispatcher(summaryRepo, catalogRepo, settingsProvider, warningCache, mailer)
	availabilityService := availability.NewService(unitRepo, summaryRepo, contractRepo, catalogRepo)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:         pool.Unwrap(),
		Logger:       log,
		Contracts:    contractService,
		Inventory:    inventoryService,
		Pricing:      pricingService,
		Summaries:    summaryService,
		Warnings:     warningDispatcher,
		Availability: availabilityService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
