// Package main is the scheduled entry point for the stock watch batch:
// optionally sync summaries, then run the low-stock warning check.
//
// Exit code is 0 on success (including nothing to do) and 1 on any
// reported failure or an unparsable --date.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"roomstock/internal/core/types"
	"roomstock/internal/domain/batch"
	"roomstock/internal/domain/summary"
	"roomstock/internal/domain/warning"
	"roomstock/internal/infrastructure/cache"
	"roomstock/internal/infrastructure/config"
	"roomstock/internal/infrastructure/mail"
	"roomstock/internal/infrastructure/storage/postgres"
	"roomstock/internal/infrastructure/storage/postgres/catalog_repo"
	"roomstock/internal/infrastructure/storage/postgres/inventory_repo"
	"roomstock/internal/infrastructure/storage/postgres/summary_repo"
	"roomstock/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	var (
		doSync  = flag.Bool("sync", false, "recompute summaries before the warning check")
		rawDate = flag.String("date", "", "scope to one day (YYYY-MM-DD) instead of the default window")
	)
	flag.Parse()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		return 1
	}

	ctx := logger.WithLogger(context.Background(), log)

	var date *time.Time
	if *rawDate != "" {
		day, err := types.ParseDay(*rawDate)
		if err != nil {
			log.Errorw("unparsable date", "date", *rawDate)
			return 1
		}
		date = &day
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(mustEnv(log, "DATABASE_URL")))
	if err != nil {
		log.Errorw("failed to connect to database", "error", err)
		return 1
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	cacheCfg := cache.DefaultConfig()
	cacheCfg.Addr = getEnv("REDIS_ADDRESS", cacheCfg.Addr)
	cacheCfg.Password = getEnv("REDIS_PASSWORD", "")
	warningCache, err := cache.NewWarningCache(ctx, cacheCfg)
	if err != nil {
		log.Errorw("failed to connect to redis", "error", err)
		return 1
	}
	defer warningCache.Close()

	unitRepo := inventory_repo.NewUnitRepo(txm)
	summaryRepo := summary_repo.NewSummaryRepo(txm)
	catalogRepo := catalog_repo.NewCatalogRepo(txm)

	summaryService := summary.NewService(summaryRepo, unitRepo, catalogRepo, txm)
	dispatcher := warning.NewDispatcher(
		summaryRepo,
		catalogRepo,
		config.NewEnvSettingsProvider(),
		warningCache,
		mail.NewSender(mail.Config{
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "noreply@roomstock.local"),
		}),
	)

	if *doSync {
		if !report(log, "summary sync", summaryService.SyncAll(ctx, date)) {
			return 1
		}
	}

	if !report(log, "warning check", dispatcher.CheckAndSendWarnings(ctx, date)) {
		return 1
	}

	return 0
}

// report logs a batch envelope and returns its success flag.
func report(log *logger.Logger, op string, res batch.Result) bool {
	if !res.Success {
		log.Errorw(op+" failed", "message", res.Message)
		return false
	}
	log.Infow(op+" finished",
		"message", res.Message,
		"updated", res.Updated,
		"created", res.Created,
		"sent", res.Sent,
	)
	return true
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(log *logger.Logger, key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Errorw("required environment variable not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var parsed int
		if _, err := fmt.Sscanf(value, "%d", &parsed); err == nil {
			return parsed
		}
	}
	return defaultValue
}
