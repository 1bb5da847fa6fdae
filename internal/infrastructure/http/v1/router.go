// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"roomstock/internal/domain/availability"
	"roomstock/internal/domain/contract"
	"roomstock/internal/domain/inventory"
	"roomstock/internal/domain/pricing"
	"roomstock/internal/domain/summary"
	"roomstock/internal/domain/warning"
	"roomstock/internal/infrastructure/http/v1/handlers"
	"roomstock/internal/infrastructure/http/v1/middleware"
	"roomstock/pkg/logger"
)

// RouterConfig holds the wired services the API exposes.
type RouterConfig struct {
	Pool   *pgxpool.Pool
	Logger *logger.Logger

	Contracts    *contract.Service
	Inventory    *inventory.Service
	Pricing      *pricing.Service
	Summaries    *summary.Service
	Warnings     *warning.Dispatcher
	Availability *availability.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters)
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	base := handlers.NewBaseHandler()

	api := router.Group("/api/v1")
	{
		contractHandler := handlers.NewContractHandler(base, cfg.Contracts)
		contracts := api.Group("/contracts")
		{
			contracts.POST("", contractHandler.Create)
			contracts.GET("/:id", contractHandler.Get)
			contracts.POST("/:id/approve", contractHandler.Approve)
			contracts.POST("/:id/terminate", contractHandler.Terminate)
		}

		inventoryHandler := handlers.NewInventoryHandler(base, cfg.Inventory)
		inv := api.Group("/inventory")
		{
			inv.POST("/provision", inventoryHandler.Provision)
			inv.POST("/status", inventoryHandler.BatchStatus)
			inv.POST("/status/by-ids", inventoryHandler.StatusByIDs)
			inv.POST("/clear-contract", inventoryHandler.ClearContractBatch)
			inv.GET("/units/:id", inventoryHandler.Get)
			inv.POST("/units/:id/reserve", inventoryHandler.Reserve)
			inv.POST("/units/:id/release", inventoryHandler.Release)
			inv.POST("/units/:id/clear-contract", inventoryHandler.ClearContract)
		}

		pricingHandler := handlers.NewPricingHandler(base, cfg.Pricing)
		api.POST("/prices/adjust", pricingHandler.Adjust)

		summaryHandler := handlers.NewSummaryHandler(base, cfg.Summaries)
		summaries := api.Group("/summaries")
		{
			summaries.POST("/recompute", summaryHandler.Recompute)
			summaries.POST("/sync", summaryHandler.Sync)
			summaries.POST("/reclassify", summaryHandler.Reclassify)
		}

		warningHandler := handlers.NewWarningHandler(base, cfg.Warnings)
		api.POST("/warnings/check", warningHandler.Check)

		availabilityHandler := handlers.NewAvailabilityHandler(base, cfg.Availability)
		api.GET("/availability", availabilityHandler.Get)
	}

	return router
}
