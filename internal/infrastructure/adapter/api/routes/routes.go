package routes

import (
	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the HTTP handlers the router serves
type Handlers struct {
	Webhook  *handler.WebhookHandler
	Manual   *handler.ManualEntryHandler
	Provider *handler.ProviderHandler
	Ledger   *handler.LedgerHandler
	Health   *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	if h.Health != nil {
		router.GET("/health", h.Health.Check)
	}

	api := router.Group("/api")
	{
		// GET/POST /api/whatsapp-webhook
		api.GET("/whatsapp-webhook", h.Webhook.Verify)
		api.POST("/whatsapp-webhook", h.Webhook.Receive)

		// POST /api/manual-transaction
		api.POST("/manual-transaction", h.Manual.Create)

		// POST /api/whatsapp
		api.POST("/whatsapp", h.Provider.Receive)

		// GET /api/whatsapp-transactions
		api.GET("/whatsapp-transactions", h.Ledger.List)
	}

	router.NoRoute(middleware.NotFound())
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins...))
}
