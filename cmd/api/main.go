package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/usecase/command"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/usecase/reply"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/usecase/resolver"

	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/messaging/whatsapp"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	os.Exit(run())
}

// run wires the application and blocks until shutdown. It returns the
// process exit code so deferred cleanup runs before the process exits.
func run() int {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Printf("Configuration validation failed: %v", err)
		return 1
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger, err := logger.NewZapLogger(cfg.Environment == config.Production, coreport.ParseLogLevel(cfg.Logger.Level))
	if err != nil {
		log.Printf("Failed to initialize logger: %v", err)
		return 1
	}
	defer appLogger.Flush()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		return 1
	}
	defer dbManager.Close()

	// Run migrations and seed default categories
	if err := dbManager.Migrate(context.Background()); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		return 1
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager, appLogger)
	categoryRepo := repository.NewCategoryRepository(dbManager, appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager, appLogger)
	messageRepo := repository.NewMessageRecordRepository(dbManager, appLogger)

	// Outbound messaging client
	sender := whatsapp.NewClient(whatsapp.Config{
		BaseURL:          cfg.WhatsApp.APIBaseURL,
		APIVersion:       cfg.WhatsApp.APIVersion,
		APIToken:         cfg.WhatsApp.APIToken,
		PhoneNumberID:    cfg.WhatsApp.PhoneNumberID,
		Timeout:          cfg.WhatsApp.RequestTimeout,
		FailureThreshold: cfg.WhatsApp.BreakerFailureThreshold,
		OpenTimeout:      cfg.WhatsApp.BreakerOpenTimeout,
	}, appLogger)
	if !sender.Configured() {
		appLogger.Warn("WhatsApp API credentials are not set, replies will not be delivered", nil)
	}

	// Initialize use cases
	pipeline := command.NewPipeline(
		resolver.NewResolver(userRepo, categoryRepo, tp, appLogger),
		ledger.NewWriter(transactionRepo, messageRepo, tp, appLogger),
		reply.NewDispatcher(sender, cfg.WhatsApp.RequestTimeout, appLogger),
		appLogger,
	)
	queryService := ledger.NewQueryService(transactionRepo, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins)

	// Setup routes
	routes.SetupRoutes(router, routes.Handlers{
		Webhook:  handler.NewWebhookHandler(pipeline, cfg.WhatsApp.VerifyToken, appLogger),
		Manual:   handler.NewManualEntryHandler(pipeline, cfg.WhatsApp.ManualEntrySecret, appLogger),
		Provider: handler.NewProviderHandler(pipeline, appLogger),
		Ledger:   handler.NewLedgerHandler(queryService, appLogger),
		Health:   handler.NewHealthHandler(dbManager),
	})

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	exitCode := awaitShutdown(quit, serverErr, appLogger)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
		exitCode = 1
	}

	if exitCode == 0 {
		appLogger.Info("Server exited gracefully", nil)
	} else {
		appLogger.Error("Server exited with errors", nil)
	}
	return exitCode
}

// awaitShutdown blocks until a signal arrives or the listener fails and
// returns the exit code for that outcome.
func awaitShutdown(quit <-chan os.Signal, serverErr <-chan error, appLogger coreport.Logger) int {
	select {
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{
			"signal": sig.String(),
		})
		return 0
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{
			"error": err.Error(),
		})
		return 1
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	switch cfg.Database.Driver {
	case database.DriverSQLite:
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (sqlite file path)")
		}
	case database.DriverPostgres:
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or WL_DB_HOST environment variable)")
		}
		if cfg.Database.Port == "" {
			missingConfigs = append(missingConfigs, "database.port (or WL_DB_PORT environment variable)")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or WL_DB_USERNAME environment variable)")
		}
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or WL_DB_NAME environment variable)")
		}
	case "":
		missingConfigs = append(missingConfigs, "database.driver")
	default:
		return fmt.Errorf("invalid database driver: %s, must be one of: %s or %s",
			cfg.Database.Driver, database.DriverPostgres, database.DriverSQLite)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Messaging configuration
	if cfg.WhatsApp.RequestTimeout == 0 {
		missingConfigs = append(missingConfigs, "whatsapp.requestTimeout")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	var warnings []string

	if cfg.WhatsApp.VerifyToken == "" {
		warnings = append(warnings, "whatsapp.verifyToken is empty, webhook verification will always fail")
	}

	if cfg.WhatsApp.ManualEntrySecret == "" {
		warnings = append(warnings, "whatsapp.manualEntrySecret is empty, manual entries will be rejected")
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver == database.DriverPostgres &&
			sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}
	}

	if len(warnings) > 0 {
		log.Printf("Warning: potential issues in configuration: %v", warnings)
	}

	return nil
}
