package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	accountUseCase "github.com/scorepulse/scorepulse/internal/domain/usecase/account"
	paymentUseCase "github.com/scorepulse/scorepulse/internal/domain/usecase/payment"
	predictionUseCase "github.com/scorepulse/scorepulse/internal/domain/usecase/prediction"
	"github.com/scorepulse/scorepulse/internal/domain/usecase/quota"

	"github.com/scorepulse/scorepulse/internal/infrastructure/adapter/api/handler"
	"github.com/scorepulse/scorepulse/internal/infrastructure/adapter/api/routes"
	"github.com/scorepulse/scorepulse/internal/infrastructure/adapter/database"
	"github.com/scorepulse/scorepulse/internal/infrastructure/adapter/database/migration"
	"github.com/scorepulse/scorepulse/internal/infrastructure/adapter/logger"
	"github.com/scorepulse/scorepulse/internal/infrastructure/adapter/mpesa"
	"github.com/scorepulse/scorepulse/internal/infrastructure/adapter/predictor"
	"github.com/scorepulse/scorepulse/internal/infrastructure/adapter/repository"
	timeProvider "github.com/scorepulse/scorepulse/internal/infrastructure/adapter/time"
	"github.com/scorepulse/scorepulse/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() { _ = appLogger.Flush() }()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(dbManager.DB(), tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)
	predictionRepo := repository.NewPredictionRepository(dbManager.DB(), appLogger)

	// Unit of work binds the reconciliation commit into one transaction
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Payment gateway client
	gatewayClient := mpesa.NewClient(mpesa.Config{
		BaseURL:        cfg.Mpesa.BaseURL,
		ConsumerKey:    cfg.Mpesa.ConsumerKey,
		ConsumerSecret: cfg.Mpesa.ConsumerSecret,
		ShortCode:      cfg.Mpesa.ShortCode,
		Passkey:        cfg.Mpesa.Passkey,
		CallbackURL:    cfg.Mpesa.CallbackURL,
		Timeout:        cfg.Mpesa.Timeout,
	}, tp, appLogger)

	// Initialize use cases
	gate := quota.NewGate(accountRepo, appLogger, cfg.Quota.FreeLimit)

	proDuration := time.Duration(cfg.Mpesa.ProDays) * 24 * time.Hour
	paymentService := paymentUseCase.NewService(
		uow,
		accountRepo,
		transactionRepo,
		gatewayClient,
		tp,
		appLogger,
		proDuration,
	)

	tiered := predictor.NewTieredPredictor(time.Now().UnixNano())
	predictionService := predictionUseCase.NewService(gate, tiered, predictionRepo, tp, appLogger)

	accountService := accountUseCase.NewService(
		accountRepo,
		transactionRepo,
		tp,
		appLogger,
		cfg.Quota.FreeLimit,
		cfg.Admin.StalePendingAge,
	)

	// Initialize API handlers
	paymentHandler := handler.NewPaymentHandler(paymentService, appLogger)
	predictionHandler := handler.NewPredictionHandler(predictionService, appLogger)
	accountHandler := handler.NewAccountHandler(accountService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, paymentHandler, predictionHandler, accountHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
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
	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("SP_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or SP_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}
	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("SP_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or SP_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}
	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("SP_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or SP_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}
	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("SP_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or SP_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate quota configuration
	if cfg.Quota.FreeLimit == 0 {
		missingConfigs = append(missingConfigs, "quota.freeLimit")
	}

	// Validate gateway configuration; credentials may come from the environment
	if cfg.Mpesa.BaseURL == "" {
		missingConfigs = append(missingConfigs, "mpesa.baseUrl")
	}
	if cfg.Mpesa.CallbackURL == "" && cfg.Environment == config.Production {
		missingConfigs = append(missingConfigs, "mpesa.callbackUrl (or SP_MPESA_CALLBACK_URL environment variable)")
	}
	if cfg.Environment == config.Production {
		if cfg.Mpesa.ConsumerKey == "" {
			missingConfigs = append(missingConfigs, "mpesa.consumerKey (or SP_MPESA_CONSUMER_KEY environment variable)")
		}
		if cfg.Mpesa.ConsumerSecret == "" {
			missingConfigs = append(missingConfigs, "mpesa.consumerSecret (or SP_MPESA_CONSUMER_SECRET environment variable)")
		}
		if cfg.Mpesa.ShortCode == "" {
			missingConfigs = append(missingConfigs, "mpesa.shortCode (or SP_MPESA_SHORT_CODE environment variable)")
		}
		if cfg.Mpesa.Passkey == "" {
			missingConfigs = append(missingConfigs, "mpesa.passkey (or SP_MPESA_PASSKEY environment variable)")
		}
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

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
