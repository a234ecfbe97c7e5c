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

	"github.com/gin-gonic/gin"

	"tripbill-be-svc/docs"
	"tripbill-be-svc/internal/cache"
	"tripbill-be-svc/internal/config"
	"tripbill-be-svc/internal/database"
	"tripbill-be-svc/internal/handler"
	"tripbill-be-svc/internal/middleware"
	"tripbill-be-svc/internal/repository"
	"tripbill-be-svc/internal/scheduler"
	"tripbill-be-svc/internal/service"
	"tripbill-be-svc/pkg/logger"
)

// @title Trip Billing Service API
// @version 1.0
// @description Per-trip vendor billing with monthly statements and tenant dashboards

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Trip Billing Service API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Trip Billing Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize statement cache
	statementCache, err := cache.NewRedisCache(&cfg.Redis)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to redis")
	}
	appLogger.Info("Statement cache connected successfully")

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db.DB)
	userRepo := repository.NewUserRepository(db.DB)
	vendorRepo := repository.NewVendorRepository(db.DB)
	tripRepo := repository.NewTripRepository(db.DB)
	invoiceRepo := repository.NewInvoiceRepository(db.DB)
	schedulerLogRepo := repository.NewSchedulerLogRepository(db.DB)

	// Initialize services
	userService := service.NewUserService(userRepo, cfg.JWT, appLogger)
	tenantService := service.NewTenantService(tenantRepo, appLogger)
	vendorService := service.NewVendorService(vendorRepo, appLogger)
	billingService := service.NewBillingService(vendorRepo, invoiceRepo, appLogger)
	tripService := service.NewTripService(tripRepo, billingService, appLogger)
	statementService := service.NewStatementService(invoiceRepo, statementCache, time.Duration(cfg.Statement.CacheTTLSeconds)*time.Second, appLogger)
	dashboardService := service.NewDashboardService(invoiceRepo, vendorRepo, tripRepo, appLogger)

	// Start statement warmup scheduler
	var statementScheduler *scheduler.StatementScheduler
	if cfg.Scheduler.Enabled {
		statementScheduler = scheduler.NewStatementScheduler(statementService, vendorRepo, schedulerLogRepo, appLogger, cfg.Scheduler.WarmupCronExpression)
		if err := statementScheduler.Start(); err != nil {
			appLogger.WithField("error", err).Fatal("Failed to start statement scheduler")
		}
	}

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(router, cfg, userService, tenantService, vendorService, tripService, statementService, dashboardService, appLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	if statementScheduler != nil {
		statementScheduler.Stop()
	}

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
