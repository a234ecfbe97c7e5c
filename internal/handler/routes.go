package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tripbill-be-svc/internal/config"
	"tripbill-be-svc/internal/middleware"
	"tripbill-be-svc/internal/service"
	"tripbill-be-svc/pkg/logger"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	userService service.UserService,
	tenantService service.TenantService,
	vendorService service.VendorService,
	tripService service.TripService,
	statementService service.StatementService,
	dashboardService service.DashboardService,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(userService, logger)
	userHandler := NewUserHandler(userService, logger)
	tenantHandler := NewTenantHandler(tenantService, logger)
	vendorHandler := NewVendorHandler(vendorService, logger)
	tripHandler := NewTripHandler(tripService, logger)
	reportHandler := NewReportHandler(statementService, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, logger)

	requireAuth := middleware.RequireAuth(cfg.JWT.Secret, userService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
		}

		// Tenant bootstrap (open, like signup)
		v1.POST("/tenants", tenantHandler.CreateTenant)

		// Authenticated routes
		authed := v1.Group("")
		authed.Use(requireAuth)
		{
			authed.GET("/me", authHandler.Me)
			authed.GET("/users", middleware.RequireRole("admin"), userHandler.ListUsers)

			// Vendor routes
			vendors := authed.Group("/vendors")
			{
				vendors.POST("", middleware.RequireRole("admin"), vendorHandler.CreateVendor)
				vendors.GET("/:id", vendorHandler.GetVendor)
			}

			// Trip routes
			trips := authed.Group("/trips")
			{
				trips.POST("", middleware.RequireRole("admin", "vendor"), tripHandler.CreateTrip)
				trips.GET("", tripHandler.ListTrips)
			}

			// Report routes
			reports := authed.Group("/reports")
			{
				reports.GET("/vendor/:id/monthly", middleware.RequireRole("admin", "vendor"), reportHandler.GetVendorMonthlyStatement)
			}

			// Dashboard routes
			authed.GET("/dashboard/summary", dashboardHandler.GetDashboardSummary)
		}
	}
}

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Trip Billing Service",
	})
}
