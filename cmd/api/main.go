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

	"github.com/dialdesk/dialdesk/config"
	"github.com/dialdesk/dialdesk/pkg/activity"
	"github.com/dialdesk/dialdesk/pkg/api/handlers"
	custommw "github.com/dialdesk/dialdesk/pkg/api/middleware"
	"github.com/dialdesk/dialdesk/pkg/cache"
	"github.com/dialdesk/dialdesk/pkg/database"
	"github.com/dialdesk/dialdesk/pkg/export"
	"github.com/dialdesk/dialdesk/pkg/importer"
	"github.com/dialdesk/dialdesk/pkg/jobs"
	"github.com/dialdesk/dialdesk/pkg/leads"
	"github.com/dialdesk/dialdesk/pkg/logger"
	"github.com/dialdesk/dialdesk/pkg/metrics"
	custommiddleware "github.com/dialdesk/dialdesk/pkg/middleware"
	"github.com/dialdesk/dialdesk/pkg/projects"
	"github.com/dialdesk/dialdesk/pkg/workspace"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2) // login brute-force guard

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(prometheusMetrics.Middleware())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))
	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "DialDesk API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}
		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Initialize services
	workspaceService := workspace.NewService(db.Ent)
	activityService := activity.NewService(db.Ent)
	leadService := leads.NewService(db.Ent, activityService, cfg.PhoneDefaultRegion)
	projectService := projects.NewService(db.Ent, workspaceService, redisClient)
	importService := importer.NewService(db.Ent, workspaceService, activityService, cfg.PhoneDefaultRegion)
	exportService := export.NewService(leadService, cfg.StorageLocalPath)

	// Initialize cron manager for the daily follow-up scan
	cronManager := jobs.NewCronManager(leadService, prometheusMetrics, cfg.FollowUpCronSpec, logger.New(cfg.LogLevel, cfg.LogFormat))
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db.Ent, cfg, prometheusMetrics)
	userHandler := handlers.NewUserHandler(db.Ent)
	projectHandler := handlers.NewProjectHandler(projectService)
	leadHandler := handlers.NewLeadHandler(leadService, prometheusMetrics)
	importHandler := handlers.NewImportHandler(importService, prometheusMetrics)
	activityHandler := handlers.NewActivityHandler(activityService, leadService)
	exportHandler := handlers.NewExportHandler(exportService, prometheusMetrics)

	api := e.Group("/api")

	// Authentication routes (public)
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
		authRoutes.GET("/me", authHandler.Me, custommw.JWTMiddleware(cfg.JWTSecret, db.Ent))
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(custommw.JWTMiddleware(cfg.JWTSecret, db.Ent))
	{
		// Project routes
		projectGroup := protected.Group("/projects")
		{
			projectGroup.GET("", projectHandler.List)
			projectGroup.GET("/:id", projectHandler.Get)
			projectGroup.POST("", projectHandler.Create, custommiddleware.RequireAdmin(db.Ent))
			projectGroup.PUT("/:id", projectHandler.Update, custommiddleware.RequireAdmin(db.Ent))
			projectGroup.DELETE("/:id", projectHandler.Delete, custommiddleware.RequireAdmin(db.Ent))
			projectGroup.GET("/:id/export", exportHandler.ExportProject)
		}

		// Lead routes
		leadGroup := protected.Group("/leads")
		{
			leadGroup.GET("", leadHandler.ListForProject)
			leadGroup.GET("/:id", leadHandler.Get)
			leadGroup.POST("", leadHandler.Create)
			leadGroup.PUT("/:id", leadHandler.Update)
			leadGroup.DELETE("/:id", leadHandler.Delete)
			leadGroup.GET("/:id/activity", activityHandler.ForLead)
		}

		// Bulk import routes
		importGroup := protected.Group("/import")
		{
			importGroup.POST("/leads", importHandler.ImportJSON)
			importGroup.POST("/csv", importHandler.ImportCSV)
		}

		// Export metadata
		protected.GET("/exports/formats", exportHandler.Formats)

		// User management routes (admin only)
		userGroup := protected.Group("/users")
		userGroup.Use(custommiddleware.RequireAdmin(db.Ent))
		{
			userGroup.GET("", userHandler.List)
			userGroup.POST("", userHandler.Create)
			userGroup.PUT("/:id", userHandler.Update)
			userGroup.DELETE("/:id", userHandler.Delete)
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 DialDesk API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Cron jobs: follow-up scan (%s)", cfg.FollowUpCronSpec)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
