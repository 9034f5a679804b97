package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/aquapure/sales-portal/internal/api/handler"
	"github.com/aquapure/sales-portal/internal/api/middleware"
	"github.com/aquapure/sales-portal/internal/core/service"
	"github.com/aquapure/sales-portal/internal/infrastructure/config"
	"github.com/aquapure/sales-portal/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("aquapure"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	auditRepo := postgres.NewAuditRepository(db)
	metricsRepo := postgres.NewMetricsRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	auditService := service.NewAuditService(auditRepo, log)
	metricsService := service.NewMetricsService(metricsRepo, log)
	reportService := service.NewReportService(auditRepo, metricsRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	auditHandler := handler.NewAuditHandler(auditService)
	metricsHandler := handler.NewMetricsHandler(metricsService)
	reportHandler := handler.NewReportHandler(reportService)

	authMiddleware := middleware.Auth(authService)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/profile", authHandler.Profile, authMiddleware)
	e.PUT("/auth/profile", authHandler.UpdateProfile, authMiddleware)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Audit routes ---
	e.POST("/audits", auditHandler.Create, authMiddleware)
	e.GET("/audits", auditHandler.List, authMiddleware)
	e.GET("/audits/:id", auditHandler.Get, authMiddleware)

	// --- Weekly scorecard routes ---
	e.GET("/metrics/weekly", metricsHandler.GetWeekly, authMiddleware)
	e.PUT("/metrics/weekly", metricsHandler.UpdateMetric, authMiddleware)

	// --- Reports ---
	e.GET("/reports/business-review", reportHandler.BusinessReview, authMiddleware)

	// --- Health probes and scrape endpoint (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
