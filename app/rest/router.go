package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"catalog-service/app/port"
	"catalog-service/app/rest/handlers"
	custommw "catalog-service/app/rest/middleware"
	appvalidator "catalog-service/app/utils/validator"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger            *slog.Logger
	CredentialUsecase port.CredentialUsecase
	CatalogUsecase    port.CatalogUsecase
	TokenVerifier     port.TokenVerifier
	HealthChecks      map[string]handlers.HealthCheckFunc
	EnableDebug       bool
}

// echoValidator adapts the service validator to echo's Validator
// interface so handlers can call c.Validate.
type echoValidator struct {
	validator *appvalidator.Validator
}

func (v *echoValidator) Validate(i interface{}) error {
	return v.validator.Validate(i)
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	// Create Echo instance
	e := echo.New()

	// Configure Echo
	e.HideBanner = true
	e.Debug = config.EnableDebug
	e.Validator = &echoValidator{validator: appvalidator.New()}

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.CredentialUsecase, config.Logger)
	catalogHandler := handlers.NewCatalogHandler(config.CatalogUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Logger, config.HealthChecks)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.TokenVerifier, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// Public endpoints
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/ready", healthHandler.ReadinessCheck)
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// Catalog endpoints. Reads require authentication, writes require
	// the admin privilege on top of it.
	catalog := e.Group("/catalog")
	catalog.Use(authMiddleware.RequireAuth())
	catalog.GET("", catalogHandler.List)
	catalog.POST("", catalogHandler.Create, authMiddleware.RequireAdmin())

	return e
}
