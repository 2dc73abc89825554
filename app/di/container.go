package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"catalog-service/app/config"
	"catalog-service/app/driver/kratos"
	"catalog-service/app/driver/postgres"
	"catalog-service/app/driver/redis"
	"catalog-service/app/gateway"
	"catalog-service/app/port"
	"catalog-service/app/rest"
	"catalog-service/app/rest/handlers"
	"catalog-service/app/token"
	"catalog-service/app/usecase"
)

// Container holds all dependencies for the application. Every client is
// constructed exactly once at startup and passed by handle; nothing is
// re-initialized per request.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	Cache        *redis.Store
	KratosClient *kratos.Client

	// Components
	TokenCodec        *token.Codec
	IdentityGateway   port.IdentityProvider
	CredentialUsecase port.CredentialUsecase
	CatalogUsecase    port.CatalogUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize drivers
	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	// A failed cache probe disables caching but never blocks startup.
	container.Cache = redis.NewStore(cfg, logger)

	// Initialize the token codec
	container.TokenCodec, err = token.NewCodec(cfg.SecretKey, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token codec: %w", err)
	}

	// Initialize repositories
	accountRepository := postgres.NewAccountRepository(container.DB.Pool(), logger)
	movieRepository := postgres.NewMovieRepository(container.DB.Pool(), logger)

	// Initialize gateways
	container.IdentityGateway = gateway.NewIdentityGateway(container.KratosClient, logger)

	// Initialize usecases
	container.CredentialUsecase = usecase.NewCredentialUseCase(
		container.IdentityGateway, accountRepository, container.TokenCodec, logger)
	container.CatalogUsecase = usecase.NewCatalogUseCase(
		movieRepository, container.Cache, cfg.CacheTTL, logger)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:            c.Logger,
		CredentialUsecase: c.CredentialUsecase,
		CatalogUsecase:    c.CatalogUsecase,
		TokenVerifier:     c.TokenCodec,
		HealthChecks: map[string]handlers.HealthCheckFunc{
			"database": c.DB.HealthCheck,
			"kratos":   c.KratosClient.HealthCheck,
			"cache":    c.Cache.HealthCheck,
		},
		EnableDebug: c.Config.LogLevel == "debug",
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("Full API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Cache != nil {
		c.Cache.Close()
	}

	c.Logger.Info("Container closed successfully")
	return nil
}
