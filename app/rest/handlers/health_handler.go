package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthCheckFunc probes a single dependency.
type HealthCheckFunc func(ctx context.Context) error

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	logger *slog.Logger
	checks map[string]HealthCheckFunc
}

// NewHealthHandler creates a new health handler. The checks map holds the
// readiness probes, keyed by dependency name.
func NewHealthHandler(logger *slog.Logger, checks map[string]HealthCheckFunc) *HealthHandler {
	return &HealthHandler{
		logger: logger,
		checks: checks,
	}
}

// HealthCheck performs a basic liveness check
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "catalog-service",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessCheck probes every dependency and reports per-check status.
// The cache is reported but never fails readiness: the service is
// designed to serve without it.
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	ctx := c.Request().Context()
	checks := make(map[string]HealthStatus, len(h.checks))

	allHealthy := true
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Warn("readiness probe failed", "dependency", name, "error", err)
			checks[name] = HealthStatus{Status: "unhealthy", Message: "probe failed"}
			if name != "cache" {
				allHealthy = false
			}
			continue
		}
		checks[name] = HealthStatus{Status: "healthy", Message: "connected"}
	}

	response := ReadinessResponse{
		Status:    getOverallStatus(allHealthy),
		Timestamp: time.Now(),
		Service:   "catalog-service",
		Checks:    checks,
	}

	statusCode := http.StatusOK
	if !allHealthy {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, response)
}

// Root returns the welcome payload.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to the Movies API",
	})
}

// Helper functions
func getOverallStatus(allHealthy bool) string {
	if allHealthy {
		return "ready"
	}
	return "not_ready"
}

// Response types
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

type ReadinessResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Service   string                  `json:"service"`
	Checks    map[string]HealthStatus `json:"checks"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// startTime is set when the service starts
var startTime = time.Now()
