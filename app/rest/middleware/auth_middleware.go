package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"catalog-service/app/domain"
	"catalog-service/app/port"
)

const identityContextKey = "identity"

// Identity is the verified caller attached to the request scope by
// RequireAuth. It is derived entirely from the bearer token; no shared
// mutable state is involved.
type Identity struct {
	Email  string
	Active bool
	Admin  bool
}

// AuthMiddleware provides the two guard levels applied before protected
// handlers run.
type AuthMiddleware struct {
	verifier port.TokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(verifier port.TokenVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger.With("component", "auth_middleware"),
	}
}

// RequireAuth enforces the authenticated guard: a bearer token must be
// present, verifiable and belong to an active account. On success the
// verified identity is attached to the request scope.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenStr, err := extractBearerToken(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			claims, err := m.verifier.Verify(tokenStr)
			if err != nil {
				m.logger.Debug("token verification failed", "error", err)
				if errors.Is(err, domain.ErrExpiredToken) {
					return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrExpiredToken.Error())
				}
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrMalformedToken.Error())
			}

			if !claims.Active {
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrInactiveAccount.Error())
			}

			c.Set(identityContextKey, &Identity{
				Email:  claims.Email,
				Active: claims.Active,
				Admin:  claims.Admin,
			})

			return next(c)
		}
	}
}

// RequireAdmin enforces the privileged guard. It expects RequireAuth to
// have run earlier in the chain.
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFrom(c)
			if identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			if !identity.Admin {
				m.logger.Warn("privileged access denied", "email", identity.Email)
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrInsufficientPrivilege.Error())
			}

			return next(c)
		}
	}
}

// IdentityFrom returns the verified identity attached by RequireAuth, or
// nil when the request is unauthenticated.
func IdentityFrom(c echo.Context) *Identity {
	identity, ok := c.Get(identityContextKey).(*Identity)
	if !ok {
		return nil
	}
	return identity
}

// extractBearerToken reads the bearer credential from the authorization
// header. The scheme comparison is case-insensitive per RFC 7235.
func extractBearerToken(c echo.Context) (string, error) {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if auth == "" {
		return "", domain.ErrMissingCredential
	}

	scheme, tokenStr, found := strings.Cut(auth, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenStr) == "" {
		return "", domain.ErrMalformedCredential
	}

	return strings.TrimSpace(tokenStr), nil
}
