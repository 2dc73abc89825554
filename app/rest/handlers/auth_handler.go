package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"catalog-service/app/port"
	appvalidator "catalog-service/app/utils/validator"
)

// SignupRequest is the POST /signup body. Active defaults to true when
// omitted; admin defaults to false.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64,password"`
	IsAdmin  bool   `json:"is_admin"`
	IsActive *bool  `json:"is_active"`
}

// LoginRequest is the POST /login body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

// AuthHandler handles signup and login HTTP requests
type AuthHandler struct {
	credentials port.CredentialUsecase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(credentials port.CredentialUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		logger:      logger.With("component", "auth_handler"),
	}
}

// Signup registers a new account with the identity provider and the
// system of record and returns a session token.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return h.validationError(c, err)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	ctx := c.Request().Context()
	sessionToken, err := h.credentials.Register(ctx, req.Email, req.Password, req.IsAdmin, active)
	if err != nil {
		h.logger.Error("signup failed", "email", req.Email, "error", err)
		status, message := statusForError(err)
		return c.JSON(status, ErrorResponse{Error: message})
	}

	h.logger.Info("signup succeeded", "email", req.Email)
	return c.JSON(http.StatusOK, TokenResponse{
		Message:      "account registered",
		SessionToken: sessionToken,
	})
}

// Login verifies credentials and returns a session token minted from the
// local account row.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return h.validationError(c, err)
	}

	ctx := c.Request().Context()
	sessionToken, err := h.credentials.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Warn("login failed", "email", req.Email, "error", err)
		status, message := statusForError(err)
		return c.JSON(status, ErrorResponse{Error: message})
	}

	return c.JSON(http.StatusOK, TokenResponse{
		Message:      "login succeeded",
		SessionToken: sessionToken,
	})
}

// validationError renders a 400 with the field-level validation messages.
func (h *AuthHandler) validationError(c echo.Context, err error) error {
	if verr, ok := err.(*appvalidator.ValidationError); ok {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": verr.Errors,
		})
	}
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed"})
}
