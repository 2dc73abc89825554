package handlers

import (
	"errors"
	"net/http"

	"catalog-service/app/domain"
)

// ErrorResponse is the JSON error payload
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse is returned by signup and login
type TokenResponse struct {
	Message      string `json:"message"`
	SessionToken string `json:"sessionToken"`
}

// statusForError maps taxonomy errors onto HTTP status codes and fixed,
// caller-safe messages. Downstream error text never reaches the response
// body; it is logged at the call site instead.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusBadRequest, domain.ErrDuplicateEmail.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, domain.ErrInvalidInput.Error()
	case errors.Is(err, domain.ErrInactiveAccount):
		return http.StatusForbidden, domain.ErrInactiveAccount.Error()
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, domain.ErrAccountNotFound.Error()
	case errors.Is(err, domain.ErrIdentityProvider):
		return http.StatusInternalServerError, domain.ErrIdentityProvider.Error()
	case errors.Is(err, domain.ErrRegistrationPersistence):
		return http.StatusInternalServerError, domain.ErrRegistrationPersistence.Error()
	case errors.Is(err, domain.ErrPersistence):
		return http.StatusInternalServerError, domain.ErrPersistence.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
