package domain

import (
	"fmt"
	"net/mail"
)

// Account is the local system-of-record row for a registered user. The
// identity provider owns the credentials; this row owns the authorization
// flags and is the single source of truth for them after login.
type Account struct {
	ExternalID string `json:"uid"`
	Email      string `json:"email"`
	Active     bool   `json:"is_active"`
	Admin      bool   `json:"is_admin"`
}

// NewAccount validates and builds an account keyed by the identity
// provider's id.
func NewAccount(externalID, email string, admin, active bool) (*Account, error) {
	if externalID == "" {
		return nil, fmt.Errorf("%w: external identity id is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	return &Account{
		ExternalID: externalID,
		Email:      email,
		Active:     active,
		Admin:      admin,
	}, nil
}
