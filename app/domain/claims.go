package domain

import (
	"fmt"
	"time"
)

// SessionClaims is the decoded, verified content of a bearer token.
// Claims are immutable once minted; a fresh login always mints a new set.
// They are never persisted server-side: validity is signature plus expiry.
type SessionClaims struct {
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	Admin     bool      `json:"admin"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// NewSessionClaims builds a claim set expiring ttl after issuance.
func NewSessionClaims(email string, active, admin bool, ttl time.Duration) (*SessionClaims, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("%w: token ttl must be positive", ErrInvalidInput)
	}

	now := time.Now()
	return &SessionClaims{
		Email:     email,
		Active:    active,
		Admin:     admin,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// IsExpired reports whether the claims are expired at the given instant.
func (c *SessionClaims) IsExpired(at time.Time) bool {
	return !at.Before(c.ExpiresAt)
}
