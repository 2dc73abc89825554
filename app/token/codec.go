package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"catalog-service/app/domain"
)

// Codec signs and verifies stateless session tokens with a process-wide
// symmetric secret. There is deliberately no revocation store: a token is
// valid until its expiry, and authorization state is re-read from the
// system of record only at login time.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

type sessionClaims struct {
	Active bool `json:"active"`
	Admin  bool `json:"admin"`
	jwt.RegisteredClaims
}

// NewCodec creates a codec. The secret is required; ttl defaults to one
// hour when zero.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token signing secret is required")
	}
	if ttl < 0 {
		return nil, errors.New("token ttl must not be negative")
	}
	if ttl == 0 {
		ttl = time.Hour
	}

	return &Codec{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue mints a signed HS256 token for the given subject and flags.
func (c *Codec) Issue(subject string, active, admin bool) (string, error) {
	claims, err := domain.NewSessionClaims(subject, active, admin, c.ttl)
	if err != nil {
		return "", err
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Active: claims.Active,
		Admin:  claims.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Email,
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	})

	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify decodes and validates a token. Verification is all-or-nothing:
// on any failure no claims are returned. An expired signature-valid token
// yields domain.ErrExpiredToken; everything else collapses to
// domain.ErrMalformedToken.
func (c *Codec) Verify(tokenStr string) (*domain.SessionClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	parsed, err := parser.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrMalformedToken
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return nil, domain.ErrMalformedToken
	}
	if claims.Subject == "" || claims.IssuedAt == nil {
		return nil, domain.ErrMalformedToken
	}

	return &domain.SessionClaims{
		Email:     claims.Subject,
		Active:    claims.Active,
		Admin:     claims.Admin,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
