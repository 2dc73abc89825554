package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionClaims(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		ttl     time.Duration
		wantErr bool
	}{
		{
			name:    "valid claims",
			email:   "user@example.com",
			ttl:     time.Hour,
			wantErr: false,
		},
		{
			name:    "empty email rejected",
			email:   "",
			ttl:     time.Hour,
			wantErr: true,
		},
		{
			name:    "zero ttl rejected",
			email:   "user@example.com",
			ttl:     0,
			wantErr: true,
		},
		{
			name:    "negative ttl rejected",
			email:   "user@example.com",
			ttl:     -time.Minute,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := NewSessionClaims(tt.email, true, false, tt.ttl)

			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.email, claims.Email)
			assert.True(t, claims.Active)
			assert.False(t, claims.Admin)
			assert.Equal(t, tt.ttl, claims.ExpiresAt.Sub(claims.IssuedAt))
		})
	}
}

func TestSessionClaims_IsExpired(t *testing.T) {
	claims, err := NewSessionClaims("user@example.com", true, false, time.Hour)
	require.NoError(t, err)

	assert.False(t, claims.IsExpired(claims.IssuedAt))
	assert.False(t, claims.IsExpired(claims.ExpiresAt.Add(-time.Second)))
	assert.True(t, claims.IsExpired(claims.ExpiresAt))
	assert.True(t, claims.IsExpired(claims.ExpiresAt.Add(time.Second)))
}
