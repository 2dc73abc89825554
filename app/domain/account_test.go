package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	tests := []struct {
		name       string
		externalID string
		email      string
		admin      bool
		active     bool
		wantErr    bool
	}{
		{
			name:       "valid active account",
			externalID: "kratos-id-123",
			email:      "user@example.com",
			admin:      false,
			active:     true,
			wantErr:    false,
		},
		{
			name:       "valid admin account",
			externalID: "kratos-id-456",
			email:      "admin@example.com",
			admin:      true,
			active:     true,
			wantErr:    false,
		},
		{
			name:       "missing external id",
			externalID: "",
			email:      "user@example.com",
			wantErr:    true,
		},
		{
			name:       "invalid email",
			externalID: "kratos-id-123",
			email:      "not-an-email",
			wantErr:    true,
		},
		{
			name:       "empty email",
			externalID: "kratos-id-123",
			email:      "",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := NewAccount(tt.externalID, tt.email, tt.admin, tt.active)

			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Nil(t, account)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.externalID, account.ExternalID)
			assert.Equal(t, tt.email, account.Email)
			assert.Equal(t, tt.admin, account.Admin)
			assert.Equal(t, tt.active, account.Active)
		})
	}
}
