package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64,password"`
}

type movieForm struct {
	Title string `json:"title" validate:"required,notblank"`
}

func TestValidator_PasswordRule(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid password", password: "Secret1!pass", wantErr: false},
		{name: "missing uppercase", password: "secret1!pass", wantErr: true},
		{name: "missing digit", password: "Secret!!pass", wantErr: true},
		{name: "missing special character", password: "Secret11pass", wantErr: true},
		{name: "too short", password: "Sec1!", wantErr: true},
		{name: "all special characters accepted", password: "Pass1@$!%*?&", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&signupForm{Email: "user@example.com", Password: tt.password})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_NotBlankRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&movieForm{Title: "The Matrix"}))
	assert.Error(t, v.Validate(&movieForm{Title: "   "}))
	assert.Error(t, v.Validate(&movieForm{Title: ""}))
}

func TestValidator_ErrorsUseJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{Email: "not-an-email", Password: "weak"})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "email")
	assert.Contains(t, verr.Errors, "password")
	assert.NotContains(t, verr.Errors, "Email")
}

func TestValidator_ValidStructPasses(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{Email: "user@example.com", Password: "Secret1!pass"})
	assert.NoError(t, err)
}
