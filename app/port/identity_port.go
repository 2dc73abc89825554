package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go

import (
	"context"
	"net/http"

	kratosclient "github.com/ory/kratos-client-go"
)

// KratosClient is the low-level Kratos driver surface the identity
// gateway consumes. Raw HTTP responses are exposed so the gateway can map
// provider status codes onto the domain taxonomy.
type KratosClient interface {
	CreateIdentity(ctx context.Context, email, password string) (*kratosclient.Identity, *http.Response, error)
	DeleteIdentity(ctx context.Context, identityID string) (*http.Response, error)
	SubmitPasswordLogin(ctx context.Context, email, password string) (*kratosclient.SuccessfulNativeLogin, *http.Response, error)
}

// IdentityProvider is the external credential collaborator. It owns
// account creation and password verification; the local store owns
// authorization flags.
type IdentityProvider interface {
	// CreateAccount registers credentials with the provider and returns
	// the provider-assigned identity id. Returns domain.ErrDuplicateEmail
	// when the email is already registered, domain.ErrIdentityProvider
	// for any other failure.
	CreateAccount(ctx context.Context, email, password string) (string, error)

	// DeleteAccount removes a provider account. Used by the registration
	// compensation path.
	DeleteAccount(ctx context.Context, externalID string) error

	// VerifyPassword checks credentials against the provider. Every
	// rejection, including provider unavailability, collapses to
	// domain.ErrInvalidCredentials.
	VerifyPassword(ctx context.Context, email, password string) error
}
