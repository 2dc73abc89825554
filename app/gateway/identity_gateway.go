package gateway

import (
	"context"
	"log/slog"
	"net/http"

	"catalog-service/app/domain"
	"catalog-service/app/port"
)

// IdentityGateway implements port.IdentityProvider on Kratos. It is the
// anti-corruption layer between the domain and the identity collaborator:
// provider responses are translated into the domain error taxonomy and
// never leak further up.
type IdentityGateway struct {
	client port.KratosClient
	logger *slog.Logger
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(client port.KratosClient, logger *slog.Logger) *IdentityGateway {
	return &IdentityGateway{
		client: client,
		logger: logger.With("component", "identity_gateway"),
	}
}

// CreateAccount registers credentials with Kratos and returns the
// provider-assigned identity id.
func (g *IdentityGateway) CreateAccount(ctx context.Context, email, password string) (string, error) {
	identity, resp, err := g.client.CreateIdentity(ctx, email, password)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusConflict {
			g.logger.Warn("identity already exists", "email", email)
			return "", domain.ErrDuplicateEmail
		}

		g.logger.Error("failed to create identity", "email", email, "error", err)
		return "", domain.NewIdentityError("create identity", domain.ErrIdentityProvider, err)
	}

	g.logger.Info("identity created", "email", email, "identity_id", identity.Id)
	return identity.Id, nil
}

// DeleteAccount removes a provider account. Used by the registration
// compensation path.
func (g *IdentityGateway) DeleteAccount(ctx context.Context, externalID string) error {
	if _, err := g.client.DeleteIdentity(ctx, externalID); err != nil {
		g.logger.Error("failed to delete identity", "identity_id", externalID, "error", err)
		return domain.NewIdentityError("delete identity", domain.ErrIdentityProvider, err)
	}

	g.logger.Info("identity deleted", "identity_id", externalID)
	return nil
}

// VerifyPassword checks credentials via a native login flow. Every
// rejection, provider outages included, collapses to a single
// externally-visible outcome.
func (g *IdentityGateway) VerifyPassword(ctx context.Context, email, password string) error {
	if _, _, err := g.client.SubmitPasswordLogin(ctx, email, password); err != nil {
		g.logger.Warn("password verification rejected", "email", email, "error", err)
		return domain.ErrInvalidCredentials
	}

	return nil
}

var _ port.IdentityProvider = (*IdentityGateway)(nil)
