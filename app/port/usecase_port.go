package port

//go:generate mockgen -source=usecase_port.go -destination=../mocks/mock_usecase_port.go

import (
	"context"

	"catalog-service/app/domain"
)

// CredentialUsecase orchestrates registration and login against the
// identity provider and the system of record.
type CredentialUsecase interface {
	// Register creates the account with the identity provider, persists
	// the local row and returns a freshly minted session token. On a
	// persistence failure the provider account is deleted before the
	// error is reported.
	Register(ctx context.Context, email, password string, admin, active bool) (string, error)

	// Login verifies credentials with the provider, loads the local row
	// and mints a session token from the row's flags.
	Login(ctx context.Context, email, password string) (string, error)
}

// CatalogUsecase serves catalog reads through the cache and writes with
// cache invalidation.
type CatalogUsecase interface {
	// List returns the catalog, optionally filtered by category.
	List(ctx context.Context, category string) ([]domain.Movie, error)

	// Insert persists a movie and invalidates every cache key the new
	// row could have made stale.
	Insert(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
}

// TokenVerifier verifies bearer tokens for the auth middleware.
type TokenVerifier interface {
	Verify(token string) (*domain.SessionClaims, error)
}
