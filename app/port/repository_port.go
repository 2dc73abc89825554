package port

//go:generate mockgen -source=repository_port.go -destination=../mocks/mock_repository_port.go

import (
	"context"

	"catalog-service/app/domain"
)

// AccountRepository persists accounts in the system of record.
type AccountRepository interface {
	// Insert stores a new account row. The row is keyed by the identity
	// provider's external id.
	Insert(ctx context.Context, account *domain.Account) error

	// GetByEmail returns the account for an email, or
	// domain.ErrAccountNotFound when no row exists.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// MovieRepository persists catalog items in the system of record.
type MovieRepository interface {
	// List returns movies, optionally filtered by a category matched
	// case-insensitively against the genres column. Ordered by id.
	List(ctx context.Context, category string) ([]domain.Movie, error)

	// Insert stores a movie and returns its assigned identifier.
	Insert(ctx context.Context, movie *domain.Movie) (int64, error)
}
