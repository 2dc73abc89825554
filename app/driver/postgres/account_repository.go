package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"catalog-service/app/domain"
	"catalog-service/app/port"
)

// AccountRepository implements port.AccountRepository for PostgreSQL
type AccountRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewAccountRepository creates a new PostgreSQL account repository
func NewAccountRepository(db DatabaseIface, logger *slog.Logger) port.AccountRepository {
	return &AccountRepository{
		db:     db,
		logger: logger.With("component", "account_repository"),
	}
}

// Insert stores a new account row keyed by the identity provider's id.
// Email uniqueness is enforced by the table's unique constraint.
func (r *AccountRepository) Insert(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO users (uid, email, is_admin, is_active)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query,
		account.ExternalID,
		account.Email,
		account.Admin,
		account.Active,
	)
	if err != nil {
		r.logger.Error("failed to insert account", "email", account.Email, "error", err)
		return fmt.Errorf("failed to insert account: %w", err)
	}

	r.logger.Info("account inserted", "email", account.Email, "uid", account.ExternalID)
	return nil
}

// GetByEmail returns the account row for an email.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT uid, email, is_active, is_admin
		FROM users
		WHERE email = $1`

	account := &domain.Account{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&account.ExternalID,
		&account.Email,
		&account.Active,
		&account.Admin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		r.logger.Error("failed to query account", "email", email, "error", err)
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	return account, nil
}
