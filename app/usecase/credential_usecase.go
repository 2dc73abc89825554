package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"catalog-service/app/domain"
	"catalog-service/app/port"
	"catalog-service/app/token"
)

// CredentialUseCase orchestrates registration and login across the
// identity provider and the system of record.
type CredentialUseCase struct {
	identity    port.IdentityProvider
	accountRepo port.AccountRepository
	codec       *token.Codec
	logger      *slog.Logger
}

// NewCredentialUseCase creates a new CredentialUseCase instance
func NewCredentialUseCase(identity port.IdentityProvider, accountRepo port.AccountRepository, codec *token.Codec, logger *slog.Logger) *CredentialUseCase {
	return &CredentialUseCase{
		identity:    identity,
		accountRepo: accountRepo,
		codec:       codec,
		logger:      logger.With("component", "credential_usecase"),
	}
}

// Register runs the two-phase registration saga: create the provider
// account, then persist the local row. A persistence failure deletes the
// just-created provider account before the error surfaces, so no orphaned
// identity is left behind. The ordering is load-bearing:
// create-external -> persist-local -> (on failure) delete-external.
func (uc *CredentialUseCase) Register(ctx context.Context, email, password string, admin, active bool) (string, error) {
	var externalID string

	reg := newSaga(uc.logger,
		sagaStep{
			name: "create_identity",
			action: func(ctx context.Context) error {
				id, err := uc.identity.CreateAccount(ctx, email, password)
				if err != nil {
					return err
				}
				externalID = id
				return nil
			},
			compensate: func(ctx context.Context) error {
				return uc.identity.DeleteAccount(ctx, externalID)
			},
		},
		sagaStep{
			name: "persist_account",
			action: func(ctx context.Context) error {
				account, err := domain.NewAccount(externalID, email, admin, active)
				if err != nil {
					return err
				}
				if err := uc.accountRepo.Insert(ctx, account); err != nil {
					return fmt.Errorf("%w: %w", domain.ErrRegistrationPersistence, err)
				}
				return nil
			},
		},
	)

	if err := reg.run(ctx); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) || errors.Is(err, domain.ErrIdentityProvider) {
			return "", err
		}
		if errors.Is(err, domain.ErrRegistrationPersistence) {
			uc.logger.Error("registration persistence failed, identity compensated", "email", email, "error", err)
			return "", domain.ErrRegistrationPersistence
		}
		return "", err
	}

	uc.logger.Info("account registered", "email", email, "uid", externalID)
	return uc.codec.Issue(email, active, admin)
}

// Login verifies credentials with the provider, then reads the local row.
// The row's flags, not the provider's view, decide the minted claims: the
// system of record stays the single source of truth for authorization
// state after login.
func (uc *CredentialUseCase) Login(ctx context.Context, email, password string) (string, error) {
	if err := uc.identity.VerifyPassword(ctx, email, password); err != nil {
		return "", err
	}

	account, err := uc.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			// Provider knows the user but the local store does not: a
			// consistency gap to surface, not to paper over.
			uc.logger.Warn("authenticated account missing from system of record", "email", email)
			return "", domain.ErrAccountNotFound
		}
		return "", fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	if !account.Active {
		return "", domain.ErrInactiveAccount
	}

	uc.logger.Info("login succeeded", "email", email, "admin", account.Admin)
	return uc.codec.Issue(account.Email, account.Active, account.Admin)
}

var _ port.CredentialUsecase = (*CredentialUseCase)(nil)
