package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/app/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestAccountRepository(t *testing.T) (*AccountRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	repo := NewAccountRepository(mockDB, discardLogger()).(*AccountRepository)
	return repo, mockDB
}

func TestAccountRepository_Insert(t *testing.T) {
	account := &domain.Account{
		ExternalID: uuid.NewString(),
		Email:      "user@example.com",
		Active:     true,
		Admin:      false,
	}

	tests := []struct {
		name    string
		setupDB func(pgxmock.PgxPoolIface)
		wantErr bool
	}{
		{
			name: "successful insert",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("INSERT INTO users").
					WithArgs(account.ExternalID, account.Email, account.Admin, account.Active).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			wantErr: false,
		},
		{
			name: "database error",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("INSERT INTO users").
					WithArgs(account.ExternalID, account.Email, account.Admin, account.Active).
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestAccountRepository(t)
			tt.setupDB(mockDB)

			err := repo.Insert(context.Background(), account)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_GetByEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		setupDB func(pgxmock.PgxPoolIface)
		wantErr error
		want    *domain.Account
	}{
		{
			name:  "account found",
			email: "user@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT uid, email, is_active, is_admin").
					WithArgs("user@example.com").
					WillReturnRows(pgxmock.NewRows([]string{"uid", "email", "is_active", "is_admin"}).
						AddRow("kratos-id-123", "user@example.com", true, true))
			},
			want: &domain.Account{
				ExternalID: "kratos-id-123",
				Email:      "user@example.com",
				Active:     true,
				Admin:      true,
			},
		},
		{
			name:  "no row maps to account not found",
			email: "missing@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT uid, email, is_active, is_admin").
					WithArgs("missing@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrAccountNotFound,
		},
		{
			name:  "database error is not translated",
			email: "user@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT uid, email, is_active, is_admin").
					WithArgs("user@example.com").
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr: pgx.ErrTxClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestAccountRepository(t)
			tt.setupDB(mockDB)

			account, err := repo.GetByEmail(context.Background(), tt.email)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, account)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, account)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}
