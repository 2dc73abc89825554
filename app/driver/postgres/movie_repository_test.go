package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/app/domain"
)

func createTestMovieRepository(t *testing.T) (*MovieRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	repo := NewMovieRepository(mockDB, discardLogger()).(*MovieRepository)
	return repo, mockDB
}

func TestMovieRepository_List(t *testing.T) {
	tests := []struct {
		name     string
		category string
		setupDB  func(pgxmock.PgxPoolIface)
		wantErr  bool
		want     []domain.Movie
	}{
		{
			name:     "unfiltered listing",
			category: "",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT movie_id, title, genres").
					WillReturnRows(pgxmock.NewRows([]string{"movie_id", "title", "genres"}).
						AddRow(int64(1), "The Matrix", "Action,Sci-Fi").
						AddRow(int64(2), "Heat", "Crime"))
			},
			want: []domain.Movie{
				{ID: 1, Title: "The Matrix", Genres: "Action,Sci-Fi"},
				{ID: 2, Title: "Heat", Genres: "Crime"},
			},
		},
		{
			name:     "category filter is lowercased for matching",
			category: "Action",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT movie_id, title, genres").
					WithArgs("%action%").
					WillReturnRows(pgxmock.NewRows([]string{"movie_id", "title", "genres"}).
						AddRow(int64(1), "The Matrix", "Action,Sci-Fi"))
			},
			want: []domain.Movie{
				{ID: 1, Title: "The Matrix", Genres: "Action,Sci-Fi"},
			},
		},
		{
			name:     "empty result yields an empty slice",
			category: "western",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT movie_id, title, genres").
					WithArgs("%western%").
					WillReturnRows(pgxmock.NewRows([]string{"movie_id", "title", "genres"}))
			},
			want: []domain.Movie{},
		},
		{
			name:     "database error",
			category: "",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT movie_id, title, genres").
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestMovieRepository(t)
			tt.setupDB(mockDB)

			movies, err := repo.List(context.Background(), tt.category)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, movies)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, movies)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestMovieRepository_Insert(t *testing.T) {
	movie := &domain.Movie{Title: "The Matrix", Genres: "Action,Sci-Fi"}

	tests := []struct {
		name    string
		setupDB func(pgxmock.PgxPoolIface)
		wantErr bool
		wantID  int64
	}{
		{
			name: "successful insert returns the assigned id",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("INSERT INTO movies").
					WithArgs(movie.Title, movie.Genres).
					WillReturnRows(pgxmock.NewRows([]string{"movie_id"}).AddRow(int64(7)))
			},
			wantID: 7,
		},
		{
			name: "database error",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("INSERT INTO movies").
					WithArgs(movie.Title, movie.Genres).
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestMovieRepository(t)
			tt.setupDB(mockDB)

			id, err := repo.Insert(context.Background(), movie)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Zero(t, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}
