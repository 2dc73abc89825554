package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"catalog-service/app/domain"
	"catalog-service/app/port"
)

// MovieRepository implements port.MovieRepository for PostgreSQL
type MovieRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewMovieRepository creates a new PostgreSQL movie repository
func NewMovieRepository(db DatabaseIface, logger *slog.Logger) port.MovieRepository {
	return &MovieRepository{
		db:     db,
		logger: logger.With("component", "movie_repository"),
	}
}

// List returns catalog rows, optionally filtered by category. The filter
// matches the genres column case-insensitively, the same shape the cache
// key is derived from.
func (r *MovieRepository) List(ctx context.Context, category string) ([]domain.Movie, error) {
	query := `
		SELECT movie_id, title, genres
		FROM movies`
	args := []interface{}{}

	if category != "" {
		query += `
		WHERE LOWER(genres) LIKE $1`
		args = append(args, "%"+strings.ToLower(category)+"%")
	}

	query += `
		ORDER BY movie_id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query movies", "category", category, "error", err)
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	movies := make([]domain.Movie, 0)
	for rows.Next() {
		var movie domain.Movie
		if err := rows.Scan(&movie.ID, &movie.Title, &movie.Genres); err != nil {
			return nil, fmt.Errorf("failed to scan movie row: %w", err)
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read movie rows: %w", err)
	}

	return movies, nil
}

// Insert stores a movie and returns the identifier assigned by the
// database.
func (r *MovieRepository) Insert(ctx context.Context, movie *domain.Movie) (int64, error) {
	query := `
		INSERT INTO movies (title, genres)
		VALUES ($1, $2)
		RETURNING movie_id`

	var id int64
	err := r.db.QueryRow(ctx, query, movie.Title, movie.Genres).Scan(&id)
	if err != nil {
		r.logger.Error("failed to insert movie", "title", movie.Title, "error", err)
		return 0, fmt.Errorf("failed to insert movie: %w", err)
	}

	r.logger.Info("movie inserted", "movie_id", id, "title", movie.Title)
	return id, nil
}
