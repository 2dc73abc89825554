package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"catalog-service/app/domain"
	"catalog-service/app/port"
)

// Cache key layout. The key space is small and human-auditable, so the
// keys are derived directly from the query shape without hashing.
const (
	catalogCacheKeyAll    = "movies:catalog:all"
	catalogCacheKeyPrefix = "movies:catalog:"
)

// CatalogUseCase serves catalog reads through the cache and invalidates
// the affected keys on writes.
type CatalogUseCase struct {
	movieRepo port.MovieRepository
	cache     port.CacheStore
	cacheTTL  time.Duration
	logger    *slog.Logger
}

// NewCatalogUseCase creates a new CatalogUseCase instance
func NewCatalogUseCase(movieRepo port.MovieRepository, cache port.CacheStore, cacheTTL time.Duration, logger *slog.Logger) *CatalogUseCase {
	if cacheTTL <= 0 {
		cacheTTL = 1800 * time.Second
	}
	return &CatalogUseCase{
		movieRepo: movieRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger.With("component", "catalog_usecase"),
	}
}

// cacheKey derives the cache key for a listing query. The unfiltered
// listing maps to a fixed key; a category listing is keyed by the
// lower-cased category.
func cacheKey(category string) string {
	if category == "" {
		return catalogCacheKeyAll
	}
	return catalogCacheKeyPrefix + strings.ToLower(category)
}

// List returns the catalog, read through the cache. A hit is trusted as
// is; a miss queries the system of record and repopulates the key with
// the configured time-to-live.
func (uc *CatalogUseCase) List(ctx context.Context, category string) ([]domain.Movie, error) {
	key := cacheKey(category)

	if payload, ok := uc.cache.Get(ctx, key); ok {
		var movies []domain.Movie
		if err := json.Unmarshal(payload, &movies); err == nil {
			uc.logger.Debug("catalog served from cache", "key", key)
			return movies, nil
		}
		// Store-level validation catches byte corruption; a schema
		// mismatch lands here and falls through to the source of truth.
		uc.logger.Warn("cache payload did not decode, falling back to database", "key", key)
	}

	movies, err := uc.movieRepo.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	if payload, err := json.Marshal(movies); err == nil {
		if err := uc.cache.Set(ctx, key, payload, uc.cacheTTL); err != nil {
			uc.logger.Warn("failed to store catalog in cache", "key", key, "error", err)
		}
	}

	return movies, nil
}

// Insert persists a movie, then invalidates the unfiltered-listing key
// and one category key per genre tag on the new row. Invalidation runs
// strictly after the insert is confirmed durable and is never skipped on
// cache unavailability; its failures are logged, never escalated, and
// never roll back the committed insert. The time-to-live bounds any
// staleness a lost delete could leave behind.
func (uc *CatalogUseCase) Insert(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	id, err := uc.movieRepo.Insert(ctx, movie)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	inserted := &domain.Movie{
		ID:     id,
		Title:  movie.Title,
		Genres: movie.Genres,
	}

	uc.invalidate(ctx, catalogCacheKeyAll)
	for _, tag := range inserted.GenreTags() {
		uc.invalidate(ctx, catalogCacheKeyPrefix+tag)
	}

	return inserted, nil
}

func (uc *CatalogUseCase) invalidate(ctx context.Context, key string) {
	removed, err := uc.cache.Delete(ctx, key)
	if err != nil {
		uc.logger.Warn("cache invalidation failed", "key", key, "error", err)
		return
	}
	if removed {
		uc.logger.Info("cache key invalidated", "key", key)
	}
}

var _ port.CatalogUsecase = (*CatalogUseCase)(nil)
