package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"catalog-service/app/config"
	"catalog-service/app/port"
)

// Store implements port.CacheStore on Redis. Cache failures never reach
// the caller as errors on the read path: absence, backend unavailability
// and corrupt payloads all degrade to a miss, preserving read
// availability.
//
// If the backend is unreachable when the store is constructed, caching
// stays disabled for the process lifetime. Operations remain callable and
// short-circuit to no-ops/misses; there is no reconnect loop.
type Store struct {
	client  *redis.Client
	logger  *slog.Logger
	enabled bool
}

// NewStore probes the backend once and returns the store. A nil address
// or failed probe yields a permanently disabled store, never an error.
func NewStore(cfg *config.Config, logger *slog.Logger) *Store {
	log := logger.With("component", "cache_store")

	if cfg.RedisAddr == "" {
		log.Warn("REDIS_ADDR not configured, caching disabled")
		return &Store{logger: log}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Error("redis liveness probe failed, caching disabled", "addr", cfg.RedisAddr, "error", err)
		_ = client.Close()
		return &Store{logger: log}
	}

	log.Info("connected to redis", "addr", cfg.RedisAddr)
	return &Store{client: client, logger: log, enabled: true}
}

// Enabled reports whether the backend probe succeeded at construction.
func (s *Store) Enabled() bool {
	return s.enabled
}

// Get returns the payload stored under key. A corrupt (non-JSON) payload
// is deleted and reported as a miss.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	if !s.enabled {
		return nil, false
	}

	payload, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("cache get failed", "key", key, "error", err)
		}
		return nil, false
	}

	if !json.Valid(payload) {
		s.logger.Warn("corrupt cache payload, deleting", "key", key)
		if err := s.client.Del(ctx, key).Err(); err != nil {
			s.logger.Warn("failed to delete corrupt cache entry", "key", key, "error", err)
		}
		return nil, false
	}

	s.logger.Debug("cache hit", "key", key)
	return payload, true
}

// Set stores payload under key with the given time-to-live. Best effort.
func (s *Store) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if !s.enabled {
		return nil
	}

	if err := s.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return err
	}

	s.logger.Debug("cache entry stored", "key", key, "ttl", ttl)
	return nil
}

// Delete removes key and reports whether an entry was actually removed.
func (s *Store) Delete(ctx context.Context, key string) (bool, error) {
	if !s.enabled {
		return false, nil
	}

	removed, err := s.client.Del(ctx, key).Result()
	if err != nil {
		return false, err
	}

	return removed > 0, nil
}

// HealthCheck probes the backend. A disabled store is reported unhealthy
// without touching the network.
func (s *Store) HealthCheck(ctx context.Context) error {
	if !s.enabled {
		return errors.New("cache backend disabled")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (s *Store) Close() {
	if s.client != nil {
		if err := s.client.Close(); err != nil {
			s.logger.Warn("failed to close redis client", "error", err)
		}
	}
}

var _ port.CacheStore = (*Store)(nil)
