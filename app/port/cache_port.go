package port

//go:generate mockgen -source=cache_port.go -destination=../mocks/mock_cache_port.go

import (
	"context"
	"time"
)

// CacheStore is a byte-level key/value store with expiry. Implementations
// must degrade gracefully: a backend failure is never surfaced as an
// error on the read path, only as a miss.
type CacheStore interface {
	// Get returns the payload for key and whether it was present. Backend
	// unavailability, absence and corrupt payloads all report a miss.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores payload under key with a time-to-live. Best effort; the
	// returned error is for caller-side logging only.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Delete removes key, reporting whether a key was actually removed.
	// Deleting an absent key is a harmless no-op.
	Delete(ctx context.Context, key string) (bool, error)
}
