package redis

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/app/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	store := NewStore(&config.Config{RedisAddr: mr.Addr()}, discardLogger())
	require.True(t, store.Enabled())
	t.Cleanup(store.Close)

	return store, mr
}

func TestNewStore_NoAddressDisablesCaching(t *testing.T) {
	store := NewStore(&config.Config{}, discardLogger())

	assert.False(t, store.Enabled())
}

func TestNewStore_FailedProbeDisablesCaching(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	store := NewStore(&config.Config{RedisAddr: addr}, discardLogger())

	assert.False(t, store.Enabled())
}

func TestStore_DisabledStoreDegradesToNoOps(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&config.Config{}, discardLogger())

	payload, ok := store.Get(ctx, "movies:catalog:all")
	assert.Nil(t, payload)
	assert.False(t, ok)

	assert.NoError(t, store.Set(ctx, "movies:catalog:all", []byte(`[]`), time.Minute))

	removed, err := store.Delete(ctx, "movies:catalog:all")
	assert.NoError(t, err)
	assert.False(t, removed)

	assert.Error(t, store.HealthCheck(ctx))
}

func TestStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	payload := []byte(`[{"movieId":1,"title":"The Matrix"}]`)
	require.NoError(t, store.Set(ctx, "movies:catalog:all", payload, 30*time.Minute))

	got, ok := store.Get(ctx, "movies:catalog:all")
	assert.True(t, ok)
	assert.Equal(t, payload, got)

	ttl := mr.TTL("movies:catalog:all")
	assert.Equal(t, 30*time.Minute, ttl)
}

func TestStore_GetMissingKey(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	payload, ok := store.Get(ctx, "movies:catalog:nothing")
	assert.Nil(t, payload)
	assert.False(t, ok)
}

func TestStore_EntryExpires(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	require.NoError(t, store.Set(ctx, "movies:catalog:all", []byte(`[]`), time.Minute))

	mr.FastForward(2 * time.Minute)

	_, ok := store.Get(ctx, "movies:catalog:all")
	assert.False(t, ok)
}

func TestStore_CorruptPayloadIsDeletedAndReportedAsMiss(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	require.NoError(t, mr.Set("movies:catalog:all", `[{"movieId":1,`))

	payload, ok := store.Get(ctx, "movies:catalog:all")
	assert.Nil(t, payload)
	assert.False(t, ok)
	assert.False(t, mr.Exists("movies:catalog:all"))
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Set(ctx, "movies:catalog:action", []byte(`[]`), time.Minute))

	removed, err := store.Delete(ctx, "movies:catalog:action")
	require.NoError(t, err)
	assert.True(t, removed)

	// Deleting an absent key is a harmless no-op.
	removed, err = store.Delete(ctx, "movies:catalog:action")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestStore_BackendOutageDegradesToMiss(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	require.NoError(t, store.Set(ctx, "movies:catalog:all", []byte(`[]`), time.Minute))
	mr.Close()

	payload, ok := store.Get(ctx, "movies:catalog:all")
	assert.Nil(t, payload)
	assert.False(t, ok)

	assert.Error(t, store.Set(ctx, "movies:catalog:all", []byte(`[]`), time.Minute))

	_, err := store.Delete(ctx, "movies:catalog:all")
	assert.Error(t, err)

	assert.Error(t, store.HealthCheck(ctx))
}

func TestStore_HealthCheck(t *testing.T) {
	store, _ := newTestStore(t)

	assert.NoError(t, store.HealthCheck(context.Background()))
}
