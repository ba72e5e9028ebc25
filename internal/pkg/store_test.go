package client

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"training-chatbot/internal/config"
	infraRepository "training-chatbot/internal/infra/repository"
)

func TestNewStore_Memory(t *testing.T) {
	store, err := NewStore(context.Background(), &config.Config{StoreDriver: "memory"})

	require.NoError(t, err)
	assert.IsType(t, &infraRepository.MemoryRepository{}, store)
}

func TestNewStore_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	store, err := NewStore(context.Background(), &config.Config{
		StoreDriver: "redis",
		RedisURL:    "redis://" + mr.Addr() + "/0",
	})

	require.NoError(t, err)
	assert.IsType(t, &infraRepository.RedisStore{}, store)
	assert.NoError(t, store.Close(context.Background()))
}

func TestNewStore_Supabase(t *testing.T) {
	store, err := NewStore(context.Background(), &config.Config{
		StoreDriver:    "supabase",
		SupabaseURL:    "http://localhost:54321",
		SupabaseAPIKey: "key",
	})

	require.NoError(t, err)
	assert.IsType(t, &infraRepository.SupabaseStore{}, store)
}

func TestNewStore_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewStore(context.Background(), &config.Config{StoreDriver: "redis", RedisURL: "redis://" + addr})

	assert.ErrorContains(t, err, "Redis")
}

func TestNewStore_UnknownDriver(t *testing.T) {
	_, err := NewStore(context.Background(), &config.Config{StoreDriver: "sqlite"})

	assert.EqualError(t, err, `unknown STORE_DRIVER "sqlite"`)
}
