package preferences

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore checks the contract every Store implementation follows.
func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()
	session := uuid.NewString()

	_, err := store.Get(ctx, session, KeyWorldClockCities)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, session, KeyWorldClockCities, []byte(`["tokyo"]`)))
	require.NoError(t, store.Put(ctx, session, KeyWorldClockCities, []byte(`["london"]`)))
	got, err := store.Get(ctx, session, KeyWorldClockCities)
	require.NoError(t, err)
	assert.Equal(t, `["london"]`, string(got))

	_, err = store.Get(ctx, uuid.NewString(), KeyWorldClockCities)
	assert.ErrorIs(t, err, ErrNotFound, "sessions are isolated")

	require.NoError(t, store.Delete(ctx, session, KeyWorldClockCities))
	_, err = store.Get(ctx, session, KeyWorldClockCities)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, store.Delete(ctx, session, KeyWorldClockCities))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	value := []byte("abc")
	require.NoError(t, store.Put(ctx, "s", "k", value))
	value[0] = 'x'

	got, err := store.Get(ctx, "s", "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestNewRedisStoreRequiresClient(t *testing.T) {
	_, err := NewRedisStore(nil, "", time.Hour)
	assert.Error(t, err)
}

// TestRedisStore runs against the server named by CALCKIT_TEST_REDIS.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("CALCKIT_TEST_REDIS")
	if addr == "" {
		t.Skip("CALCKIT_TEST_REDIS not set")
	}
	client, err := DialRedis(context.Background(), addr, "", 0)
	require.NoError(t, err)
	defer client.Close()

	store, err := NewRedisStore(client, "calckit-test", time.Minute)
	require.NoError(t, err)
	exerciseStore(t, store)
}
