package preferences

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces preference keys in a shared redis database.
const DefaultKeyPrefix = "calckit:prefs"

// RedisStore keeps preferences in redis. Every write refreshes the TTL so
// sessions that stop writing eventually expire.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore wraps client. A zero ttl keeps values forever.
func NewRedisStore(client redis.UniversalClient, prefix string, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}, nil
}

// DialRedis connects to addr and verifies the server answers.
func DialRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", addr, err)
	}
	return client, nil
}

func (r *RedisStore) key(session, key string) string {
	return r.prefix + ":" + session + ":" + key
}

func (r *RedisStore) Get(ctx context.Context, session, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.key(session, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return val, nil
}

func (r *RedisStore) Put(ctx context.Context, session, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(session, key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, session, key string) error {
	if err := r.client.Del(ctx, r.key(session, key)).Err(); err != nil {
		return fmt.Errorf("failed to delete preference %s: %w", key, err)
	}
	return nil
}
