package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the hash holding the cache when no key is configured.
const DefaultRedisKey = "predtrans:translations"

const redisTimeout = 10 * time.Second

// RedisOptions configures the Redis backend.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// RedisStore keeps the cache in one Redis hash.
type RedisStore struct {
	memory
	client *redis.Client
	key    string
}

// OpenRedis connects to Redis and loads the whole cache hash.
func OpenRedis(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("redis cache requires an address")
	}
	key := opts.Key
	if key == "" {
		key = DefaultRedisKey
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	entries, err := client.HGetAll(ctx, key).Result()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to load cache hash: %w", err)
	}

	return &RedisStore{memory: newMemory(entries), client: client, key: key}, nil
}

// Flush writes the keys changed since the previous flush with one HSET.
func (s *RedisStore) Flush() error {
	if len(s.dirty) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(s.dirty)*2)
	for key := range s.dirty {
		values = append(values, key, s.entries[key])
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := s.client.HSet(ctx, s.key, values...).Err(); err != nil {
		return fmt.Errorf("failed to write cache hash: %w", err)
	}
	s.clearDirty()
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
