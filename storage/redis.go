// File: medicare/storage/redis.go
package storage

import (
	"context"
	"fmt"
	"time"

	"medicare/utils"

	"github.com/go-redis/redis/v8"
)

const redisOpTimeout = 2 * time.Second

// RedisStorage keeps session items in Redis so several console processes can
// share one session. Concurrent writers are not coordinated; the last write
// wins.
type RedisStorage struct {
	client *redis.Client
	prefix string
}

// NewRedisStorage connects to Redis and verifies the connection with a ping.
func NewRedisStorage(addr, password string, db int) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (session): %w", err)
	}
	return NewRedisStorageFromClient(client), nil
}

// NewRedisStorageFromClient wraps an existing client.
func NewRedisStorageFromClient(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client, prefix: utils.SessionKeyPrefix}
}

func (r *RedisStorage) GetItem(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read session key %q: %w", key, err)
	}
	return v, true, nil
}

func (r *RedisStorage) SetItem(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session key %q: %w", key, err)
	}
	return nil
}

func (r *RedisStorage) RemoveItem(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	return r.client.Del(ctx, r.prefix+key).Err()
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStorage) Close() error {
	return r.client.Close()
}
