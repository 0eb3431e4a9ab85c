package storage

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"ferrum_seed/src/model"

	"github.com/redis/go-redis/v9"
)

var ErrKeyNotFound = errors.New("key not found")

// RedisStorage is a thin wrapper over a go-redis client operating on raw keys
type RedisStorage struct {
	client *redis.Client
	addr   string
}

// NewRedisStorage creates a new Redis storage instance. The connection is
// not tested here, call Ping to find out whether the server is reachable.
func NewRedisStorage(ctx context.Context, config model.RedisConfig) (*RedisStorage, error) {
	opts, err := BuildOptions(config)
	if err != nil {
		return nil, err
	}

	return &RedisStorage{
		client: redis.NewClient(opts),
		addr:   opts.Addr,
	}, nil
}

// BuildOptions turns RedisConfig into redis.Options, URL has priority
func BuildOptions(config model.RedisConfig) (*redis.Options, error) {
	if config.URL != "" {
		opts, err := redis.ParseURL(config.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
		}
		return opts, nil
	}

	if config.Host == "" {
		return nil, fmt.Errorf("redis host is required when REDIS_URL is not set")
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
		DB:       config.DB,
		Username: config.Username,
		Password: config.Password,
	}, nil
}

// Addr returns the address the client dials
func (r *RedisStorage) Addr() string {
	return r.addr
}

// Ping tests Redis connection
func (r *RedisStorage) Ping(ctx context.Context) error {
	_, err := r.client.Ping(ctx).Result()
	return err
}

// Exists checks if a key exists
func (r *RedisStorage) Exists(ctx context.Context, key string) (bool, error) {
	count, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check existence of %q: %w", key, err)
	}
	return count > 0, nil
}

// Set stores a string value without expiration
func (r *RedisStorage) Set(ctx context.Context, key string, value string) error {
	err := r.client.Set(ctx, key, value, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Get returns a string value, ErrKeyNotFound if the key is absent
func (r *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
		}
		return "", fmt.Errorf("failed to get %q: %w", key, err)
	}
	return value, nil
}

// RPush appends values to the tail of a list
func (r *RedisStorage) RPush(ctx context.Context, key string, values ...string) error {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	err := r.client.RPush(ctx, key, args...).Err()
	if err != nil {
		return fmt.Errorf("failed to rpush %q: %w", key, err)
	}
	return nil
}

// LRange returns every element of a list. Redis drops empty lists, so no
// elements means the key is absent and ErrKeyNotFound is returned.
func (r *RedisStorage) LRange(ctx context.Context, key string) ([]string, error) {
	items, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to lrange %q: %w", key, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return items, nil
}

// Close closes the Redis connection
func (r *RedisStorage) Close() error {
	return r.client.Close()
}
