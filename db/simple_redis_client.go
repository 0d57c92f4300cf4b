package db

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

// SimpleRedisClient wraps a go-redis client behind the RedisClient interface.
type SimpleRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewSimpleRedisClient wraps an already configured go-redis client.
func NewSimpleRedisClient(ctx context.Context, client *redis.Client) *SimpleRedisClient {
	return &SimpleRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *SimpleRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis. A missing key maps to
// ErrKeyNotFound.
func (r *SimpleRedisClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return val, err
}

// Del removes a key.
func (r *SimpleRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// Keys lists the keys matching a pattern.
func (r *SimpleRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

func (r *SimpleRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}
