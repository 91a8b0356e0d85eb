package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/cache/port"
)

// RedisCache satisfies port.Cache with a go-redis v9 client.
// Every key is stored under prefix so the dashboard can share a Redis with asynq.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisAdapter connects to url (redis://...) and pings it before returning.
func NewRedisAdapter(ctx context.Context, url string, prefix string) (*RedisCache, error) {
	if url == "" {
		return nil, errors.New("redis: url is empty")
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}
	c := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return &RedisCache{client: c, prefix: prefix}, nil
}

// NewRedisCacheFromClient wraps an existing client.
func NewRedisCacheFromClient(c *redis.Client, prefix string) *RedisCache {
	return &RedisCache{client: c, prefix: prefix}
}

var _ port.Cache = (*RedisCache)(nil)

func (r *RedisCache) key(k string) string { return r.prefix + k }

func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	res, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", port.ErrMiss
	}
	if err != nil {
		return "", err
	}
	return res, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return r.client.Set(ctx, r.key(key), value, ttl).Err()
}

func (r *RedisCache) Del(ctx context.Context, keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}
	return r.client.Del(ctx, full...).Result()
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
