package redis_adapter

import (
	"context"
	"errors"
	"time"

	"freightbid/pkg/cache"
	goredis "github.com/redis/go-redis/v9"
)

type RedisAdapter struct {
	client *goredis.Client
}

func New(client *goredis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, cache.ErrCacheMiss
		}
		return nil, err
	}
	return value, nil
}

func (r *RedisAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisAdapter) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
