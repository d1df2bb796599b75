package cache

import (
	"context"
	"errors"
	"time"
)

// Пример интерфейса
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ErrCacheMiss возвращается когда ключа нет в кеше.
var ErrCacheMiss = errors.New("cache miss")
