package cache

import (
	"context"
	"errors"
	"time"

	"github.com/coocood/freecache"
)

var _ Cache = (*Local)(nil)

// Local is an in-process cache, used when there is no redis around.
type Local struct {
	cache *freecache.Cache
}

// NewLocal creates a local cache of sizeMB megabytes (freecache enforces a 512KB minimum).
func NewLocal(sizeMB int) *Local {
	megabyte := 1024 * 1024
	return &Local{
		cache: freecache.NewCache(sizeMB * megabyte),
	}
}

func (l *Local) Get(_ context.Context, key string) ([]byte, error) {
	val, err := l.cache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return nil, ErrMiss
	}
	return val, err
}

func (l *Local) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	expireSeconds := int(ttl.Seconds())
	if ttl > 0 && expireSeconds == 0 {
		expireSeconds = 1
	}
	return l.cache.Set([]byte(key), value, expireSeconds)
}

func (l *Local) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		l.cache.Del([]byte(k))
	}
	return nil
}
