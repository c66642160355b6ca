package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
	"golang.org/x/sync/singleflight"
)

// Cache is an in-process key/value cache with per entry TTL.
type Cache interface {
	Get(ctx context.Context, key string) (any, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration) bool
	Delete(ctx context.Context, key string)
	// GetOrSet returns the cached value or loads it once, however many callers
	// ask for the same key at the same time. Loader errors are not cached.
	GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func(ctx context.Context) (any, error)) (any, error)
	Clear()
}

var _ Cache = (*RistrettoCache)(nil)

type RistrettoCache struct {
	store       *ristretto.Cache
	singleGroup singleflight.Group
}

// CacheConfig sizes the cache. Every entry costs 1, so MaxEntries bounds the
// number of live entries.
type CacheConfig struct {
	MaxEntries  int64
	BufferItems int64
}

func DefaultConfig() *CacheConfig {
	return &CacheConfig{
		MaxEntries:  10_000,
		BufferItems: 64,
	}
}

func New(config *CacheConfig) (*RistrettoCache, error) {
	if config == nil {
		config = DefaultConfig()
	}

	store, err := ristretto.NewCache(&ristretto.Config{
		// ristretto recommends ten counters per entry
		NumCounters: config.MaxEntries * 10,
		MaxCost:     config.MaxEntries,
		BufferItems: config.BufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &RistrettoCache{store: store}, nil
}

func (c *RistrettoCache) Get(ctx context.Context, key string) (any, bool) {
	if ctx.Err() != nil {
		return nil, false
	}
	return c.store.Get(key)
}

// Set stores value and waits until it is visible to Get.
func (c *RistrettoCache) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	ok := c.store.SetWithTTL(key, value, 1, ttl)
	c.store.Wait()
	return ok
}

func (c *RistrettoCache) Delete(ctx context.Context, key string) {
	c.store.Del(key)
}

func (c *RistrettoCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func(ctx context.Context) (any, error)) (any, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}

	value, err, _ := c.singleGroup.Do(key, func() (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// another caller may have filled the key while we waited
		if value, found := c.Get(ctx, key); found {
			return value, nil
		}

		value, err := loader(ctx)
		if err != nil {
			return nil, err
		}

		c.Set(ctx, key, value, ttl)
		return value, nil
	})

	return value, err
}

func (c *RistrettoCache) Clear() {
	c.store.Clear()
}
