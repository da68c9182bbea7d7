package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is a simple key-value cache used to memoize derived read models
// such as the portfolio payment summary. Writers invalidate affected keys;
// the TTL bounds staleness when they forget.
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, bool)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration)
	Delete(ctx context.Context, key string)
	DeleteByPrefix(ctx context.Context, prefix string)
	Flush(ctx context.Context)
}

// InMemoryCache implements Cache on top of go-cache
type InMemoryCache struct {
	cache *gocache.Cache
}

var (
	inMemoryInstance *InMemoryCache
	inMemoryOnce     sync.Once
)

// InitializeInMemoryCache initializes the singleton in-memory cache
func InitializeInMemoryCache() {
	inMemoryOnce.Do(func() {
		inMemoryInstance = &InMemoryCache{
			cache: gocache.New(ExpiryDefaultInMemory, ExpiryCleanupInterval),
		}
	})
}

// GetInMemoryCache returns the singleton in-memory cache
func GetInMemoryCache() *InMemoryCache {
	if inMemoryInstance == nil {
		InitializeInMemoryCache()
	}
	return inMemoryInstance
}

func (c *InMemoryCache) Get(_ context.Context, key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *InMemoryCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) {
	if expiration <= 0 {
		expiration = ExpiryDefaultInMemory
	}
	c.cache.Set(key, value, expiration)
}

func (c *InMemoryCache) Delete(_ context.Context, key string) {
	c.cache.Delete(key)
}

func (c *InMemoryCache) DeleteByPrefix(_ context.Context, prefix string) {
	for key := range c.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			c.cache.Delete(key)
		}
	}
}

func (c *InMemoryCache) Flush(_ context.Context) {
	c.cache.Flush()
}
