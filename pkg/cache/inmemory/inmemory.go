// Package inmemory implements cache.Cache on top of patrickmn/go-cache.
package inmemory

import (
	"context"
	"path"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/craftbar/mixology/pkg/cache"
)

// Config holds expiration settings in seconds.
type Config struct {
	DefaultExpiration int `json:"default_expiration" yaml:"default_expiration"`
	CleanupInterval   int `json:"cleanup_interval" yaml:"cleanup_interval"`
}

type inMemoryCache struct {
	backend *gocache.Cache
}

// NewCache creates an in-memory cache instance.
func NewCache(cfg *Config) (cache.Cache, error) {
	return &inMemoryCache{
		backend: gocache.New(
			time.Duration(cfg.DefaultExpiration)*time.Second,
			time.Duration(cfg.CleanupInterval)*time.Second,
		),
	}, nil
}

func (c *inMemoryCache) Get(_ context.Context, key string) (interface{}, error) {
	val, found := c.backend.Get(key)
	if !found {
		return nil, cache.ErrKeyNotFound
	}
	return val, nil
}

func (c *inMemoryCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	c.backend.Set(key, value, expiration)
	return nil
}

func (c *inMemoryCache) Delete(_ context.Context, key string) error {
	c.backend.Delete(key)
	return nil
}

func (c *inMemoryCache) GetByPattern(_ context.Context, pattern string) (map[string]interface{}, error) {
	results := make(map[string]interface{})
	for key, item := range c.backend.Items() {
		matched, err := path.Match(pattern, key)
		if err != nil {
			return nil, err
		}
		if matched {
			results[key] = item.Object
		}
	}
	return results, nil
}
