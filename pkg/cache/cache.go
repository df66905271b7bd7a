// Package cache defines the cache abstraction backing the record store's
// id index. Implementations live in subpackages (inmemory, redis) and are
// selected through configuration.
package cache

import (
	"context"
	"errors"
	"time"
)

// NoExpiration keeps an entry in the cache until it is explicitly deleted.
const NoExpiration time.Duration = -1

// ErrKeyNotFound is returned by Get when the key is absent.
var ErrKeyNotFound = errors.New("key not found in cache")

// Cache is the minimal key-value surface the stores rely on. Values are
// JSON-serialized strings; the stores own key prefixing and serialization.
type Cache interface {
	// Get returns the value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (interface{}, error)

	// Set stores value under key with the given expiration.
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// GetByPattern returns all entries whose keys match a glob pattern,
	// e.g. "cocktail:*".
	GetByPattern(ctx context.Context, pattern string) (map[string]interface{}, error)
}
