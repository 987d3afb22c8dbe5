// Package gencache memoizes generation calls for a bounded window. Keys are
// canonicalized input tuples; entries vanish on expiry, nothing else
// invalidates them. Two concurrent misses may both compute — results for
// identical inputs are idempotent within the window.
package gencache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

type Cache struct {
	store *cache.Cache
}

// New builds a cache whose entries default to the given TTL.
func New(ttl time.Duration) *Cache {
	return &Cache{store: cache.New(ttl, 10*time.Minute)}
}

// GetOrCompute returns the cached value for key, or runs compute and stores
// the result for the default window. Errors are not cached.
func (c *Cache) GetOrCompute(key string, compute func() (interface{}, error)) (interface{}, error) {
	if v, found := c.store.Get(key); found {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return nil, err
	}
	c.store.Set(key, v, cache.DefaultExpiration)
	return v, nil
}
