// Package cache keeps constructed circuit verifiers between calls so a circuit's
// verification key is parsed and validated once, not per proof.
package cache

import (
	"time"

	"github.com/karlseguin/ccache/v3"
)

// ICache is the minimal cache contract the verifier facade relies on.
type ICache[T any] interface {
	// Get returns the cached value for key, if present and not expired.
	Get(key string) (T, bool)
	// Set stores value under key. An optional ttl overrides the cache default.
	Set(key string, value T, ttl ...time.Duration)
	// Delete evicts the value stored under key, e.g. after a circuit's key file
	// is replaced.
	Delete(key string)
}

type inMemoryCache[T any] struct {
	lru        *ccache.Cache[T]
	defaultTTL time.Duration
}

// NewInMemoryCache returns an ICache bounded to size entries, each living for
// defaultTTL unless overridden per entry. Safe for concurrent use.
func NewInMemoryCache[T any](size int64, defaultTTL time.Duration) ICache[T] {
	return &inMemoryCache[T]{
		lru:        ccache.New(ccache.Configure[T]().MaxSize(size)),
		defaultTTL: defaultTTL,
	}
}

func (c *inMemoryCache[T]) Get(key string) (T, bool) {
	item := c.lru.Get(key)
	if item == nil || item.Expired() {
		var zero T
		return zero, false
	}
	return item.Value(), true
}

func (c *inMemoryCache[T]) Set(key string, value T, ttl ...time.Duration) {
	expire := c.defaultTTL
	if len(ttl) > 0 && ttl[0] > 0 {
		expire = ttl[0]
	}
	c.lru.Set(key, value, expire)
}

func (c *inMemoryCache[T]) Delete(key string) {
	c.lru.Delete(key)
}
