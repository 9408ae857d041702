// Package memcache is a process-local TTL cache for expensive list reads.
//
// Entries live for a fixed TTL after insertion and are lazily evicted: an
// expired entry is removed the next time its key is touched. The cache
// provides no single-flight deduplication: concurrent callers on a cold
// key each run the producer, and the benefit is amortized over the TTL
// window.
package memcache

import (
	"context"
	"sync"
	"time"

	"dealstack/internal/pkg/clock"
)

type entry struct {
	value     any
	expiresAt time.Time
}

type Cache struct {
	mu    sync.Mutex
	items map[string]entry
	clock clock.Clock
}

func New(clk clock.Clock) *Cache {
	return &Cache{
		items: make(map[string]entry),
		clock: clk,
	}
}

// Producer computes the value for a missing key. Its error propagates to
// the caller and nothing is stored, so a failing producer cannot poison
// the cache.
type Producer func(ctx context.Context) (any, error)

// GetOrCompute returns the cached value for key if it has not expired,
// otherwise runs producer and stores its result with expiry now+ttl.
func (c *Cache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, producer Producer) (any, error) {
	now := c.clock.Now()

	c.mu.Lock()
	if e, ok := c.items[key]; ok {
		if now.Before(e.expiresAt) {
			c.mu.Unlock()
			return e.value, nil
		}
		delete(c.items, key)
	}
	c.mu.Unlock()

	// Deliberately outside the lock: the producer suspends on store I/O
	// and holding the mutex across it would serialize unrelated keys.
	value, err := producer(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.items[key] = entry{value: value, expiresAt: now.Add(ttl)}
	c.mu.Unlock()

	return value, nil
}

// Len reports live (possibly expired but not yet evicted) entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]entry)
}
