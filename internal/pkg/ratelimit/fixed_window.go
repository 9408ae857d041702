// Package ratelimit provides the in-process limiters guarding the click
// and subscribe paths.
//
// The click limiter is a fixed-window counter per (client IP, offer)
// pair. The table is bounded two ways: entries carry a TTL, and when the
// table hits capacity the least-recently-used entry is evicted first, so
// high offer-id cardinality cannot grow it without bound.
package ratelimit

import (
	"container/list"
	"sync"
	"time"

	"dealstack/internal/pkg/clock"
)

type windowEntry struct {
	key         string
	count       int
	windowStart time.Time
	touchedAt   time.Time
}

type FixedWindowLimiter struct {
	mu        sync.Mutex
	entries   map[string]*list.Element // key -> *windowEntry element
	order     *list.List               // front = most recently used
	window    time.Duration
	threshold int
	capacity  int
	entryTTL  time.Duration
	clock     clock.Clock
}

func NewFixedWindowLimiter(window time.Duration, threshold, capacity int, entryTTL time.Duration, clk clock.Clock) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		entries:   make(map[string]*list.Element),
		order:     list.New(),
		window:    window,
		threshold: threshold,
		capacity:  capacity,
		entryTTL:  entryTTL,
		clock:     clk,
	}
}

// Allow records one attempt for key and reports whether it is within the
// window threshold. The rejecting increment stays recorded: once a window
// is over threshold every further attempt in it is rejected too.
func (l *FixedWindowLimiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	el, ok := l.entries[key]
	if ok {
		e := el.Value.(*windowEntry)
		if now.Sub(e.touchedAt) > l.entryTTL || now.Sub(e.windowStart) > l.window {
			e.count = 0
			e.windowStart = now
		}
		e.count++
		e.touchedAt = now
		l.order.MoveToFront(el)
		return e.count <= l.threshold
	}

	if l.order.Len() >= l.capacity {
		l.evictOldest()
	}
	e := &windowEntry{key: key, count: 1, windowStart: now, touchedAt: now}
	l.entries[key] = l.order.PushFront(e)
	return l.threshold >= 1
}

// evictOldest drops the LRU entry regardless of whether its TTL expired.
// Caller holds the mutex.
func (l *FixedWindowLimiter) evictOldest() {
	back := l.order.Back()
	if back == nil {
		return
	}
	e := back.Value.(*windowEntry)
	delete(l.entries, e.key)
	l.order.Remove(back)
}

// Len reports tracked keys, for tests and debug endpoints.
func (l *FixedWindowLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
