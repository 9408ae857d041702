//go:build unit

package ratelimit_test

import (
	"fmt"
	"testing"
	"time"

	"dealstack/internal/pkg/clock"
	"dealstack/internal/pkg/ratelimit"

	"github.com/stretchr/testify/assert"
)

const (
	testWindow    = 60 * time.Second
	testThreshold = 12
	testCapacity  = 100
	testEntryTTL  = 5 * time.Minute
)

func newLimiter(clk clock.Clock) *ratelimit.FixedWindowLimiter {
	return ratelimit.NewFixedWindowLimiter(testWindow, testThreshold, testCapacity, testEntryTTL, clk)
}

func TestFixedWindowLimiter_Allow(t *testing.T) {
	t.Run("threshold attempts pass, the next is rejected", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
		l := newLimiter(clk)

		for i := 0; i < testThreshold; i++ {
			assert.True(t, l.Allow("ip|offer"), "attempt %d should pass", i+1)
		}
		assert.False(t, l.Allow("ip|offer"))
		// stays rejected within the same window
		assert.False(t, l.Allow("ip|offer"))
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
		l := newLimiter(clk)

		for i := 0; i < testThreshold+1; i++ {
			l.Allow("ip|offer")
		}
		assert.False(t, l.Allow("ip|offer"))

		clk.Add(61 * time.Second)
		assert.True(t, l.Allow("ip|offer"))
	})

	t.Run("same IP on different offers counts separately", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
		l := newLimiter(clk)

		for i := 0; i < testThreshold; i++ {
			l.Allow("1.2.3.4|offer-a")
		}
		assert.False(t, l.Allow("1.2.3.4|offer-a"))
		assert.True(t, l.Allow("1.2.3.4|offer-b"))
	})

	t.Run("entry TTL resets a stale window", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
		l := ratelimit.NewFixedWindowLimiter(10*time.Minute, 2, testCapacity, time.Minute, clk)

		assert.True(t, l.Allow("k"))
		assert.True(t, l.Allow("k"))
		assert.False(t, l.Allow("k"))

		// window is still open but the entry went stale past its TTL
		clk.Add(2 * time.Minute)
		assert.True(t, l.Allow("k"))
	})

	t.Run("capacity evicts the least recently used key", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
		l := ratelimit.NewFixedWindowLimiter(testWindow, 1, 3, testEntryTTL, clk)

		assert.True(t, l.Allow("a"))
		assert.True(t, l.Allow("b"))
		assert.True(t, l.Allow("c"))
		assert.False(t, l.Allow("a")) // over threshold, also refreshes recency

		// inserting a fourth key evicts "b", the LRU entry
		assert.True(t, l.Allow("d"))
		assert.Equal(t, 3, l.Len())

		// "b" re-enters with a fresh window; "a" kept its counter
		assert.True(t, l.Allow("b"))
		assert.False(t, l.Allow("a"))
	})

	t.Run("table never exceeds capacity", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
		l := ratelimit.NewFixedWindowLimiter(testWindow, testThreshold, 10, testEntryTTL, clk)

		for i := 0; i < 100; i++ {
			l.Allow(fmt.Sprintf("key-%d", i))
		}
		assert.Equal(t, 10, l.Len())
	})
}

func TestIPLimiterPool(t *testing.T) {
	t.Run("burst is honored then refused", func(t *testing.T) {
		p := ratelimit.NewIPLimiterPool(0.0001, 3)

		for i := 0; i < 3; i++ {
			assert.True(t, p.Allow("1.2.3.4"), "burst attempt %d", i+1)
		}
		assert.False(t, p.Allow("1.2.3.4"))
	})

	t.Run("limiters are per IP", func(t *testing.T) {
		p := ratelimit.NewIPLimiterPool(0.0001, 1)

		assert.True(t, p.Allow("1.1.1.1"))
		assert.False(t, p.Allow("1.1.1.1"))
		assert.True(t, p.Allow("2.2.2.2"))
	})
}
