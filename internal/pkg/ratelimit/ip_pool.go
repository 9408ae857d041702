package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

// IPLimiterPool holds one token-bucket limiter per client IP. It is the
// coarse guard on the subscribe path; the per-offer click limiter is the
// finer FixedWindowLimiter.
type IPLimiterPool struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
}

func NewIPLimiterPool(rps float64, burst int) *IPLimiterPool {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 10
	}
	return &IPLimiterPool{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}
}

func (p *IPLimiterPool) get(ip string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()
	if l, ok := p.limiters[ip]; ok {
		return l
	}
	l := rate.NewLimiter(rate.Limit(p.rps), p.burst)
	p.limiters[ip] = l
	return l
}

func (p *IPLimiterPool) Allow(ip string) bool {
	return p.get(ip).Allow()
}
