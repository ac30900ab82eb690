// Package ratelimit spaces out calls to external providers.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter enforces a minimum interval between successive calls to each
// provider. One Limiter is shared by every adapter in the process.
type Limiter struct {
	mu        sync.Mutex
	intervals map[string]time.Duration
	limiters  map[string]*rate.Limiter
}

// New creates a Limiter. Providers without an interval, or with a
// non-positive one, are never delayed.
func New(intervals map[string]time.Duration) *Limiter {
	copied := make(map[string]time.Duration, len(intervals))
	for name, interval := range intervals {
		copied[name] = interval
	}
	return &Limiter{
		intervals: copied,
		limiters:  make(map[string]*rate.Limiter),
	}
}

// Interval returns the minimum spacing configured for provider.
func (l *Limiter) Interval(provider string) time.Duration {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.intervals[provider]
}

// Wait blocks until a call to provider may proceed, or ctx is done.
// A nil Limiter never blocks.
func (l *Limiter) Wait(ctx context.Context, provider string) error {
	limiter := l.limiterFor(provider)
	if limiter == nil {
		return nil
	}
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("ratelimit: wait for %s: %w", provider, err)
	}
	return nil
}

func (l *Limiter) limiterFor(provider string) *rate.Limiter {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, ok := l.limiters[provider]; ok {
		return limiter
	}
	interval := l.intervals[provider]
	if interval <= 0 {
		return nil
	}
	// A burst of one turns the token bucket into a minimum spacing.
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	l.limiters[provider] = limiter
	return limiter
}
