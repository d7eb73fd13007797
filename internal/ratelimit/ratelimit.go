// Package ratelimit counts events per key over a sliding time window. The
// bot keys it by Discord user and the web API by client IP.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultMax    = 5
	DefaultWindow = 60 * time.Second
)

type Limiter struct {
	mu       sync.Mutex
	max      int
	window   time.Duration
	now      func() time.Time
	requests map[string][]time.Time
}

// New allows max events per key in window. Non-positive values take the
// defaults.
func New(max int, window time.Duration) *Limiter {
	if max <= 0 {
		max = DefaultMax
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{
		max:      max,
		window:   window,
		now:      time.Now,
		requests: make(map[string][]time.Time),
	}
}

// Allow records an event for key. When key is over the limit it returns
// false and how long until the oldest event leaves the window.
func (r *Limiter) Allow(key string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	recent := r.recent(key, now)
	if len(recent) >= r.max {
		r.requests[key] = recent
		return false, recent[0].Add(r.window).Sub(now)
	}

	r.requests[key] = append(recent, now)
	return true, 0
}

func (r *Limiter) recent(key string, now time.Time) []time.Time {
	cutoff := now.Add(-r.window)
	timestamps := r.requests[key]
	kept := timestamps[:0]
	for _, t := range timestamps {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// Sweep forgets keys with no event inside the window.
func (r *Limiter) Sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for key := range r.requests {
		if recent := r.recent(key, now); len(recent) == 0 {
			delete(r.requests, key)
		} else {
			r.requests[key] = recent
		}
	}
}

// Keys reports how many keys are being tracked.
func (r *Limiter) Keys() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

// Cleanup sweeps every interval until ctx is done.
func (r *Limiter) Cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.Sweep()
		case <-ctx.Done():
			return
		}
	}
}
