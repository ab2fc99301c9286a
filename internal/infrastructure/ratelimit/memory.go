// Package ratelimit provides the in-process contact throttle used when no
// Redis address is configured.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter enforces a sliding window per key in process memory. Counts
// reset on restart and are not shared across instances.
type MemoryLimiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	hits   map[string][]time.Time
	now    func() time.Time // seam for tests
}

// NewMemoryLimiter creates a limiter allowing max hits per window.
func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		max:    max,
		window: window,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

// Allow consumes one slot for key and reports whether the hit may proceed.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	recent := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	if len(recent) >= l.max {
		l.hits[key] = recent
		return false, nil
	}
	l.hits[key] = append(recent, l.now())
	return true, nil
}
