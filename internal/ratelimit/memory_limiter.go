package ratelimit

import (
	"context"
	"sync"
	"time"
)

type bucket struct {
	count int
	start time.Time
}

type MemoryLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweep(now)

	b, ok := m.buckets[key]
	if !ok || now.Sub(b.start) > m.window {
		b = &bucket{start: now}
		m.buckets[key] = b
	}

	if b.count >= m.limit {
		return false, nil
	}

	b.count++
	return true, nil
}

// sweep drops buckets whose window has passed, at most once per window.
func (m *MemoryLimiter) sweep(now time.Time) {
	if now.Sub(m.lastSweep) <= m.window {
		return
	}
	for key, b := range m.buckets {
		if now.Sub(b.start) > m.window {
			delete(m.buckets, key)
		}
	}
	m.lastSweep = now
}
