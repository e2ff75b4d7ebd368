package ratelimit

import (
	"context"
	"sync"
	"time"
)

type record struct {
	count         int
	windowResetAt time.Time
}

// MemoryLimiter is process-local limiter state. Records are never evicted, so
// memory grows with the number of distinct keys seen by the process.
type MemoryLimiter struct {
	cfg     Config
	now     func() time.Time
	mu      sync.Mutex
	records map[string]*record
}

func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	return &MemoryLimiter{
		cfg:     cfg.withDefaults(),
		now:     time.Now,
		records: make(map[string]*record),
	}
}

// WithClock replaces the time source. Intended for tests.
func (l *MemoryLimiter) WithClock(now func() time.Time) *MemoryLimiter {
	l.now = now
	return l
}

func (l *MemoryLimiter) Check(_ context.Context, key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[key]
	if !ok || now.After(rec.windowResetAt) {
		l.records[key] = &record{count: 1, windowResetAt: now.Add(l.cfg.Interval)}
		return true
	}

	if rec.count >= l.cfg.Limit {
		return false
	}

	rec.count++
	return true
}
