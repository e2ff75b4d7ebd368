// Package ratelimit bounds how many requests a client key may issue per fixed window.
//
// Two backends implement Limiter: MemoryLimiter keeps counters in process and is
// correct for a single instance only; RedisLimiter keeps them in Redis so every
// instance shares one budget per key.
//
// The window is fixed, not sliding: a burst straddling a window boundary can admit
// up to twice the limit in quick succession.
package ratelimit

import (
	"context"
	"time"
)

// Defaults applied to every gateway handler.
const (
	DefaultLimit    = 60
	DefaultInterval = time.Minute
)

// UnknownKey is used when the client address cannot be determined.
const UnknownKey = "unknown"

// Limiter decides whether the request identified by key may proceed. A true result
// has already been counted against the key's window.
type Limiter interface {
	Check(ctx context.Context, key string) bool
}

type Config struct {
	Limit    int
	Interval time.Duration
}

func (c Config) withDefaults() Config {
	if c.Limit <= 0 {
		c.Limit = DefaultLimit
	}
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	return c
}
