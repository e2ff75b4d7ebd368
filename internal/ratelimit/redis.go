package ratelimit

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// fixedWindowScript refuses without incrementing once the counter reaches the
// limit, and starts the window expiry on the first hit.
//
// KEYS[1] counter key, ARGV[1] limit, ARGV[2] window in milliseconds.
var fixedWindowScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if current >= tonumber(ARGV[1]) then
	return 0
end
current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[2])
end
return 1
`)

// RedisLimiter shares one fixed-window counter per key across all gateway instances.
// Redis failures fail open: the request is allowed and the error logged.
type RedisLimiter struct {
	client redis.Scripter
	scope  string
	cfg    Config
}

// NewRedisLimiter scopes keys as ratelimit:<scope>:<key> so handlers keep separate budgets.
func NewRedisLimiter(client redis.Scripter, scope string, cfg Config) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		scope:  scope,
		cfg:    cfg.withDefaults(),
	}
}

func (l *RedisLimiter) redisKey(key string) string {
	return fmt.Sprintf("ratelimit:%s:%s", l.scope, key)
}

func (l *RedisLimiter) Check(ctx context.Context, key string) bool {
	allowed, err := fixedWindowScript.Run(ctx, l.client,
		[]string{l.redisKey(key)},
		l.cfg.Limit,
		l.cfg.Interval.Milliseconds(),
	).Int()
	if err != nil {
		log.Printf("⚠️ rate limiter unavailable for %s, allowing request: %v", l.scope, err)
		return true
	}
	return allowed == 1
}
