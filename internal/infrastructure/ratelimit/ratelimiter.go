package ratelimit

import (
	"context"
	"time"
)

// RateLimiter counts attempts per key over a sliding window.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Reset(ctx context.Context, key string) error
}
