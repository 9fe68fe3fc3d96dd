package ratelimit

import "context"

// RateLimiter bounds how many requests a single client may make within the
// configured window.
type RateLimiter interface {
	// Allow reports whether the request identified by key may proceed.
	Allow(ctx context.Context, key string) (bool, error)
	// Reset clears the recorded requests for key.
	Reset(ctx context.Context, key string) error
}
