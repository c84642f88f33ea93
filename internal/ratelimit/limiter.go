package ratelimit

import "context"

// Limiter counts hits per key inside a fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
