package usecase

import (
	"context"
	"time"
)

// Cache is the slice of the Redis client the usecases need. A nil or
// unavailable cache degrades to direct store reads.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const (
	categoriesCacheKey = "jobportal:categories"
	categoriesCacheTTL = 5 * time.Minute
)
