package usecase

import (
	"context"
	"time"
)

// Cache is the read-through/lock surface usecases need. The redis
// implementation degrades to misses when the server is unreachable.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}
