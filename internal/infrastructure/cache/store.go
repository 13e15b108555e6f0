package cache

import (
	"context"
	"time"
)

// Store is a key-value cache with per-key expiration. Implementations are
// safe for concurrent use. A miss is reported through the bool, not an
// error; errors mean the backend itself failed.
type Store interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}
