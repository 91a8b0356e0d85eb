package port

import (
	"context"
	"time"
)

// Cache is the key-value store behind admin sessions and the GraphQL read cache.
// Implementations must be safe for concurrent use and honour ctx deadlines.
//
// Values are opaque strings; callers own their encoding (JSON everywhere in this repo).
type Cache interface {
	// Get returns the value at key, or ("", ErrMiss) when the key is absent or expired.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key. A non-positive ttl keeps the key until it is deleted.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Del removes keys and reports how many existed.
	Del(ctx context.Context, keys ...string) (int64, error)

	// Ping verifies connectivity with the backend.
	Ping(ctx context.Context) error

	// Close releases the backend connection.
	Close() error
}

// ErrMiss signals that a key is not present, distinct from transport errors.
var ErrMiss = errMiss{}

type errMiss struct{}

func (e errMiss) Error() string { return "cache: miss" }
