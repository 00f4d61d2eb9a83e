// Package cache provides the key-value store used to memoize embeddings and
// whole predictions. Values are opaque bytes with a per-key time-to-live.
package cache

import (
	"context"
	"time"
)

// Store is a TTL key-value store. Implementations must be safe for
// concurrent use. A miss is reported via the boolean, not an error; errors
// are reserved for transport failures (e.g. Redis connectivity).
type Store interface {
	// Get returns the value for key, or found=false when absent or expired.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set stores value under key for the given TTL. A non-positive TTL
	// stores the value without expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
