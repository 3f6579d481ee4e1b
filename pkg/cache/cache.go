// Package cache provides render output caching for the CLI and the
// preview server. Rendering a large plan with rsvg-convert conversions
// is slow enough that repeated renders of an unchanged plan are worth
// skipping.
//
// Two backends are provided: [FileCache] for CLI usage and
// [RedisCache] for the preview server. [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts keyed by plan content and render
// options.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no
	// expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
