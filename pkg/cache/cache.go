// Package cache provides the artifact cache used by the pipeline.
//
// Rendered model artifacts (STL, OBJ, SCAD, JSON) are cached keyed by the
// full set of inputs that determine them: input text, layout configuration,
// tessellation segments, and output format. Because the layout engine is
// deterministic, cached artifacts never go stale; entries carry an optional
// TTL anyway so callers can bound disk usage.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface for rendered artifacts.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
