// Package cache stores solved knapsack instances so repeated runs with the
// same items and capacity skip the search.
//
// Three backends implement [Cache]:
//   - [FileCache]: JSON entries under a local directory (CLI default)
//   - [RedisCache]: a shared Redis server (API deployments)
//   - [NullCache]: stores nothing (--no-cache, tests)
//
// Keys are produced by a [Keyer]; [ScopedKeyer] adds a namespace prefix.
package cache

import (
	"context"
	"time"
)

// TTLSolution is how long a solved instance stays cached. Solutions never go
// stale, so this only bounds disk and memory use.
const TTLSolution = 30 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiration.
type Cache interface {
	// Get returns the value for key. A miss is reported as hit == false
	// with a nil error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}
