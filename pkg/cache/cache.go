// Package cache stores solved frameglass sequences so repeated runs on the
// same input can skip the ordering step.
//
// # Backends
//
//   - [NullCache]: stores nothing; used when caching is disabled
//   - [FileCache]: one JSON file per entry under a local directory
//   - [RedisCache]: entries in Redis, shared between machines
//
// All backends implement [Cache]. Values are opaque bytes; callers choose
// the encoding. Keys are produced by a [Keyer] so that every option that
// changes the result is part of the key.
package cache

import (
	"context"
	"time"
)

// TTLSolution is how long a solved sequence stays cached.
const TTLSolution = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Clearer is implemented by caches that can drop all of their entries.
type Clearer interface {
	// Clear removes every entry and reports how many were removed.
	Clear(ctx context.Context) (int, error)
}

// SolutionKeyOpts holds the options that influence a solved sequence.
// Worker count is deliberately absent: it never changes the result.
type SolutionKeyOpts struct {
	PairWindow int    `json:"pair_window"`
	PairMetric string `json:"pair_metric"`
	Landscapes string `json:"landscapes"`
	Strategy   string `json:"strategy"`
	Window     int    `json:"window"`
	ChunkSize  int    `json:"chunk_size"`
}

// Keyer generates cache keys.
type Keyer interface {
	// SolutionKey returns the key for the solution of the input with the
	// given content hash.
	SolutionKey(inputHash string, opts SolutionKeyOpts) string
}

// keyVersion is bumped whenever the cached encoding or the solver's output
// for identical options changes.
const keyVersion = 1

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SolutionKey implements [Keyer].
func (DefaultKeyer) SolutionKey(inputHash string, opts SolutionKeyOpts) string {
	return hashKey("solution", keyVersion, inputHash, opts)
}
