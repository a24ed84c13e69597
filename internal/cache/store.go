// Package cache provides the compressed-payload cache: key derivation and
// Store implementations backed by Redis or process memory.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/guttosm/compression-service/internal/compression"
)

// Entry is a cached compressed payload. The Algorithm tag always matches the
// algorithm that produced Data and Stats; entries are never rewritten, only
// expired by TTL.
type Entry struct {
	Algorithm compression.Algorithm `json:"algorithm"`
	Data      []byte                `json:"data"`
	Stats     compression.Stats     `json:"stats"`
}

// Store is a TTL'd key-value store for compressed payloads. Implementations
// must be safe for concurrent use. The store is an accelerator only: callers
// treat Get errors as misses and SetEx errors as no-ops.
type Store interface {
	// Get returns the entry for key, or found=false on a miss.
	Get(ctx context.Context, key string) (entry *Entry, found bool, err error)
	// SetEx stores the entry under key with the given TTL.
	SetEx(ctx context.Context, key string, entry *Entry, ttl time.Duration) error
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// Key derives the cache key for a compressed payload from the request URL, the
// uncompressed body, and the algorithm. Identical inputs always map to the
// same key, which is what makes cached compression idempotent.
func Key(url string, body []byte, alg compression.Algorithm) string {
	h := sha256.New()
	h.Write([]byte(url))
	h.Write(body)
	h.Write([]byte(alg))
	return hex.EncodeToString(h.Sum(nil))
}
