package compression

import "time"

// Default option values.
const (
	// DefaultMinSize is the body size threshold in bytes; only bodies larger
	// than this are compressed.
	DefaultMinSize = 1024
	// DefaultLevel is the default compression level on the gzip/deflate scale.
	DefaultLevel = 6
	// DefaultCacheTTL is how long cached compressed payloads live.
	DefaultCacheTTL = time.Hour
)

// Options configures compression behavior. It is fixed at middleware
// construction and never mutated afterwards.
type Options struct {
	// MinSize is the body size threshold in bytes; bodies must exceed it to be
	// compressed, so bodies at or below it pass through.
	MinSize int
	// EnableBrotli, EnableGzip and EnableDeflate gate each algorithm during
	// negotiation.
	EnableBrotli  bool
	EnableGzip    bool
	EnableDeflate bool
	// Level is the base compression level before the adaptive heuristic.
	// Interpreted on the gzip scale (1-9) and clamped per algorithm.
	Level int
	// CacheEnabled turns on the compressed-payload cache.
	CacheEnabled bool
	// CacheTTL is the expiry applied to cache entries.
	CacheTTL time.Duration
}

// DefaultOptions returns Options with all algorithms enabled, the 1KB
// threshold, and caching on.
func DefaultOptions() Options {
	return Options{
		MinSize:       DefaultMinSize,
		EnableBrotli:  true,
		EnableGzip:    true,
		EnableDeflate: true,
		Level:         DefaultLevel,
		CacheEnabled:  true,
		CacheTTL:      DefaultCacheTTL,
	}
}
