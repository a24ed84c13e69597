// Package compression implements content-encoding negotiation, the
// compression codecs, per-response statistics, and the batch file compressor.
package compression

import "strings"

// Algorithm identifies a compression algorithm. The non-none values double as
// Content-Encoding tokens.
type Algorithm string

const (
	// AlgorithmBrotli is the brotli algorithm ("br" content-encoding).
	AlgorithmBrotli Algorithm = "br"
	// AlgorithmGzip is the gzip algorithm.
	AlgorithmGzip Algorithm = "gzip"
	// AlgorithmDeflate is raw DEFLATE.
	AlgorithmDeflate Algorithm = "deflate"
	// AlgorithmNone means the payload is stored/sent uncompressed.
	AlgorithmNone Algorithm = "none"
)

// Encoding returns the Content-Encoding token for the algorithm, or an empty
// string for AlgorithmNone.
func (a Algorithm) Encoding() string {
	if a == AlgorithmNone {
		return ""
	}
	return string(a)
}

// Negotiate selects an algorithm from an Accept-Encoding header value.
// Matching is a case-insensitive substring check on encoding tokens, with a
// fixed priority: brotli, then gzip, then deflate. Each candidate is gated by
// its enable flag in opts. Returns AlgorithmNone when nothing acceptable is
// enabled.
func Negotiate(acceptEncoding string, opts Options) Algorithm {
	accepted := strings.ToLower(acceptEncoding)

	switch {
	case opts.EnableBrotli && strings.Contains(accepted, "br"):
		return AlgorithmBrotli
	case opts.EnableGzip && strings.Contains(accepted, "gzip"):
		return AlgorithmGzip
	case opts.EnableDeflate && strings.Contains(accepted, "deflate"):
		return AlgorithmDeflate
	default:
		return AlgorithmNone
	}
}

// preCompressedPrefixes are content-type families that are already entropy
// coded; recompressing them wastes CPU for no gain.
var preCompressedPrefixes = []string{
	"image/",
	"video/",
	"audio/",
	"font/woff",
}

// preCompressedTypes are exact pre-compressed types outside the prefix families.
var preCompressedTypes = map[string]bool{
	"application/pdf":              true,
	"application/zip":              true,
	"application/gzip":             true,
	"application/x-gzip":           true,
	"application/x-rar-compressed": true,
	"application/x-7z-compressed":  true,
}

// PreCompressed reports whether the content type belongs to a family that is
// already compressed. SVG is the one image type that compresses well, so it is
// exempted from the image/ prefix.
func PreCompressed(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "" {
		return false
	}
	if strings.HasPrefix(ct, "image/svg") {
		return false
	}
	for _, prefix := range preCompressedPrefixes {
		if strings.HasPrefix(ct, prefix) {
			return true
		}
	}
	return preCompressedTypes[ct]
}
