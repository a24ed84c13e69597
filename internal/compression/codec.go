package compression

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
)

// Codec level bounds. Brotli accepts 0-11, gzip and deflate 1-9.
const (
	minGzipLevel   = 1
	maxGzipLevel   = 9
	minBrotliLevel = 0
	maxBrotliLevel = 11
)

// ClampLevel constrains level to the valid range of the given algorithm.
func ClampLevel(level int, alg Algorithm) int {
	lo, hi := minGzipLevel, maxGzipLevel
	if alg == AlgorithmBrotli {
		lo, hi = minBrotliLevel, maxBrotliLevel
	}
	if level < lo {
		return lo
	}
	if level > hi {
		return hi
	}
	return level
}

// Compress encodes data with the given algorithm at the given level. The level
// is clamped to the algorithm's valid range. AlgorithmNone returns the input
// unmodified.
func Compress(data []byte, alg Algorithm, level int) ([]byte, error) {
	if alg == AlgorithmNone {
		return data, nil
	}

	level = ClampLevel(level, alg)
	var buf bytes.Buffer

	var (
		w   io.WriteCloser
		err error
	)
	switch alg {
	case AlgorithmBrotli:
		w = brotli.NewWriterLevel(&buf, level)
	case AlgorithmGzip:
		w, err = gzip.NewWriterLevel(&buf, level)
	case AlgorithmDeflate:
		w, err = flate.NewWriter(&buf, level)
	default:
		return nil, fmt.Errorf("unsupported algorithm %q", alg)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s writer: %w", alg, err)
	}

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("%s compress: %w", alg, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%s flush: %w", alg, err)
	}
	return buf.Bytes(), nil
}

// Decompress decodes data produced by Compress with the same algorithm.
// AlgorithmNone returns the input unmodified.
func Decompress(data []byte, alg Algorithm) ([]byte, error) {
	switch alg {
	case AlgorithmNone:
		return data, nil
	case AlgorithmBrotli:
		return io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
	case AlgorithmGzip:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip decompress: %w", err)
		}
		defer r.Close()
		return io.ReadAll(r)
	case AlgorithmDeflate:
		r := flate.NewReader(bytes.NewReader(data))
		defer r.Close()
		return io.ReadAll(r)
	default:
		return nil, fmt.Errorf("unsupported algorithm %q", alg)
	}
}
