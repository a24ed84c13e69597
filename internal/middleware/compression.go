// Package middleware provides HTTP middleware components for the compression service.
package middleware

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/compression-service/internal/cache"
	"github.com/guttosm/compression-service/internal/compression"
	"github.com/guttosm/compression-service/internal/logger"
	"github.com/guttosm/compression-service/internal/metrics"
)

const (
	// HeaderNoCompression opts a request or response out of compression.
	HeaderNoCompression = "X-No-Compression"
	// HeaderCompressionRatio exposes the achieved ratio (compressed/original).
	HeaderCompressionRatio = "X-Compression-Ratio"
	// HeaderCompressionAlgorithm exposes the algorithm used.
	HeaderCompressionAlgorithm = "X-Compression-Algorithm"
	// HeaderOriginalSize exposes the uncompressed body size in bytes.
	HeaderOriginalSize = "X-Original-Size"
	// HeaderCompressedSize exposes the compressed body size in bytes.
	HeaderCompressedSize = "X-Compressed-Size"
)

// CompressionConfig holds the middleware's collaborators. Store may be nil,
// which disables caching regardless of Options.CacheEnabled.
type CompressionConfig struct {
	Options compression.Options
	Store   cache.Store
	Stats   *compression.Aggregator
}

// Compression returns a middleware that negotiates a content encoding from
// Accept-Encoding, compresses eligible response bodies above the size
// threshold, and serves repeated responses from the compressed-payload cache.
// Compression failures are never surfaced to the client: the original body is
// sent instead.
func Compression(cfg CompressionConfig) gin.HandlerFunc {
	if cfg.Stats == nil {
		cfg.Stats = compression.NewAggregator()
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		if c.GetHeader(HeaderNoCompression) == "true" {
			c.Next()
			return
		}

		alg := compression.Negotiate(c.GetHeader("Accept-Encoding"), cfg.Options)
		if alg == compression.AlgorithmNone {
			c.Next()
			return
		}

		w := &bufferedWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w

		// Restore the real writer before unwinding so a panicking handler is
		// answered through it, then flush the buffered response.
		defer func() {
			c.Writer = w.ResponseWriter
			if r := recover(); r != nil {
				panic(r)
			}
			finalize(c, &cfg, w, alg)
		}()

		c.Next()
	}
}

// finalize applies the eligibility filter to the captured response and emits
// either the compressed or the original body.
func finalize(c *gin.Context, cfg *CompressionConfig, w *bufferedWriter, alg compression.Algorithm) {
	status := w.status
	if status == 0 {
		// gin's no-route path records its status on the underlying writer.
		status = w.ResponseWriter.Status()
	}
	body := w.body.Bytes()
	header := c.Writer.Header()

	skip := len(body) <= cfg.Options.MinSize ||
		header.Get("Content-Encoding") != "" ||
		header.Get(HeaderNoCompression) == "true" ||
		compression.PreCompressed(header.Get("Content-Type"))
	if skip {
		metrics.RecordCompression(string(alg), metrics.OutcomeSkipped, 0, 0, 0)
		writeOriginal(c, status, body)
		return
	}

	data, stats, ok := compressBody(c, cfg, body, alg)
	if !ok {
		writeOriginal(c, status, body)
		return
	}

	header.Set("Content-Encoding", alg.Encoding())
	header.Set("Content-Length", strconv.Itoa(len(data)))
	header.Set("Vary", "Accept-Encoding")
	header.Set(HeaderCompressionRatio, strconv.FormatFloat(stats.Ratio, 'f', 3, 64))
	header.Set(HeaderCompressionAlgorithm, string(stats.Algorithm))
	header.Set(HeaderOriginalSize, strconv.Itoa(stats.OriginalSize))
	header.Set(HeaderCompressedSize, strconv.Itoa(stats.CompressedSize))

	c.Writer.WriteHeader(status)
	if _, err := c.Writer.Write(data); err != nil {
		log := logger.Logger()
		log.Error().Err(err).Msg("Write compressed response")
	}
}

// compressBody produces the compressed payload for body, consulting the cache
// first. It never fails the request: any error reports ok=false and the caller
// falls back to the original body.
func compressBody(c *gin.Context, cfg *CompressionConfig, body []byte, alg compression.Algorithm) (data []byte, stats compression.Stats, ok bool) {
	log := logger.Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Compression panic, sending original body")
			metrics.RecordCompression(string(alg), metrics.OutcomeFailed, 0, 0, 0)
			ok = false
		}
	}()

	ctx := c.Request.Context()
	key := cache.Key(c.Request.URL.RequestURI(), body, alg)
	useCache := cfg.Options.CacheEnabled && cfg.Store != nil

	if useCache {
		entry, found, err := cfg.Store.Get(ctx, key)
		switch {
		case err != nil:
			// Cache failures degrade to a miss, never to a request failure.
			log.Warn().Err(err).Msg("Compression cache read failed")
			metrics.RecordCacheOperation("get", "error")
		case found && entry.Algorithm == alg:
			metrics.RecordCacheOperation("get", "hit")
			metrics.RecordCompression(string(alg), metrics.OutcomeCacheHit, 0, 0, 0)
			cfg.Stats.Record(key, entry.Stats)
			return entry.Data, entry.Stats, true
		default:
			metrics.RecordCacheOperation("get", "miss")
		}
	}

	level := compression.AdaptiveLevel(cfg.Options.Level, c.Request.UserAgent(), c.GetHeader("Downlink"), alg)

	start := time.Now()
	compressed, err := compression.Compress(body, alg, level)
	if err != nil {
		log.Error().Err(err).Str("algorithm", string(alg)).Msg("Compression failed, sending original body")
		metrics.RecordCompression(string(alg), metrics.OutcomeFailed, 0, 0, 0)
		return nil, compression.Stats{}, false
	}
	elapsed := time.Since(start)

	stats = compression.Stats{
		OriginalSize:   len(body),
		CompressedSize: len(compressed),
		Ratio:          float64(len(compressed)) / float64(len(body)),
		Algorithm:      alg,
		Duration:       elapsed,
	}

	if useCache {
		entry := &cache.Entry{Algorithm: alg, Data: compressed, Stats: stats}
		if err := cfg.Store.SetEx(ctx, key, entry, cfg.Options.CacheTTL); err != nil {
			log.Warn().Err(err).Msg("Compression cache write failed")
			metrics.RecordCacheOperation("set", "error")
		} else {
			metrics.RecordCacheOperation("set", "ok")
		}
	}

	cfg.Stats.Record(key, stats)
	metrics.RecordCompression(string(alg), metrics.OutcomeCompressed, stats.Ratio, elapsed, len(body)-len(compressed))
	return compressed, stats, true
}

// writeOriginal forwards the captured response unmodified.
func writeOriginal(c *gin.Context, status int, body []byte) {
	if len(body) == 0 && status == http.StatusOK {
		return
	}
	c.Writer.WriteHeader(status)
	if len(body) > 0 {
		if _, err := c.Writer.Write(body); err != nil {
			log := logger.Logger()
			log.Error().Err(err).Msg("Write response")
		}
	}
}

// bufferedWriter captures the response body and status so the middleware can
// decide after the handler whether to compress. Nothing reaches the client
// until finalize runs.
type bufferedWriter struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

func (w *bufferedWriter) WriteHeader(statusCode int) {
	w.status = statusCode
}

// WriteHeaderNow is deferred; the status is flushed in finalize.
func (w *bufferedWriter) WriteHeaderNow() {}

func (w *bufferedWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *bufferedWriter) Size() int {
	return w.body.Len()
}

func (w *bufferedWriter) Written() bool {
	return w.status != 0 || w.body.Len() > 0
}
