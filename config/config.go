// Package config provides configuration management for the compression service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/compression-service/internal/compression"
)

// Config holds the complete application configuration.
type Config struct {
	Server      ServerConfig
	Compression CompressionConfig
	Redis       RedisConfig
	Log         LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

// CompressionConfig holds response and file compression configuration.
type CompressionConfig struct {
	MinSize       int
	Level         int
	EnableBrotli  bool
	EnableGzip    bool
	EnableDeflate bool
	CacheEnabled  bool
	CacheTTL      time.Duration
	// BrotliFileLevel and GzipFileLevel apply to the batch file compressor,
	// which is tuned independently of the response path.
	BrotliFileLevel int
	GzipFileLevel   int
}

// RedisConfig holds cache store connection configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
		},
		Compression: CompressionConfig{
			MinSize:         getEnvInt("COMPRESSION_MIN_SIZE", compression.DefaultMinSize),
			Level:           getEnvInt("COMPRESSION_LEVEL", compression.DefaultLevel),
			EnableBrotli:    getEnvBool("COMPRESSION_BROTLI", true),
			EnableGzip:      getEnvBool("COMPRESSION_GZIP", true),
			EnableDeflate:   getEnvBool("COMPRESSION_DEFLATE", true),
			CacheEnabled:    getEnvBool("COMPRESSION_CACHE_ENABLED", true),
			CacheTTL:        getEnvDuration("COMPRESSION_CACHE_TTL", compression.DefaultCacheTTL),
			BrotliFileLevel: getEnvInt("COMPRESSION_FILE_BROTLI_LEVEL", 6),
			GzipFileLevel:   getEnvInt("COMPRESSION_FILE_GZIP_LEVEL", compression.DefaultLevel),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

// Options maps the compression section onto the middleware's option record.
func (c CompressionConfig) Options() compression.Options {
	return compression.Options{
		MinSize:       c.MinSize,
		EnableBrotli:  c.EnableBrotli,
		EnableGzip:    c.EnableGzip,
		EnableDeflate: c.EnableDeflate,
		Level:         c.Level,
		CacheEnabled:  c.CacheEnabled,
		CacheTTL:      c.CacheTTL,
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
