// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/compression-service/config"
	"github.com/guttosm/compression-service/internal/cache"
	"github.com/guttosm/compression-service/internal/compression"
	"github.com/guttosm/compression-service/internal/http"
	"github.com/guttosm/compression-service/internal/logger"
)

// startupPingTimeout bounds the cache store connectivity probe at startup.
const startupPingTimeout = 3 * time.Second

// InitializeApp creates and wires all application dependencies. The returned
// cleanup releases the cache connection and is safe to call when caching is
// disabled.
func InitializeApp(cfg config.Config) (*gin.Engine, func()) {
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	store := initializeStore(cfg)
	stats := compression.NewAggregator()
	files := compression.NewFileService(cfg.Compression.BrotliFileLevel, cfg.Compression.GzipFileLevel)

	router := http.NewRouter(http.RouterConfig{
		CORSOrigins: cfg.Server.CORSOrigins,
		Compression: cfg.Compression.Options(),
		Store:       store,
		Stats:       stats,
		Files:       files,
	})

	cleanup := func() {
		if rs, ok := store.(*cache.RedisStore); ok {
			if err := rs.Close(); err != nil {
				log := logger.Logger()
				log.Warn().Err(err).Msg("Closing compression cache")
			}
		}
	}
	return router, cleanup
}

// initializeStore connects the compressed-payload cache. An unreachable Redis
// is logged and kept: the store degrades to misses and recovers on its own.
func initializeStore(cfg config.Config) cache.Store {
	if !cfg.Compression.CacheEnabled {
		return nil
	}

	store := cache.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	log := logger.Logger()

	ctx, cancel := context.WithTimeout(context.Background(), startupPingTimeout)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).
			Msg("Compression cache unreachable at startup, continuing without hits")
	} else {
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Compression cache connected")
	}
	return store
}
