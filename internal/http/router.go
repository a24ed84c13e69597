// Package http wires the HTTP surface of the compression service: router,
// health probes, and the stats and document endpoints.
package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/guttosm/compression-service/internal/cache"
	"github.com/guttosm/compression-service/internal/compression"
	"github.com/guttosm/compression-service/internal/metrics"
	"github.com/guttosm/compression-service/internal/middleware"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	CORSOrigins []string
	Compression compression.Options
	Store       cache.Store
	Stats       *compression.Aggregator
	Files       *compression.FileService
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)

	healthHandler := NewHealthHandler(cfg.Store)
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	NewStatsHandler(cfg.Stats).Register(api)
	NewDocumentsHandler(cfg.Files).Register(api)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "accept", "Cache-Control", "X-Requested-With", "X-Request-ID", middleware.HeaderNoCompression},
		ExposeHeaders:    []string{"X-Request-ID", middleware.HeaderCompressionRatio, middleware.HeaderCompressionAlgorithm, middleware.HeaderOriginalSize, middleware.HeaderCompressedSize},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	// RequestLogger sits outside Compression so the finished response,
	// including the negotiated algorithm header, is what gets logged.
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.RequestLogger(),
		middleware.Compression(middleware.CompressionConfig{
			Options: cfg.Compression,
			Store:   cfg.Store,
			Stats:   cfg.Stats,
		}),
		middleware.ErrorHandler(),
	)
}
