package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/compression-service/internal/cache"
)

// pingTimeout bounds the cache store probe during readiness checks.
const pingTimeout = 2 * time.Second

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	store cache.Store
}

// NewHealthHandler creates a HealthHandler. The store may be nil when caching
// is disabled.
func NewHealthHandler(store cache.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint. The cache store is an
// optional accelerator, so an unreachable store reports degraded but keeps the
// service ready: compression works without it.
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := make(map[string]string)
	status := "ok"

	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()

		if err := h.store.Ping(ctx); err != nil {
			checks["cache"] = err.Error()
			status = "degraded"
		} else {
			checks["cache"] = "ok"
		}
	} else {
		checks["service"] = "ok"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"checks": checks,
	})
}
