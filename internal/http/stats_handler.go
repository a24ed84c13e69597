package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/compression-service/internal/compression"
	"github.com/guttosm/compression-service/internal/domain/dto"
	"github.com/guttosm/compression-service/internal/middleware"
)

// StatsHandler serves aggregate compression statistics.
type StatsHandler struct {
	stats *compression.Aggregator
}

// NewStatsHandler creates a StatsHandler over the given aggregator.
func NewStatsHandler(stats *compression.Aggregator) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Register registers the stats route on the API group.
func (h *StatsHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/stats", h.Get)
}

// Get returns the aggregate view over all recorded compression stats.
func (h *StatsHandler) Get(c *gin.Context) {
	summary := h.stats.Aggregate()
	c.JSON(http.StatusOK, dto.NewSuccess(summary, middleware.GetRequestID(c)))
}
