package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{
			name:           "records metrics for successful request",
			path:           "/test",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records metrics for error request",
			path:           "/error",
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRecordCompression(t *testing.T) {
	compressed := testutil.ToFloat64(CompressionsTotal.WithLabelValues("br", OutcomeCompressed))
	hits := testutil.ToFloat64(CompressionsTotal.WithLabelValues("gzip", OutcomeCacheHit))
	saved := testutil.ToFloat64(BytesSavedTotal)

	RecordCompression("br", OutcomeCompressed, 0.3, 2*time.Millisecond, 700)
	RecordCompression("gzip", OutcomeCacheHit, 0, 0, 0)
	RecordCompression("gzip", OutcomeFailed, 0, 0, 0)

	assert.Equal(t, compressed+1, testutil.ToFloat64(CompressionsTotal.WithLabelValues("br", OutcomeCompressed)))
	assert.Equal(t, hits+1, testutil.ToFloat64(CompressionsTotal.WithLabelValues("gzip", OutcomeCacheHit)))
	// Saved bytes only accumulate on the compressed outcome.
	assert.Equal(t, saved+700, testutil.ToFloat64(BytesSavedTotal))
}

func TestRecordCacheOperation(t *testing.T) {
	misses := testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "miss"))

	RecordCacheOperation("get", "hit")
	RecordCacheOperation("get", "miss")
	RecordCacheOperation("set", "ok")

	assert.Equal(t, misses+1, testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "miss")))
}
