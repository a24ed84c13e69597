package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/compression-service/internal/compression"
)

func documentsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewDocumentsHandler(compression.NewFileService(6, 6)).Register(router.Group("/api"))
	return router
}

func postDocument(router *gin.Engine, path, contentType string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeCompressResponse(t *testing.T, w *httptest.ResponseRecorder) CompressDocumentResponse {
	t.Helper()
	var resp struct {
		Data CompressDocumentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestDocumentsCompressDecompressRoundTrip(t *testing.T) {
	router := documentsRouter()
	document := []byte(strings.Repeat("quarterly filing, client 4512. ", 300))

	w := postDocument(router, "/api/documents/compress", "text/plain", document)
	require.Equal(t, http.StatusOK, w.Code)

	result := decodeCompressResponse(t, w)
	assert.Equal(t, compression.AlgorithmBrotli, result.Algorithm)
	assert.Equal(t, len(document), result.OriginalSize)
	assert.Less(t, result.Ratio, 0.9)

	reqBody, err := json.Marshal(DecompressDocumentRequest{
		Data:      result.Data,
		Algorithm: result.Algorithm,
	})
	require.NoError(t, err)

	w = postDocument(router, "/api/documents/decompress", "application/json", reqBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, document, w.Body.Bytes())
}

func TestDocumentsCompressSkipsPdf(t *testing.T) {
	router := documentsRouter()
	document := []byte(strings.Repeat("%PDF-1.7 fake body ", 200))

	w := postDocument(router, "/api/documents/compress", "application/pdf", document)
	require.Equal(t, http.StatusOK, w.Code)

	result := decodeCompressResponse(t, w)
	assert.Equal(t, compression.AlgorithmNone, result.Algorithm)
	assert.Equal(t, document, result.Data)
}

func TestDocumentsDecompressRejectsBadRequest(t *testing.T) {
	router := documentsRouter()

	w := postDocument(router, "/api/documents/decompress", "application/json", []byte(`{"data":""}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_request")
}

func TestDocumentsDecompressRejectsUnknownAlgorithm(t *testing.T) {
	router := documentsRouter()

	reqBody, err := json.Marshal(DecompressDocumentRequest{
		Data:      []byte("payload"),
		Algorithm: compression.Algorithm("zstd"),
	})
	require.NoError(t, err)

	w := postDocument(router, "/api/documents/decompress", "application/json", reqBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported")
}
