package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/compression-service/internal/compression"
	"github.com/guttosm/compression-service/internal/domain/dto"
	"github.com/guttosm/compression-service/internal/logger"
	"github.com/guttosm/compression-service/internal/middleware"
)

// DocumentsHandler exposes the batch file compressor over HTTP for document
// intake: compress on upload, decompress on retrieval.
type DocumentsHandler struct {
	files *compression.FileService
}

// NewDocumentsHandler creates a DocumentsHandler.
func NewDocumentsHandler(files *compression.FileService) *DocumentsHandler {
	return &DocumentsHandler{files: files}
}

// Register registers the document routes on the API group.
func (h *DocumentsHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/documents/compress", h.Compress)
	rg.POST("/documents/decompress", h.Decompress)
}

// CompressDocumentResponse describes a compressed document. Data is base64 in
// JSON; Algorithm "none" means the original bytes were kept.
type CompressDocumentResponse struct {
	Data           []byte                `json:"data"`
	Algorithm      compression.Algorithm `json:"algorithm"`
	OriginalSize   int                   `json:"original_size"`
	CompressedSize int                   `json:"compressed_size"`
	Ratio          float64               `json:"ratio"`
}

// DecompressDocumentRequest carries a compressed document and its algorithm tag.
type DecompressDocumentRequest struct {
	Data      []byte                `json:"data" binding:"required"`
	Algorithm compression.Algorithm `json:"algorithm" binding:"required"`
}

// Compress reads the raw request body and compresses it according to its
// Content-Type. A codec failure falls back to the original bytes rather than
// failing the upload.
func (h *DocumentsHandler) Compress(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(dto.ErrCodeInvalidRequest, "unable to read request body").
			WithRequestID(middleware.GetRequestID(c)))
		return
	}

	result, err := h.files.Compress(body, c.ContentType())
	if err != nil {
		// result still carries the original buffer tagged "none".
		log := logger.Logger()
		log.Warn().Err(err).Msg("Document compression failed, storing original")
	}

	resp := CompressDocumentResponse{
		Data:           result.Data,
		Algorithm:      result.Algorithm,
		OriginalSize:   result.OriginalSize,
		CompressedSize: result.CompressedSize,
		Ratio:          result.Ratio,
	}
	c.JSON(http.StatusOK, dto.NewSuccess(resp, middleware.GetRequestID(c)))
}

// Decompress reverses Compress given the stored algorithm tag and returns the
// raw bytes.
func (h *DocumentsHandler) Decompress(c *gin.Context) {
	var req DecompressDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(dto.ErrCodeInvalidRequest, err.Error()).
			WithRequestID(middleware.GetRequestID(c)))
		return
	}

	data, err := h.files.Decompress(req.Data, req.Algorithm)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(dto.ErrCodeUnsupported, err.Error()).
			WithRequestID(middleware.GetRequestID(c)))
		return
	}

	c.Data(http.StatusOK, "application/octet-stream", data)
}
