package compression

import (
	"fmt"
	"strings"
)

// worstAcceptableRatio is the cutoff above which compressing a file is not
// worth the storage churn: saving less than 10% means keeping the original.
const worstAcceptableRatio = 0.9

// FileResult is the outcome of compressing a byte buffer. When Algorithm is
// AlgorithmNone, Data is the original buffer.
type FileResult struct {
	Data           []byte
	Algorithm      Algorithm
	OriginalSize   int
	CompressedSize int
	Ratio          float64
}

// FileService compresses and decompresses standalone byte buffers such as
// uploaded documents. Unlike the HTTP middleware it picks the algorithm from
// the content type rather than client negotiation: brotli for text and JSON
// families, gzip for everything else.
type FileService struct {
	brotliLevel int
	gzipLevel   int
}

// NewFileService creates a FileService. Levels are clamped to each codec's
// valid range.
func NewFileService(brotliLevel, gzipLevel int) *FileService {
	return &FileService{
		brotliLevel: ClampLevel(brotliLevel, AlgorithmBrotli),
		gzipLevel:   ClampLevel(gzipLevel, AlgorithmGzip),
	}
}

// Compress compresses data according to its mime type. Pre-compressed mime
// families and buffers that compress worse than the acceptable ratio are
// returned unchanged with AlgorithmNone.
func (s *FileService) Compress(data []byte, mimeType string) (FileResult, error) {
	original := FileResult{
		Data:           data,
		Algorithm:      AlgorithmNone,
		OriginalSize:   len(data),
		CompressedSize: len(data),
		Ratio:          1,
	}

	if len(data) == 0 || PreCompressed(mimeType) {
		return original, nil
	}

	alg, level := AlgorithmGzip, s.gzipLevel
	if textLike(mimeType) {
		alg, level = AlgorithmBrotli, s.brotliLevel
	}

	compressed, err := Compress(data, alg, level)
	if err != nil {
		return original, fmt.Errorf("compress %s: %w", mimeType, err)
	}

	ratio := float64(len(compressed)) / float64(len(data))
	if ratio > worstAcceptableRatio {
		return original, nil
	}

	return FileResult{
		Data:           compressed,
		Algorithm:      alg,
		OriginalSize:   len(data),
		CompressedSize: len(compressed),
		Ratio:          ratio,
	}, nil
}

// Decompress reverses Compress given the algorithm tag stored with the data.
func (s *FileService) Decompress(data []byte, alg Algorithm) ([]byte, error) {
	return Decompress(data, alg)
}

func textLike(mimeType string) bool {
	mt := strings.ToLower(mimeType)
	return strings.HasPrefix(mt, "text/") ||
		strings.Contains(mt, "json") ||
		strings.Contains(mt, "javascript") ||
		strings.Contains(mt, "xml")
}
