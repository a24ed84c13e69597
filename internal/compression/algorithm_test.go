package compression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegotiate(t *testing.T) {
	allEnabled := Options{EnableBrotli: true, EnableGzip: true, EnableDeflate: true}

	tests := []struct {
		name           string
		acceptEncoding string
		opts           Options
		want           Algorithm
	}{
		{
			name:           "brotli wins over gzip",
			acceptEncoding: "br, gzip",
			opts:           allEnabled,
			want:           AlgorithmBrotli,
		},
		{
			name:           "gzip when brotli not accepted",
			acceptEncoding: "gzip",
			opts:           allEnabled,
			want:           AlgorithmGzip,
		},
		{
			name:           "deflate as last resort",
			acceptEncoding: "deflate",
			opts:           allEnabled,
			want:           AlgorithmDeflate,
		},
		{
			name:           "identity means none",
			acceptEncoding: "identity",
			opts:           allEnabled,
			want:           AlgorithmNone,
		},
		{
			name:           "empty header means none",
			acceptEncoding: "",
			opts:           allEnabled,
			want:           AlgorithmNone,
		},
		{
			name:           "matching is case-insensitive",
			acceptEncoding: "BR, GZIP",
			opts:           allEnabled,
			want:           AlgorithmBrotli,
		},
		{
			name:           "disabled brotli falls through to gzip",
			acceptEncoding: "br, gzip",
			opts:           Options{EnableGzip: true, EnableDeflate: true},
			want:           AlgorithmGzip,
		},
		{
			name:           "all disabled means none",
			acceptEncoding: "br, gzip, deflate",
			opts:           Options{},
			want:           AlgorithmNone,
		},
		{
			name:           "quality values do not break matching",
			acceptEncoding: "gzip;q=0.8, deflate;q=0.5",
			opts:           Options{EnableGzip: true, EnableDeflate: true},
			want:           AlgorithmGzip,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Negotiate(tt.acceptEncoding, tt.opts))
		})
	}
}

func TestPreCompressed(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"image/png", true},
		{"image/jpeg", true},
		{"image/svg+xml", false},
		{"video/mp4", true},
		{"audio/mpeg", true},
		{"application/pdf", true},
		{"application/zip", true},
		{"application/gzip", true},
		{"font/woff2", true},
		{"text/html", false},
		{"application/json", false},
		{"application/json; charset=utf-8", false},
		{"IMAGE/PNG", true},
		{"application/pdf; name=return.pdf", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, PreCompressed(tt.contentType))
		})
	}
}

func TestAlgorithmEncoding(t *testing.T) {
	assert.Equal(t, "br", AlgorithmBrotli.Encoding())
	assert.Equal(t, "gzip", AlgorithmGzip.Encoding())
	assert.Equal(t, "deflate", AlgorithmDeflate.Encoding())
	assert.Equal(t, "", AlgorithmNone.Encoding())
}
