package compression

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressRoundTrip(t *testing.T) {
	body := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 100))

	for _, alg := range []Algorithm{AlgorithmBrotli, AlgorithmGzip, AlgorithmDeflate} {
		t.Run(string(alg), func(t *testing.T) {
			compressed, err := Compress(body, alg, DefaultLevel)
			require.NoError(t, err)
			assert.Less(t, len(compressed), len(body))

			decompressed, err := Decompress(compressed, alg)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(body, decompressed))
		})
	}
}

func TestCompressNone(t *testing.T) {
	body := []byte("unchanged")

	compressed, err := Compress(body, AlgorithmNone, DefaultLevel)
	require.NoError(t, err)
	assert.Equal(t, body, compressed)

	decompressed, err := Decompress(body, AlgorithmNone)
	require.NoError(t, err)
	assert.Equal(t, body, decompressed)
}

func TestCompressUnsupportedAlgorithm(t *testing.T) {
	_, err := Compress([]byte("data"), Algorithm("zstd"), DefaultLevel)
	assert.Error(t, err)

	_, err = Decompress([]byte("data"), Algorithm("zstd"))
	assert.Error(t, err)
}

func TestCompressEmptyBody(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmBrotli, AlgorithmGzip, AlgorithmDeflate} {
		t.Run(string(alg), func(t *testing.T) {
			compressed, err := Compress(nil, alg, DefaultLevel)
			require.NoError(t, err)

			decompressed, err := Decompress(compressed, alg)
			require.NoError(t, err)
			assert.Empty(t, decompressed)
		})
	}
}

func TestClampLevel(t *testing.T) {
	tests := []struct {
		name  string
		level int
		alg   Algorithm
		want  int
	}{
		{"gzip in range", 6, AlgorithmGzip, 6},
		{"gzip below range", 0, AlgorithmGzip, 1},
		{"gzip above range", 12, AlgorithmGzip, 9},
		{"deflate above range", 11, AlgorithmDeflate, 9},
		{"brotli in range", 11, AlgorithmBrotli, 11},
		{"brotli below range", -1, AlgorithmBrotli, 0},
		{"brotli above range", 13, AlgorithmBrotli, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampLevel(tt.level, tt.alg))
		})
	}
}

func TestCompressOutOfRangeLevelStillWorks(t *testing.T) {
	body := []byte(strings.Repeat("abc", 500))

	compressed, err := Compress(body, AlgorithmGzip, 42)
	require.NoError(t, err)

	decompressed, err := Decompress(compressed, AlgorithmGzip)
	require.NoError(t, err)
	assert.Equal(t, body, decompressed)
}
