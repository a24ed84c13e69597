package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSuccess(t *testing.T) {
	before := time.Now()
	resp := NewSuccess(map[string]int{"total": 3}, "req-123")

	assert.Equal(t, map[string]int{"total": 3}, resp.Data)
	assert.Equal(t, "req-123", resp.RequestID)
	assert.False(t, resp.Timestamp.Before(before))
}

func TestErrorResponse_WithRequestID(t *testing.T) {
	tests := []struct {
		name      string
		errCode   string
		message   string
		requestID string
	}{
		{
			name:      "internal error with request ID",
			errCode:   ErrCodeInternal,
			message:   "something broke",
			requestID: "req-1",
		},
		{
			name:      "invalid request without request ID",
			errCode:   ErrCodeInvalidRequest,
			message:   "bad payload",
			requestID: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewError(tt.errCode, tt.message).WithRequestID(tt.requestID)

			assert.Equal(t, tt.errCode, err.Error)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.requestID, err.RequestID)
			assert.False(t, err.Timestamp.IsZero())
		})
	}
}

func TestErrorResponse_JSONOmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(NewError(ErrCodeUnsupported, ""))
	require.NoError(t, err)

	assert.Contains(t, string(data), `"error":"unsupported"`)
	assert.NotContains(t, string(data), "message")
	assert.NotContains(t, string(data), "request_id")
}
