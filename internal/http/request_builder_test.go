package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizza-service/internal/domain/dto"
	"github.com/guttosm/pizza-service/internal/i18n"
	"github.com/guttosm/pizza-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestBuilder_Bind(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		body          string
		expectedStatus string
		expectError   bool
	}{
		{
			name:          "valid request",
			body:          `{"status": "processing"}`,
			expectedStatus: "processing",
			expectError:   false,
		},
		{
			name:        "invalid JSON",
			body:        `{"status": invalid}`,
			expectError: true,
		},
		{
			name:        "empty body",
			body:        ``,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			c.Request = req

			builder := NewRequestBuilder(c)
			var request dto.UpdateOrderStatusRequest
			err := builder.Bind(&request)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStatus, request.Status)
			}
		})
	}
}

func TestUnmarshalFromBytes(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		expectError bool
	}{
		{
			name:        "valid JSON",
			data:        []byte(`{"status": "processing"}`),
			expectError: false,
		},
		{
			name:        "invalid JSON",
			data:        []byte(`{"status": invalid}`),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := UnmarshalFromBytes[dto.UpdateOrderStatusRequest](tt.data)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "processing", result.Status)
			}
		})
	}
}

func TestUnmarshalFromReader(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid JSON",
			body:        `{"status": "processing"}`,
			expectError: false,
		},
		{
			name:        "invalid JSON",
			body:        `{"status": invalid}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := bytes.NewBufferString(tt.body)
			result, err := UnmarshalFromReader[dto.UpdateOrderStatusRequest](reader)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "processing", result.Status)
			}
		})
	}
}

func TestBuildRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid request",
			body:        `{"status": "processing"}`,
			expectError: false,
		},
		{
			name:        "invalid JSON",
			body:        `{"status": invalid}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			c.Request = req

			result, err := BuildRequest[dto.UpdateOrderStatusRequest](c)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "processing", result.Status)
			}
		})
	}
}

func TestBuildRequestAndValidate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid request",
			body:        `{"status": "processing"}`,
			expectError: false,
		},
		{
			name:        "invalid request - unknown status",
			body:        `{"status": "shipped"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			c.Request = req

			result, err := BuildRequestAndValidate[dto.UpdateOrderStatusRequest](c)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "processing", result.Status)
			}
		})
	}
}

func TestResponseBuilder_ErrorWithKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	middleware.RequestID()(c)
	builder := NewResponseBuilder(c)

	builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errorResp dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &errorResp)
	assert.NoError(t, err)
	assert.Equal(t, dto.ErrCodeInvalidRequest, errorResp.Error)
	assert.NotEmpty(t, errorResp.Message)
}

func TestResponseBuilder_ErrorWithCustomMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	middleware.RequestID()(c)
	builder := NewResponseBuilder(c)

	customMessage := "Custom error message"
	builder.ErrorWithMessage(http.StatusBadRequest, customMessage, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errorResp dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &errorResp)
	assert.NoError(t, err)
	assert.Equal(t, customMessage, errorResp.Message)
}

func TestMarshalJSON(t *testing.T) {
	data := dto.UpdateOrderStatusRequest{Status: "processing"}
	result, err := MarshalJSON(data)

	assert.NoError(t, err)
	assert.NotNil(t, result)

	var unmarshaled dto.UpdateOrderStatusRequest
	err = json.Unmarshal(result, &unmarshaled)
	assert.NoError(t, err)
	assert.Equal(t, "processing", unmarshaled.Status)
}

func TestMarshalToWriter(t *testing.T) {
	data := dto.UpdateOrderStatusRequest{Status: "processing"}
	var buf bytes.Buffer

	err := MarshalToWriter(&buf, data)
	assert.NoError(t, err)

	var result dto.UpdateOrderStatusRequest
	err = json.Unmarshal(buf.Bytes(), &result)
	assert.NoError(t, err)
	assert.Equal(t, "processing", result.Status)
}
