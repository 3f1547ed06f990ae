package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, fn func(c *gin.Context)) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestResponders(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(c *gin.Context)
		status  int
		code    string
		message string
	}{
		{"unauthorized default", func(c *gin.Context) { Unauthorized(c, "") }, http.StatusUnauthorized, ErrCodeUnauthorized, "Authentication required"},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "not yours") }, http.StatusForbidden, ErrCodeForbidden, "not yours"},
		{"not found default", func(c *gin.Context) { NotFound(c, "") }, http.StatusNotFound, ErrCodeNotFound, "Resource not found"},
		{"bad request", func(c *gin.Context) { BadRequest(c, "bad id") }, http.StatusBadRequest, ErrCodeInvalidInput, "bad id"},
		{"internal default", func(c *gin.Context) { InternalError(c, "") }, http.StatusInternalServerError, ErrCodeInternalError, "Internal server error"},
		{"unavailable default", func(c *gin.Context) { ServiceUnavailable(c, "") }, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Service temporarily unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := respond(t, tt.fn)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body["code"])
			assert.Equal(t, tt.message, body["message"])
			assert.NotContains(t, body, "details")
		})
	}
}

func TestBadRequestWithDetails(t *testing.T) {
	status, body := respond(t, func(c *gin.Context) {
		BadRequestWithDetails(c, "validation failed", []string{"title is required"})
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, ErrCodeInvalidInput, body["code"])
	assert.Equal(t, []any{"title is required"}, body["details"])
}
