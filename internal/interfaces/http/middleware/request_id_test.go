package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestIDRouter(capture *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		*capture, _ = c.Request.Context().Value("request_id").(string)
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequestIDMiddleware_GeneratesAndEchoes(t *testing.T) {
	var seen string
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	requestIDRouter(&seen).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	echoed := w.Header().Get("X-Request-ID")
	require.NotEmpty(t, echoed)
	_, err := uuid.Parse(echoed)
	assert.NoError(t, err)
	assert.Equal(t, echoed, seen)
}

func TestRequestIDMiddleware_HonorsInboundHeader(t *testing.T) {
	var seen string
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "retry-7")
	requestIDRouter(&seen).ServeHTTP(w, req)

	assert.Equal(t, "retry-7", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "retry-7", seen)
}
