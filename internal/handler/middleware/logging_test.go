//go:build unit

package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meetslot/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRedactPath(t *testing.T) {
	cases := []struct {
		name string
		path string
		want string
	}{
		{name: "booking view", path: "/book/00112233445566778899aabbccddeeff", want: "/book/001122***"},
		{name: "confirm", path: "/book/00112233445566778899aabbccddeeff/confirm", want: "/book/001122***/confirm"},
		{name: "short token kept", path: "/book/abc", want: "/book/abc"},
		{name: "other paths untouched", path: "/api/meetings/42", want: "/api/meetings/42"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, redactPath(tc.path))
		})
	}
}

func TestLoggingMiddleware_NeverLogsFullToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	l := &Logger{
		logger:   slog.New(slog.NewTextHandler(&buf, nil)),
		cfg:      config.LogConfig{},
		timezone: time.UTC,
	}

	router := gin.New()
	router.Use(l.LoggingMiddleware())
	router.GET("/book/:token", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	token := "00112233445566778899aabbccddeeff"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/book/"+token, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, buf.String(), token)
	assert.Contains(t, buf.String(), "/book/001122***")
	assert.Contains(t, buf.String(), "route=/book/:token")
}

func TestCustomRecovery_LogsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	l := &Logger{
		logger:   slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		cfg:      config.LogConfig{},
		timezone: time.UTC,
	}

	var requestID string
	router := gin.New()
	router.Use(CustomRecovery(), l.LoggingMiddleware())
	router.POST("/book/:token/confirm", func(c *gin.Context) {
		requestID = GetRequestID(c)
		panic("boom")
	})

	token := "00112233445566778899aabbccddeeff"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/book/"+token+"/confirm", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, requestID)
	assert.Contains(t, buf.String(), "request_id="+requestID)
	assert.Contains(t, buf.String(), "/book/001122***/confirm")
	assert.NotContains(t, buf.String(), token)
}
