// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"DEBUG", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"info", logrus.InfoLevel},
		{"", logrus.InfoLevel},
		{"verbose", logrus.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNew_JSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info")
	log.WithField("k", "v").Info("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "v", entry["k"])
	assert.Contains(t, entry, "timestamp")
}

func newRouter(buf *bytes.Buffer, status int) *gin.Engine {
	r := gin.New()
	r.Use(Middleware(New(buf, "debug")))
	r.GET("/x", func(c *gin.Context) {
		c.String(status, RequestID(c))
	})
	return r
}

func TestMiddleware_AssignsRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(&buf, http.StatusOK)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	id := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, id, entry["request_id"])
	assert.Equal(t, "/x", entry["path"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, "request served", entry["message"])
}

func TestMiddleware_ReusesInboundRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(&buf, http.StatusOK)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestMiddleware_LevelByStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "info"},
		{http.StatusBadRequest, "warning"},
		{http.StatusInternalServerError, "error"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		r := newRouter(&buf, tt.status)
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, tt.level, entry["level"], "status %d", tt.status)
	}
}
