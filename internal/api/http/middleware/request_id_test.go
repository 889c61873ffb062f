package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newRouter(log *zap.Logger) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	seen := new(string)

	r := gin.New()
	r.Use(RequestID(log))
	r.GET("/ping", func(c *gin.Context) {
		*seen = GetRequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})
	return r, seen
}

func TestRequestID_EchoesIncomingHeader(t *testing.T) {
	r, seen := newRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "abc-123", rr.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123", *seen)
}

func TestRequestID_GeneratesAndLogs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r, seen := newRouter(zap.New(core))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	rid := rr.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(rid)
	require.NoError(t, err)
	assert.Equal(t, rid, *seen)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, rid, fields["request_id"])
	assert.Equal(t, "/ping", fields["path"])
	assert.EqualValues(t, http.StatusNoContent, fields["status"])
}
