package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/saju-api/internal/api/shared"
	"github.com/phrazzld/saju-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	log, buf := logger.GetTestLogger(t)

	var seenTraceID string
	handler := TraceMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		assert.Equal(t, seenTraceID, logger.RequestID(r.Context()))
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Len(t, seenTraceID, shared.TraceIDLength)
	assert.Equal(t, seenTraceID, rec.Header().Get(TraceIDHeader))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	logger.AssertLogContains(t, buf, "request started")
	logger.AssertLogContains(t, buf, "inside handler")
	logger.AssertLogField(t, buf, "trace_id", seenTraceID)
}

func TestTraceMiddlewareUniquePerRequest(t *testing.T) {
	t.Parallel()

	handler := TraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	first := httptest.NewRecorder()
	second := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, first.Header().Get(TraceIDHeader), second.Header().Get(TraceIDHeader))
}
