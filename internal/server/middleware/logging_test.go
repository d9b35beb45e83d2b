package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		status        int
		expectedLevel string
	}{
		{name: "200 logs info", method: http.MethodGet, path: "/instance", status: http.StatusOK, expectedLevel: "level=INFO"},
		{name: "302 logs info", method: http.MethodGet, path: "/", status: http.StatusFound, expectedLevel: "level=INFO"},
		{name: "401 logs warn", method: http.MethodGet, path: "/account/transferts", status: http.StatusUnauthorized, expectedLevel: "level=WARN"},
		{name: "502 logs error", method: http.MethodGet, path: "/auth/google/callback/plain", status: http.StatusBadGateway, expectedLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := LoggingMiddleware(newBufferLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, rr.Code)
			out := buf.String()
			assert.Contains(t, out, tt.expectedLevel)
			assert.Contains(t, out, "path="+tt.path)
			assert.Contains(t, out, "method="+tt.method)
		})
	}
}

func TestLoggingMiddleware_CapturesResponseMetrics(t *testing.T) {
	var buf bytes.Buffer
	handler := RequestIDMiddleware(ClientIPMiddleware("")(LoggingMiddleware(newBufferLogger(&buf))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"apiVersion":"1"}`))
		}),
	)))

	req := httptest.NewRequest(http.MethodGet, "/instance", nil)
	req.RemoteAddr = "203.0.113.4:4000"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "bytes_written=18")
	assert.Contains(t, out, "duration_ms=")
	assert.Contains(t, out, "request_id=")
	assert.Contains(t, out, "client_ip=203.0.113.4")
}

func TestLoggingMiddleware_MasksAuthCode(t *testing.T) {
	var buf bytes.Buffer
	handler := LoggingMiddleware(newBufferLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodGet, "/auth/checkcode?code=ab12cd34", nil))

	out := buf.String()
	assert.NotContains(t, out, "ab12cd34")
	assert.Contains(t, out, "code=%2A%2A%2A")
}

func TestSanitizeQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "responseType=html", want: "responseType=html"},
		{in: "code=secret&state=xyz", want: "code=%2A%2A%2A&state=%2A%2A%2A"},
		{in: "latitude1=1&token=t", want: "latitude1=1&token=%2A%2A%2A"},
		{in: "%zz", want: "***"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeQuery(tt.in))
		})
	}
}

func TestLoggingWithSkip(t *testing.T) {
	var buf bytes.Buffer
	handler := LoggingWithSkip(newBufferLogger(&buf), []string{"/health"})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/instance", nil))
	require.NotEmpty(t, buf.String())
	assert.Equal(t, 1, strings.Count(buf.String(), "HTTP request"))
}

func TestResponseWriter_CapturesStatusCode(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rr, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusTooManyRequests)
	n, err := rw.Write([]byte("slow down"))

	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, http.StatusTooManyRequests, rw.statusCode)
	assert.Equal(t, int64(9), rw.written)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}
