package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stendrelay/pkg/api"
)

func TestParseBearer(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "empty", header: "", want: ""},
		{name: "with prefix", header: "Bearer abc123", want: "abc123"},
		{name: "lowercase prefix", header: "bearer abc123", want: "abc123"},
		{name: "bare token", header: "abc123", want: "abc123"},
		{name: "surrounding spaces", header: "  Bearer   abc123 ", want: "abc123"},
		{name: "prefix only", header: "Bearer ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBearer(tt.header))
		})
	}
}

func TestBearerMiddleware(t *testing.T) {
	var seen string
	handler := BearerMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = BearerToken(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("token stored in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/account/transferts", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "tok", seen)
	})

	t.Run("header without token rejected", func(t *testing.T) {
		for _, header := range []string{"Bearer", "Bearer ", "bearer   "} {
			called := false
			h := BearerMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))
			req := httptest.NewRequest(http.MethodPost, "/transferts/create", nil)
			req.Header.Set("Authorization", header)
			rr := httptest.NewRecorder()

			h.ServeHTTP(rr, req)

			assert.False(t, called, header)
			assert.Equal(t, http.StatusUnauthorized, rr.Code, header)
			var resp api.ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, api.ActionDeleteToken, resp.Action)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.False(t, resp.Success)
		}
	})

	t.Run("missing header passes through", func(t *testing.T) {
		seen = "stale"
		req := httptest.NewRequest(http.MethodPost, "/transferts/list", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, seen)
	})
}
