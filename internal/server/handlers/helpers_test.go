package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stendrelay/internal/models"
	"github.com/iudanet/stendrelay/internal/sanitize"
	"github.com/iudanet/stendrelay/internal/server/middleware"
	"github.com/iudanet/stendrelay/internal/server/oauth"
	"github.com/iudanet/stendrelay/internal/server/service"
	"github.com/iudanet/stendrelay/internal/server/storage/memory"
	"github.com/iudanet/stendrelay/pkg/api"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeProvider провайдер идентификации без сети
type fakeProvider struct {
	exchangeErr error
	userID      string
}

func (p *fakeProvider) AuthURL(responseType string) (string, error) {
	return "https://accounts.example/o/oauth2/auth?state=signed-" + responseType, nil
}

func (p *fakeProvider) Exchange(_ context.Context, code, state, responseType string) (string, error) {
	if p.exchangeErr != nil {
		return "", p.exchangeErr
	}
	if state != "signed-"+responseType {
		return "", oauth.ErrInvalidState
	}
	if code != "google-code" {
		return "", errors.New("oauth2: invalid_grant")
	}
	return p.userID, nil
}

type fixture struct {
	router   http.Handler
	store    *memory.Storage
	provider *fakeProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := setupTestLogger()
	store := memory.New()
	t.Cleanup(func() { _ = store.Close() })

	accounts := service.NewAccountService(logger, store)
	registry := service.NewTransferRegistry(logger, store, accounts, sanitize.Default())
	provider := &fakeProvider{userID: "1234567890"}

	instance := NewInstanceHandler(logger, "1.2.3", "https://docs.example/stend")
	health := NewHealthHandler(logger, store, "1.2.3")
	auth := NewAuthHandler(logger, provider, accounts, "stend://globalserver/auth")
	account := NewAccountHandler(logger, accounts, registry)
	transfers := NewTransferHandler(logger, registry)

	r := chi.NewRouter()
	r.Use(middleware.ClientIPMiddleware(""), middleware.BearerMiddleware)
	r.Get("/", instance.Root)
	r.Get("/instance", instance.Instance)
	r.Get("/health", health.Health)
	r.Get("/test/ip", instance.IP)
	r.Get("/test/distance-coordinates", instance.Distance)
	r.Get("/auth/google/login", auth.Login)
	r.Get("/auth/google/callback/{responseType}", auth.Callback)
	r.Get("/auth/checkcode", auth.CheckCode)
	r.Get("/account/transferts", account.Transfers)
	r.Post("/account/reset", account.Reset)
	r.Post("/account/delete", account.Delete)
	r.Post("/transferts/create", transfers.Create)
	r.Post("/transferts/list", transfers.List)

	return &fixture{router: r, store: store, provider: provider}
}

type requestOption func(*http.Request)

func withBearer(token string) requestOption {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func fromIP(ip string) requestOption {
	return func(r *http.Request) { r.RemoteAddr = ip + ":40000" }
}

func (f *fixture) do(method, target string, body io.Reader, opts ...requestOption) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	req.RemoteAddr = "203.0.113.10:40000"
	for _, opt := range opts {
		opt(req)
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func (f *fixture) postJSON(target string, payload any, opts ...requestOption) *httptest.ResponseRecorder {
	raw, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	opts = append([]requestOption{func(r *http.Request) { r.Header.Set("Content-Type", "application/json") }}, opts...)
	return f.do(http.MethodPost, target, strings.NewReader(string(raw)), opts...)
}

func (f *fixture) postForm(target string, values url.Values, opts ...requestOption) *httptest.ResponseRecorder {
	opts = append([]requestOption{func(r *http.Request) {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}}, opts...)
	return f.do(http.MethodPost, target, strings.NewReader(values.Encode()), opts...)
}

// seedAccount создает аккаунт с известным токеном
func (f *fixture) seedAccount(t *testing.T, id, token string) {
	t.Helper()
	require.NoError(t, f.store.CreateAccount(context.Background(), &models.Account{ID: id, Token: token}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&out), rr.Body.String())
	return out
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	resp := decodeJSON[api.ErrorResponse](t, rr)
	require.False(t, resp.Success)
	require.Equal(t, rr.Code, resp.StatusCode)
	return resp
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func minutesOf(m int) *api.Minutes {
	v := api.Minutes(m)
	return &v
}
