package handlers

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/stendrelay/internal/models"
	"github.com/iudanet/stendrelay/internal/server/oauth"
	"github.com/iudanet/stendrelay/internal/server/service"
	"github.com/iudanet/stendrelay/pkg/api"
)

//go:embed templates/code.html
var templatesFS embed.FS

var codePage = template.Must(template.ParseFS(templatesFS, "templates/code.html"))

// IdentityProvider внешний провайдер входа
type IdentityProvider interface {
	AuthURL(responseType string) (string, error)
	Exchange(ctx context.Context, code, state, responseType string) (string, error)
}

// LoginService операции входа и обмена одноразового кода
type LoginService interface {
	LoginOrCreate(ctx context.Context, providerUserID string) (*models.Account, error)
	IssueAuthCode(ctx context.Context, account *models.Account) (string, error)
	RedeemAuthCode(ctx context.Context, code string) (string, error)
}

// AuthHandler обрабатывает вход через Google и обмен кода на токен
type AuthHandler struct {
	responder
	provider          IdentityProvider
	accounts          LoginService
	clientRedirectURI string
}

// NewAuthHandler создает новый handler для авторизации.
// provider может быть nil, если вход через Google не настроен.
func NewAuthHandler(logger *slog.Logger, provider IdentityProvider, accounts LoginService, clientRedirectURI string) *AuthHandler {
	return &AuthHandler{
		responder:         responder{logger: logger},
		provider:          provider,
		accounts:          accounts,
		clientRedirectURI: clientRedirectURI,
	}
}

func (h *AuthHandler) requireProvider(w http.ResponseWriter) bool {
	if h.provider != nil {
		return true
	}
	h.sendError(w, http.StatusServiceUnavailable, "Service unavailable",
		"login with Google is not configured on this instance", "")
	return false
}

// Login обрабатывает GET /auth/google/login?responseType=
// Перенаправляет на страницу входа Google
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.requireProvider(w) {
		return
	}

	responseType := r.URL.Query().Get("responseType")
	if responseType == "" {
		responseType = oauth.ResponsePlain
	}
	if !oauth.ValidResponseType(responseType) {
		h.sendKind(w, service.KindInvalidParameters, "the requested response type is invalid")
		return
	}

	authURL, err := h.provider.AuthURL(responseType)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to build auth url", slog.Any("error", err))
		h.sendError(w, http.StatusInternalServerError, "Internal server error", "could not start the login", "")
		return
	}

	http.Redirect(w, r, authURL, http.StatusFound)
}

// Callback обрабатывает GET /auth/google/callback/{responseType}
// Выдает одноразовый код в формате plain, redirect или html
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.requireProvider(w) {
		return
	}

	responseType := chi.URLParam(r, "responseType")
	if !oauth.ValidResponseType(responseType) {
		h.sendKind(w, service.KindInvalidParameters, "the requested response type is invalid")
		return
	}

	query := r.URL.Query()
	if errParam := query.Get("error"); errParam != "" {
		h.logger.WarnContext(ctx, "identity provider refused login", slog.String("reason", errParam))
		h.sendServiceError(w, r, service.ErrUpstream("the identity provider refused the login: "+errParam, nil))
		return
	}
	code := query.Get("code")
	if code == "" {
		h.sendKind(w, service.KindMissingParameters, "the authorization code is missing")
		return
	}

	providerUserID, err := h.provider.Exchange(ctx, code, query.Get("state"), responseType)
	if err != nil {
		if errors.Is(err, oauth.ErrInvalidState) {
			h.logger.WarnContext(ctx, "invalid oauth state", slog.Any("error", err))
			h.sendKind(w, service.KindInvalidParameters, "the login request is invalid or has expired, please try again")
			return
		}
		h.sendServiceError(w, r, service.ErrUpstream("could not verify the login with the identity provider", err))
		return
	}

	account, err := h.accounts.LoginOrCreate(ctx, providerUserID)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	authCode, err := h.accounts.IssueAuthCode(ctx, account)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	switch responseType {
	case oauth.ResponseRedirect:
		http.Redirect(w, r, h.clientRedirect(authCode), http.StatusFound)
	case oauth.ResponseHTML:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if err := codePage.Execute(w, struct{ Code string }{Code: authCode}); err != nil {
			h.logger.ErrorContext(ctx, "failed to render code page", slog.Any("error", err))
		}
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(authCode))
	}
}

// clientRedirect добавляет code к CLIENT_REDIRECT_URI
func (h *AuthHandler) clientRedirect(code string) string {
	u, err := url.Parse(h.clientRedirectURI)
	if err != nil {
		return h.clientRedirectURI + "?code=" + url.QueryEscape(code)
	}
	q := u.Query()
	q.Set("code", code)
	u.RawQuery = q.Encode()
	return u.String()
}

// CheckCode обрабатывает GET /auth/checkcode?code=
// Обменивает одноразовый код на токен сессии
func (h *AuthHandler) CheckCode(w http.ResponseWriter, r *http.Request) {
	token, err := h.accounts.RedeemAuthCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	h.sendJSON(w, api.TokenResponse{
		Success: true,
		Token:   token,
		Action:  api.ActionSaveToken,
	}, http.StatusOK)
}
