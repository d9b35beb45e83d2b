// Package oauth реализует вход через Google: ссылку на авторизацию
// и обмен кода авторизации на идентификатор пользователя.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Форматы ответа callback
const (
	ResponsePlain    = "plain"
	ResponseRedirect = "redirect"
	ResponseHTML     = "html"
)

// DefaultUserInfoURL профиль пользователя Google
const DefaultUserInfoURL = "https://www.googleapis.com/oauth2/v1/userinfo"

// ErrIncompleteProfile провайдер не вернул id пользователя
var ErrIncompleteProfile = errors.New("identity provider returned incomplete user data")

// ValidResponseType сообщает, поддерживается ли формат ответа callback
func ValidResponseType(rt string) bool {
	switch rt {
	case ResponsePlain, ResponseRedirect, ResponseHTML:
		return true
	}
	return false
}

// Config настройки Google OAuth
type Config struct {
	HTTPClient   *http.Client // для тестов, nil = http.DefaultClient
	Endpoint     oauth2.Endpoint
	ClientID     string
	ClientSecret string
	RedirectURI  string // база callback, к ней добавляется /<responseType>
	StateSecret  string
	UserInfoURL  string
}

// Google провайдер идентификации
type Google struct {
	httpClient  *http.Client
	states      *StateSigner
	config      oauth2.Config
	redirectURI string
	userInfoURL string
}

// NewGoogle создает провайдера Google
func NewGoogle(cfg Config) *Google {
	endpoint := cfg.Endpoint
	if endpoint.AuthURL == "" {
		endpoint = google.Endpoint
	}
	userInfoURL := cfg.UserInfoURL
	if userInfoURL == "" {
		userInfoURL = DefaultUserInfoURL
	}

	return &Google{
		config: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     endpoint,
			Scopes:       []string{"profile"},
		},
		redirectURI: strings.TrimSuffix(cfg.RedirectURI, "/"),
		userInfoURL: userInfoURL,
		states:      NewStateSigner(cfg.StateSecret, DefaultStateTTL),
		httpClient:  cfg.HTTPClient,
	}
}

// redirectFor возвращает redirect_uri для формата ответа
func (g *Google) redirectFor(responseType string) string {
	return g.redirectURI + "/" + responseType
}

// AuthURL возвращает ссылку на страницу входа Google
func (g *Google) AuthURL(responseType string) (string, error) {
	state, err := g.states.Sign(responseType)
	if err != nil {
		return "", err
	}

	return g.config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("redirect_uri", g.redirectFor(responseType)),
	), nil
}

// Exchange обменивает код авторизации на id пользователя Google.
// state должен быть выдан AuthURL для того же responseType.
func (g *Google) Exchange(ctx context.Context, code, state, responseType string) (string, error) {
	issuedFor, err := g.states.Verify(state)
	if err != nil {
		return "", err
	}
	if issuedFor != responseType {
		return "", fmt.Errorf("%w: issued for %q", ErrInvalidState, issuedFor)
	}

	if g.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, g.httpClient)
	}

	tok, err := g.config.Exchange(ctx, code,
		oauth2.SetAuthURLParam("redirect_uri", g.redirectFor(responseType)),
	)
	if err != nil {
		return "", fmt.Errorf("code exchange failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create userinfo request: %w", err)
	}

	resp, err := g.config.Client(ctx, tok).Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get user info: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read user info: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("userinfo returned status %d: %s", resp.StatusCode, string(body))
	}

	var profile struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &profile); err != nil {
		return "", fmt.Errorf("failed to parse user info: %w", err)
	}
	if profile.ID == "" {
		return "", ErrIncompleteProfile
	}

	return profile.ID, nil
}
