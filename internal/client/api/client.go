package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/stendrelay/pkg/api"
)

// Допустимые значения responseType для входа через Google
const (
	ResponseTypePlain    = "plain"
	ResponseTypeRedirect = "redirect"
	ResponseTypeHTML     = "html"
)

// APIError ответ сервера с кодом вне 2xx
type APIError struct {
	StatusCode int
	Title      string
	Message    string
	Action     string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Title)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// DropToken сообщает, что сервер просит забыть локальный токен
func (e *APIError) DropToken() bool {
	return e.Action == api.ActionDeleteToken
}

// ShouldDropToken true, если err несет действие DELETE_TOKEN
func ShouldDropToken(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.DropToken()
}

// Client представляет HTTP клиент для взаимодействия с relay сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// BaseURL адрес сервера без завершающего слэша
func (c *Client) BaseURL() string {
	return c.baseURL
}

// LoginURL адрес, который пользователь открывает в браузере
func (c *Client) LoginURL(responseType string) (string, error) {
	switch responseType {
	case "":
		responseType = ResponseTypePlain
	case ResponseTypePlain, ResponseTypeRedirect, ResponseTypeHTML:
	default:
		return "", fmt.Errorf("unknown response type %q", responseType)
	}
	q := url.Values{}
	q.Set("responseType", responseType)
	return c.baseURL + "/auth/google/login?" + q.Encode(), nil
}

// Instance возвращает версию API сервера
func (c *Client) Instance(ctx context.Context) (*api.InstanceResponse, error) {
	var resp api.InstanceResponse
	if err := c.doRequest(ctx, http.MethodGet, "/instance", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("instance request failed: %w", err)
	}
	return &resp, nil
}

// IP возвращает адрес клиента, как его видит сервер
func (c *Client) IP(ctx context.Context) (*api.IPResponse, error) {
	var resp api.IPResponse
	if err := c.doRequest(ctx, http.MethodGet, "/test/ip", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("ip request failed: %w", err)
	}
	return &resp, nil
}

// CheckCode обменивает одноразовый код на токен сессии
func (c *Client) CheckCode(ctx context.Context, code string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	path := "/auth/checkcode?code=" + url.QueryEscape(code)
	if err := c.doRequest(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("checkcode request failed: %w", err)
	}
	return &resp, nil
}

// Reset выпускает новый токен взамен текущего
func (c *Client) Reset(ctx context.Context, token string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/account/reset", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("reset request failed: %w", err)
	}
	return &resp, nil
}

// DeleteAccount удаляет аккаунт владельца токена
func (c *Client) DeleteAccount(ctx context.Context, token string) (*api.ActionResponse, error) {
	var resp api.ActionResponse
	if err := c.doRequest(ctx, http.MethodPost, "/account/delete", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("delete account request failed: %w", err)
	}
	return &resp, nil
}

// AccountTransfers возвращает активные переводы владельца токена
func (c *Client) AccountTransfers(ctx context.Context, token string) (*api.AccountTransfersResponse, error) {
	var resp api.AccountTransfersResponse
	if err := c.doRequest(ctx, http.MethodGet, "/account/transferts", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("account transfers request failed: %w", err)
	}
	return &resp, nil
}

// CreateTransfer публикует перевод. token может быть пустым.
func (c *Client) CreateTransfer(ctx context.Context, token string, req api.CreateTransferRequest) (*api.CreateTransferResponse, error) {
	var resp api.CreateTransferResponse
	if err := c.doRequest(ctx, http.MethodPost, "/transferts/create", token, req, &resp); err != nil {
		return nil, fmt.Errorf("create transfer request failed: %w", err)
	}
	return &resp, nil
}

// ListTransfers ищет переводы по инстансу, координатам и аккаунту
func (c *Client) ListTransfers(ctx context.Context, token string, req api.ListTransfersRequest) (*api.ListTransfersResponse, error) {
	var resp api.ListTransfersResponse
	if err := c.doRequest(ctx, http.MethodPost, "/transferts/list", token, req, &resp); err != nil {
		return nil, fmt.Errorf("list transfers request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			apiErr.Title = errResp.Error
			apiErr.Message = errResp.Message
			apiErr.Action = errResp.Action
		} else {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
