package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/stendrelay/internal/server/middleware"
	"github.com/iudanet/stendrelay/pkg/api"
)

// SessionService операции над токеном сессии
type SessionService interface {
	RotateToken(ctx context.Context, current string) (string, error)
	DeleteAccount(ctx context.Context, current string) error
}

// AccountHandler обрабатывает запросы владельца токена
type AccountHandler struct {
	responder
	sessions  SessionService
	transfers TransferService
}

// NewAccountHandler создает новый handler для аккаунта
func NewAccountHandler(logger *slog.Logger, sessions SessionService, transfers TransferService) *AccountHandler {
	return &AccountHandler{
		responder: responder{logger: logger},
		sessions:  sessions,
		transfers: transfers,
	}
}

// Transfers обрабатывает GET /account/transferts
func (h *AccountHandler) Transfers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summaries, err := h.transfers.ListOwn(ctx, middleware.BearerToken(ctx))
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	h.sendJSON(w, api.AccountTransfersResponse{
		Success:    true,
		Transferts: toAPISummaries(summaries),
	}, http.StatusOK)
}

// Reset обрабатывает POST /account/reset
// Старый токен перестает работать, клиент сохраняет новый
func (h *AccountHandler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, err := h.sessions.RotateToken(ctx, middleware.BearerToken(ctx))
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

// Delete обрабатывает POST /account/delete
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.sessions.DeleteAccount(ctx, middleware.BearerToken(ctx)); err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	h.sendJSON(w, api.ActionResponse{
		Success: true,
		Action:  api.ActionDeleteToken,
	}, http.StatusOK)
}
