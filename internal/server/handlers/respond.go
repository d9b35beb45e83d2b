package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/stendrelay/internal/server/service"
	"github.com/iudanet/stendrelay/pkg/api"
)

// responder общие методы ответа, встраивается во все handlers
type responder struct {
	logger *slog.Logger
}

// sendJSON отправляет JSON ответ
func (h responder) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h responder) sendError(w http.ResponseWriter, statusCode int, title, message, action string) {
	resp := api.ErrorResponse{
		Success:    false,
		StatusCode: statusCode,
		Error:      title,
		Message:    message,
		Action:     action,
	}
	h.sendJSON(w, resp, statusCode)
}

// sendKind отправляет ошибку заданной категории
func (h responder) sendKind(w http.ResponseWriter, kind service.Kind, message string) {
	h.sendError(w, statusForKind(kind), kind.String(), message, "")
}

// sendServiceError переводит ошибку сервисного слоя в HTTP ответ
func (h responder) sendServiceError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		h.logger.ErrorContext(ctx, "unexpected error", slog.String("path", r.URL.Path), slog.Any("error", err))
		h.sendError(w, http.StatusInternalServerError, "Internal server error", "an unexpected error occurred", "")
		return
	}

	status := statusForKind(svcErr.Kind)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "request failed",
			slog.String("path", r.URL.Path),
			slog.String("kind", svcErr.Kind.String()),
			slog.Any("error", err))
	} else {
		h.logger.WarnContext(ctx, "request rejected",
			slog.String("path", r.URL.Path),
			slog.String("kind", svcErr.Kind.String()),
			slog.String("message", svcErr.Message))
	}

	h.sendError(w, status, svcErr.Kind.String(), svcErr.Message, svcErr.Action)
}

// statusForKind HTTP статус для категории ошибки
func statusForKind(kind service.Kind) int {
	switch kind {
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	case service.KindMissingParameters, service.KindInvalidParameters, service.KindExpired:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
