package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/iudanet/stendrelay/pkg/api"
)

type bearerKey struct{}

// BearerMiddleware извлекает токен из заголовка Authorization и кладет в контекст.
// Префикс "Bearer " необязателен. Без заголовка запрос проходит дальше: отсутствие
// токена обрабатывает сервисный слой, потому что часть маршрутов работает и без него.
// Заголовок без токена отклоняется с 401 и DELETE_TOKEN.
func BearerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if strings.TrimSpace(header) == "" {
			next.ServeHTTP(w, r)
			return
		}
		token := ParseBearer(header)
		if token == "" {
			writeErrorResponse(w, api.ErrorResponse{
				StatusCode: http.StatusUnauthorized,
				Error:      "Unauthorized",
				Message:    "your session has expired, please log in again",
				Action:     api.ActionDeleteToken,
			})
			return
		}
		ctx := context.WithValue(r.Context(), bearerKey{}, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ParseBearer возвращает токен из значения заголовка Authorization
func ParseBearer(header string) string {
	header = strings.TrimSpace(header)
	if strings.EqualFold(header, "Bearer") {
		return ""
	}
	if len(header) >= 7 && strings.EqualFold(header[:7], "Bearer ") {
		header = strings.TrimSpace(header[7:])
	}
	return header
}

// BearerToken возвращает токен, сохраненный BearerMiddleware
func BearerToken(ctx context.Context) string {
	token, _ := ctx.Value(bearerKey{}).(string)
	return token
}
