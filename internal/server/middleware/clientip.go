package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
)

// ProxyCloudflare значение USING_REVERSE_PROXY для Cloudflare
const ProxyCloudflare = "cloudflare"

type clientIPKey struct{}

// ClientIPMiddleware определяет адрес клиента с учетом обратного прокси
// и сохраняет его в контексте запроса.
func ClientIPMiddleware(proxyMode string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ResolveClientIP(r, proxyMode)
			ctx := context.WithValue(r.Context(), clientIPKey{}, ip)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIP возвращает адрес, сохраненный ClientIPMiddleware
func ClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// ResolveClientIP извлекает IP адрес клиента из запроса.
// cloudflare: CF-Connecting-IP; любой другой непустой режим: X-Forwarded-For,
// затем X-Real-IP; пустой режим: адрес сокета.
func ResolveClientIP(r *http.Request, proxyMode string) string {
	switch {
	case proxyMode == "":
	case strings.EqualFold(proxyMode, ProxyCloudflare):
		if ip := strings.TrimSpace(r.Header.Get("CF-Connecting-IP")); ip != "" {
			return ip
		}
	default:
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			// первый адрес в списке - исходный клиент
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}
	return remoteHost(r.RemoteAddr)
}

func remoteHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
