package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/stendrelay/internal/geo"
	"github.com/iudanet/stendrelay/internal/server/middleware"
	"github.com/iudanet/stendrelay/internal/server/service"
	"github.com/iudanet/stendrelay/pkg/api"
)

// InstanceHandler обрабатывает служебные запросы об инстансе
type InstanceHandler struct {
	responder
	apiVersion string
	docsURL    string
}

// NewInstanceHandler создает handler с версией API и ссылкой на документацию
func NewInstanceHandler(logger *slog.Logger, apiVersion, docsURL string) *InstanceHandler {
	return &InstanceHandler{
		responder:  responder{logger: logger},
		apiVersion: apiVersion,
		docsURL:    docsURL,
	}
}

// Root обрабатывает GET / - перенаправление на документацию
func (h *InstanceHandler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.docsURL, http.StatusFound)
}

// Instance обрабатывает GET /instance
func (h *InstanceHandler) Instance(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, api.InstanceResponse{APIVersion: h.apiVersion}, http.StatusOK)
}

// IP обрабатывает GET /test/ip - адрес клиента, как его видит сервер
func (h *InstanceHandler) IP(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, api.IPResponse{IP: middleware.ClientIP(r.Context())}, http.StatusOK)
}

// Distance обрабатывает GET /test/distance-coordinates
func (h *InstanceHandler) Distance(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	keys := [4]string{"latitude1", "longitude1", "latitude2", "longitude2"}

	var values [4]float64
	for i, key := range keys {
		raw := query.Get(key)
		if raw == "" {
			h.sendKind(w, service.KindMissingParameters, "the parameter "+key+" is missing")
			return
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.sendKind(w, service.KindInvalidParameters, "the parameter "+key+" must be a number")
			return
		}
		values[i] = f
	}

	distance := geo.HaversineDistanceKm(values[0], values[1], values[2], values[3])
	h.sendJSON(w, api.DistanceResponse{Distance: distance}, http.StatusOK)
}

// NotFound ответ для неизвестных маршрутов
func (h *InstanceHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.sendKind(w, service.KindNotFound, "route "+r.Method+" "+r.URL.Path+" not found")
}

// MethodNotAllowed ответ для известного маршрута с другим методом
func (h *InstanceHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.sendError(w, http.StatusMethodNotAllowed, "Method not allowed",
		"method "+r.Method+" is not allowed on "+r.URL.Path, "")
}
