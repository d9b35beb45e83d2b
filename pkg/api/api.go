// Package api содержит JSON DTO, общие для сервера и клиента.
package api

// Действия с токеном, которые сервер передает клиенту
const (
	ActionSaveToken   = "SAVE_TOKEN"
	ActionDeleteToken = "DELETE_TOKEN"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error      string `json:"error"`            // категория ошибки
	Message    string `json:"message"`          // описание для пользователя
	Action     string `json:"action,omitempty"` // DELETE_TOKEN при устаревшей сессии
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
}

// InstanceResponse информация об инстансе
type InstanceResponse struct {
	APIVersion string `json:"apiVersion"`
}

// HealthResponse ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// IPResponse адрес клиента, как его видит сервер
type IPResponse struct {
	IP string `json:"ip"`
}

// DistanceResponse расстояние между двумя точками в километрах
type DistanceResponse struct {
	Distance float64 `json:"distance"`
}
