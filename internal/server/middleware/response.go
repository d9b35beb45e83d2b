package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/iudanet/stendrelay/pkg/api"
)

// writeError пишет ошибку в формате api.ErrorResponse
func writeError(w http.ResponseWriter, status int, title, message string) {
	writeErrorResponse(w, api.ErrorResponse{
		StatusCode: status,
		Error:      title,
		Message:    message,
	})
}

func writeErrorResponse(w http.ResponseWriter, resp api.ErrorResponse) {
	resp.Success = false
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	_ = json.NewEncoder(w).Encode(resp)
}
