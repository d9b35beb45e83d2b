package api

import (
	"encoding/json"
	"fmt"
	"math"
)

// CreateTransferRequest тело POST /transferts/create
type CreateTransferRequest struct {
	FileName    *string  `json:"fileName" validate:"omitempty,max=1024"`
	WebURL      *string  `json:"webUrl" validate:"omitempty,max=2048"`
	APIURL      *string  `json:"apiUrl,omitempty" validate:"omitempty,max=2048"`
	Nickname    *string  `json:"nickname,omitempty" validate:"omitempty,max=256"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	ExpiresTime *Minutes `json:"expiresTime,omitempty"` // 1-60, иначе 60
}

// ListTransfersRequest тело POST /transferts/list
type ListTransfersRequest struct {
	APIURL    *string  `json:"apiUrl,omitempty" validate:"omitempty,max=2048"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Methods способы обнаружения перевода
type Methods struct {
	InstanceAndIP bool `json:"instanceAndIp"`
	Location      bool `json:"location"`
	Account       bool `json:"account"`
}

// TransferSummary публичные поля перевода
type TransferSummary struct {
	ID          string `json:"id"`
	WebURL      string `json:"webUrl"`
	Nickname    string `json:"nickname"`
	FileName    string `json:"fileName"`
	ExpiresDate int64  `json:"expiresDate"` // unix milliseconds
}

// CreateTransferResponse ответ на создание перевода
type CreateTransferResponse struct {
	TransferID  string  `json:"transferId"`
	Nickname    string  `json:"nickname"`
	FileName    string  `json:"fileName"`
	ExpiresDate int64   `json:"expiresDate"`
	Method      Methods `json:"method"`
	Success     bool    `json:"success"`
}

// ListTransfersResponse найденные переводы
type ListTransfersResponse struct {
	Transferts []TransferSummary `json:"transferts"`
	Method     Methods           `json:"method"`
	Success    bool              `json:"success"`
}

// AccountTransfersResponse переводы владельца токена
type AccountTransfersResponse struct {
	Transferts []TransferSummary `json:"transferts"`
	Success    bool              `json:"success"`
}

// Minutes длительность в целых минутах.
// Из JSON принимается любое число: дробная часть отбрасывается,
// значения за пределами int32 сводятся к его границам.
type Minutes int

// MinutesFromFloat переводит произвольное число в Minutes
func MinutesFromFloat(f float64) Minutes {
	switch {
	case math.IsNaN(f):
		return 0
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	default:
		return Minutes(math.Trunc(f))
	}
}

func (m *Minutes) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("expiresTime must be a number")
	}
	*m = MinutesFromFloat(f)
	return nil
}
