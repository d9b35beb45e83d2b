package storage

import (
	"context"
)

// HistoryStorage журнал переводов, опубликованных с этого клиента
type HistoryStorage interface {
	AddSent(ctx context.Context, sent *SentTransfer) error

	// ListSent возвращает записи сервера, отсортированные по ExpiresDate
	ListSent(ctx context.Context, serverURL string) ([]SentTransfer, error)

	// PruneSent удаляет записи с ExpiresDate раньше nowMillis и возвращает их число
	PruneSent(ctx context.Context, nowMillis int64) (int, error)
}

// SentTransfer локальная копия ответа на создание перевода
type SentTransfer struct {
	ServerURL   string `json:"server_url"`
	TransferID  string `json:"transfer_id"`
	FileName    string `json:"file_name"`
	Nickname    string `json:"nickname"`
	WebURL      string `json:"web_url"`
	ExpiresDate int64  `json:"expires_date"` // unix milliseconds
}
