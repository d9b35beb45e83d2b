package storage

import (
	"context"
)

// SessionStorage хранит токен сессии отдельно для каждого relay сервера
type SessionStorage interface {
	// SaveSession перезаписывает сессию для session.ServerURL
	SaveSession(ctx context.Context, session *Session) error

	// GetSession returns ErrSessionNotFound if no token is stored for serverURL
	GetSession(ctx context.Context, serverURL string) (*Session, error)

	// DeleteSession удаляет токен. Отсутствие сессии не является ошибкой.
	DeleteSession(ctx context.Context, serverURL string) error
}

// Session токен, выданный relay сервером
type Session struct {
	ServerURL string `json:"server_url"`
	Token     string `json:"token"`
	SavedAt   int64  `json:"saved_at"` // unix seconds
}
