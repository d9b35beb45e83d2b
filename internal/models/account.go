package models

import (
	"strings"
	"time"
)

// ProviderGoogle префикс идентификатора аккаунта для входа через Google
const ProviderGoogle = "google"

// Account представляет аккаунт пользователя relay-сервера
type Account struct {
	AuthCodeExpires *time.Time `json:"auth_code_expires,omitempty"` // срок действия одноразового кода
	AuthCode        *string    `json:"auth_code,omitempty"`         // одноразовый код (8 символов)
	ID              string     `json:"id"`                          // <provider>/<provider_user_id>
	Token           string     `json:"token"`                       // текущий bearer токен
}

// AccountID собирает идентификатор аккаунта из провайдера и id пользователя у провайдера
func AccountID(provider, providerUserID string) string {
	return provider + "/" + providerUserID
}

// HasLiveAuthCode сообщает, есть ли у аккаунта неистекший код
func (a *Account) HasLiveAuthCode(now time.Time) bool {
	if a.AuthCode == nil || a.AuthCodeExpires == nil {
		return false
	}
	return now.Before(*a.AuthCodeExpires)
}

// Provider возвращает провайдера из идентификатора аккаунта
func (a *Account) Provider() string {
	provider, _, _ := strings.Cut(a.ID, "/")
	return provider
}
