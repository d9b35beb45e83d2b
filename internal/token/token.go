// Package token генерирует случайные буквенно-цифровые строки
// для bearer токенов, кодов авторизации и идентификаторов переводов.
package token

import (
	"crypto/rand"
	"fmt"
)

const (
	// LowerAlphabet 36 символов: a-z0-9
	LowerAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	// FullAlphabet 62 символа: a-zA-Z0-9
	FullAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

const (
	// SessionTokenLength длина bearer токена
	SessionTokenLength = 64
	// AuthCodeLength длина одноразового кода
	AuthCodeLength = 8
	// TransferIDLength длина идентификатора перевода
	TransferIDLength = 16
)

// Generate возвращает строку длины length из crypto/rand.
// Каждый символ выбирается равномерно из LowerAlphabet
// или из FullAlphabet, если includeUppercase.
func Generate(length int, includeUppercase bool) (string, error) {
	alphabet := LowerAlphabet
	if includeUppercase {
		alphabet = FullAlphabet
	}

	// Отбрасываем байты выше кратного длине алфавита, чтобы не было смещения
	limit := byte(256 - 256%len(alphabet))

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out), nil
}

// NewSessionToken генерирует bearer токен аккаунта
func NewSessionToken() (string, error) {
	return Generate(SessionTokenLength, true)
}

// NewAuthCode генерирует одноразовый код авторизации
func NewAuthCode() (string, error) {
	return Generate(AuthCodeLength, false)
}

// NewTransferID генерирует идентификатор перевода
func NewTransferID() (string, error) {
	return Generate(TransferIDLength, true)
}
