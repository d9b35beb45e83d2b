package validation

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/iudanet/stendrelay/internal/geo"
)

const (
	// MinExpiresMinutes минимальное время жизни перевода
	MinExpiresMinutes = 1
	// MaxExpiresMinutes максимальное (и значение по умолчанию) время жизни перевода
	MaxExpiresMinutes = 60
)

// Ошибки валидации входных данных
var (
	ErrInvalidURL            = errors.New("invalid url")
	ErrIncompleteCoordinates = errors.New("coordinates are incomplete")
	ErrCoordinatesOutOfRange = errors.New("coordinates are out of range")
	ErrCoordinatesTooFar     = errors.New("coordinates are too far from the origin")
)

// parseURL разбирает абсолютный URL, схема и хост обязательны
func parseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not absolute", ErrInvalidURL, raw)
	}
	return u, nil
}

// NormalizeAPIURL приводит apiUrl к hostname без завершающего слеша.
// "https://Foo.example.com:8080/api/" -> "foo.example.com"
func NormalizeAPIURL(raw string) (string, error) {
	u, err := parseURL(raw)
	if err != nil {
		return "", err
	}
	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), "/")
	if host == "" {
		return "", fmt.Errorf("%w: empty hostname", ErrInvalidURL)
	}
	return host, nil
}

// NormalizeWebURL проверяет webUrl и убирает завершающий слеш
func NormalizeWebURL(raw string) (string, error) {
	u, err := parseURL(raw)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(u.String(), "/"), nil
}

// ValidateCoordinates проверяет пару координат.
// Обе координаты отсутствуют - ок, задана только одна - ошибка.
func ValidateCoordinates(lat, lon *float64) error {
	if lat == nil && lon == nil {
		return nil
	}
	if lat == nil || lon == nil {
		return ErrIncompleteCoordinates
	}
	if math.IsNaN(*lat) || math.IsNaN(*lon) ||
		*lat < -90 || *lat > 90 || *lon < -180 || *lon > 180 {
		return ErrCoordinatesOutOfRange
	}
	if !geo.WithinOriginBound(*lat, *lon) {
		return ErrCoordinatesTooFar
	}
	return nil
}

// ClampExpiresMinutes возвращает время жизни в минутах.
// Отсутствующее значение или значение вне [1, 60] превращается в 60.
func ClampExpiresMinutes(minutes *int) int {
	if minutes == nil || *minutes < MinExpiresMinutes || *minutes > MaxExpiresMinutes {
		return MaxExpiresMinutes
	}
	return *minutes
}
