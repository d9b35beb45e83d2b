package oauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultStateTTL время, за которое пользователь должен пройти вход у провайдера
const DefaultStateTTL = 10 * time.Minute

// ErrInvalidState state отсутствует, подделан, истек или не совпадает с responseType
var ErrInvalidState = errors.New("invalid oauth state")

// stateClaims полезная нагрузка state
type stateClaims struct {
	jwt.RegisteredClaims
	ResponseType string `json:"rt"`
}

// StateSigner подписывает и проверяет параметр state (HS256 JWT)
type StateSigner struct {
	now    func() time.Time
	secret []byte
	ttl    time.Duration
}

// NewStateSigner создает StateSigner
func NewStateSigner(secret string, ttl time.Duration) *StateSigner {
	if ttl <= 0 {
		ttl = DefaultStateTTL
	}
	return &StateSigner{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Sign возвращает подписанный state для responseType
func (s *StateSigner) Sign(responseType string) (string, error) {
	now := s.now()
	claims := stateClaims{
		ResponseType: responseType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign state: %w", err)
	}
	return signed, nil
}

// Verify проверяет state и возвращает responseType, с которым он был выдан
func (s *StateSigner) Verify(state string) (string, error) {
	if state == "" {
		return "", ErrInvalidState
	}

	claims := &stateClaims{}
	_, err := jwt.ParseWithClaims(state, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	return claims.ResponseType, nil
}
