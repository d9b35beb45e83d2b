package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/iudanet/stendrelay/internal/models"
	"github.com/iudanet/stendrelay/internal/server/storage"
	"github.com/iudanet/stendrelay/internal/token"
)

const (
	// AuthCodeTTL время жизни одноразового кода
	AuthCodeTTL = 30 * time.Minute

	// maxGenerateAttempts предел повторов при коллизии сгенерированного значения
	maxGenerateAttempts = 10
)

var errTooManyCollisions = errors.New("too many collisions while generating a unique value")

// Generator генерирует случайное значение (токен, код, id)
type Generator func() (string, error)

// AccountService управляет аккаунтами, токенами сессий и одноразовыми кодами
type AccountService struct {
	logger   *slog.Logger
	accounts storage.AccountStorage
	now      func() time.Time
	newToken Generator
	newCode  Generator
}

// AccountOption настраивает AccountService
type AccountOption func(*AccountService)

// WithAccountClock подменяет источник времени
func WithAccountClock(now func() time.Time) AccountOption {
	return func(s *AccountService) { s.now = now }
}

// WithGenerators подменяет генераторы токенов и кодов
func WithGenerators(newToken, newCode Generator) AccountOption {
	return func(s *AccountService) {
		s.newToken = newToken
		s.newCode = newCode
	}
}

// NewAccountService создает AccountService
func NewAccountService(logger *slog.Logger, accounts storage.AccountStorage, opts ...AccountOption) *AccountService {
	s := &AccountService{
		logger:   logger,
		accounts: accounts,
		now:      time.Now,
		newToken: token.NewSessionToken,
		newCode:  token.NewAuthCode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolveBearer возвращает аккаунт по bearer токену
func (s *AccountService) ResolveBearer(ctx context.Context, bearer string) (*models.Account, error) {
	if bearer == "" {
		return nil, errNotLoggedIn
	}

	account, err := s.accounts.GetAccountByToken(ctx, bearer)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return nil, errStaleToken
		}
		return nil, errStore("resolve token", err)
	}

	return account, nil
}

// LoginOrCreate возвращает аккаунт провайдера, создавая его при первом входе
func (s *AccountService) LoginOrCreate(ctx context.Context, providerUserID string) (*models.Account, error) {
	if providerUserID == "" {
		return nil, ErrUpstream("identity provider returned no user id", nil)
	}
	id := models.AccountID(models.ProviderGoogle, providerUserID)

	account, err := s.accounts.GetAccountByID(ctx, id)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, storage.ErrAccountNotFound) {
		return nil, errStore("check account exists", err)
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		tok, err := s.newToken()
		if err != nil {
			return nil, errStore("generate token", err)
		}

		account = &models.Account{ID: id, Token: tok}
		err = s.accounts.CreateAccount(ctx, account)
		switch {
		case err == nil:
			s.logger.InfoContext(ctx, "account created",
				slog.String("provider", account.Provider()),
				slog.String("account_id", id))
			return account, nil
		case errors.Is(err, storage.ErrConflict):
			continue
		case errors.Is(err, storage.ErrAccountExists):
			// параллельный вход того же пользователя
			existing, getErr := s.accounts.GetAccountByID(ctx, id)
			if getErr != nil {
				return nil, errStore("check account exists", getErr)
			}
			return existing, nil
		default:
			return nil, errStore("create account", err)
		}
	}

	return nil, errStore("create account", errTooManyCollisions)
}

// IssueAuthCode выдает новый одноразовый код, заменяя предыдущий
func (s *AccountService) IssueAuthCode(ctx context.Context, account *models.Account) (string, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return "", errStore("generate auth code", err)
		}

		err = s.accounts.SetAuthCode(ctx, account.ID, code, s.now().Add(AuthCodeTTL))
		switch {
		case err == nil:
			return code, nil
		case errors.Is(err, storage.ErrConflict):
			continue
		default:
			return "", errStore("create auth code", err)
		}
	}

	return "", errStore("create auth code", errTooManyCollisions)
}

// RedeemAuthCode обменивает одноразовый код на токен сессии
func (s *AccountService) RedeemAuthCode(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", errMissing("the code is missing")
	}

	account, err := s.accounts.GetAccountByAuthCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return "", newError(KindNotFound, "this code does not exist, it may have expired or been replaced")
		}
		return "", errStore("find auth code", err)
	}

	if !account.HasLiveAuthCode(s.now()) {
		if err := s.accounts.ClearAuthCode(ctx, account.ID, code); err != nil && !errors.Is(err, storage.ErrAccountNotFound) {
			s.logger.WarnContext(ctx, "failed to clear expired auth code",
				slog.String("account_id", account.ID),
				slog.Any("error", err))
		}
		return "", newError(KindExpired, "this code has expired, please log in again")
	}

	// Код гасится условно: из конкурентных погашений проходит только одно
	if err := s.accounts.ClearAuthCode(ctx, account.ID, code); err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return "", newError(KindNotFound, "this code does not exist, it may have expired or been replaced")
		}
		return "", errStore("clear auth code", err)
	}

	return account.Token, nil
}

// RotateToken заменяет токен сессии на новый
func (s *AccountService) RotateToken(ctx context.Context, current string) (string, error) {
	account, err := s.ResolveBearer(ctx, current)
	if err != nil {
		return "", err
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		newToken, err := s.newToken()
		if err != nil {
			return "", errStore("generate token", err)
		}

		err = s.accounts.UpdateToken(ctx, current, newToken)
		switch {
		case err == nil:
			s.logger.InfoContext(ctx, "session token rotated", slog.String("account_id", account.ID))
			return newToken, nil
		case errors.Is(err, storage.ErrConflict):
			continue
		case errors.Is(err, storage.ErrAccountNotFound):
			return "", errStaleToken
		default:
			return "", errStore("reset token", err)
		}
	}

	return "", errStore("reset token", errTooManyCollisions)
}

// DeleteAccount удаляет аккаунт, владеющий токеном
func (s *AccountService) DeleteAccount(ctx context.Context, current string) error {
	account, err := s.ResolveBearer(ctx, current)
	if err != nil {
		return err
	}

	if err := s.accounts.DeleteAccountByToken(ctx, current); err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return errStaleToken
		}
		return errStore("delete account", err)
	}

	s.logger.InfoContext(ctx, "account deleted", slog.String("account_id", account.ID))
	return nil
}
