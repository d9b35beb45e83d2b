package storage

import (
	"context"
	"time"

	"github.com/iudanet/stendrelay/internal/models"
)

//go:generate moq -out account_mock.go . AccountStorage

// AccountStorage defines interface for account persistence
type AccountStorage interface {
	// CreateAccount inserts a new account
	// Returns ErrAccountExists if id is taken, ErrConflict if token is taken
	CreateAccount(ctx context.Context, account *models.Account) error

	// GetAccountByID retrieves account by id
	// Returns ErrAccountNotFound if account doesn't exist
	GetAccountByID(ctx context.Context, id string) (*models.Account, error)

	// GetAccountByToken retrieves account by bearer token
	// Returns ErrAccountNotFound if no account holds the token
	GetAccountByToken(ctx context.Context, token string) (*models.Account, error)

	// GetAccountByAuthCode retrieves account by one-time auth code
	// Returns ErrAccountNotFound if no account holds the code
	GetAccountByAuthCode(ctx context.Context, code string) (*models.Account, error)

	// SetAuthCode overwrites the auth code of the account
	// Returns ErrConflict if another account holds the code, ErrAccountNotFound if id is unknown
	SetAuthCode(ctx context.Context, id, code string, expires time.Time) error

	// ClearAuthCode removes code from the account only if the account still holds it
	// Returns ErrAccountNotFound if id is unknown or holds a different code
	ClearAuthCode(ctx context.Context, id, code string) error

	// UpdateToken replaces oldToken with newToken on the account holding oldToken
	// Returns ErrConflict if newToken is taken, ErrAccountNotFound if oldToken is unknown
	UpdateToken(ctx context.Context, oldToken, newToken string) error

	// DeleteAccountByToken deletes the account holding token
	// Returns ErrAccountNotFound if no account holds the token
	DeleteAccountByToken(ctx context.Context, token string) error
}
