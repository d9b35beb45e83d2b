package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/stendrelay/internal/models"
	"github.com/iudanet/stendrelay/internal/server/storage"
)

const accountColumns = `id, token, auth_code, auth_code_expires`

// CreateAccount creates a new account in the storage
func (s *Storage) CreateAccount(ctx context.Context, account *models.Account) error {
	query := `INSERT INTO accounts (` + accountColumns + `) VALUES (?, ?, ?, ?)`

	var expires sql.NullInt64
	if account.AuthCodeExpires != nil {
		expires = sql.NullInt64{Int64: account.AuthCodeExpires.UnixMilli(), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		account.ID,
		account.Token,
		account.AuthCode,
		expires,
	)
	if err != nil {
		if cErr := constraintError(err); cErr != nil {
			return cErr
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

// GetAccountByID retrieves account by id
func (s *Storage) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	return s.getAccount(ctx, "id", id)
}

// GetAccountByToken retrieves account by bearer token
func (s *Storage) GetAccountByToken(ctx context.Context, token string) (*models.Account, error) {
	return s.getAccount(ctx, "token", token)
}

// GetAccountByAuthCode retrieves account by auth code
func (s *Storage) GetAccountByAuthCode(ctx context.Context, code string) (*models.Account, error) {
	return s.getAccount(ctx, "auth_code", code)
}

// getAccount выбирает аккаунт по одному из уникальных столбцов.
// column всегда задается кодом пакета, не пользователем.
func (s *Storage) getAccount(ctx context.Context, column, value string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + column + ` = ?`

	account := &models.Account{}
	var code sql.NullString
	var expires sql.NullInt64

	err := s.db.QueryRowContext(ctx, query, value).Scan(
		&account.ID,
		&account.Token,
		&code,
		&expires,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if code.Valid {
		account.AuthCode = &code.String
	}
	if expires.Valid {
		t := time.UnixMilli(expires.Int64)
		account.AuthCodeExpires = &t
	}

	return account, nil
}

// SetAuthCode overwrites the auth code of the account
func (s *Storage) SetAuthCode(ctx context.Context, id, code string, expires time.Time) error {
	query := `UPDATE accounts SET auth_code = ?, auth_code_expires = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, code, expires.UnixMilli(), id)
	if err != nil {
		if cErr := constraintError(err); cErr != nil {
			return cErr
		}
		return fmt.Errorf("failed to set auth code: %w", err)
	}

	return expectRows(result, storage.ErrAccountNotFound)
}

// ClearAuthCode removes code from the account if it still holds it
func (s *Storage) ClearAuthCode(ctx context.Context, id, code string) error {
	query := `UPDATE accounts SET auth_code = NULL, auth_code_expires = NULL WHERE id = ? AND auth_code = ?`

	result, err := s.db.ExecContext(ctx, query, id, code)
	if err != nil {
		return fmt.Errorf("failed to clear auth code: %w", err)
	}

	return expectRows(result, storage.ErrAccountNotFound)
}

// UpdateToken replaces oldToken with newToken
func (s *Storage) UpdateToken(ctx context.Context, oldToken, newToken string) error {
	query := `UPDATE accounts SET token = ? WHERE token = ?`

	result, err := s.db.ExecContext(ctx, query, newToken, oldToken)
	if err != nil {
		if cErr := constraintError(err); cErr != nil {
			return cErr
		}
		return fmt.Errorf("failed to update token: %w", err)
	}

	return expectRows(result, storage.ErrAccountNotFound)
}

// DeleteAccountByToken deletes the account holding token
func (s *Storage) DeleteAccountByToken(ctx context.Context, token string) error {
	query := `DELETE FROM accounts WHERE token = ?`

	result, err := s.db.ExecContext(ctx, query, token)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return expectRows(result, storage.ErrAccountNotFound)
}

// expectRows возвращает notFound, если запрос не затронул ни одной строки
func expectRows(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return notFound
	}

	return nil
}
