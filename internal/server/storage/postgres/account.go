package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/stendrelay/internal/models"
	"github.com/iudanet/stendrelay/internal/server/storage"
)

type accountRow struct {
	AuthCode        sql.NullString `db:"auth_code"`
	ID              string         `db:"id"`
	Token           string         `db:"token"`
	AuthCodeExpires sql.NullInt64  `db:"auth_code_expires"`
}

func (r accountRow) toModel() *models.Account {
	a := &models.Account{ID: r.ID, Token: r.Token}
	if r.AuthCode.Valid {
		code := r.AuthCode.String
		a.AuthCode = &code
	}
	if r.AuthCodeExpires.Valid {
		t := time.UnixMilli(r.AuthCodeExpires.Int64)
		a.AuthCodeExpires = &t
	}
	return a
}

// CreateAccount : сохраняем новый аккаунт
func (s *Storage) CreateAccount(ctx context.Context, account *models.Account) error {
	row := accountRow{ID: account.ID, Token: account.Token}
	if account.AuthCode != nil {
		row.AuthCode = sql.NullString{String: *account.AuthCode, Valid: true}
	}
	if account.AuthCodeExpires != nil {
		row.AuthCodeExpires = sql.NullInt64{Int64: account.AuthCodeExpires.UnixMilli(), Valid: true}
	}

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO accounts (id, token, auth_code, auth_code_expires)
		VALUES (:id, :token, :auth_code, :auth_code_expires)
	`, row)
	if err != nil {
		if cErr := constraintError(err); cErr != nil {
			return cErr
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

// GetAccountByID : аккаунт по id
func (s *Storage) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	return s.getAccount(ctx, `SELECT id, token, auth_code, auth_code_expires FROM accounts WHERE id = $1`, id)
}

// GetAccountByToken : аккаунт по bearer токену
func (s *Storage) GetAccountByToken(ctx context.Context, token string) (*models.Account, error) {
	return s.getAccount(ctx, `SELECT id, token, auth_code, auth_code_expires FROM accounts WHERE token = $1`, token)
}

// GetAccountByAuthCode : аккаунт по одноразовому коду
func (s *Storage) GetAccountByAuthCode(ctx context.Context, code string) (*models.Account, error) {
	return s.getAccount(ctx, `SELECT id, token, auth_code, auth_code_expires FROM accounts WHERE auth_code = $1`, code)
}

func (s *Storage) getAccount(ctx context.Context, query, arg string) (*models.Account, error) {
	var row accountRow
	if err := s.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return row.toModel(), nil
}

// SetAuthCode : перезаписываем код авторизации
func (s *Storage) SetAuthCode(ctx context.Context, id, code string, expires time.Time) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE accounts SET auth_code = $1, auth_code_expires = $2 WHERE id = $3`,
		code, expires.UnixMilli(), id)
	if err != nil {
		if cErr := constraintError(err); cErr != nil {
			return cErr
		}
		return fmt.Errorf("failed to set auth code: %w", err)
	}
	return expectRows(result, storage.ErrAccountNotFound)
}

// ClearAuthCode : удаляем код авторизации
func (s *Storage) ClearAuthCode(ctx context.Context, id, code string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE accounts SET auth_code = NULL, auth_code_expires = NULL WHERE id = $1 AND auth_code = $2`, id, code)
	if err != nil {
		return fmt.Errorf("failed to clear auth code: %w", err)
	}
	return expectRows(result, storage.ErrAccountNotFound)
}

// UpdateToken : заменяем токен, старый перестает действовать в той же строке
func (s *Storage) UpdateToken(ctx context.Context, oldToken, newToken string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE accounts SET token = $1 WHERE token = $2`, newToken, oldToken)
	if err != nil {
		if cErr := constraintError(err); cErr != nil {
			return cErr
		}
		return fmt.Errorf("failed to update token: %w", err)
	}
	return expectRows(result, storage.ErrAccountNotFound)
}

// DeleteAccountByToken : удаляем аккаунт
func (s *Storage) DeleteAccountByToken(ctx context.Context, token string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return expectRows(result, storage.ErrAccountNotFound)
}

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
