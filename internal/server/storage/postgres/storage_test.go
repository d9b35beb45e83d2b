package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stendrelay/internal/models"
	"github.com/iudanet/stendrelay/internal/server/storage"
)

func setupMockStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	s := NewFromDB(sqlx.NewDb(mockDB, "postgres"))
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = s.Close()
	})

	return s, mock
}

func strPtr(s string) *string { return &s }

func TestStorage_CreateAccount(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		execErr error
		wantErr error
		name    string
	}{
		{name: "success"},
		{
			name:    "duplicate id",
			execErr: &pq.Error{Code: "23505", Constraint: "accounts_pkey"},
			wantErr: storage.ErrAccountExists,
		},
		{
			name:    "duplicate token",
			execErr: &pq.Error{Code: "23505", Constraint: "accounts_token_key"},
			wantErr: storage.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := setupMockStorage(t)

			exp := mock.ExpectExec(`INSERT INTO accounts`).
				WithArgs("google/1", "tok", nil, nil)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := s.CreateAccount(ctx, &models.Account{ID: "google/1", Token: "tok"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStorage_GetAccountByToken(t *testing.T) {
	ctx := context.Background()

	t.Run("found with auth code", func(t *testing.T) {
		s, mock := setupMockStorage(t)
		expires := time.Now().Add(30 * time.Minute).UnixMilli()

		rows := sqlmock.NewRows([]string{"id", "token", "auth_code", "auth_code_expires"}).
			AddRow("google/1", "tok", "abcd1234", expires)
		mock.ExpectQuery(`SELECT id, token, auth_code, auth_code_expires FROM accounts WHERE token = \$1`).
			WithArgs("tok").
			WillReturnRows(rows)

		got, err := s.GetAccountByToken(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, "google/1", got.ID)
		require.NotNil(t, got.AuthCode)
		assert.Equal(t, "abcd1234", *got.AuthCode)
		require.NotNil(t, got.AuthCodeExpires)
		assert.Equal(t, expires, got.AuthCodeExpires.UnixMilli())
	})

	t.Run("not found", func(t *testing.T) {
		s, mock := setupMockStorage(t)

		mock.ExpectQuery(`FROM accounts WHERE token = \$1`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "token", "auth_code", "auth_code_expires"}))

		_, err := s.GetAccountByToken(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrAccountNotFound)
	})

	t.Run("store error is wrapped", func(t *testing.T) {
		s, mock := setupMockStorage(t)

		mock.ExpectQuery(`FROM accounts WHERE auth_code = \$1`).
			WithArgs("code").
			WillReturnError(errors.New("connection reset"))

		_, err := s.GetAccountByAuthCode(ctx, "code")
		require.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrAccountNotFound)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestStorage_SetAuthCode(t *testing.T) {
	ctx := context.Background()
	expires := time.UnixMilli(1735732800000)

	t.Run("conflict", func(t *testing.T) {
		s, mock := setupMockStorage(t)
		mock.ExpectExec(`UPDATE accounts SET auth_code = \$1`).
			WithArgs("code0001", expires.UnixMilli(), "google/1").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "accounts_auth_code_key"})

		assert.ErrorIs(t, s.SetAuthCode(ctx, "google/1", "code0001", expires), storage.ErrConflict)
	})

	t.Run("unknown account", func(t *testing.T) {
		s, mock := setupMockStorage(t)
		mock.ExpectExec(`UPDATE accounts SET auth_code = \$1`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.SetAuthCode(ctx, "google/404", "code0001", expires), storage.ErrAccountNotFound)
	})

	t.Run("clear", func(t *testing.T) {
		s, mock := setupMockStorage(t)
		mock.ExpectExec(`UPDATE accounts SET auth_code = NULL, auth_code_expires = NULL WHERE id = \$1 AND auth_code = \$2`).
			WithArgs("google/1", "code0001").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.ClearAuthCode(ctx, "google/1", "code0001"))
	})

	t.Run("clear replaced code", func(t *testing.T) {
		s, mock := setupMockStorage(t)
		mock.ExpectExec(`UPDATE accounts SET auth_code = NULL`).
			WithArgs("google/1", "stale001").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.ClearAuthCode(ctx, "google/1", "stale001"), storage.ErrAccountNotFound)
	})
}

func TestStorage_UpdateAndDeleteToken(t *testing.T) {
	ctx := context.Background()

	s, mock := setupMockStorage(t)
	mock.ExpectExec(`UPDATE accounts SET token = \$1 WHERE token = \$2`).
		WithArgs("new", "old").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE accounts SET token = \$1 WHERE token = \$2`).
		WithArgs("new2", "gone").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM accounts WHERE token = \$1`).
		WithArgs("new").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, s.UpdateToken(ctx, "old", "new"))
	assert.ErrorIs(t, s.UpdateToken(ctx, "gone", "new2"), storage.ErrAccountNotFound)
	assert.NoError(t, s.DeleteAccountByToken(ctx, "new"))
}

func TestStorage_Transfers(t *testing.T) {
	ctx := context.Background()
	now := time.UnixMilli(1735732800000)
	columns := []string{
		"transfer_id", "author_id", "web_url", "api_url", "author_ip",
		"latitude", "longitude", "nickname", "file_name", "expires_date",
	}

	t.Run("create conflict", func(t *testing.T) {
		s, mock := setupMockStorage(t)
		mock.ExpectExec(`INSERT INTO transfers`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "transfers_pkey"})

		err := s.CreateTransfer(ctx, &models.Transfer{
			TransferID:  "aaaaaaaaaaaaaaaa",
			WebURL:      "https://x.test",
			Nickname:    "Ana",
			FileName:    "a.txt",
			APIURL:      strPtr("foo.example.com"),
			AuthorIP:    strPtr("1.2.3.4"),
			ExpiresDate: now,
		})
		assert.ErrorIs(t, err, storage.ErrConflict)
	})

	t.Run("list active maps nullable columns", func(t *testing.T) {
		s, mock := setupMockStorage(t)
		rows := sqlmock.NewRows(columns).
			AddRow("aaaaaaaaaaaaaaaa", nil, "https://x.test/1", "foo.example.com", "1.2.3.4",
				nil, nil, "Ana", "a.txt", now.Add(time.Minute).UnixMilli()).
			AddRow("bbbbbbbbbbbbbbbb", "google/1", "https://x.test/2", nil, nil,
				48.85, 2.35, "Bob", "b.txt", now.Add(2*time.Minute).UnixMilli())
		mock.ExpectQuery(`WHERE expires_date >= \$1 ORDER BY expires_date ASC, transfer_id ASC`).
			WithArgs(now.UnixMilli()).
			WillReturnRows(rows)

		got, err := s.ListActiveTransfers(ctx, now)
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Nil(t, got[0].AuthorID)
		require.NotNil(t, got[0].APIURL)
		assert.Equal(t, "foo.example.com", *got[0].APIURL)
		assert.Nil(t, got[0].Latitude)

		require.NotNil(t, got[1].AuthorID)
		assert.Equal(t, "google/1", *got[1].AuthorID)
		require.NotNil(t, got[1].Latitude)
		assert.InDelta(t, 48.85, *got[1].Latitude, 1e-9)
		assert.Equal(t, now.Add(2*time.Minute).UnixMilli(), got[1].ExpiresDate.UnixMilli())
	})

	t.Run("list by author", func(t *testing.T) {
		s, mock := setupMockStorage(t)
		mock.ExpectQuery(`WHERE author_id = \$1 AND expires_date >= \$2`).
			WithArgs("google/1", now.UnixMilli()).
			WillReturnRows(sqlmock.NewRows(columns))

		got, err := s.ListActiveTransfersByAuthor(ctx, "google/1", now)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("expired ids and delete", func(t *testing.T) {
		s, mock := setupMockStorage(t)
		mock.ExpectQuery(`SELECT transfer_id FROM transfers WHERE expires_date < \$1`).
			WithArgs(now.UnixMilli()).
			WillReturnRows(sqlmock.NewRows([]string{"transfer_id"}).AddRow("old1").AddRow("old2"))
		mock.ExpectExec(`DELETE FROM transfers WHERE transfer_id = \$1`).
			WithArgs("old1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM transfers WHERE transfer_id = \$1`).
			WithArgs("old2").
			WillReturnResult(sqlmock.NewResult(0, 0))

		ids, err := s.ListExpiredTransferIDs(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, []string{"old1", "old2"}, ids)

		assert.NoError(t, s.DeleteTransfer(ctx, "old1"))
		assert.ErrorIs(t, s.DeleteTransfer(ctx, "old2"), storage.ErrTransferNotFound)
	})
}

func TestConstraintError(t *testing.T) {
	assert.Nil(t, constraintError(errors.New("boom")))
	assert.Nil(t, constraintError(&pq.Error{Code: "23503"}))
	assert.ErrorIs(t, constraintError(&pq.Error{Code: "23505", Constraint: "accounts_pkey"}), storage.ErrAccountExists)
	assert.ErrorIs(t, constraintError(&pq.Error{Code: "23505", Constraint: "transfers_pkey"}), storage.ErrConflict)
}
